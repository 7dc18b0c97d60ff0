package greenroom

import "strconv"

// ActorID is a dense, nonnegative identifier allocated sequentially
// starting at 0 by the engine that owns an actor.
type ActorID int64

// String returns the decimal representation of the identifier.
func (id ActorID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

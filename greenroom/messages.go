package greenroom

// MsgType distinguishes the three built-in message kinds from
// user-defined handler indices. Built-ins are encoded as negative
// integers so they never collide with a user index in [0, NumPrompts).
type MsgType int

const (
	// MsgHello is delivered automatically to a freshly spawned actor;
	// its payload is the spawner's ActorID.
	MsgHello MsgType = -1
	// MsgSpawn carries a *Role to construct a new actor, consumed by
	// the runtime rather than handed to a user handler.
	MsgSpawn MsgType = -2
	// MsgGoDie carries no payload and marks the receiving actor dead.
	MsgGoDie MsgType = -3
)

// message is the internal envelope stored in a mailbox. Payload
// ownership transfers to whichever handler pops it; there is no
// explicit free, the garbage collector reclaims it once unreachable.
type message struct {
	Type    MsgType
	Payload any
	// replyCh is set only for messages sent via Engine.Ask; Send never
	// populates it.
	replyCh chan any
}

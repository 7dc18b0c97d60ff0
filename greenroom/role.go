package greenroom

// HandlerFunc is invoked by a worker to process one message for one
// actor. state is a pointer to the actor's user-state slot: the
// handler is the only party ever allowed to read or write through it.
// payload is the message's data, typed per call site.
type HandlerFunc func(ctx *Context, state *any, payload any)

// HelloFunc is the handler invoked for the automatic HELLO message a
// freshly spawned actor receives. spawner is the identifier of the
// actor that spawned it (or the creating goroutine's own actor 0 for
// the system's first actor).
type HelloFunc func(ctx *Context, state *any, spawner ActorID)

// Role is a behavior descriptor: a fixed number of user-defined
// message handlers plus an optional HELLO callback. Roles are
// immutable and meant to be shared by reference across every actor
// spawned with them; the runtime never copies or frees a Role.
type Role struct {
	// NumPrompts is the number of user-defined message types this role
	// accepts, i.e. the valid range for user handler indices is
	// [0, NumPrompts).
	NumPrompts int
	// Handlers holds exactly NumPrompts callbacks, indexed by message
	// type.
	Handlers []HandlerFunc
	// OnHello, if non-nil, runs when the actor receives its HELLO. A
	// nil OnHello makes HELLO a no-op, which is a common and valid
	// choice for actors that don't care who spawned them.
	OnHello HelloFunc
}

// handlerFor returns the callback for a message type, and whether the
// type is valid for this role. HELLO and SPAWN and GODIE are handled
// by the worker loop directly and never reach this lookup.
func (r *Role) handlerFor(t MsgType) (HandlerFunc, bool) {
	idx := int(t)
	if idx < 0 || idx >= r.NumPrompts || idx >= len(r.Handlers) {
		return nil, false
	}
	return r.Handlers[idx], true
}

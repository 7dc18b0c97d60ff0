package greenroom

// Context is handed to a handler on every invocation. Rather than a
// worker consulting a thread-handle lookup table (or Go reaching for
// nonexistent goroutine-local storage) to figure out which actor it is
// currently running, the worker simply builds one of these and passes
// it straight to the handler.
type Context struct {
	engine  *Engine
	self    ActorID
	replyCh chan any
}

// Self returns the identifier of the actor whose handler is currently
// executing.
func (c *Context) Self() ActorID {
	return c.self
}

// Send delivers msgType/payload to target exactly as the public
// (*Engine).Send does; provided on Context for handler convenience.
func (c *Context) Send(target ActorID, msgType MsgType, payload any) error {
	return c.engine.Send(target, msgType, payload)
}

// Spawn synthesizes a SPAWN message to self: the actual construction
// of the new actor happens when the worker dispatches that SPAWN
// message, not synchronously here.
func (c *Context) Spawn(role *Role) error {
	return c.engine.Send(c.self, MsgSpawn, role)
}

// Die synthesizes a GODIE message to self, marking this actor dead
// once the worker dispatches it.
func (c *Context) Die() error {
	return c.engine.Send(c.self, MsgGoDie, nil)
}

// Reply answers an Ask call that is currently being serviced by this
// handler invocation. It is a no-op if the message being handled did
// not originate from Ask, and it only delivers the first reply: a
// handler that calls Reply twice has its second call silently
// dropped rather than blocking.
func (c *Context) Reply(value any) {
	if c.replyCh == nil {
		return
	}
	select {
	case c.replyCh <- value:
	default:
	}
}

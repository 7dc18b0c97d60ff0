package greenroom

import (
	"fmt"
	"runtime/debug"
)

// workerLoop is the body of one of the engine's fixed N workers. All N
// workers run this same function concurrently; the ready-queue join
// protocol guarantees at most one of them ever executes a given
// actor's handler at a time.
func (e *Engine) workerLoop(idx int) {
	defer e.wg.Done()
	<-e.startGate

	for {
		e.ready.mu.Lock()
		for e.ready.lenLocked() == 0 && !e.finished.Load() && e.aliveActors.Load() > 0 {
			e.ready.cond.Wait()
		}

		if e.finished.Load() {
			// Shutdown takes priority over any still-pending ready
			// entries: once finished is set, no further dispatch
			// occurs.
			e.ready.mu.Unlock()
			break
		}

		if e.ready.lenLocked() > 0 {
			id := e.ready.popLocked()
			rec := e.table.lookup(id)
			rec.mu.Lock()
			rec.inReadyQueue = false
			rec.mu.Unlock()
			msg := rec.mailbox.pop()
			e.ready.mu.Unlock()

			e.dispatch(rec, msg)
			e.joinReadyQueue(id, rec)
			continue
		}

		// Ready queue is empty and the engine isn't finished, so the
		// only way the wait loop above let us through is aliveActors
		// having reached zero. A dead actor can still have leftover
		// mail queued from before it died, which the ready-queue join
		// protocol will have re-enqueued; that case is handled by the
		// branch above on a later iteration, not here. Here there is
		// genuinely nothing left, so tell the supervisor and wait to
		// be re-awakened for shutdown.
		e.ready.mu.Unlock()
		e.raiseAllDead()

		e.ready.mu.Lock()
		for e.ready.lenLocked() == 0 && !e.finished.Load() {
			e.ready.cond.Wait()
		}
		empty := e.ready.lenLocked() == 0
		fin := e.finished.Load()
		e.ready.mu.Unlock()

		if fin || empty {
			break
		}
		// Something arrived after all: loop back to the top and let
		// the normal priority order (finished, then pop) handle it.
	}

	n := e.finishedWorkers.Add(1)
	_ = n
}

// dispatch routes a popped message to the right place based on its
// type: the three built-in control messages, or the role's handler.
func (e *Engine) dispatch(rec *actorRecord, msg message) {
	switch msg.Type {
	case MsgGoDie:
		e.handleGoDie(rec)
		return
	case MsgSpawn:
		role, _ := msg.Payload.(*Role)
		e.handleSpawn(rec.id, role)
		return
	case MsgHello:
		e.invokeHello(rec, msg)
		return
	}

	handler, ok := rec.role.handlerFor(msg.Type)
	if !ok || handler == nil {
		fmt.Printf("WARN: greenroom: actor %s received invalid message type %d, dropping\n", rec.id, msg.Type)
		return
	}

	ctx := &Context{engine: e, self: rec.id, replyCh: msg.replyCh}
	e.safeInvoke(rec, func() {
		handler(ctx, &rec.userState, msg.Payload)
	})
}

// invokeHello runs the role's HELLO callback, if any.
func (e *Engine) invokeHello(rec *actorRecord, msg message) {
	if rec.role.OnHello == nil {
		return
	}
	spawner, _ := msg.Payload.(ActorID)
	ctx := &Context{engine: e, self: rec.id, replyCh: msg.replyCh}
	e.safeInvoke(rec, func() {
		rec.role.OnHello(ctx, &rec.userState, spawner)
	})
}

// safeInvoke runs fn with panic recovery. A panicking handler is
// treated as equivalent to that actor receiving GODIE: it is marked
// dead so it can never wedge the ready queue, but the rest of the
// engine keeps running.
func (e *Engine) safeInvoke(rec *actorRecord, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("ERROR: greenroom: actor %s panicked: %v\n%s\n", rec.id, r, debug.Stack())
			e.handleGoDie(rec)
		}
	}()
	fn()
}

// handleSpawn allocates and registers a new actor, then delivers its
// synthesized HELLO.
func (e *Engine) handleSpawn(spawner ActorID, role *Role) {
	if role == nil {
		fmt.Printf("WARN: greenroom: actor %s sent SPAWN with a nil role, dropping\n", spawner)
		return
	}

	rec := newActorRecord(0, role, e.cfg.MailboxCapacity)
	id := e.table.insert(rec)
	e.numActors.Store(int64(e.table.count()))
	e.aliveActors.Add(1)

	if err := e.sendEnvelope(id, message{Type: MsgHello, Payload: spawner}); err != nil {
		fmt.Printf("WARN: greenroom: failed to deliver HELLO to newly spawned actor %s: %v\n", id, err)
	}
}

// handleGoDie marks an actor dead and decrements the alive count. The
// compare-and-swap makes death idempotent even if handleGoDie is ever
// reached twice for the same record (e.g. a panic-induced death
// racing a real GODIE).
func (e *Engine) handleGoDie(rec *actorRecord) {
	if rec.dead.CompareAndSwap(false, true) {
		e.aliveActors.Add(-1)
	}
}

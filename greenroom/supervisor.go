package greenroom

// supervisorLoop releases the workers, waits for either an external
// interrupt or the internal "all actors dead" signal, then drives
// shutdown: set finished, wake every worker, wait for them all to
// exit, and return (which Join observes via supervisorDone).
func (e *Engine) supervisorLoop() {
	e.watchOSSignals()
	close(e.startGate)

	select {
	case <-e.sigCh:
	case <-e.allDeadCh:
	}

	e.finished.Store(true)

	e.ready.mu.Lock()
	e.ready.cond.Broadcast()
	e.ready.mu.Unlock()

	e.wg.Wait()

	close(e.supervisorDone)
}

// Shutdown requests cooperative shutdown from outside the actor
// system, as if an external interrupt had arrived. It returns
// immediately; call Join to wait for teardown to complete.
func (e *Engine) Shutdown() {
	e.notifyInterrupt()
}

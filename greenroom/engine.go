package greenroom

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"time"
)

// Engine is the actor runtime: the actor table, ready queue, worker
// pool, supervisor, and process-wide counters, all held behind one
// value passed by reference. There is deliberately no package-level
// singleton: every counter and lock lives on the Engine value so a
// process can run more than one independently.
type Engine struct {
	cfg   Config
	table *actorTable
	ready *readyQueue

	numActors       atomic.Int64
	aliveActors     atomic.Int64
	finished        atomic.Bool
	finishedWorkers atomic.Int64

	startGate chan struct{}

	// allDeadCh is a dedicated "all actors dead" signal, kept separate
	// from the OS interrupt channel. It is closed at most once, by
	// whichever worker first observes aliveActors == 0.
	allDeadCh   chan struct{}
	allDeadOnce sync.Once

	sigCh chan os.Signal

	supervisorDone chan struct{}
	wg             sync.WaitGroup
}

// NewEngine constructs an Engine with the given configuration. The
// engine does no work until Start is called.
func NewEngine(cfg Config) *Engine {
	cfg = cfg.withDefaults()
	return &Engine{
		cfg:            cfg,
		table:          newActorTable(),
		ready:          newReadyQueue(),
		startGate:      make(chan struct{}),
		allDeadCh:      make(chan struct{}),
		sigCh:          make(chan os.Signal, 1),
		supervisorDone: make(chan struct{}),
	}
}

// Start is system_create: it allocates actor 0 with role, spins up the
// worker pool and the supervisor, and returns actor 0's identifier.
// Actor 0 receives its own HELLO with spawner equal to itself, since
// it has no external spawner.
func (e *Engine) Start(role *Role) (ActorID, error) {
	if role == nil {
		return 0, fmt.Errorf("greenroom: Start requires a non-nil role")
	}

	rec := newActorRecord(0, role, e.cfg.MailboxCapacity)
	id := e.table.insert(rec)
	e.numActors.Store(int64(e.table.count()))
	e.aliveActors.Add(1)

	e.wg.Add(e.cfg.PoolSize)
	for i := 0; i < e.cfg.PoolSize; i++ {
		go e.workerLoop(i)
	}
	go e.supervisorLoop()

	// Deliver the first actor's own HELLO directly: there is no
	// spawner goroutine to do it via the Spawn path.
	if err := e.sendEnvelope(id, message{Type: MsgHello, Payload: id}); err != nil {
		return id, err
	}

	return id, nil
}

// Join blocks until the supervisor has completed shutdown and every
// worker has exited. It always waits for the whole engine, regardless
// of which actor id is named; the id parameter only exists to
// diagnose a stale/unknown caller.
func (e *Engine) Join(id ActorID) {
	if e.table.lookup(id) == nil {
		fmt.Printf("WARN: greenroom: Join called with unknown actor %s, returning without waiting\n", id)
		return
	}
	<-e.supervisorDone
}

// Send is send_message: 0/nil on success, one of ErrNotFound,
// ErrDeadOrShut, ErrMailboxFull otherwise.
func (e *Engine) Send(target ActorID, msgType MsgType, payload any) error {
	return e.sendEnvelope(target, message{Type: msgType, Payload: payload})
}

// Ask sends a message and blocks the calling goroutine (not a worker)
// until the handler servicing it calls ctx.Reply, or timeout elapses.
// It is a convenience built entirely on top of Send and the ready-queue
// join protocol; it introduces no new scheduling behavior.
func (e *Engine) Ask(target ActorID, msgType MsgType, payload any, timeout time.Duration) (any, error) {
	replyCh := make(chan any, 1)
	if err := e.sendEnvelope(target, message{Type: msgType, Payload: payload, replyCh: replyCh}); err != nil {
		return nil, err
	}

	if timeout <= 0 {
		return <-replyCh, nil
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case v := <-replyCh:
		return v, nil
	case <-timer.C:
		return nil, ErrTimeout
	}
}

// sendEnvelope is the shared path behind Send and Ask: validate the
// target, check liveness, push into its mailbox, then join the ready
// queue.
func (e *Engine) sendEnvelope(target ActorID, msg message) error {
	if target < 0 || int64(target) >= e.numActors.Load() {
		return ErrNotFound
	}

	rec := e.table.lookup(target)
	if rec == nil {
		return ErrNotFound
	}

	if e.finished.Load() || rec.dead.Load() {
		return ErrDeadOrShut
	}

	if !rec.mailbox.push(msg) {
		return ErrMailboxFull
	}

	e.joinReadyQueue(target, rec)
	return nil
}

// joinReadyQueue enqueues an actor with pending mail if it isn't
// already pending, or — the second disjunct — re-enqueues an
// already-marked-pending actor when the ready queue happens to be
// empty, so a concurrent pop can never strand a non-empty mailbox
// unrepresented in the queue. Lock order: ready-queue lock, then
// actor-record lock; released in reverse.
func (e *Engine) joinReadyQueue(id ActorID, rec *actorRecord) {
	e.ready.mu.Lock()
	rec.mu.Lock()

	nonEmpty := !rec.mailbox.empty()
	if nonEmpty && (!rec.inReadyQueue || e.ready.lenLocked() == 0) {
		rec.inReadyQueue = true
		e.ready.pushLocked(id)
		e.ready.cond.Signal()
	}

	rec.mu.Unlock()
	e.ready.mu.Unlock()
}

// Snapshot returns a point-in-time view of the engine's counters.
func (e *Engine) Snapshot() EngineStats {
	e.ready.mu.Lock()
	depth := e.ready.lenLocked()
	e.ready.mu.Unlock()

	return EngineStats{
		NumActors:       int(e.numActors.Load()),
		AliveActors:     int(e.aliveActors.Load()),
		ReadyQueueDepth: depth,
		Finished:        e.finished.Load(),
	}
}

// EngineStats is a read-only snapshot of engine counters, consumed by
// the transport package and by tests.
type EngineStats struct {
	NumActors       int
	AliveActors     int
	ReadyQueueDepth int
	Finished        bool
}

// raiseAllDead is called by a worker that observes aliveActors == 0.
// It is safe to call from multiple workers; only the first call has
// any effect.
func (e *Engine) raiseAllDead() {
	e.allDeadOnce.Do(func() {
		close(e.allDeadCh)
	})
}

// notifyInterrupt lets external code (e.g. a test, or a CLI's
// os/signal relay) request shutdown without waiting for a real OS
// signal.
func (e *Engine) notifyInterrupt() {
	select {
	case e.sigCh <- os.Interrupt:
	default:
	}
}

// watchOSSignals relays the process's interrupt signal into the
// engine's own channel. Only the supervisor goroutine ever calls
// signal.Notify, so it is the only goroutine that ever observes an
// external interrupt directly.
func (e *Engine) watchOSSignals() {
	signal.Notify(e.sigCh, os.Interrupt)
}

// Package transport exposes a read-only view of a running engine over
// a websocket: tracked connections get a periodic JSON broadcast of
// engine counters. It never sends messages into the actor system; it
// only reads greenroom.EngineStats snapshots, so it cannot affect
// scheduling, ordering, or any core invariant.
package transport

import (
	"fmt"
	"sync"
	"time"

	"github.com/lguibr/actorcore/greenroom"
	"golang.org/x/net/websocket"
)

// StatsSnapshot is the JSON shape pushed to every connected client.
type StatsSnapshot struct {
	NumActors       int  `json:"numActors"`
	AliveActors     int  `json:"aliveActors"`
	ReadyQueueDepth int  `json:"readyQueueDepth"`
	Finished        bool `json:"finished"`
}

// Monitor tracks connected websocket clients and periodically pushes
// an engine snapshot to each of them.
type Monitor struct {
	engine *greenroom.Engine
	period time.Duration

	mu    sync.RWMutex
	conns map[*websocket.Conn]bool

	stopCh chan struct{}
	once   sync.Once
}

// NewMonitor creates a Monitor that samples engine every period.
func NewMonitor(engine *greenroom.Engine, period time.Duration) *Monitor {
	if period <= 0 {
		period = time.Second
	}
	return &Monitor{
		engine: engine,
		period: period,
		conns:  make(map[*websocket.Conn]bool),
		stopCh: make(chan struct{}),
	}
}

// Handler returns the websocket.Handler to register on an HTTP mux,
// e.g. http.Handle("/stats", monitor.Handler()).
func (m *Monitor) Handler() websocket.Handler {
	return func(ws *websocket.Conn) {
		m.addConn(ws)
		defer m.removeConn(ws)

		// Block here for the connection's lifetime; the broadcast loop
		// is the only writer. A read is kept alive purely to notice
		// when the client goes away.
		buf := make([]byte, 1)
		for {
			if _, err := ws.Read(buf); err != nil {
				return
			}
		}
	}
}

func (m *Monitor) addConn(ws *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conns[ws] = true
	fmt.Printf("transport: client connected (%s), %d total\n", ws.RemoteAddr(), len(m.conns))
}

func (m *Monitor) removeConn(ws *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.conns[ws]; ok {
		delete(m.conns, ws)
		_ = ws.Close()
	}
}

// Run broadcasts snapshots until stop is requested. Intended to be run
// in its own goroutine.
func (m *Monitor) Run() {
	ticker := time.NewTicker(m.period)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopCh:
			return
		case <-ticker.C:
			m.broadcast()
		}
	}
}

func (m *Monitor) broadcast() {
	stats := m.engine.Snapshot()
	snap := StatsSnapshot{
		NumActors:       stats.NumActors,
		AliveActors:     stats.AliveActors,
		ReadyQueueDepth: stats.ReadyQueueDepth,
		Finished:        stats.Finished,
	}

	m.mu.RLock()
	targets := make([]*websocket.Conn, 0, len(m.conns))
	for ws := range m.conns {
		targets = append(targets, ws)
	}
	m.mu.RUnlock()

	var dead []*websocket.Conn
	for _, ws := range targets {
		if err := websocket.JSON.Send(ws, snap); err != nil {
			dead = append(dead, ws)
		}
	}
	for _, ws := range dead {
		m.removeConn(ws)
	}
}

// Stop ends the broadcast loop. Safe to call more than once.
func (m *Monitor) Stop() {
	m.once.Do(func() { close(m.stopCh) })
}

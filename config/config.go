// Package config holds tunable profiles for an actor engine: a
// production default and a fast profile meant for quick-running tests.
package config

import (
	"time"

	"github.com/lguibr/actorcore/greenroom"
)

// DefaultConfig returns the profile a long-running process should use:
// a fixed pool of 8 workers and a generous mailbox capacity.
func DefaultConfig() greenroom.Config {
	return greenroom.Config{
		PoolSize:             8,
		MailboxCapacity:      1024,
		ShutdownDrainTimeout: 10 * time.Second,
	}
}

// FastConfig returns a profile tuned for tests: a small pool and a
// small mailbox, so boundary conditions like MailboxFull are reachable
// without sending thousands of messages.
func FastConfig() greenroom.Config {
	return greenroom.Config{
		PoolSize:             4,
		MailboxCapacity:      8,
		ShutdownDrainTimeout: 5 * time.Second,
	}
}

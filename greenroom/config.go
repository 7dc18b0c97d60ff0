package greenroom

import "time"

// Config carries the runtime's tunable constants.
type Config struct {
	// PoolSize is the fixed number of worker goroutines.
	PoolSize int
	// MailboxCapacity is the bounded mailbox capacity every actor gets.
	MailboxCapacity int
	// ShutdownDrainTimeout is carried by the config profiles but is not
	// read by the Engine: teardown, and so Join, always waits for every
	// worker to exit, however long that takes.
	ShutdownDrainTimeout time.Duration
}

// defaultEngineConfig is used whenever a caller constructs an Engine
// with a zero-value Config field.
func defaultEngineConfig() Config {
	return Config{
		PoolSize:        8,
		MailboxCapacity: 1024,
	}
}

func (c Config) withDefaults() Config {
	d := defaultEngineConfig()
	if c.PoolSize <= 0 {
		c.PoolSize = d.PoolSize
	}
	if c.MailboxCapacity <= 0 {
		c.MailboxCapacity = d.MailboxCapacity
	}
	return c
}

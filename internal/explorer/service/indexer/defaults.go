package indexer

import "time"

const (
	defaultStartHeight       = 1
	defaultConcurrency       = 1
	defaultStatsInterval     = 100
	defaultProgressInterval  = 50
	defaultNodeReadyAttempts = 30
	defaultNodeReadyInterval = 10 * time.Second
	closeTimeout             = 10 * time.Second
)

// Config bounds and paces a scan. Zero values select the defaults.
type Config struct {
	StartHeight uint64
	// EndHeight is inclusive; zero scans up to the node tip seen at start.
	EndHeight uint64

	NodeConcurrency int
	FoldConcurrency int

	StatsInterval    uint64
	ProgressInterval uint64

	NodeReadyAttempts int
	NodeReadyInterval time.Duration
}

func (c Config) withDefaults() Config {
	if c.StartHeight == 0 {
		c.StartHeight = defaultStartHeight
	}
	if c.NodeConcurrency < 1 {
		c.NodeConcurrency = defaultConcurrency
	}
	if c.FoldConcurrency < 1 {
		c.FoldConcurrency = defaultConcurrency
	}
	if c.StatsInterval == 0 {
		c.StatsInterval = defaultStatsInterval
	}
	if c.ProgressInterval == 0 {
		c.ProgressInterval = defaultProgressInterval
	}
	if c.NodeReadyAttempts < 1 {
		c.NodeReadyAttempts = defaultNodeReadyAttempts
	}
	if c.NodeReadyInterval <= 0 {
		c.NodeReadyInterval = defaultNodeReadyInterval
	}
	return c
}

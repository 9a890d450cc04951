package module

import "dnsguard/internal/platform/config"

// Options controls batch admission and the runner
type Options struct {
	MaxBatch        int
	Workers         int
	CheckpointEvery int
}

// FromConfig reads with SCAN_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("SCAN_")
	return Options{
		MaxBatch:        c.MayInt("MAX_BATCH", 10000),
		Workers:         c.MayInt("WORKERS", 4),
		CheckpointEvery: c.MayInt("CHECKPOINT_EVERY", 10),
	}
}

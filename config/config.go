// Package config defines the tunables of the rotation pipeline and their
// defaults. There is no configuration file; values are set programmatically
// or through CLI flags.
package config

import (
	"fmt"
)

const (
	MinBufferSize = 1
	MaxBufferSize = 1 << 26

	DefaultBufferSize      = 1 << 16
	DefaultProgressLogRate = 1 << 24
)

type Config struct {
	// BufferSize is the size, in bytes, of the buffers between the
	// rotation pipeline and the input/output files.
	BufferSize uint

	// ProgressLogRate is the number of processed bytes between progress
	// log lines.
	ProgressLogRate uint64
}

func DefaultConfig() Config {
	return Config{
		BufferSize:      DefaultBufferSize,
		ProgressLogRate: DefaultProgressLogRate,
	}
}

func Validate(cfg Config) error {
	if cfg.BufferSize < MinBufferSize {
		return fmt.Errorf("invalid `BufferSize`; expected: >= %d, given: %d", MinBufferSize, cfg.BufferSize)
	}

	if cfg.BufferSize > MaxBufferSize {
		return fmt.Errorf("invalid `BufferSize`; expected: <= %d, given: %d", MaxBufferSize, cfg.BufferSize)
	}

	if cfg.ProgressLogRate == 0 {
		return fmt.Errorf("invalid `ProgressLogRate`; expected: > 0, given: %d", cfg.ProgressLogRate)
	}

	return nil
}

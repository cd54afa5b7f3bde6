package streamlex

import (
	"log/slog"
	"unicode/utf8"
)

// Config controls buffer sizing of a Reader.
//
// Example:
//
//	config := streamlex.DefaultConfig()
//	config.InitialCapacity = 64 * 1024 // fewer reads on large files
//	r, err := streamlex.NewWithConfig(f, config)
type Config struct {
	// InitialCapacity is the buffer size used by bounded pulls (Next, Peek,
	// TakeOnce, Matches). Unbounded scans can grow the buffer past it.
	// Default: 16 KiB
	InitialCapacity int

	// ShrinkThreshold triggers compaction on a bounded pull once fewer than
	// this many bytes are free at the end of the initial capacity.
	// Default: 2 KiB
	ShrinkThreshold int

	// ExtendThreshold triggers doubling of the buffer on an unbounded pull once
	// fewer than this many bytes are free.
	// Default: 4 KiB
	ExtendThreshold int

	// Logger, if set, receives debug records for compaction and growth.
	// Default: nil (silent)
	Logger *slog.Logger
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		InitialCapacity: 16 * 1024,
		ShrinkThreshold: 2 * 1024,
		ExtendThreshold: 4 * 1024,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
//
// Valid ranges:
//   - InitialCapacity: 16 to 1 GiB
//   - ShrinkThreshold: 4 to InitialCapacity/2
//   - ExtendThreshold: 4 to InitialCapacity
func (c Config) Validate() error {
	if c.InitialCapacity < 16 || c.InitialCapacity > 1<<30 {
		return &ConfigError{
			Field:   "InitialCapacity",
			Message: "must be between 16 and 1 GiB",
		}
	}
	if c.ShrinkThreshold < utf8.UTFMax || c.ShrinkThreshold > c.InitialCapacity/2 {
		return &ConfigError{
			Field:   "ShrinkThreshold",
			Message: "must be between 4 and InitialCapacity/2",
		}
	}
	if c.ExtendThreshold < utf8.UTFMax || c.ExtendThreshold > c.InitialCapacity {
		return &ConfigError{
			Field:   "ExtendThreshold",
			Message: "must be between 4 and InitialCapacity",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "streamlex: invalid config: " + e.Field + ": " + e.Message
}

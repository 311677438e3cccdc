// Package config holds the small set of knobs cmd/blockdump needs: which
// comparator to order keys with and how tolerant to be of a corrupt block.
// Shaped after kevo's own pkg/config — a mutex-guarded struct with a
// default constructor, a Validate method, and JSON (de)serialization — but
// stripped down to this repository's scope: there is no WAL, MemTable, or
// Compaction layer here to configure.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// ErrInvalidConfig is returned by Validate when a field is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// ComparatorName selects one of the built-in comparators by name.
type ComparatorName string

const (
	// Bytewise orders keys the way bytes.Compare does.
	Bytewise ComparatorName = "bytewise"
	// Reverse inverts Bytewise order.
	Reverse ComparatorName = "reverse"
)

// Config controls cmd/blockdump's behavior.
type Config struct {
	// Comparator selects the key order to run Seek with.
	Comparator ComparatorName `json:"comparator"`

	// StrictMode, when true, makes the CLI exit non-zero when a cursor's
	// Status reports Corruption. When false the corruption is logged at
	// error level and the CLI still exits zero.
	StrictMode bool `json:"strict_mode"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `json:"log_level"`

	mu sync.RWMutex
}

// NewDefaultConfig returns the recommended defaults: bytewise order,
// non-strict (report corruption but keep going), info-level logging.
func NewDefaultConfig() *Config {
	return &Config{
		Comparator: Bytewise,
		StrictMode: false,
		LogLevel:   "info",
	}
}

// Validate checks that every field holds a recognized value.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch c.Comparator {
	case Bytewise, Reverse:
	default:
		return fmt.Errorf("%w: unknown comparator %q", ErrInvalidConfig, c.Comparator)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}

	return nil
}

// Update applies fn to the configuration under the write lock.
func (c *Config) Update(fn func(*Config)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c)
}

// LoadFile reads a JSON-encoded Config from path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := NewDefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

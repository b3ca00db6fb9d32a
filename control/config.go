// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Typed ring/pump configuration, YAML loading, and a thread-safe store with
// reload listeners.

package control

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/momentics/hioload-ring/core/protocol"
)

// StorageMode selects where ring storage comes from.
type StorageMode string

const (
	StorageBorrowed StorageMode = "borrowed" // caller slice, never freed by the ring
	StorageHeap     StorageMode = "heap"     // owned, Go heap
	StoragePages    StorageMode = "pages"    // owned, mapped pages
)

// Policy decides what a producer does with a frame refused for lack of place.
type Policy string

const (
	PolicyDrop    Policy = "drop"
	PolicyBacklog Policy = "backlog"
)

// LogConfig configures the example's logger.
type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
	Debug bool   `yaml:"debug"`
}

// Config is the full configuration of a ring pump.
type Config struct {
	Capacity     int           `yaml:"capacity"`
	Storage      StorageMode   `yaml:"storage"`
	FrameSize    int           `yaml:"frame_size"`
	Frames       int           `yaml:"frames"`
	Policy       Policy        `yaml:"policy"`
	BacklogLimit int           `yaml:"backlog_limit"`
	ReadChunk    int           `yaml:"read_chunk"`
	PollInterval time.Duration `yaml:"poll_interval"`
	Seed         int64         `yaml:"seed"`
	Log          LogConfig     `yaml:"log"`
}

// DefaultConfig returns a configuration sized for a small UART feed.
func DefaultConfig() Config {
	return Config{
		Capacity:     256,
		Storage:      StorageHeap,
		FrameSize:    32,
		Frames:       10000,
		Policy:       PolicyBacklog,
		BacklogLimit: 1024,
		ReadChunk:    64,
		PollInterval: 100 * time.Microsecond,
		Seed:         1,
		Log:          LogConfig{Level: "info"},
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs *multierror.Error
	if c.Capacity < 2 {
		errs = multierror.Append(errs, fmt.Errorf("capacity must be at least 2, got %d", c.Capacity))
	}
	switch c.Storage {
	case StorageBorrowed, StorageHeap, StoragePages:
	default:
		errs = multierror.Append(errs, fmt.Errorf("unknown storage mode %q", c.Storage))
	}
	if c.FrameSize <= 0 || c.FrameSize > protocol.MaxFramePayload {
		errs = multierror.Append(errs, fmt.Errorf("frame_size must be in 1..%d, got %d", protocol.MaxFramePayload, c.FrameSize))
	}
	if c.FrameSize > 0 && c.Capacity >= 2 && protocol.EncodedLen(c.FrameSize) > c.Capacity-1 {
		errs = multierror.Append(errs, fmt.Errorf("encoded frame of %d bytes never fits capacity %d", protocol.EncodedLen(c.FrameSize), c.Capacity))
	}
	if c.Frames < 0 {
		errs = multierror.Append(errs, fmt.Errorf("frames must not be negative, got %d", c.Frames))
	}
	switch c.Policy {
	case PolicyDrop, PolicyBacklog:
	default:
		errs = multierror.Append(errs, fmt.Errorf("unknown policy %q", c.Policy))
	}
	if c.BacklogLimit < 0 {
		errs = multierror.Append(errs, fmt.Errorf("backlog_limit must not be negative, got %d", c.BacklogLimit))
	}
	if c.ReadChunk <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("read_chunk must be positive, got %d", c.ReadChunk))
	}
	return errs.ErrorOrNil()
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// ConfigStore holds the current Config with snapshot reads and listener
// dispatch on change.
type ConfigStore struct {
	mu        sync.RWMutex
	config    Config
	listeners []func(Config)
}

// NewConfigStore initializes a store with cfg.
func NewConfigStore(cfg Config) *ConfigStore {
	return &ConfigStore{config: cfg}
}

// GetSnapshot returns a copy of the current config.
func (cs *ConfigStore) GetSnapshot() Config {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.config
}

// Update applies fn to a copy of the config and stores it if it validates.
// Listeners run synchronously after the store is unlocked.
func (cs *ConfigStore) Update(fn func(*Config)) error {
	cs.mu.Lock()
	next := cs.config
	fn(&next)
	if err := next.Validate(); err != nil {
		cs.mu.Unlock()
		return err
	}
	cs.config = next
	listeners := append([]func(Config){}, cs.listeners...)
	cs.mu.Unlock()

	for _, l := range listeners {
		l(next)
	}
	return nil
}

// OnReload registers a listener called with the new config on every Update.
func (cs *ConfigStore) OnReload(fn func(Config)) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}

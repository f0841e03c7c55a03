package config

import "sync/atomic"

// Store is a single-writer snapshot holder. Scoring and matching calls read
// an immutable *Config; an admin reload builds a fresh Config and swaps it
// in whole, so concurrent readers never observe a half-updated value.
type Store struct {
	current atomic.Pointer[Config]
}

// NewStore creates a Store seeded with cfg.
func NewStore(cfg *Config) *Store {
	s := &Store{}
	s.current.Store(cfg)
	return s
}

// Current returns the active snapshot. Callers must treat it as read-only.
func (s *Store) Current() *Config {
	return s.current.Load()
}

// Replace validates and installs a new snapshot. The old snapshot stays
// valid for calls already holding it.
func (s *Store) Replace(cfg *Config) error {
	ApplyDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return err
	}
	s.current.Store(cfg)
	return nil
}

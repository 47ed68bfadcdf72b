package config

import "sync/atomic"

// Store publishes the active configuration. Hot reloads swap the pointer
// wholesale, so a concurrent reader always sees one complete snapshot and
// never a half-written struct.
type Store struct {
	current atomic.Pointer[Config]
}

func NewStore(cfg *Config) *Store {
	s := &Store{}
	s.current.Store(cfg)
	return s
}

// Current returns the active snapshot. Callers must not mutate it; reloads
// publish a fresh struct instead.
func (s *Store) Current() *Config {
	return s.current.Load()
}

// Replace publishes a new snapshot. In-flight requests keep the snapshot
// they already loaded.
func (s *Store) Replace(cfg *Config) {
	s.current.Store(cfg)
}

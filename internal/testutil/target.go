package testutil

import (
	"sync"

	"photosort/internal/photosort"
)

// StaticTargets is a TargetFactory that always opens the same Target and
// remembers the roots it was asked for.
type StaticTargets struct {
	mu     sync.Mutex
	target photosort.Target
	roots  []string
	err    error
}

// NewStaticTargets creates a factory returning target.
func NewStaticTargets(target photosort.Target) *StaticTargets {
	return &StaticTargets{target: target}
}

// FailOpen makes Open return err.
func (s *StaticTargets) FailOpen(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *StaticTargets) Open(root string) (photosort.Target, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roots = append(s.roots, root)
	if s.err != nil {
		return nil, s.err
	}
	return s.target, nil
}

// Roots returns the roots passed to Open, in call order.
func (s *StaticTargets) Roots() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.roots...)
}

// Compile-time check
var _ photosort.TargetFactory = (*StaticTargets)(nil)

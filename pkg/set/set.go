package set

import (
	"slices"
	"sync"
)

// Set is a concurrency safe set of comparable values
type Set[K comparable] struct {
	entries map[K]struct{}
	mu      sync.RWMutex
}

// New creates a set holding the given values
func New[K comparable](values ...K) *Set[K] {
	s := &Set[K]{
		mu:      sync.RWMutex{},
		entries: make(map[K]struct{}, len(values)),
	}
	for _, v := range values {
		s.entries[v] = struct{}{}
	}
	return s
}

// Add inserts a value and reports whether it was not already present
func (s *Set[K]) Add(value K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[value]; ok {
		return false
	}
	s.entries[value] = struct{}{}
	return true
}

func (s *Set[K]) Delete(value K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, value)
}

func (s *Set[K]) Has(value K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[value]
	return ok
}

func (s *Set[K]) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Values returns the members in no particular order
func (s *Set[K]) Values() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	values := make([]K, 0, len(s.entries))
	for k := range s.entries {
		values = append(values, k)
	}
	return values
}

// Missing returns the values from candidates that are not in the set, keeping the order of candidates
func (s *Set[K]) Missing(candidates []K) []K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	missing := make([]K, 0)
	for _, c := range candidates {
		if _, ok := s.entries[c]; ok {
			continue
		}
		if slices.Contains(missing, c) {
			continue
		}
		missing = append(missing, c)
	}
	return missing
}

package table

import (
	"fmt"
	"slices"
	"sync"
)

// Store is a registry of named arrays. It replaces the global binding table
// of the host environment: every player is handed its store explicitly.
//
// Store is safe for concurrent use. It is never touched from the audio thread.
type Store struct {
	mu     sync.RWMutex
	arrays map[string]*Array
	subs   map[int]func(name string)
	nextID int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		arrays: make(map[string]*Array),
		subs:   make(map[int]func(name string)),
	}
}

// Put stores a under name, replacing any previous array, and notifies subscribers.
func (s *Store) Put(name string, a *Array) error {
	if name == "" {
		return fmt.Errorf("%w: empty array name", ErrInvalidArray)
	}
	if a == nil {
		return fmt.Errorf("%w: nil array %q", ErrInvalidArray, name)
	}

	s.mu.Lock()
	s.arrays[name] = a
	s.mu.Unlock()

	s.notify(name)
	return nil
}

// Get returns the array stored under name.
func (s *Store) Get(name string) (*Array, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.arrays[name]
	return a, ok
}

// Delete removes the array stored under name and notifies subscribers.
// It reports whether an array was removed.
func (s *Store) Delete(name string) bool {
	s.mu.Lock()
	_, ok := s.arrays[name]
	delete(s.arrays, name)
	s.mu.Unlock()

	if ok {
		s.notify(name)
	}
	return ok
}

// Names returns the stored array names in sorted order.
func (s *Store) Names() []string {
	s.mu.RLock()
	names := make([]string, 0, len(s.arrays))
	for name := range s.arrays {
		names = append(names, name)
	}
	s.mu.RUnlock()

	slices.Sort(names)
	return names
}

// Subscribe registers fn to be called with the name of every array that is
// put or deleted. The returned function cancels the subscription.
// fn runs on the goroutine that modified the store, outside the store lock.
func (s *Store) Subscribe(fn func(name string)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify(name string) {
	s.mu.RLock()
	fns := make([]func(string), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(name)
	}
}

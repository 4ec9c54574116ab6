package queue

import (
	"sort"
	"sync"
)

// Registry keeps queues by name
type Registry struct {
	queues map[string]*Queue
	mu     sync.RWMutex
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{queues: make(map[string]*Queue)}
}

// Create creates the named queue.
//
// An existing queue with the same name is destroyed first, so a stale
// instance and its undelivered messages never survive into the new one.
func (r *Registry) Create(name string, attr Attr) (*Queue, error) {
	q, err := New(name, attr)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.queues[name]; ok {
		old.close()
	}
	r.queues[name] = q

	return q, nil
}

// Open returns the named queue, or ErrNotFound
func (r *Registry) Open(name string) (*Queue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.queues[name]
	if !ok {
		return nil, ErrNotFound
	}
	return q, nil
}

// Unlink removes and destroys the named queue
func (r *Registry) Unlink(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	q, ok := r.queues[name]
	if !ok {
		return ErrNotFound
	}
	delete(r.queues, name)
	q.close()

	return nil
}

// UnlinkAll removes and destroys every queue
func (r *Registry) UnlinkAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for name, q := range r.queues {
		delete(r.queues, name)
		q.close()
	}
}

// Names returns the sorted names of all queues
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.queues))
	for name := range r.queues {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

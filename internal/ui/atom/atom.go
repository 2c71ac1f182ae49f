// Package atom provides an observable value shared between views.
//
// Writers go through Update, which hands the function the value current at
// the moment of the write, never a snapshot taken earlier, so rapid toggles
// are not lost. Subscribers are notified after every change.
package atom

import "sync"

// Atom holds a value of type T and notifies subscribers on change.
type Atom[T any] struct {
	mu          sync.Mutex
	value       T
	nextID      uint64
	subscribers map[uint64]func(T)
}

// New creates an atom holding initial.
func New[T any](initial T) *Atom[T] {
	return &Atom[T]{
		value:       initial,
		subscribers: make(map[uint64]func(T)),
	}
}

// Load returns the current value.
func (a *Atom[T]) Load() T {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.value
}

// Store replaces the value.
func (a *Atom[T]) Store(value T) {
	a.Update(func(T) T { return value })
}

// Update replaces the value with fn(current) and returns the new value.
// fn runs under the atom's lock and must not call back into the atom.
func (a *Atom[T]) Update(fn func(current T) T) T {
	a.mu.Lock()

	a.value = fn(a.value)
	value := a.value

	listeners := make([]func(T), 0, len(a.subscribers))
	for _, listener := range a.subscribers {
		listeners = append(listeners, listener)
	}

	a.mu.Unlock()

	for _, listener := range listeners {
		listener(value)
	}

	return value
}

// Subscribe registers fn to be called with every new value.
// The returned function removes the subscription.
func (a *Atom[T]) Subscribe(fn func(T)) (cancel func()) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := a.nextID
	a.nextID++
	a.subscribers[id] = fn

	var once sync.Once

	return func() {
		once.Do(func() {
			a.mu.Lock()
			defer a.mu.Unlock()

			delete(a.subscribers, id)
		})
	}
}

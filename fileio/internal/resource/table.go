package resource

import (
	"sync"
)

// Table is a typed handle table with observer support.
type Table[T any] struct {
	backend   *LocalBackend[T]
	observers []Observer
	obsMu     sync.RWMutex
}

// NewTable creates a new table with a LocalBackend.
func NewTable[T any]() *Table[T] {
	return &Table[T]{
		backend: NewLocalBackend[T](),
	}
}

// Insert adds a value and returns its handle, or 0 once the table is closed.
func (t *Table[T]) Insert(kind Kind, value T) Handle {
	handle, err := t.backend.Create(kind, value)
	if err != nil {
		return 0
	}

	t.notify(Event{
		Type:   EventCreated,
		Handle: handle,
		Kind:   kind,
		Value:  value,
	})

	return handle
}

// Get retrieves a value by handle.
func (t *Table[T]) Get(handle Handle) (T, bool) {
	return t.backend.Get(handle)
}

// Borrow pins a handle so it cannot be removed until Return is called.
func (t *Table[T]) Borrow(handle Handle) (T, bool) {
	return t.backend.Borrow(handle)
}

// Return releases a borrow taken with Borrow.
func (t *Table[T]) Return(handle Handle) bool {
	return t.backend.ReturnBorrow(handle)
}

// Remove drops an entry and returns its value. The error is
// ErrOutstandingBorrow for pinned entries.
func (t *Table[T]) Remove(handle Handle) (T, error) {
	kind, _ := t.backend.Kind(handle)
	value, err := t.backend.Drop(handle)
	if err != nil {
		return value, err
	}

	if d, ok := any(value).(Dropper); ok {
		d.Drop()
	}

	t.notify(Event{
		Type:   EventDropped,
		Handle: handle,
		Kind:   kind,
		Value:  value,
	})

	return value, nil
}

// Subscribe adds an observer for lifecycle events.
func (t *Table[T]) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Len returns the number of live entries.
func (t *Table[T]) Len() int {
	return t.backend.Len()
}

// Close stops accepting inserts and returns whatever was still live.
// Droppers are not invoked for returned values.
func (t *Table[T]) Close() []T {
	return t.backend.Close()
}

func (t *Table[T]) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnResourceEvent(e)
	}
}

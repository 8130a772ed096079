package resource

import (
	"errors"
	"sync"
)

var (
	ErrClosed            = errors.New("resource backend closed")
	ErrExhausted         = errors.New("resource handle space exhausted")
	ErrNotFound          = errors.New("resource not found")
	ErrOutstandingBorrow = errors.New("cannot drop resource with outstanding borrows")
)

// LocalBackend is an in-memory slot store with borrow tracking.
type LocalBackend[T any] struct {
	entries  []entry[T]
	freeList []uint32
	mu       sync.RWMutex
	closed   bool
}

type entry[T any] struct {
	value       T
	borrowCount uint32
	kind        Kind
	gen         uint8
	valid       bool
}

// NewLocalBackend creates a new in-memory backend.
func NewLocalBackend[T any]() *LocalBackend[T] {
	return &LocalBackend[T]{
		entries:  make([]entry[T], 0, 16),
		freeList: make([]uint32, 0, 8),
	}
}

// Create stores a value and returns a handle.
func (b *LocalBackend[T]) Create(kind Kind, value T) (Handle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0, ErrClosed
	}

	if n := len(b.freeList); n > 0 {
		idx := b.freeList[n-1]
		b.freeList = b.freeList[:n-1]
		e := &b.entries[idx-1]
		e.value = value
		e.kind = kind
		e.valid = true
		return makeHandle(idx, e.gen), nil
	}

	if len(b.entries) >= maxIndex {
		return 0, ErrExhausted
	}
	b.entries = append(b.entries, entry[T]{value: value, kind: kind, valid: true})
	return makeHandle(uint32(len(b.entries)), 0), nil
}

// lookup returns the live entry for handle. Callers hold b.mu.
func (b *LocalBackend[T]) lookup(handle Handle) *entry[T] {
	idx := handle.index()
	if idx == 0 || int(idx) > len(b.entries) {
		return nil
	}
	e := &b.entries[idx-1]
	if !e.valid || e.gen != handle.gen() {
		return nil
	}
	return e
}

// Get retrieves a value by handle.
func (b *LocalBackend[T]) Get(handle Handle) (T, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var zero T
	e := b.lookup(handle)
	if e == nil {
		return zero, false
	}
	return e.value, true
}

// Kind returns the kind recorded for a handle.
func (b *LocalBackend[T]) Kind(handle Handle) (Kind, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e := b.lookup(handle)
	if e == nil {
		return 0, false
	}
	return e.kind, true
}

// Drop removes an entry and returns its value. It fails for unknown
// handles and for entries with outstanding borrows.
func (b *LocalBackend[T]) Drop(handle Handle) (T, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var zero T
	e := b.lookup(handle)
	if e == nil {
		return zero, ErrNotFound
	}
	if e.borrowCount > 0 {
		return zero, ErrOutstandingBorrow
	}

	value := e.value
	e.value = zero
	e.valid = false
	e.gen++
	b.freeList = append(b.freeList, handle.index())
	return value, nil
}

// Borrow increments the borrow count for a handle and returns its value.
func (b *LocalBackend[T]) Borrow(handle Handle) (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var zero T
	e := b.lookup(handle)
	if e == nil {
		return zero, false
	}
	e.borrowCount++
	return e.value, true
}

// ReturnBorrow decrements the borrow count for a handle.
func (b *LocalBackend[T]) ReturnBorrow(handle Handle) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := b.lookup(handle)
	if e == nil || e.borrowCount == 0 {
		return false
	}
	e.borrowCount--
	return true
}

// Close marks the backend closed and returns every live value.
func (b *LocalBackend[T]) Close() []T {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	var live []T
	for i := range b.entries {
		if b.entries[i].valid {
			live = append(live, b.entries[i].value)
		}
	}
	b.entries = nil
	b.freeList = nil
	return live
}

// Len returns the number of live entries.
func (b *LocalBackend[T]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	count := 0
	for _, e := range b.entries {
		if e.valid {
			count++
		}
	}
	return count
}

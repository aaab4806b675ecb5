// File: core/ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ring is the runtime-sized history buffer. Fixed wraps it with a type-level
// capacity.

package ring

import (
	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.History[any] = (*Ring[any])(nil)

// Ring keeps the last Size() pushed values, newest at index 0.
// The zero value is not usable; build one with New or NewFilled.
type Ring[T any] struct {
	data []T
	// head is the slot of the most recent element. It starts at len(data)-1
	// and moves backwards on every push.
	head int
}

// New allocates a ring of capacity zero-valued slots.
// Returns an *api.Error wrapping api.ErrZeroCapacity when capacity < 1.
func New[T any](capacity int) (*Ring[T], error) {
	if capacity < 1 {
		return nil, api.NewInvalidCapacity(capacity)
	}
	return newRing[T](capacity), nil
}

// NewFilled allocates a ring whose every slot holds value.
func NewFilled[T any](capacity int, value T) (*Ring[T], error) {
	r, err := New[T](capacity)
	if err != nil {
		return nil, err
	}
	r.Fill(value)
	return r, nil
}

func newRing[T any](capacity int) *Ring[T] {
	return &Ring[T]{
		data: make([]T, capacity),
		head: capacity - 1,
	}
}

// Clone returns a deep copy sharing no storage with r.
// Elements are copied by assignment; pointers inside T still alias.
func (r *Ring[T]) Clone() *Ring[T] {
	out := &Ring[T]{
		data: make([]T, len(r.data)),
		head: r.head,
	}
	copy(out.data, r.data)
	return out
}

// CopyFrom overwrites r with the contents and cursor of src.
// Copying a ring onto itself is a no-op. src must have the same capacity.
func (r *Ring[T]) CopyFrom(src *Ring[T]) error {
	if r == src {
		return nil
	}
	if src == nil || len(src.data) != len(r.data) {
		e := api.NewError(api.ErrCodeInvalidArgument, "ring capacity mismatch").
			WithCause(api.ErrInvalidArgument).
			WithContext("capacity", len(r.data))
		if src != nil {
			e.WithContext("source_capacity", len(src.data))
		}
		return e
	}
	copy(r.data, src.data)
	r.head = src.head
	return nil
}

// Push moves the head back one slot and writes value there, overwriting the
// oldest element. Every older element moves to its previous index + 1.
func (r *Ring[T]) Push(value T) {
	r.mustHaveStorage()
	r.head = previous(r.head, len(r.data))
	r.data[r.head] = value
}

// Emplace claims the oldest slot as the new head, resets it to the zero value
// and hands it to init to be built in place.
// A nil init leaves the zero value.
func (r *Ring[T]) Emplace(init func(slot *T)) {
	r.mustHaveStorage()
	r.head = previous(r.head, len(r.data))
	slot := &r.data[r.head]
	var zero T
	*slot = zero
	if init != nil {
		init(slot)
	}
}

// mustHaveStorage panics on a zero-value ring instead of dividing by zero.
func (r *Ring[T]) mustHaveStorage() {
	if len(r.data) == 0 {
		panic(api.NewInvalidCapacity(0))
	}
}

// At returns the element pushed index positions ago.
func (r *Ring[T]) At(index int) (T, error) {
	p, err := r.Ref(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Ref returns a pointer to the element pushed index positions ago. The pointer
// stays valid until the slot is overwritten by a later push.
func (r *Ring[T]) Ref(index int) (*T, error) {
	if index < 0 || index >= len(r.data) {
		return nil, api.NewOutOfRange(index, len(r.data))
	}
	return &r.data[advance(r.head, index, len(r.data))], nil
}

// Set replaces the element pushed index positions ago.
func (r *Ring[T]) Set(index int, value T) error {
	p, err := r.Ref(index)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// Size returns the capacity.
func (r *Ring[T]) Size() int {
	return len(r.data)
}

// Fill writes value into every slot. The head is left where it is.
func (r *Ring[T]) Fill(value T) {
	for i := range r.data {
		r.data[i] = value
	}
}

// File: core/ring/fixed.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed carries its capacity in its type: Fixed[int, Last4] and
// Fixed[int, Last8] are distinct types and cannot be copied onto each other.

package ring

import (
	"github.com/momentics/hioload-ring/api"
)

// Extent is implemented by zero-size marker types naming a ring capacity.
//
//	type Last4 struct{}
//
//	func (Last4) Len() int { return 4 }
//
// Len must be declared on the value receiver and return the same positive
// constant every time.
type Extent interface {
	Len() int
}

var _ api.History[any] = (*Fixed[any, extentOne])(nil)

type extentOne struct{}

func (extentOne) Len() int { return 1 }

// Fixed is a Ring whose capacity is E.Len().
// The zero value is not usable; build one with NewFixed or NewFixedFilled.
type Fixed[T any, E Extent] struct {
	r Ring[T]
}

// NewFixed allocates a ring of E.Len() zero-valued slots.
// It panics with an *api.Error if E.Len() < 1: the capacity is part of the
// type, so there is no caller input to reject.
func NewFixed[T any, E Extent]() *Fixed[T, E] {
	var e E
	n := e.Len()
	if n < 1 {
		panic(api.NewInvalidCapacity(n))
	}
	return &Fixed[T, E]{r: *newRing[T](n)}
}

// NewFixedFilled allocates a ring of E.Len() slots all holding value.
func NewFixedFilled[T any, E Extent](value T) *Fixed[T, E] {
	f := NewFixed[T, E]()
	f.Fill(value)
	return f
}

// Clone returns a deep copy sharing no storage with f.
func (f *Fixed[T, E]) Clone() *Fixed[T, E] {
	return &Fixed[T, E]{r: *f.r.Clone()}
}

// CopyFrom overwrites f with the contents and cursor of src.
// Copying a ring onto itself is a no-op; a nil src is rejected like Ring.CopyFrom.
func (f *Fixed[T, E]) CopyFrom(src *Fixed[T, E]) error {
	if f == src {
		return nil
	}
	if src == nil {
		return f.r.CopyFrom(nil)
	}
	return f.r.CopyFrom(&src.r)
}

// Push overwrites the oldest element with value.
func (f *Fixed[T, E]) Push(value T) {
	f.r.Push(value)
}

// Emplace overwrites the oldest slot and builds the new element in place.
func (f *Fixed[T, E]) Emplace(init func(slot *T)) {
	f.r.Emplace(init)
}

// At returns the element pushed index positions ago.
func (f *Fixed[T, E]) At(index int) (T, error) {
	return f.r.At(index)
}

// Ref returns a pointer to the element pushed index positions ago.
func (f *Fixed[T, E]) Ref(index int) (*T, error) {
	return f.r.Ref(index)
}

// Set replaces the element pushed index positions ago.
func (f *Fixed[T, E]) Set(index int, value T) error {
	return f.r.Set(index, value)
}

// Size returns E.Len().
func (f *Fixed[T, E]) Size() int {
	return f.r.Size()
}

// Fill writes value into every slot.
func (f *Fixed[T, E]) Fill(value T) {
	f.r.Fill(value)
}

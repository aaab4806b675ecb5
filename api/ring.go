// Package api
// Author: momentics <momentics@gmail.com>
//
// Age-indexed history ring contract.

package api

// History is an overwrite-on-full ring addressed by age.
// Index 0 is the most recently pushed element, Size()-1 the oldest.
// Implementations are not safe for concurrent use.
type History[T any] interface {
    // Push overwrites the oldest element with value.
    Push(value T)
    // Emplace overwrites the oldest slot and builds the new element in place.
    Emplace(init func(slot *T))
    // At returns the element pushed index positions ago.
    At(index int) (T, error)
    // Ref returns a pointer to the element pushed index positions ago.
    Ref(index int) (*T, error)
    // Set replaces the element pushed index positions ago.
    Set(index int, value T) error
    // Size returns the fixed capacity.
    Size() int
    // Fill overwrites every slot with value.
    Fill(value T)
}

// File: core/ring/index.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cursor arithmetic. The ring never moves data; it only moves the cursor that
// marks the logically newest slot.

package ring

// advance returns base moved amount slots towards older elements.
func advance(base, amount, n int) int {
	return (base + amount) % n
}

// previous returns the slot before base, wrapping to n-1.
// The result is undefined for base >= n.
func previous(base, n int) int {
	return (base + n - 1) % n
}

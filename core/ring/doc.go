// Package ring
// Author: momentics <momentics@gmail.com>
//
// Age-indexed circular history buffers for hioload-ring.
//
// A ring holds the last N pushed values. Index 0 is always the most recent
// push and index N-1 the oldest still resident; pushing into a full ring
// overwrites the oldest slot. Storage is allocated once at construction and
// never resized, so Push, At and Emplace are O(1) and allocation-free.
//
// Two flavours share one implementation:
//   - Ring[T] takes its capacity at construction time (New, NewFilled).
//   - Fixed[T, E] takes its capacity from the Extent type parameter E, so
//     rings of different sizes are different types (NewFixed, NewFixedFilled).
//
// The zero value of Ring or Fixed has no storage: Push and Emplace on it panic
// with an *api.Error wrapping api.ErrZeroCapacity, and every index is out of
// range. Always build rings with the constructors.
//
// Rings are not safe for concurrent use. A ring has a single owner; callers
// sharing one across goroutines must guard the whole ring with their own lock.
// Assigning a Ring value copies the slice header and aliases its storage; use
// Clone or CopyFrom for an independent copy.
package ring

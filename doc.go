// Package u16set provides a fixed-universe bitset over the full uint16 domain.
//
// A Bitmap packs all 65536 possible values into 1024 64-bit words and keeps
// the population count cached alongside the store. Every mutating operation
// maintains the count incrementally, so Len never rescans the store, and the
// in-place set operations rebuild it from the same pass that combines the
// words.
//
// # Quick Start
//
//	b := u16set.Of(3, 1, 2)
//	b.Insert(40000)
//	b.Contains(2)          // true
//	b.Len()                // 4
//
//	for v := range b.Iterator() {
//	    fmt.Println(v)     // 1, 2, 3, 40000
//	}
//
// # Set Operations
//
// And and Or mutate the receiver in place, read the right operand without
// modifying it, and return the receiver; no third buffer is allocated. Clone
// first to keep the original:
//
//	both := a.Clone().And(b)
//	either := a.Clone().Or(b)
//
// Intersection dispatches to a 128-bit lane kernel when the CPU supports it,
// with a portable scalar fallback producing bit-for-bit identical results.
// Set U16SET_SIMD (generic, sse2, neon) to override the selection.
//
// # Key Properties
//
//   - Fixed 8 KiB store, zero value ready to use
//   - O(1) Contains, Insert, Remove, Len
//   - Insert and Remove report prior membership
//   - ToSlice and Iterator yield values in ascending order
//   - No error conditions: every uint16 is in-universe
//
// A Bitmap carries no internal synchronization. Callers sharing one across
// goroutines must serialize access externally.
package u16set

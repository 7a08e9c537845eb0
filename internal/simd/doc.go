// Package simd provides the word-slice kernels behind the Bitmap container.
//
// # Supported Platforms
//
//   - x86-64: SSE2
//   - ARM64: NEON
//
// Runtime CPU feature detection selects the active implementation once at
// package init. Set U16SET_SIMD (generic, sse2, neon) to override the
// selection; an override naming an unavailable ISA falls back to
// auto-detection.
//
// # Operations
//
//   - IntersectWords: dst &= src with fused popcount, scalar or 128-bit lanes
//   - UnionWords: dst |= src with fused popcount
//   - PopcountWords: population count over a word slice
//
// The scalar and lane intersection variants are both exported and produce
// bit-for-bit identical stores and counts on every input; the active ISA
// only changes which one backs IntersectWords.
package simd

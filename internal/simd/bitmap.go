package simd

import "math/bits"

// ==============================================================================
// Word-Slice Kernels
// ==============================================================================
//
// These operations back the Bitmap container in the root package. They operate
// on []uint64 bit arrays and fuse the bitwise combine with the population
// count of the result, so callers rebuild cardinality in the same pass instead
// of rescanning the store.

// kernelIntersectWords is the active intersection kernel. The scalar
// implementation is the default; initCapabilities rebinds the lane variant
// when the active ISA carries 128-bit vector registers.
var kernelIntersectWords = intersectWordsScalar

// selectKernels binds the kernel pointers for the active ISA.
// Called once at the end of initCapabilities.
func selectKernels() {
	switch activeISA {
	case SSE2, NEON:
		kernelIntersectWords = intersectWordsLanes
	default:
		kernelIntersectWords = intersectWordsScalar
	}
}

// IntersectWords performs dst[i] &= src[i] for all words of dst and returns
// the number of set bits in the result. Both kernel variants produce
// identical stores and counts; the active ISA only changes speed.
func IntersectWords(dst, src []uint64) int {
	return kernelIntersectWords(dst, src)
}

// IntersectWordsScalar runs the portable intersection kernel directly,
// bypassing ISA dispatch.
func IntersectWordsScalar(dst, src []uint64) int {
	return intersectWordsScalar(dst, src)
}

// IntersectWordsLanes runs the 128-bit lane intersection kernel directly,
// bypassing ISA dispatch.
func IntersectWordsLanes(dst, src []uint64) int {
	return intersectWordsLanes(dst, src)
}

// UnionWords performs dst[i] |= src[i] for all words of dst and returns the
// number of set bits in the result.
func UnionWords(dst, src []uint64) int {
	return unionWords(dst, src)
}

// PopcountWords counts all set bits across words.
func PopcountWords(words []uint64) int {
	return popcountWords(words)
}

// ==============================================================================
// Scalar implementations
// ==============================================================================

func intersectWordsScalar(dst, src []uint64) int {
	// Process 4 words at a time (unrolled)
	count := 0
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &= src[i]
		dst[i+1] &= src[i+1]
		dst[i+2] &= src[i+2]
		dst[i+3] &= src[i+3]
		count += bits.OnesCount64(dst[i])
		count += bits.OnesCount64(dst[i+1])
		count += bits.OnesCount64(dst[i+2])
		count += bits.OnesCount64(dst[i+3])
	}
	for ; i < len(dst); i++ {
		dst[i] &= src[i]
		count += bits.OnesCount64(dst[i])
	}
	return count
}

func unionWords(dst, src []uint64) int {
	count := 0
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] |= src[i]
		dst[i+1] |= src[i+1]
		dst[i+2] |= src[i+2]
		dst[i+3] |= src[i+3]
		count += bits.OnesCount64(dst[i])
		count += bits.OnesCount64(dst[i+1])
		count += bits.OnesCount64(dst[i+2])
		count += bits.OnesCount64(dst[i+3])
	}
	for ; i < len(dst); i++ {
		dst[i] |= src[i]
		count += bits.OnesCount64(dst[i])
	}
	return count
}

func popcountWords(words []uint64) int {
	count := 0
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += bits.OnesCount64(words[i])
		count += bits.OnesCount64(words[i+1])
		count += bits.OnesCount64(words[i+2])
		count += bits.OnesCount64(words[i+3])
	}
	for ; i < len(words); i++ {
		count += bits.OnesCount64(words[i])
	}
	return count
}

// ==============================================================================
// 128-bit lane implementation
// ==============================================================================

// popcount8 holds the set-bit count for every byte value. The lane kernel
// counts a lane by summing the table entries for its 16 bytes.
var popcount8 = func() (t [256]uint8) {
	for i := range t {
		t[i] = uint8(bits.OnesCount8(uint8(i)))
	}
	return t
}()

// intersectWordsLanes processes two adjacent words per iteration as one
// 128-bit lane: AND both halves, store them back, and accumulate the lane
// popcount byte by byte. A trailing word on odd-length slices is handled by
// the scalar loop without touching adjacent memory.
func intersectWordsLanes(dst, src []uint64) int {
	count := 0
	i := 0
	for ; i+2 <= len(dst); i += 2 {
		lo := dst[i] & src[i]
		hi := dst[i+1] & src[i+1]
		dst[i] = lo
		dst[i+1] = hi
		count += popcountLane(lo, hi)
	}
	for ; i < len(dst); i++ {
		dst[i] &= src[i]
		count += bits.OnesCount64(dst[i])
	}
	return count
}

// popcountLane counts the set bits of one 128-bit lane by table lookup on
// each of its 16 bytes, horizontally summed.
func popcountLane(lo, hi uint64) int {
	n := int(popcount8[byte(lo)]) +
		int(popcount8[byte(lo>>8)]) +
		int(popcount8[byte(lo>>16)]) +
		int(popcount8[byte(lo>>24)]) +
		int(popcount8[byte(lo>>32)]) +
		int(popcount8[byte(lo>>40)]) +
		int(popcount8[byte(lo>>48)]) +
		int(popcount8[byte(lo>>56)])
	n += int(popcount8[byte(hi)]) +
		int(popcount8[byte(hi>>8)]) +
		int(popcount8[byte(hi>>16)]) +
		int(popcount8[byte(hi>>24)]) +
		int(popcount8[byte(hi>>32)]) +
		int(popcount8[byte(hi>>40)]) +
		int(popcount8[byte(hi>>48)]) +
		int(popcount8[byte(hi>>56)])
	return n
}

package u16set

import (
	"iter"
	"math/bits"
	"strconv"
	"strings"

	"github.com/hupe1980/u16set/internal/simd"
)

const (
	// UniverseSize is the number of representable values.
	UniverseSize = 1 << 16

	// WordBits is the number of bits per storage word.
	WordBits = 64

	// WordCount is the number of words in a bitmap store.
	WordCount = UniverseSize / WordBits
)

// Bitmap is a fixed-universe bitset over the full uint16 domain.
//
// Bit i of word i/WordBits at offset i%WordBits represents membership of the
// value i. The cardinality field caches the store's population count and is
// maintained incrementally by every mutating operation.
//
// The zero value is an empty bitmap ready to use. A Bitmap owns its store
// exclusively and never aliases another bitmap's storage. It is not safe for
// concurrent mutation.
type Bitmap struct {
	cardinality int
	store       [WordCount]uint64
}

// New returns an empty bitmap.
func New() *Bitmap {
	return &Bitmap{}
}

// Full returns a bitmap containing every value of the universe.
func Full() *Bitmap {
	b := &Bitmap{cardinality: UniverseSize}
	for i := range b.store {
		b.store[i] = ^uint64(0)
	}
	return b
}

// Of returns a bitmap containing the given values. Equivalent to inserting
// each value into an empty bitmap in order; duplicates collapse.
func Of(values ...uint16) *Bitmap {
	b := New()
	for _, v := range values {
		b.Insert(v)
	}
	return b
}

// Collect returns a bitmap containing every value yielded by seq.
func Collect(seq iter.Seq[uint16]) *Bitmap {
	b := New()
	for v := range seq {
		b.Insert(v)
	}
	return b
}

// wordIndex returns the store index holding the bit for v.
func wordIndex(v uint16) int {
	return int(v) / WordBits
}

// bitOffset returns the bit position of v within its word.
func bitOffset(v uint16) uint {
	return uint(v) % WordBits
}

// Insert sets the bit for v and reports whether v was already present.
// The first insert of a value returns false, a repeat returns true.
func (b *Bitmap) Insert(v uint16) bool {
	idx, bit := wordIndex(v), bitOffset(v)
	old := b.store[idx]
	next := old | 1<<bit
	b.store[idx] = next
	// The words differ in at most bit, so the shifted XOR is 0 or 1.
	delta := (old ^ next) >> bit
	b.cardinality += int(delta)
	return delta == 0
}

// Remove clears the bit for v and reports whether v was present.
func (b *Bitmap) Remove(v uint16) bool {
	idx, bit := wordIndex(v), bitOffset(v)
	old := b.store[idx]
	next := old &^ (1 << bit)
	b.store[idx] = next
	delta := (old ^ next) >> bit
	b.cardinality -= int(delta)
	return delta != 0
}

// Contains reports whether v is present. O(1).
func (b *Bitmap) Contains(v uint16) bool {
	return b.store[wordIndex(v)]&(1<<bitOffset(v)) != 0
}

// Len returns the number of values present. O(1).
func (b *Bitmap) Len() int {
	return b.cardinality
}

// IsEmpty reports whether no values are present.
func (b *Bitmap) IsEmpty() bool {
	return b.cardinality == 0
}

// And performs in-place intersection: b = b AND other. The receiver's store
// is overwritten word by word, its cardinality rebuilt by the same pass, and
// the right operand is left untouched. Returns the mutated receiver.
func (b *Bitmap) And(other *Bitmap) *Bitmap {
	b.cardinality = simd.IntersectWords(b.store[:], other.store[:])
	return b
}

// Or performs in-place union: b = b OR other. Same contract as And.
func (b *Bitmap) Or(other *Bitmap) *Bitmap {
	b.cardinality = simd.UnionWords(b.store[:], other.store[:])
	return b
}

// Clone returns an independent copy of b.
func (b *Bitmap) Clone() *Bitmap {
	c := *b
	return &c
}

// Clear resets b to empty in place.
func (b *Bitmap) Clear() {
	b.store = [WordCount]uint64{}
	b.cardinality = 0
}

// Equal reports whether b and other contain the same values. Cardinality is
// compared first as a short circuit; the stores are the ground truth.
func (b *Bitmap) Equal(other *Bitmap) bool {
	if b.cardinality != other.cardinality {
		return false
	}
	return b.store == other.store
}

// ToSlice returns every value present in ascending order. The scan stops as
// soon as Len values have been emitted, skipping any all-zero tail.
func (b *Bitmap) ToSlice() []uint16 {
	out := make([]uint16, 0, b.cardinality)
	for i := 0; i < WordCount && len(out) < b.cardinality; i++ {
		word := b.store[i]
		base := i * WordBits
		for word != 0 {
			out = append(out, uint16(base+bits.TrailingZeros64(word)))
			word &= word - 1
		}
	}
	return out
}

// Iterator returns an iterator over every value present in ascending order.
func (b *Bitmap) Iterator() iter.Seq[uint16] {
	return func(yield func(uint16) bool) {
		for i := 0; i < WordCount; i++ {
			word := b.store[i]
			base := i * WordBits
			for word != 0 {
				if !yield(uint16(base + bits.TrailingZeros64(word))) {
					return
				}
				word &= word - 1
			}
		}
	}
}

// Words returns the underlying word slice. Callers must treat it as
// read-only: writing through it desynchronizes the cached cardinality.
func (b *Bitmap) Words() []uint64 {
	return b.store[:]
}

// String returns a set-like rendering of all values in ascending order,
// e.g. "{1, 2, 3}".
func (b *Bitmap) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for v := range b.Iterator() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(strconv.Itoa(int(v)))
	}
	sb.WriteByte('}')
	return sb.String()
}

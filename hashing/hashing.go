// Package hashing provides element hash functions for collections.
//
// Element hashes are 64-bit xxh3 values. Digest folds a sequence of element
// hashes into a single order-sensitive value, useful for cheap equality
// screening between two collections.
package hashing

import (
	"cmp"
	"encoding/binary"
	"math"
	"reflect"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// Func hashes a single value. Values that compare as equal must hash equally.
type Func[T any] func(value T) uint64

// String hashes a string.
func String(s string) uint64 {
	return xxh3.HashString(s)
}

// Bytes hashes a byte slice.
func Bytes(b []byte) uint64 {
	return xxh3.Hash(b)
}

// Ordered returns a Func for any type whose underlying kind is an integer,
// float or string. Named types hash identically to their underlying value,
// so sortable.Int(5) and 5 produce the same hash.
func Ordered[T cmp.Ordered]() Func[T] {
	return func(value T) uint64 {
		rv := reflect.ValueOf(value)

		switch rv.Kind() { //nolint:exhaustive
		case reflect.String:
			return xxh3.HashString(rv.String())
		case reflect.Float32, reflect.Float64:
			f := rv.Float()
			if f == 0 {
				// -0 and +0 compare equal.
				f = 0
			}

			return hashWord(math.Float64bits(f))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return hashWord(rv.Uint())
		default:
			return hashWord(uint64(rv.Int())) //nolint:gosec
		}
	}
}

func hashWord(word uint64) uint64 {
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], word)

	return xxh3.Hash(buf[:])
}

// Digest accumulates element hashes in order. Two digests are equal only
// if the same hashes were added in the same order (barring collisions).
// The zero value is not usable; create one with NewDigest.
type Digest struct {
	h     *xxhash.XXHash64
	count uint64
}

// NewDigest returns an empty Digest.
func NewDigest() *Digest {
	return &Digest{h: xxhash.New64()}
}

// Add folds one element hash into the digest.
func (d *Digest) Add(elementHash uint64) {
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], elementHash)

	_, _ = d.h.Write(buf[:])
	d.count++
}

// Count returns how many hashes were added.
func (d *Digest) Count() uint64 {
	return d.count
}

// Sum64 returns the digest of everything added so far, mixed with the count
// so that an empty digest and a digest of a single zero hash differ.
func (d *Digest) Sum64() uint64 {
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], d.count)

	return xxhash.Checksum64S(buf[:], d.h.Sum64())
}

package hashfunc

import (
	"hash/crc32"

	"github.com/gostonefire/hashtable/internal/utils"
	"golang.org/x/exp/constraints"
)

// IntegerHasher - Hashes integer keys to their own value
type IntegerHasher[K constraints.Integer] struct{}

// Hash - Returns the key converted to uint64
func (IntegerHasher[K]) Hash(key K) uint64 {
	return uint64(key)
}

// Equal - Returns a == b
func (IntegerHasher[K]) Equal(a, b K) bool {
	return a == b
}

// CRC32Hasher - Hashes byte slice keys using crc32.ChecksumIEEE
type CRC32Hasher struct{}

// Hash - Returns the IEEE crc32 checksum of key
func (CRC32Hasher) Hash(key []byte) uint64 {
	return uint64(crc32.ChecksumIEEE(key))
}

// Equal - Returns true if a and b are equal both in size and contents
func (CRC32Hasher) Equal(a, b []byte) bool {
	return utils.IsEqual(a, b)
}

// StringHasher - Hashes string keys using crc32.ChecksumIEEE
type StringHasher struct{}

// Hash - Returns the IEEE crc32 checksum of key
func (StringHasher) Hash(key string) uint64 {
	return uint64(crc32.ChecksumIEEE([]byte(key)))
}

// Equal - Returns a == b
func (StringHasher) Equal(a, b string) bool {
	return a == b
}

// PointerHasher - Hashes and compares *T keys by the value they point at, using Inner.
// Nil pointers hash to 0 and are only equal to other nil pointers.
type PointerHasher[T any] struct {
	Inner KeyHasher[T]
}

// NewPointerHasher - Returns a PointerHasher using inner for the pointed at values
func NewPointerHasher[T any](inner KeyHasher[T]) PointerHasher[T] {
	return PointerHasher[T]{Inner: inner}
}

// Hash - Returns Inner.Hash of *key
func (P PointerHasher[T]) Hash(key *T) uint64 {
	if key == nil {
		return 0
	}

	return P.Inner.Hash(*key)
}

// Equal - Returns Inner.Equal of *a and *b
func (P PointerHasher[T]) Equal(a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}

	return P.Inner.Equal(*a, *b)
}

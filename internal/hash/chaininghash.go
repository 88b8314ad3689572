package hash

import (
	"github.com/gostonefire/hashtable/internal/utils"
)

// SeparateChainingBuckets - Maps a key hash value to a bucket by applying bucket = hash & (actualTableSize - 1),
// where actualTableSize is the nearest bigger exponent of 2 of the requested table size. For a power of two this is
// the same as hash mod actualTableSize.
type SeparateChainingBuckets struct {
	tableSize int64
}

// NewSeparateChainingBuckets - Returns a pointer to a new SeparateChainingBuckets instance
func NewSeparateChainingBuckets(tableSize int64) *SeparateChainingBuckets {
	sb := &SeparateChainingBuckets{}
	sb.SetTableSize(tableSize)
	return sb
}

// SetTableSize - Sets the table size.
// In this implementation it updates the table size to the nearest bigger exponent of 2 of the requested table size.
//   - tableSize is the number of buckets to address
func (S *SeparateChainingBuckets) SetTableSize(tableSize int64) {
	S.tableSize = utils.RoundUp2(tableSize)
}

// BucketNumber - Given a key hash value it returns an index (bucket) between 0 and table size - 1
func (S *SeparateChainingBuckets) BucketNumber(hashValue uint64) int64 {
	return int64(hashValue & uint64(S.tableSize-1))
}

// GetTableSize - Returns the actual table size, which may be bigger than the one requested
func (S *SeparateChainingBuckets) GetTableSize() int64 {
	return S.tableSize
}

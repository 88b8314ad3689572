package model

import "github.com/gostonefire/hashtable/internal/ownership"

// Slot - Represents one entry position in the slot arena. A slot belongs to exactly one bucket chain while in use.
//   - InUse tells whether the slot currently holds an entry
//   - Generation is bumped every time the slot is freed, iterators carrying an older generation are stale
//   - HashValue is the key hash, kept so chains can be relinked without calling the hasher again
//   - NextInChain is the index of the next slot in the same bucket chain, or conf.NoSlot
type Slot[K, V any] struct {
	InUse       bool
	Generation  uint32
	HashValue   uint64
	NextInChain int32
	Key         ownership.Cell[K]
	Value       ownership.Cell[V]
}

// Bucket - Represents the chain of entries that share a bucket number
type Bucket struct {
	BucketNo int64
	Head     int32
	Length   int64
}

// StorageParameters - Represents parameters of the separate chaining storage
type StorageParameters struct {
	NumberOfBuckets int64
	Entries         int64
	Slots           int64
	FreeSlots       int64
}

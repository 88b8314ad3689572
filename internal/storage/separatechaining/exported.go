package separatechaining

import (
	"math"

	"github.com/gostonefire/hashtable/internal/chain"
	"github.com/gostonefire/hashtable/internal/conf"
	"github.com/gostonefire/hashtable/internal/hash"
	"github.com/gostonefire/hashtable/internal/model"
	"github.com/gostonefire/hashtable/internal/ownership"
)

// SCStore - Represents an in memory implementation of the Separate Chaining Collision Resolution Technique.
// Entries live in a slot arena and every bucket holds the index of the first slot in its chain, the chain itself is
// a single linked list through model.Slot.NextInChain. Slot indices never move, so a slot index together with its
// generation identifies an entry until the entry is removed, also across a rehash.
type SCStore[K, V any] struct {
	buckets   []int32
	slots     []model.Slot[K, V]
	free      []int32
	bucketAlg *hash.SeparateChainingBuckets
	entries   int64
}

// NewSCStore - Returns a pointer to a new instance of Separate Chaining storage.
//   - numberOfBuckets is the requested number of buckets, the actual number is rounded up to nearest power of 2
func NewSCStore[K, V any](numberOfBuckets int64) (scStore *SCStore[K, V]) {
	bucketAlg := hash.NewSeparateChainingBuckets(numberOfBuckets)

	scStore = &SCStore[K, V]{
		buckets:   newBuckets(bucketAlg.GetTableSize()),
		bucketAlg: bucketAlg,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from SCStore
func (S *SCStore[K, V]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		NumberOfBuckets: int64(len(S.buckets)),
		Entries:         S.entries,
		Slots:           int64(len(S.slots)),
		FreeSlots:       int64(len(S.free)),
	}

	return
}

// Entries - Returns the number of slots in use
func (S *SCStore[K, V]) Entries() int64 {
	return S.entries
}

// NumberOfBuckets - Returns the actual number of buckets
func (S *SCStore[K, V]) NumberOfBuckets() int64 {
	return int64(len(S.buckets))
}

// GetBucketNo - Returns which bucket number the given hash value results in
func (S *SCStore[K, V]) GetBucketNo(hashValue uint64) int64 {
	return S.bucketAlg.BucketNumber(hashValue)
}

// GetBucket - Returns a bucket given the bucket number
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to GetBucketNo
//
// It returns a model.Bucket struct with the chain head and chain length, counting the length walks the chain.
func (S *SCStore[K, V]) GetBucket(bucketNo int64) (bucket model.Bucket) {
	head := S.buckets[bucketNo]
	bucket = model.Bucket{BucketNo: bucketNo, Head: head}

	for slot := head; slot != conf.NoSlot; slot = S.slots[slot].NextInChain {
		bucket.Length++
	}

	return
}

// Chain - Returns a chain.Records that can be used to get the slots belonging to a bucket, in chain order
func (S *SCStore[K, V]) Chain(bucketNo int64) *chain.Records {
	return chain.NewRecords(S.nextInChain, S.buckets[bucketNo])
}

// Slot - Returns a pointer to the slot with the given index, nil if the index is outside the arena.
// The pointer is only good until the next call to Add.
func (S *SCStore[K, V]) Slot(slot int32) *model.Slot[K, V] {
	if slot < 0 || int(slot) >= len(S.slots) {
		return nil
	}

	return &S.slots[slot]
}

// IsLive - Returns true if slot is in use and still carries the given generation
func (S *SCStore[K, V]) IsLive(slot int32, generation uint32) bool {
	s := S.Slot(slot)
	return s != nil && s.InUse && s.Generation == generation
}

// Lookup - Scans the chain for the bucket of hashValue and returns the first slot whose key satisfies match.
// It returns conf.NoSlot if there is no such slot.
func (S *SCStore[K, V]) Lookup(hashValue uint64, match func(key K) bool) int32 {
	for slot := S.buckets[S.GetBucketNo(hashValue)]; slot != conf.NoSlot; slot = S.slots[slot].NextInChain {
		s := &S.slots[slot]
		if s.HashValue == hashValue && match(s.Key.Get()) {
			return slot
		}
	}

	return conf.NoSlot
}

// Add - Stores key and value in a free slot appended last in the chain for hashValue.
// The caller is responsible for making sure no equal key is stored already.
//
// It returns:
//   - slot is the index of the new slot
//   - generation is the generation the new entry lives under
func (S *SCStore[K, V]) Add(hashValue uint64, key ownership.Cell[K], value ownership.Cell[V]) (slot int32, generation uint32) {
	slot = S.allocSlot()

	s := &S.slots[slot]
	s.InUse = true
	s.HashValue = hashValue
	s.NextInChain = conf.NoSlot
	s.Key = key
	s.Value = value
	generation = s.Generation

	S.appendToChain(S.GetBucketNo(hashValue), slot)
	S.entries++

	return
}

// Remove - Unlinks slot from its chain and frees it. Any held key or value must have been released by the caller,
// the cells are dropped without calling any destructor.
func (S *SCStore[K, V]) Remove(slot int32) {
	s := &S.slots[slot]
	S.unlinkFromChain(S.GetBucketNo(s.HashValue), slot)
	S.freeSlot(slot)
	S.entries--
}

// First - Returns the first slot in iteration order, conf.NoSlot if there are no entries
func (S *SCStore[K, V]) First() int32 {
	return S.firstFromBucket(0)
}

// Next - Returns the slot following slot in iteration order, that is the next slot in the same chain or else the
// head of the next non-empty bucket. It returns conf.NoSlot when slot is last.
func (S *SCStore[K, V]) Next(slot int32) int32 {
	s := &S.slots[slot]
	if s.NextInChain != conf.NoSlot {
		return s.NextInChain
	}

	return S.firstFromBucket(S.GetBucketNo(s.HashValue) + 1)
}

// Rehash - Redistributes all entries over numberOfBuckets buckets (rounded up to nearest power of 2).
// Slot indices and generations are kept, entries that end up in the same bucket keep their relative order.
func (S *SCStore[K, V]) Rehash(numberOfBuckets int64) {
	order := make([]int32, 0, S.entries)
	for slot := S.First(); slot != conf.NoSlot; slot = S.Next(slot) {
		order = append(order, slot)
	}

	S.bucketAlg.SetTableSize(numberOfBuckets)
	S.buckets = newBuckets(S.bucketAlg.GetTableSize())

	tails := make([]int32, len(S.buckets))
	for i := range tails {
		tails[i] = conf.NoSlot
	}

	for _, slot := range order {
		s := &S.slots[slot]
		s.NextInChain = conf.NoSlot
		bucketNo := S.GetBucketNo(s.HashValue)
		if tails[bucketNo] == conf.NoSlot {
			S.buckets[bucketNo] = slot
		} else {
			S.slots[tails[bucketNo]].NextInChain = slot
		}
		tails[bucketNo] = slot
	}
}

// Reset - Calls release for every slot in use and then frees all slots. Buckets are kept as they are in number.
func (S *SCStore[K, V]) Reset(release func(s *model.Slot[K, V])) {
	for i := range S.slots {
		if S.slots[i].InUse {
			release(&S.slots[i])
			S.freeSlot(int32(i))
		}
	}

	for i := range S.buckets {
		S.buckets[i] = conf.NoSlot
	}

	S.entries = 0
}

// allocSlot - Returns a free slot, growing the arena if none is free
func (S *SCStore[K, V]) allocSlot() (slot int32) {
	if n := len(S.free); n > 0 {
		slot = S.free[n-1]
		S.free = S.free[:n-1]
		return
	}

	if len(S.slots) >= math.MaxInt32 {
		panic("hashtable: slot arena exhausted")
	}

	slot = int32(len(S.slots))
	S.slots = append(S.slots, model.Slot[K, V]{Generation: conf.FirstGeneration, NextInChain: conf.NoSlot})

	return
}

package separatechaining

import (
	"github.com/gostonefire/hashtable/internal/conf"
	"github.com/gostonefire/hashtable/internal/model"
)

// newBuckets - Returns a bucket array of the given size with all chains empty
func newBuckets(numberOfBuckets int64) (buckets []int32) {
	buckets = make([]int32, numberOfBuckets)
	for i := range buckets {
		buckets[i] = conf.NoSlot
	}

	return
}

// nextInChain - Returns the slot linked after slot
func (S *SCStore[K, V]) nextInChain(slot int32) int32 {
	return S.slots[slot].NextInChain
}

// firstFromBucket - Returns the head of the first non-empty bucket from bucketNo and onwards
func (S *SCStore[K, V]) firstFromBucket(bucketNo int64) int32 {
	for b := bucketNo; b < int64(len(S.buckets)); b++ {
		if S.buckets[b] != conf.NoSlot {
			return S.buckets[b]
		}
	}

	return conf.NoSlot
}

// appendToChain - Links slot last in the chain of bucketNo
func (S *SCStore[K, V]) appendToChain(bucketNo int64, slot int32) {
	head := S.buckets[bucketNo]
	if head == conf.NoSlot {
		S.buckets[bucketNo] = slot
		return
	}

	last := head
	for S.slots[last].NextInChain != conf.NoSlot {
		last = S.slots[last].NextInChain
	}
	S.slots[last].NextInChain = slot
}

// unlinkFromChain - Removes slot from the chain of bucketNo, the rest of the chain keeps its order
func (S *SCStore[K, V]) unlinkFromChain(bucketNo int64, slot int32) {
	next := S.slots[slot].NextInChain

	if S.buckets[bucketNo] == slot {
		S.buckets[bucketNo] = next
		return
	}

	for prev := S.buckets[bucketNo]; prev != conf.NoSlot; prev = S.slots[prev].NextInChain {
		if S.slots[prev].NextInChain == slot {
			S.slots[prev].NextInChain = next
			return
		}
	}
}

// freeSlot - Marks slot as not in use, bumps its generation and puts it on the free list
func (S *SCStore[K, V]) freeSlot(slot int32) {
	s := &S.slots[slot]
	generation := s.Generation + 1
	if generation < conf.FirstGeneration {
		generation = conf.FirstGeneration
	}

	*s = model.Slot[K, V]{Generation: generation, NextInChain: conf.NoSlot}
	S.free = append(S.free, slot)
}

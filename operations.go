package hashtable

import (
	"fmt"

	"github.com/gostonefire/hashtable/internal/conf"
	"github.com/gostonefire/hashtable/internal/ownership"
	"go.uber.org/zap"
)

// Insert - Adds key and value as a new entry.
//   - key is stored according to keyMode, and is hashed and compared through the table's KeyHasher
//   - value is stored according to valueMode
//
// It returns the iterator of the new entry. If an equal key is already stored nothing happens: End() is returned,
// nothing is duplicated or destroyed and the caller keeps full ownership of key and value.
// It panics with InvalidStorageMode if keyMode or valueMode is unknown.
func (T *Table[K, V]) Insert(key K, value V, keyMode, valueMode StorageMode) Iter {
	mustMode(keyMode)
	mustMode(valueMode)

	hashValue := T.keyHasher.Hash(key)
	if T.lookup(hashValue, key) != conf.NoSlot {
		return endIter
	}

	slot, generation := T.store.Add(
		hashValue,
		ownership.Adopt(key, keyMode, T.keyLifecycle.Duplicate),
		ownership.Adopt(value, valueMode, T.valueLifecycle.Duplicate),
	)

	T.growIfNeeded()

	return Iter{slot: slot, generation: generation}
}

// Find - Returns the iterator of the entry with a key equal to key, End() if there is none
func (T *Table[K, V]) Find(key K) ConstIter {
	return T.FindMut(key).Const()
}

// FindMut - Returns the mutable iterator of the entry with a key equal to key, EndMut() if there is none
func (T *Table[K, V]) FindMut(key K) Iter {
	return T.iterFor(T.lookup(T.keyHasher.Hash(key), key))
}

// Key - Returns the key of the entry at it. It panics with InvalidIterator if it does not refer to a live entry.
func (T *Table[K, V]) Key(it Position) K {
	s := T.store.Slot(T.mustSlot(it))
	return s.Key.Get()
}

// Value - Returns the value of the entry at it. It panics with InvalidIterator if it does not refer to a live entry.
func (T *Table[K, V]) Value(it Position) V {
	s := T.store.Slot(T.mustSlot(it))
	return s.Value.Get()
}

// KeyMode - Returns the storage mode the key of the entry at it was inserted under
func (T *Table[K, V]) KeyMode(it Position) StorageMode {
	s := T.store.Slot(T.mustSlot(it))
	return s.Key.Mode()
}

// ValueMode - Returns the storage mode the current value of the entry at it was stored under
func (T *Table[K, V]) ValueMode(it Position) StorageMode {
	s := T.store.Slot(T.mustSlot(it))
	return s.Value.Mode()
}

// Assign - Replaces the value of the entry at it.
// The new value is stored according to valueMode first, then the old value is destroyed if the table owned it.
// The key, the size of the table and all other entries are untouched, and it stays valid.
// Assigning the value already held under Transfer destroys it, so the entry is left holding a released value.
//
// It returns it.
func (T *Table[K, V]) Assign(it Iter, value V, valueMode StorageMode) Iter {
	mustMode(valueMode)
	s := T.store.Slot(T.mustSlot(it))

	old := s.Value
	s.Value = ownership.Adopt(value, valueMode, T.valueLifecycle.Duplicate)
	old.Release(T.valueLifecycle.Destroy)

	return it
}

// Erase - Removes the entry at it, destroying its key and value if the table owns them.
// Only it is invalidated, iterators of other entries stay valid.
//
// It returns the iterator of the entry that followed it in iteration order, EndMut() if it was the last one.
func (T *Table[K, V]) Erase(it Iter) Iter {
	slot := T.mustSlot(it)
	next := T.iterFor(T.store.Next(slot))

	T.release(T.store.Slot(slot))
	T.store.Remove(slot)

	return next
}

// Stat - Walks through the entire set of buckets and produce a TableStat struct with information.
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of entries per bucket, false will set TableStat.BucketDistribution to nil.
func (T *Table[K, V]) Stat(includeDistribution bool) (tableStat *TableStat) {
	var ts TableStat

	params := T.store.GetStorageParameters()
	ts.Entries = params.Entries
	ts.NumberOfBuckets = params.NumberOfBuckets
	ts.Slots = params.Slots
	ts.FreeSlots = params.FreeSlots
	if includeDistribution {
		ts.BucketDistribution = make([]int64, ts.NumberOfBuckets)
	}

	// Iterate over every available bucket
	for i := int64(0); i < ts.NumberOfBuckets; i++ {
		bucket := T.store.GetBucket(i)
		if bucket.Length > 0 {
			ts.UsedBuckets++
		}
		if bucket.Length > ts.LongestChain {
			ts.LongestChain = bucket.Length
		}
		if includeDistribution {
			ts.BucketDistribution[i] = bucket.Length
		}
	}

	if ts.UsedBuckets > 0 {
		ts.AverageChain = float64(ts.Entries) / float64(ts.UsedBuckets)
	}

	tableStat = &ts
	return
}

// Rehash - Redistributes all entries over at least numberOfBuckets buckets (rounded up to nearest power of 2).
// Iterators stay valid but the iteration order changes.
func (T *Table[K, V]) Rehash(numberOfBuckets int64) (err error) {
	if numberOfBuckets <= 0 {
		err = fmt.Errorf("number of buckets must be a positive value higher than 0 (zero)")
		return
	}

	from := T.store.NumberOfBuckets()
	T.store.Rehash(numberOfBuckets)

	T.logger.Debug("Rehashed hash table.",
		zap.Int64("from_buckets", from),
		zap.Int64("to_buckets", T.store.NumberOfBuckets()),
		zap.Int64("entries", T.store.Entries()))

	return
}

// lookup - Returns the slot holding a key equal to key, conf.NoSlot if there is none
func (T *Table[K, V]) lookup(hashValue uint64, key K) int32 {
	return T.store.Lookup(hashValue, func(stored K) bool { return T.keyHasher.Equal(stored, key) })
}

// growIfNeeded - Doubles the buckets when the load factor is exceeded, unless the table has a fixed size
func (T *Table[K, V]) growIfNeeded() {
	if T.fixedSize {
		return
	}

	buckets := T.store.NumberOfBuckets()
	if float64(T.store.Entries()) <= float64(buckets)*T.maxLoadFactor {
		return
	}

	T.store.Rehash(buckets * conf.GrowthFactor)

	T.logger.Debug("Grew hash table.",
		zap.Int64("from_buckets", buckets),
		zap.Int64("to_buckets", T.store.NumberOfBuckets()),
		zap.Int64("entries", T.store.Entries()))
}

// mustMode - Panics with InvalidStorageMode if mode is unknown
func mustMode(mode StorageMode) {
	if !mode.Valid() {
		panic(InvalidStorageMode{msg: fmt.Sprintf("invalid storage mode %s", mode)})
	}
}

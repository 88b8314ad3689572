// Package hashtable implements a generic hash table with separate chaining, where the caller decides per insert and
// per assignment whether the table copies, borrows or takes over each key and value.
//
// A Table is not safe for concurrent use. Callers that share a table between goroutines must serialize all access.
package hashtable

import (
	"fmt"
	"math"

	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/conf"
	"github.com/gostonefire/hashtable/internal/model"
	"github.com/gostonefire/hashtable/internal/storage/separatechaining"
	"go.uber.org/zap"
)

// Conf - Is a struct to be passed in the call to New or Init and contains the table configuration.
//   - NumberOfBuckets is the initial number of buckets, it is rounded up to nearest power of 2, zero gives a default
//   - KeyHasher hashes and compares keys, it is mandatory
//   - KeyLifecycle duplicates and destroys keys, nil gives hashfunc.Shallow
//   - ValueLifecycle duplicates and destroys values, nil gives hashfunc.Shallow
//   - MaxLoadFactor is the number of entries per bucket allowed before the buckets are doubled, zero gives a default
//   - FixedSize set to true keeps the number of buckets unless Rehash is called explicitly
//   - Logger receives debug output on initialization, growth and clearing, nil gives a no-op logger
type Conf[K, V any] struct {
	NumberOfBuckets int64
	KeyHasher       hashfunc.KeyHasher[K]
	KeyLifecycle    hashfunc.Lifecycle[K]
	ValueLifecycle  hashfunc.Lifecycle[V]
	MaxLoadFactor   float64
	FixedSize       bool
	Logger          *zap.Logger
}

// TableInfo - Information structure about the table as configured
//   - NumberOfBuckets is the actual number of buckets
//   - MaxLoadFactor is the load factor that triggers growth
//   - FixedSize tells whether the table grows automatically
type TableInfo struct {
	NumberOfBuckets int64
	MaxLoadFactor   float64
	FixedSize       bool
}

// TableStat - Statistics on the overall usage and distribution over buckets
//   - Entries is the total number of entries stored
//   - NumberOfBuckets is the actual number of buckets
//   - UsedBuckets is the number of buckets holding at least one entry
//   - LongestChain is the number of entries in the most crowded bucket
//   - AverageChain is the average number of entries in used buckets
//   - BucketDistribution is the number of entries stored in each bucket
//   - Slots is the number of entry slots allocated, which never shrinks
//   - FreeSlots is the number of allocated slots waiting to be reused by Insert
type TableStat struct {
	Entries            int64
	NumberOfBuckets    int64
	UsedBuckets        int64
	LongestChain       int64
	AverageChain       float64
	BucketDistribution []int64
	Slots              int64
	FreeSlots          int64
}

// Table - The main implementation struct. The zero Table must be initialized with Init before use.
type Table[K, V any] struct {
	store          *separatechaining.SCStore[K, V]
	keyHasher      hashfunc.KeyHasher[K]
	keyLifecycle   hashfunc.Lifecycle[K]
	valueLifecycle hashfunc.Lifecycle[V]
	maxLoadFactor  float64
	fixedSize      bool
	logger         *zap.Logger
}

// New - Returns a new, empty table configured by tableConf.
//
// It returns:
//   - table is a pointer to a Table struct
//   - tableInfo is a TableInfo struct containing some data regarding the table created.
//   - err is a normal go Error which should be nil if everything went ok
func New[K, V any](tableConf Conf[K, V]) (table *Table[K, V], tableInfo TableInfo, err error) {
	t := &Table[K, V]{}
	err = t.Init(tableConf)
	if err != nil {
		return
	}

	table = t
	tableInfo = t.Info()

	return
}

// Init - Initializes a zero Table so that it holds no entries and is ready for all other operations.
// Calling Init a second time returns an error of type AlreadyInitialized and leaves the table as it is.
func (T *Table[K, V]) Init(tableConf Conf[K, V]) (err error) {
	if T.store != nil {
		err = AlreadyInitialized{}
		return
	}

	// Check that we can hash keys
	if tableConf.KeyHasher == nil {
		err = fmt.Errorf("key hasher can not be nil, it is needed to place and find keys")
		return
	}

	// Check if the number of buckets is valid
	if tableConf.NumberOfBuckets < 0 {
		err = fmt.Errorf("number of buckets must be 0 (zero) for default or a positive value")
		return
	}

	// Check if the load factor is valid
	if tableConf.MaxLoadFactor < 0 || math.IsNaN(tableConf.MaxLoadFactor) {
		err = fmt.Errorf("max load factor must be 0 (zero) for default or a positive value")
		return
	}

	numberOfBuckets := tableConf.NumberOfBuckets
	if numberOfBuckets == 0 {
		numberOfBuckets = conf.DefaultNumberOfBuckets
	}
	maxLoadFactor := tableConf.MaxLoadFactor
	if maxLoadFactor == 0 {
		maxLoadFactor = conf.DefaultMaxLoadFactor
	}

	T.keyHasher = tableConf.KeyHasher
	T.keyLifecycle = tableConf.KeyLifecycle
	if T.keyLifecycle == nil {
		T.keyLifecycle = hashfunc.Shallow[K]{}
	}
	T.valueLifecycle = tableConf.ValueLifecycle
	if T.valueLifecycle == nil {
		T.valueLifecycle = hashfunc.Shallow[V]{}
	}
	T.maxLoadFactor = maxLoadFactor
	T.fixedSize = tableConf.FixedSize
	T.logger = tableConf.Logger
	if T.logger == nil {
		T.logger = zap.NewNop()
	}
	T.store = separatechaining.NewSCStore[K, V](numberOfBuckets)

	T.logger.Debug("Initialized hash table.",
		zap.Int64("buckets", T.store.NumberOfBuckets()),
		zap.Float64("max_load_factor", T.maxLoadFactor),
		zap.Bool("fixed_size", T.fixedSize))

	return
}

// Info - Returns a TableInfo struct describing the current configuration
func (T *Table[K, V]) Info() TableInfo {
	return TableInfo{
		NumberOfBuckets: T.store.NumberOfBuckets(),
		MaxLoadFactor:   T.maxLoadFactor,
		FixedSize:       T.fixedSize,
	}
}

// Size - Returns the number of entries in the table
func (T *Table[K, V]) Size() int64 {
	return T.store.Entries()
}

// Clear - Erases all entries. Owned keys and values are destroyed, Static ones are only dropped.
// The table keeps its buckets and stays usable. All iterators become invalid.
func (T *Table[K, V]) Clear() {
	entries := T.store.Entries()
	if entries == 0 {
		return
	}

	T.store.Reset(T.release)

	T.logger.Debug("Cleared hash table.", zap.Int64("entries", entries))
}

// release - Releases key and value held by a slot according to their storage modes
func (T *Table[K, V]) release(s *model.Slot[K, V]) {
	s.Value.Release(T.valueLifecycle.Destroy)
	s.Key.Release(T.keyLifecycle.Destroy)
}

// Package hashfunc holds the capabilities a Table is parameterized with: hashing and comparing keys, and duplicating
// and destroying keys and values. Ready-made implementations cover integer, string, byte slice and pointer keys.
package hashfunc

//go:generate mockgen -destination=mock_hashfunc/mock_hashfunc.go -package=mock_hashfunc . KeyHasher,Lifecycle

// KeyHasher - Interface that permits the Table to place and find keys of type K.
type KeyHasher[K any] interface {
	// Hash - Returns a hash value for key. It has to be a deterministic function of the key's value, the table maps it
	// to a bucket by hash value mod number of buckets.
	Hash(key K) uint64

	// Equal - Returns true if a and b are the same key. Keys that are equal must have the same Hash.
	Equal(a, b K) bool
}

// Lifecycle - Interface that permits the Table to take copies of, and to release, keys or values of type T.
type Lifecycle[T any] interface {
	// Duplicate - Returns an independent copy of v. It is called for keys and values stored in Transient mode.
	Duplicate(v T) T

	// Destroy - Releases v. It is called exactly once for every key or value the table owns (Transient or Transfer),
	// when the entry is erased, its value is overwritten or the table is cleared. It is never called for Static
	// keys and values.
	Destroy(v T)
}

// HasherFuncs - Adapts a pair of plain functions to the KeyHasher interface
type HasherFuncs[K any] struct {
	HashFunc  func(key K) uint64
	EqualFunc func(a, b K) bool
}

// Hash - Calls HashFunc
func (H HasherFuncs[K]) Hash(key K) uint64 {
	return H.HashFunc(key)
}

// Equal - Calls EqualFunc
func (H HasherFuncs[K]) Equal(a, b K) bool {
	return H.EqualFunc(a, b)
}

// LifecycleFuncs - Adapts a pair of plain functions to the Lifecycle interface. A nil DestroyFunc does nothing.
type LifecycleFuncs[T any] struct {
	DuplicateFunc func(v T) T
	DestroyFunc   func(v T)
}

// Duplicate - Calls DuplicateFunc
func (L LifecycleFuncs[T]) Duplicate(v T) T {
	return L.DuplicateFunc(v)
}

// Destroy - Calls DestroyFunc if set
func (L LifecycleFuncs[T]) Destroy(v T) {
	if L.DestroyFunc != nil {
		L.DestroyFunc(v)
	}
}

package hashfunc

// Shallow - Lifecycle for plain values where an assignment is a full copy and nothing needs releasing
type Shallow[T any] struct{}

// Duplicate - Returns v
func (Shallow[T]) Duplicate(v T) T {
	return v
}

// Destroy - Does nothing
func (Shallow[T]) Destroy(T) {}

// PointerCopier - Lifecycle for *T where Duplicate allocates a new T holding a copy of *v, and Destroy resets *v to
// the zero value of T. Resetting makes a release visible, which is the closest a garbage collected program gets to
// freeing memory.
type PointerCopier[T any] struct{}

// Duplicate - Returns a pointer to a new copy of *v, nil for nil
func (PointerCopier[T]) Duplicate(v *T) *T {
	if v == nil {
		return nil
	}

	c := new(T)
	*c = *v

	return c
}

// Destroy - Sets *v to the zero value of T
func (PointerCopier[T]) Destroy(v *T) {
	if v == nil {
		return
	}

	var zero T
	*v = zero
}

// BytesCopier - Lifecycle for byte slices, Duplicate copies the contents and Destroy zero-fills them
type BytesCopier struct{}

// Duplicate - Returns a new slice with the same contents as v
func (BytesCopier) Duplicate(v []byte) []byte {
	if v == nil {
		return nil
	}

	c := make([]byte, len(v))
	_ = copy(c, v)

	return c
}

// Destroy - Overwrites v with zeroes
func (BytesCopier) Destroy(v []byte) {
	for i := range v {
		v[i] = 0
	}
}

// Package ownership keeps track of who is responsible for releasing a stored key or value.
package ownership

import "fmt"

// Mode - Storage mode given for a key or value when it is handed to the table
type Mode uint8

const (
	// Transient - The table stores its own duplicate and releases it, the caller keeps the original
	Transient Mode = iota
	// Static - The table stores the caller's value as is and never releases it
	Static
	// Transfer - The table stores the caller's value as is and releases it, the caller gives it up
	Transfer
)

// String - Returns the name of the storage mode
func (M Mode) String() string {
	switch M {
	case Transient:
		return "TRANSIENT"
	case Static:
		return "STATIC"
	case Transfer:
		return "TRANSFER"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(M))
	}
}

// Valid - Returns true if M is one of Transient, Static or Transfer
func (M Mode) Valid() bool {
	return M <= Transfer
}

// Owned - Returns true if a value stored under M is released by the table
func (M Mode) Owned() bool {
	return M == Transient || M == Transfer
}

// Cell - Holds one key or value together with the mode it was stored under.
// The zero Cell holds nothing and releasing it is a no-op.
type Cell[T any] struct {
	v    T
	mode Mode
	held bool
}

// Adopt - Returns a Cell holding v according to mode.
//   - v is the caller's key or value
//   - mode decides whether v is duplicated (Transient) or stored as is (Static, Transfer)
//   - duplicate is called once for Transient and never otherwise
func Adopt[T any](v T, mode Mode, duplicate func(T) T) (cell Cell[T]) {
	if mode == Transient {
		v = duplicate(v)
	}

	cell = Cell[T]{v: v, mode: mode, held: true}

	return
}

// Get - Returns the held key or value
func (C *Cell[T]) Get() T {
	return C.v
}

// Mode - Returns the mode the held key or value was stored under
func (C *Cell[T]) Mode() Mode {
	return C.mode
}

// Held - Returns true until the cell has been released
func (C *Cell[T]) Held() bool {
	return C.held
}

// Release - Calls destroy on the held value if the table owns it and empties the cell.
// Releasing an empty cell does nothing, so owned values are destroyed at most once.
func (C *Cell[T]) Release(destroy func(T)) {
	if C.held && C.mode.Owned() {
		destroy(C.v)
	}

	*C = Cell[T]{}
}

package hashtable

import "github.com/gostonefire/hashtable/internal/ownership"

// StorageMode - The ownership contract a key or value is handed to the table under
type StorageMode = ownership.Mode

const (
	// Transient - The table stores its own duplicate, made with the Lifecycle's Duplicate, and later destroys it.
	// The caller keeps ownership of what it passed in.
	Transient = ownership.Transient
	// Static - The table stores the caller's key or value as is and never destroys it. The caller keeps ownership and
	// must keep it valid and unchanged while the table refers to it.
	Static = ownership.Static
	// Transfer - The table stores the caller's key or value as is and later destroys it. The caller must not use it
	// after a successful call.
	Transfer = ownership.Transfer
)

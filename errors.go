package hashtable

// InvalidIterator - Custom error to inform that an iterator does not refer to a live entry of the table
type InvalidIterator struct {
	msg string
}

// Error - Used to notify that an iterator is the end iterator or has been invalidated
func (E InvalidIterator) Error() string {
	if E.msg == "" {
		return "iterator does not refer to a live entry"
	}
	return E.msg
}

// Is - Matches any InvalidIterator regardless of message
func (E InvalidIterator) Is(target error) bool {
	_, ok := target.(InvalidIterator)
	return ok
}

// InvalidStorageMode - Custom error to inform that a storage mode is not one of Transient, Static or Transfer
type InvalidStorageMode struct {
	msg string
}

// Error - Used to notify that a storage mode is unknown
func (E InvalidStorageMode) Error() string {
	if E.msg == "" {
		return "invalid storage mode"
	}
	return E.msg
}

// Is - Matches any InvalidStorageMode regardless of message
func (E InvalidStorageMode) Is(target error) bool {
	_, ok := target.(InvalidStorageMode)
	return ok
}

// AlreadyInitialized - Custom error to inform that Init was called on a table that is already initialized
type AlreadyInitialized struct {
	msg string
}

// Error - Used to notify a second Init
func (E AlreadyInitialized) Error() string {
	if E.msg == "" {
		return "table already initialized"
	}
	return E.msg
}

// Is - Matches any AlreadyInitialized regardless of message
func (E AlreadyInitialized) Is(target error) bool {
	_, ok := target.(AlreadyInitialized)
	return ok
}

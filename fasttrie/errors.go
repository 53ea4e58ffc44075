package fasttrie

import "fmt"

// Sentinel errors identifying the specific failure. Callers that need
// to branch on the kind of failure should use errors.Is against these,
// or errors.As against ArgumentError/StateError to recover the
// underlying sentinel and any extra context in the message.
var (
	// ErrOutOfRange means a value fell outside [0, 2^w).
	ErrOutOfRange = fmt.Errorf("fasttrie: value out of range")
	// ErrOverLong means a byte slice carried more bytes than the
	// universe width allows.
	ErrOverLong = fmt.Errorf("fasttrie: byte slice too long for width")
	// ErrInvalidInput means the value was of a type ToInt does not accept.
	ErrInvalidInput = fmt.Errorf("fasttrie: invalid input type")
	// ErrNotFound means the requested key is not a member of the set.
	ErrNotFound = fmt.Errorf("fasttrie: key not present")
	// ErrEmpty means the operation requires a non-empty set.
	ErrEmpty = fmt.Errorf("fasttrie: set is empty")
)

// ArgumentError reports that a caller-supplied argument was invalid.
// It is returned for malformed or out-of-range input, before any
// mutation of the set takes place.
type ArgumentError struct {
	Sentinel error
	Detail   string
}

func (e *ArgumentError) Error() string {
	if e.Detail == "" {
		return e.Sentinel.Error()
	}
	return fmt.Sprintf("%s: %s", e.Sentinel.Error(), e.Detail)
}

func (e *ArgumentError) Unwrap() error { return e.Sentinel }

func newArgumentError(sentinel error, detail string) *ArgumentError {
	return &ArgumentError{Sentinel: sentinel, Detail: detail}
}

// StateError reports that an operation could not be carried out given
// the current contents of the set (querying an empty set, removing an
// absent key).
type StateError struct {
	Sentinel error
	Detail   string
}

func (e *StateError) Error() string {
	if e.Detail == "" {
		return e.Sentinel.Error()
	}
	return fmt.Sprintf("%s: %s", e.Sentinel.Error(), e.Detail)
}

func (e *StateError) Unwrap() error { return e.Sentinel }

func newStateError(sentinel error, detail string) *StateError {
	return &StateError{Sentinel: sentinel, Detail: detail}
}

package storeerr

import "fmt"

// OutOfRange - Custom error to inform that an index (or index range) is outside the bounds of a structure
type OutOfRange struct {
	msg string
}

// NewOutOfRange - Returns an OutOfRange error with a formatted message
func NewOutOfRange(format string, a ...any) OutOfRange {
	return OutOfRange{msg: fmt.Sprintf(format, a...)}
}

// Error - Used to notify that an index is out of range
func (E OutOfRange) Error() string {
	if E.msg == "" {
		return "index out of range"
	}
	return E.msg
}

// Is - Matches any OutOfRange regardless of message
func (E OutOfRange) Is(target error) bool {
	_, ok := target.(OutOfRange)
	return ok
}

// InvalidCursor - Custom error to inform that a list cursor was dereferenced or moved while not on an element
type InvalidCursor struct {
	msg string
}

// NewInvalidCursor - Returns an InvalidCursor error with a formatted message
func NewInvalidCursor(format string, a ...any) InvalidCursor {
	return InvalidCursor{msg: fmt.Sprintf(format, a...)}
}

// Error - Used to notify that the cursor is not positioned
func (E InvalidCursor) Error() string {
	if E.msg == "" {
		return "cursor is not positioned on an element"
	}
	return E.msg
}

// Is - Matches any InvalidCursor regardless of message
func (E InvalidCursor) Is(target error) bool {
	_, ok := target.(InvalidCursor)
	return ok
}

// BackendMismatch - Custom error to inform that a structural operation mixed memory and disk backends
type BackendMismatch struct {
	msg string
}

// NewBackendMismatch - Returns a BackendMismatch error with a formatted message
func NewBackendMismatch(format string, a ...any) BackendMismatch {
	return BackendMismatch{msg: fmt.Sprintf(format, a...)}
}

// Error - Used to notify that backends differ
func (E BackendMismatch) Error() string {
	if E.msg == "" {
		return "backend mismatch"
	}
	return E.msg
}

// Is - Matches any BackendMismatch regardless of message
func (E BackendMismatch) Is(target error) bool {
	_, ok := target.(BackendMismatch)
	return ok
}

// ValueTooLong - Custom error to inform that a value does not fit in the space reserved for it
type ValueTooLong struct {
	msg string
}

// NewValueTooLong - Returns a ValueTooLong error with a formatted message
func NewValueTooLong(format string, a ...any) ValueTooLong {
	return ValueTooLong{msg: fmt.Sprintf(format, a...)}
}

// Error - Used to notify that a value is too long
func (E ValueTooLong) Error() string {
	if E.msg == "" {
		return "value too long"
	}
	return E.msg
}

// Is - Matches any ValueTooLong regardless of message
func (E ValueTooLong) Is(target error) bool {
	_, ok := target.(ValueTooLong)
	return ok
}

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// NewNoRecordFound - Returns a NoRecordFound error with a formatted message
func NewNoRecordFound(format string, a ...any) NoRecordFound {
	return NoRecordFound{msg: fmt.Sprintf(format, a...)}
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// Is - Matches any NoRecordFound regardless of message
func (E NoRecordFound) Is(target error) bool {
	_, ok := target.(NoRecordFound)
	return ok
}

// IOFailure - Custom error wrapping a failed file operation.
//   - Op names the operation that failed (e.g. "read", "write", "rename")
//   - Err is the underlying error, reachable through errors.Unwrap
type IOFailure struct {
	Op  string
	Err error
}

// NewIOFailure - Returns an IOFailure for the operation op, nil if err is nil
func NewIOFailure(op string, err error) error {
	if err == nil {
		return nil
	}
	return IOFailure{Op: op, Err: err}
}

// Error - Used to notify that a file operation failed
func (E IOFailure) Error() string {
	if E.Err == nil {
		return fmt.Sprintf("io failure during %s", E.Op)
	}
	return fmt.Sprintf("io failure during %s: %s", E.Op, E.Err)
}

// Unwrap - Returns the underlying error
func (E IOFailure) Unwrap() error {
	return E.Err
}

// Is - Matches any IOFailure regardless of operation and cause
func (E IOFailure) Is(target error) bool {
	_, ok := target.(IOFailure)
	return ok
}

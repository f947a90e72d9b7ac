package arm2d

import "errors"

var (
	// ErrDimensionMismatch is returned by New when the number of joints
	// differs from the number of links.
	ErrDimensionMismatch = errors.New("arm2d: joint and link counts differ")

	// ErrIndexOutOfRange is returned by indexed accessors and mutators when
	// the index is outside the collection.
	ErrIndexOutOfRange = errors.New("arm2d: index out of range")

	// ErrInvalidValue is returned when a value is outside its domain, such
	// as a negative link length.
	ErrInvalidValue = errors.New("arm2d: invalid value")
)

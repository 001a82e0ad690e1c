package catalog

import "errors"

var (
	// ErrInvalidInput marks empty required fields or an out-of-domain year.
	ErrInvalidInput = errors.New("invalid input")
	// ErrOutOfRange marks an index or rating outside its valid domain.
	ErrOutOfRange = errors.New("out of range")
	// ErrAlreadyEmpty marks a removal aimed at a slot that holds no record.
	ErrAlreadyEmpty = errors.New("slot already empty")
	// ErrAllocation marks a capacity growth that cannot be satisfied. The
	// only representable case is the doubled capacity overflowing int;
	// ordinary heap exhaustion is not observable as an error.
	ErrAllocation = errors.New("allocation failed")
	// ErrNotFound marks a search miss.
	ErrNotFound = errors.New("not found")
)

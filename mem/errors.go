package mem

import "errors"

var (
	// ErrNoSpace indicates that an allocator could not satisfy a request.
	ErrNoSpace = errors.New("mem: allocation failed")

	// ErrBadSize indicates a negative or otherwise impossible size request.
	ErrBadSize = errors.New("mem: bad size")
)

package fixstr

import "errors"

var (
	// ErrInvalidUTF8 signals that the live bytes are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("fixstr: invalid UTF-8")
	// ErrIndexOutOfBounds signals invalid byte offsets for truncation.
	ErrIndexOutOfBounds = errors.New("fixstr: index out of bounds")
	// ErrNotCharBoundary signals non-UTF-8-boundary offsets.
	ErrNotCharBoundary = errors.New("fixstr: offset is not a char boundary")
)

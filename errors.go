package shapes

import "errors"

// Errors reported by draw operations. Validation failures surface before
// any GPU resource is touched, so a failed call leaves buffers and
// programs exactly as they were.
var (
	// ErrInvalidRect reports rectangle bounds that do not describe a
	// rectangle, such as a left edge to the right of the right edge.
	ErrInvalidRect = errors.New("shapes: invalid rectangle bounds")

	// ErrNoContext reports a draw or readback attempt without an active
	// rendering context.
	ErrNoContext = errors.New("shapes: no active rendering context")

	// ErrBadPointList reports a point list whose length does not fit the
	// operation, such as an odd count handed to Lines.
	ErrBadPointList = errors.New("shapes: malformed point list")

	// ErrWriteOverflow reports a vertex write larger than the stream
	// buffer's capacity. Draw operations grow buffers before writing, so
	// seeing this error means a dispatch bug, not a caller mistake.
	ErrWriteOverflow = errors.New("shapes: buffer write exceeds capacity")
)

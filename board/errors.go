package board

import "errors"

// Sentinel errors for board construction. All are validation-shape errors;
// the board package never performs I/O, so there is no failure mode beyond
// a malformed set of constructor arguments.
var (
	// ErrBadDimensions indicates W<1 or H<1.
	ErrBadDimensions = errors.New("board: width and height must each be >= 1")

	// ErrEdgeCountMismatch indicates the supplied edge slice does not have
	// exactly 2*W*H - W - H entries, the edge count of a W×H grid.
	ErrEdgeCountMismatch = errors.New("board: edge count does not match grid dimensions")

	// ErrUsableCountMismatch indicates the usable bitmap length does not match the edge count.
	ErrUsableCountMismatch = errors.New("board: usable mask length does not match edge count")

	// ErrCellOutOfRange indicates an edge endpoint, start, or goal cell index is outside [0, W*H).
	ErrCellOutOfRange = errors.New("board: cell index out of range")

	// ErrNonAdjacentEdge indicates an edge's two endpoints are not 4-adjacent grid cells.
	ErrNonAdjacentEdge = errors.New("board: edge endpoints are not grid-adjacent")
)

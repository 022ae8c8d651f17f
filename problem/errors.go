package problem

import "errors"

// ErrFileOpen indicates the problem file could not be opened for reading.
var ErrFileOpen = errors.New("problem: cannot open file")

// ErrMalformedBoard indicates the board dimensions or edge-op tokens did
// not match the expected grammar.
var ErrMalformedBoard = errors.New("problem: malformed board data")

// ErrMalformedPreamble indicates the optional pre-walked-prefix/goal line
// did not match the expected grammar, or named an edge that is not live.
var ErrMalformedPreamble = errors.New("problem: malformed preamble data")

package cli

import "errors"

// ErrBadArgs indicates the positional arguments were missing or not
// parseable as the integers the grammar requires.
var ErrBadArgs = errors.New("cli: bad arguments")

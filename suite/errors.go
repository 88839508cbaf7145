package suite

import "errors"

var (
	// ErrBadLine indicates a non-comment line that does not parse as a
	// puzzle record.
	ErrBadLine = errors.New("suite: malformed puzzle line")
)

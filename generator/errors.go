package generator

import "errors"

var (
	// ErrVerifyFailed indicates a generated puzzle did not solve back
	// to its own solution under the configured tier cap.
	ErrVerifyFailed = errors.New("generator: puzzle failed verification")
)

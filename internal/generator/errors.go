package generator

import "errors"

// ErrOutput indicates that the output stream rejected a write
var ErrOutput = errors.New("output stream failure")

// IsOutputError checks if the error was caused by the output stream
func IsOutputError(err error) bool {
	return errors.Is(err, ErrOutput)
}

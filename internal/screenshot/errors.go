package screenshot

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceMissing means the configured source directory does not exist.
	ErrSourceMissing = errors.New("screenshots directory not found")
	// ErrNoMatches means a query that requires a result found nothing.
	ErrNoMatches = errors.New("no screenshots found")
	// ErrInvalidName is returned for base names, categories or extensions
	// that would escape the destination tree.
	ErrInvalidName = errors.New("invalid name")
)

// IOError reports a filesystem failure on a specific path.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

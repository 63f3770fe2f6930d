package usecase

import (
	"errors"
	"fmt"

	cerrors "github.com/cockroachdb/errors"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	ErrStorage      = errors.New("storage failure")
)

// storageErr marks a repository failure as ErrStorage while keeping the
// original chain intact for logging.
func storageErr(err error, msg string) error {
	return cerrors.Mark(cerrors.Wrap(err, msg), ErrStorage)
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func notFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

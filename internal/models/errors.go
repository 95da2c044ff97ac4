package models

import (
	"errors"
	"fmt"
)

// ErrNotText is the cause recorded when a file's content is not valid UTF-8.
var ErrNotText = errors.New("stream did not contain valid UTF-8")

// FatalError reports that the scan root could not be traversed at all.
// It aborts the run with a non-zero exit code.
type FatalError struct {
	Root string
	Err  error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("cannot scan %s: %v", e.Root, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// FileScanError reports that a single file could not be read as text.
// The file contributes no records; the scan continues.
type FileScanError struct {
	Path string
	Err  error
}

func (e *FileScanError) Error() string {
	return fmt.Sprintf("failed to read file: %s: %v", e.Path, e.Err)
}

func (e *FileScanError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err (or anything it wraps) is a FatalError.
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}

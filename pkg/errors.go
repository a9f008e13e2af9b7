package dupmirror

import (
	"errors"
	"fmt"
)

// IOError reports a file that could not be read, stat'ed or renamed
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// IsIOError reports whether err wraps an *IOError
func IsIOError(err error) bool {
	var e *IOError
	return errors.As(err, &e)
}

// DirectoryCreateError reports a directory that could not be created for a
// reason other than already existing
type DirectoryCreateError struct {
	Path string
	Err  error
}

func (e *DirectoryCreateError) Error() string {
	return fmt.Sprintf("failed to create directory %s: %v", e.Path, e.Err)
}

func (e *DirectoryCreateError) Unwrap() error { return e.Err }

// IsDirectoryCreateError reports whether err wraps a *DirectoryCreateError
func IsDirectoryCreateError(err error) bool {
	var e *DirectoryCreateError
	return errors.As(err, &e)
}

// ArgumentError reports malformed or missing command line values.
// Code is the process exit code the CLI should use.
type ArgumentError struct {
	Msg  string
	Code int
}

func (e *ArgumentError) Error() string { return e.Msg }

// NewArgumentError creates an ArgumentError with the usage exit code
func NewArgumentError(format string, args ...interface{}) *ArgumentError {
	return &ArgumentError{Msg: fmt.Sprintf(format, args...), Code: ExitUsage}
}

// IsArgumentError reports whether err wraps an *ArgumentError
func IsArgumentError(err error) bool {
	var e *ArgumentError
	return errors.As(err, &e)
}

// CrossDeviceError marks a rename that failed with EXDEV. The move is not
// retried as copy+delete.
type CrossDeviceError struct {
	Src string
	Dst string
	Err error
}

func (e *CrossDeviceError) Error() string {
	return fmt.Sprintf("cross-device rename %s -> %s: %v", e.Src, e.Dst, e.Err)
}

func (e *CrossDeviceError) Unwrap() error { return e.Err }

// IsCrossDevice reports whether err wraps a *CrossDeviceError
func IsCrossDevice(err error) bool {
	var e *CrossDeviceError
	return errors.As(err, &e)
}

package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failures the snapshot layer reports. Whether a
// kind is fatal is up to the caller.
type ErrorKind int

const (
	KindOpen ErrorKind = iota + 1
	KindStructure
	KindIO
)

func (k ErrorKind) String() string {
	switch k {
	case KindOpen:
		return "open failure"
	case KindStructure:
		return "structural mismatch"
	case KindIO:
		return "i/o failure"
	}
	return "unknown"
}

type Error struct {
	Kind ErrorKind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// OpenError wraps a failure to open path for op.
func OpenError(op, path string, err error) error {
	return &Error{Kind: KindOpen, Op: op, Path: path, Err: err}
}

// IOError wraps a read or write failure on an already open file.
func IOError(op, path string, err error) error {
	return &Error{Kind: KindIO, Op: op, Path: path, Err: err}
}

// StructureError reports a malformed file layout.
func StructureError(op, path, msg string) error {
	return &Error{Kind: KindStructure, Op: op, Path: path, Err: errors.New(msg)}
}

func errPartCount(n int) error {
	return fmt.Errorf("exactly one part is supported, got %d", n)
}

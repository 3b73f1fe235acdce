package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrCollectionNotFound is returned by drivers when a collection was never written.
	ErrCollectionNotFound = errors.New("collection not found")
	ErrDecode             = errors.New("malformed persisted data")
	ErrWriteFailed        = errors.New("storage write failed")
)

// DecodeError describes a persisted value that could not be decoded.
// Field is empty when the whole record or document was unreadable.
type DecodeError struct {
	Collection string
	Key        string
	Field      string
	Err        error
}

func (e *DecodeError) Error() string {
	switch {
	case e.Key == "":
		return fmt.Sprintf("decode collection %s: %v", e.Collection, e.Err)
	case e.Field == "":
		return fmt.Sprintf("decode %s[%s]: %v", e.Collection, e.Key, e.Err)
	default:
		return fmt.Sprintf("decode %s[%s].%s: %v", e.Collection, e.Key, e.Field, e.Err)
	}
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

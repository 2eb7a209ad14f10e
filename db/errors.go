package db

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("db: not found")

// OpError is returned for every storage failure other than a missing row.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("db: %s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func opErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Err: err}
}

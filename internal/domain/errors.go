package domain

import (
	"errors"
	"fmt"
)

// ErrMissingArguments is returned when the class or test name is not given
var ErrMissingArguments = errors.New("missing arguments: expected <ClassName> <FirstTestName>")

// WriteError reports a failure to persist a generated file
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

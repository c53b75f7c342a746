package parsing

import (
	"errors"
	"fmt"
)

// ErrUnparseable is returned by Result.Err when the input carried no usable text.
var ErrUnparseable = errors.New("no extractable text in document")

// StateError reports an invalid pipeline state transition.
type StateError struct {
	From State
	To   State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("parse pipeline: invalid transition %s -> %s", e.From, e.To)
}

package main

import "errors"

// ErrNotFound is returned when an item is not found in the store.
var ErrNotFound = errors.New("item not found")

// validationError marks a client-caused request defect. Its message is the
// exact rule that was violated and is returned verbatim in the 400 body.
type validationError struct {
	msg string
}

func (e validationError) Error() string { return e.msg }

func errValidation(msg string) error { return validationError{msg: msg} }

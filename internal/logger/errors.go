package logger

import "errors"

// ErrInvalidFields is returned when fields are not key-value pairs.
var ErrInvalidFields = errors.New("invalid fields: must be key-value pairs")

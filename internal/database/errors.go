package database

import "errors"

var (
	// ErrDuplicateURL is returned when inserting an article whose URL is
	// already stored.
	ErrDuplicateURL = errors.New("article url already exists")
	// ErrNotFound is returned when a requested article does not exist.
	ErrNotFound = errors.New("article not found")
)

package domain

import "errors"

var (
	// ErrNotFound is returned when a package is not in the database
	ErrNotFound = errors.New("package not found")
	// ErrNoDatabase is returned when the installed package database cannot be located
	ErrNoDatabase = errors.New("package database not found")
)

// Package repository holds the persistence interfaces for each record kind
// and their gorm-backed implementations. Services depend on the interfaces
// only, so tests run against in-memory doubles.
package repository

import (
	"errors"
)

// ErrNotFound is returned when a lookup matches no record. Implementations
// translate their driver's sentinel so callers never import the store.
var ErrNotFound = errors.New("record not found")

package service

import (
	"errors"
)

// Lookup failures name the missing entity so the API layer can report it.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrCharacterNotFound = errors.New("character not found")
)

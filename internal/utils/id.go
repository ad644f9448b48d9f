package utils

import (
	"github.com/google/uuid"
)

// NewRandomID returns a fresh globally unique id. IDs are never reused
// within a process lifetime.
func NewRandomID() string {
	return uuid.New().String()
}

// IsValidID returns whether the given string could be an id we issued.
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

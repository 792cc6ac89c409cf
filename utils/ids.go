package utils

import (
	"github.com/google/uuid"
)

// NewDocumentID returns a random (v4) uuid used as a store document id.
func NewDocumentID() string {
	return uuid.NewString()
}

package utils

import "github.com/google/uuid"

// NewID returns a 128-bit random identifier, used for note IDs and
// uploaded file names.
func NewID() string {
	return uuid.NewString()
}

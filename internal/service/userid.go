package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidUserID indicates the user id is not a Supabase auth UUID
var ErrInvalidUserID = errors.New("invalid user id")

// ValidateUserID checks that id is a non-nil UUID and returns its canonical
// lowercase form, which is what the user_id columns store.
func ValidateUserID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidUserID, err)
	}
	if parsed == uuid.Nil {
		return "", fmt.Errorf("%w: nil uuid", ErrInvalidUserID)
	}
	return parsed.String(), nil
}

// Package uuid wraps google/uuid so that IDs can be bound from
// URI parameters with gin.
package uuid

import (
	"errors"

	google_uuid "github.com/google/uuid"
)

var ErrInvalid = errors.New("the specified resource ID is not a valid UUID")

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

// UnmarshalParam implements gin's binding.BindUnmarshaler.
//
// The empty string is parsed as the Nil UUID.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return ErrInvalid
	}

	*u = UUID{parsed}
	return nil
}

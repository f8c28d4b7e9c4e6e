package user

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole     = errors.New("invalid role")
	ErrMissingIdentity = errors.New("principal has no user id")
)

const MaxDisplayNameLength = 80

// Principal is the verified identity handed over by the identity provider.
type Principal struct {
	ID          uuid.UUID
	DisplayName string
	Role        Role
}

func NewPrincipal(id uuid.UUID, displayName string, role Role) (Principal, error) {
	if id == uuid.Nil {
		return Principal{}, ErrMissingIdentity
	}
	if !role.IsValid() {
		return Principal{}, ErrInvalidRole
	}
	name := strings.TrimSpace(displayName)
	if r := []rune(name); len(r) > MaxDisplayNameLength {
		name = string(r[:MaxDisplayNameLength])
	}
	return Principal{ID: id, DisplayName: name, Role: role}, nil
}

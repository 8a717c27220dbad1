package identity

import (
	"festserve/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidRole = errs.New("invalid role")

// Role distinguishes the two identity kinds. Advertisers own campaigns,
// scanners record scan events at stalls.
type Role string

const (
	RoleAdvertiser Role = "advertiser"
	RoleScanner    Role = "scanner"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdvertiser, RoleScanner:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Actor is the tagged identity carried from the token claims through to
// business logic. The role tag is authoritative; no structural inspection
// of loaded records is ever used to classify a caller.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func (a Actor) IsAdvertiser() bool { return a.Role == RoleAdvertiser }
func (a Actor) IsScanner() bool    { return a.Role == RoleScanner }

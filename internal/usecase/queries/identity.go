package queries

import (
	"context"
	"time"

	"festserve/internal/domain/identity"
	"festserve/internal/infra"
	"festserve/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrIdentityNotFound = errs.New("identity not found")

type AdvertiserView struct {
	ID           uuid.UUID `json:"advertiser_id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
}

type ScannerView struct {
	ID              uuid.UUID  `json:"user_id"`
	Username        string     `json:"username"`
	AssignedStallID *uuid.UUID `json:"assigned_stall_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// IdentityView is the role-agnostic shape returned by /auth/me.
type IdentityView struct {
	ID              uuid.UUID  `json:"id"`
	Role            string     `json:"role"`
	Name            string     `json:"name"`
	ContactEmail    *string    `json:"contact_email,omitempty"`
	AssignedStallID *uuid.UUID `json:"assigned_stall_id,omitempty"`
}

type IdentityReadStore interface {
	FindAdvertiserByID(ctx context.Context, id uuid.UUID) (*AdvertiserView, error)
	FindAdvertiserByEmail(ctx context.Context, email string) (*AdvertiserView, string, error)
	FindScannerByID(ctx context.Context, id uuid.UUID) (*ScannerView, error)
	FindScannerByUsername(ctx context.Context, username string) (*ScannerView, string, error)
}

type IdentityQueries interface {
	CurrentIdentity(ctx context.Context, actor identity.Actor) (*IdentityView, error)
}

type identityQueriesImpl struct {
	readStore IdentityReadStore
}

func NewIdentityQueries(readStore IdentityReadStore) IdentityQueries {
	return &identityQueriesImpl{readStore: readStore}
}

func (q *identityQueriesImpl) CurrentIdentity(ctx context.Context, actor identity.Actor) (*IdentityView, error) {
	switch actor.Role {
	case identity.RoleAdvertiser:
		adv, err := q.readStore.FindAdvertiserByID(ctx, actor.ID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrIdentityNotFound
			}
			return nil, err
		}
		return &IdentityView{
			ID:           adv.ID,
			Role:         actor.Role.String(),
			Name:         adv.Name,
			ContactEmail: &adv.ContactEmail,
		}, nil
	case identity.RoleScanner:
		scanner, err := q.readStore.FindScannerByID(ctx, actor.ID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrIdentityNotFound
			}
			return nil, err
		}
		return &IdentityView{
			ID:              scanner.ID,
			Role:            actor.Role.String(),
			Name:            scanner.Username,
			AssignedStallID: scanner.AssignedStallID,
		}, nil
	default:
		return nil, ErrIdentityNotFound
	}
}

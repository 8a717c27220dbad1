package usecase

import (
	"context"

	"festserve/internal/domain/identity"
	"festserve/internal/infra"
	"festserve/internal/pkg/errs"
	"festserve/internal/pkg/jwt"
	"festserve/internal/usecase/queries"
)

// ErrSubjectGone marks tokens whose subject no longer exists. Identities can
// be deleted or reseeded while issued tokens are still within their TTL, so a
// structurally valid token is not enough on its own.
var ErrSubjectGone = errs.New("token subject no longer exists")

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (identity.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	identities queries.IdentityReadStore
}

func NewTokenValidator(jwtService *jwt.Service, identities queries.IdentityReadStore) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
		identities: identities,
	}
}

func (t *tokenValidatorImpl) ValidateToken(ctx context.Context, tokenString string) (identity.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return identity.Actor{}, err
	}

	role, err := identity.NewRole(claims.Role)
	if err != nil {
		return identity.Actor{}, err
	}

	switch role {
	case identity.RoleAdvertiser:
		_, err = t.identities.FindAdvertiserByID(ctx, claims.SubjectID)
	case identity.RoleScanner:
		_, err = t.identities.FindScannerByID(ctx, claims.SubjectID)
	}
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return identity.Actor{}, errs.Mark(err, ErrSubjectGone)
		}
		return identity.Actor{}, err
	}

	return identity.Actor{ID: claims.SubjectID, Role: role}, nil
}

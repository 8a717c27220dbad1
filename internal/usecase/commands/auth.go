package commands

import (
	"context"

	"github.com/google/uuid"

	"festserve/internal/domain/identity"
	reqdto "festserve/internal/handler/dto/request"
	"festserve/internal/infra"
	"festserve/internal/pkg/errs"
	"festserve/internal/pkg/jwt"
	"festserve/internal/pkg/password"
	"festserve/internal/usecase/queries"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type TokenResult struct {
	SubjectID   uuid.UUID
	AccessToken string
}

type AuthCommands interface {
	IssueToken(ctx context.Context, req reqdto.TokenRequest) (*TokenResult, error)
}

type authCommandsImpl struct {
	readStore  queries.IdentityReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(readStore queries.IdentityReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		readStore:  readStore,
		jwtService: jwtService,
	}
}

// IssueToken authenticates within the requested scope. Unknown identity and
// wrong password collapse into the same error so callers cannot probe which
// accounts exist.
func (a *authCommandsImpl) IssueToken(ctx context.Context, req reqdto.TokenRequest) (*TokenResult, error) {
	role, err := req.ScopeRole()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	subjectID, passwordHash, err := a.resolveSubject(ctx, role, req.Username)
	if err != nil {
		return nil, err
	}

	if err := password.ComparePassword(passwordHash, req.Password); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	accessToken, err := a.jwtService.GenerateToken(subjectID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenResult{
		SubjectID:   subjectID,
		AccessToken: accessToken,
	}, nil
}

func (a *authCommandsImpl) resolveSubject(ctx context.Context, role identity.Role, username string) (uuid.UUID, string, error) {
	switch role {
	case identity.RoleAdvertiser:
		adv, hash, err := a.readStore.FindAdvertiserByEmail(ctx, username)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return uuid.Nil, "", ErrInvalidCredentials
			}
			return uuid.Nil, "", err
		}
		return adv.ID, hash, nil
	case identity.RoleScanner:
		scanner, hash, err := a.readStore.FindScannerByUsername(ctx, username)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return uuid.Nil, "", ErrInvalidCredentials
			}
			return uuid.Nil, "", err
		}
		return scanner.ID, hash, nil
	default:
		return uuid.Nil, "", ErrAuthenticationFailed
	}
}

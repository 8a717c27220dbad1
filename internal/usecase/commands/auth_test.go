//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	reqdto "festserve/internal/handler/dto/request"
	"festserve/internal/infra"
	"festserve/internal/pkg/jwt"
	"festserve/internal/pkg/password"
	"festserve/internal/usecase/commands"
	"festserve/tests/common/builder"
	queriesmock "festserve/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIssueToken(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Hour)
	hash, err := password.HashPassword("correct-password")
	require.NoError(t, err)

	notFound := infra.WrapRepoErr("not found", nil, infra.KindNotFound)

	t.Run("advertiser scope authenticates by contact email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockIdentityReadStore(ctrl)
		adv := builder.NewAdvertiserBuilder().BuildView()

		readStore.EXPECT().FindAdvertiserByEmail(gomock.Any(), adv.ContactEmail).Return(adv, hash, nil)

		svc := commands.NewAuthCommands(readStore, jwtService)
		result, err := svc.IssueToken(context.Background(), reqdto.TokenRequest{
			Username: adv.ContactEmail,
			Password: "correct-password",
			Scope:    "advertiser",
		})
		require.NoError(t, err)
		assert.Equal(t, adv.ID, result.SubjectID)

		claims, err := jwtService.ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, adv.ID, claims.SubjectID)
		assert.Equal(t, "advertiser", claims.Role)
	})

	t.Run("scanner scope authenticates by username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockIdentityReadStore(ctrl)
		scanner := builder.NewScannerBuilder().BuildView()

		readStore.EXPECT().FindScannerByUsername(gomock.Any(), scanner.Username).Return(scanner, hash, nil)

		svc := commands.NewAuthCommands(readStore, jwtService)
		result, err := svc.IssueToken(context.Background(), reqdto.TokenRequest{
			Username: scanner.Username,
			Password: "correct-password",
			Scope:    "scanner",
		})
		require.NoError(t, err)

		claims, err := jwtService.ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "scanner", claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockIdentityReadStore(ctrl)
		adv := builder.NewAdvertiserBuilder().BuildView()

		readStore.EXPECT().FindAdvertiserByEmail(gomock.Any(), adv.ContactEmail).Return(adv, hash, nil)

		svc := commands.NewAuthCommands(readStore, jwtService)
		_, err := svc.IssueToken(context.Background(), reqdto.TokenRequest{
			Username: adv.ContactEmail,
			Password: "wrong-password",
			Scope:    "advertiser",
		})
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("unknown identity yields the same error as a wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockIdentityReadStore(ctrl)

		readStore.EXPECT().FindAdvertiserByEmail(gomock.Any(), "ghost@example.com").Return(nil, "", notFound)

		svc := commands.NewAuthCommands(readStore, jwtService)
		_, err := svc.IssueToken(context.Background(), reqdto.TokenRequest{
			Username: "ghost@example.com",
			Password: "whatever",
			Scope:    "advertiser",
		})
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("invalid scope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockIdentityReadStore(ctrl)

		svc := commands.NewAuthCommands(readStore, jwtService)
		_, err := svc.IssueToken(context.Background(), reqdto.TokenRequest{
			Username: "someone",
			Password: "whatever",
			Scope:    "admin",
		})
		assert.ErrorIs(t, err, commands.ErrAuthenticationFailed)
	})
}

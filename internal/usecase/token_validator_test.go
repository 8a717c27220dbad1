//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"festserve/internal/domain/identity"
	"festserve/internal/infra"
	"festserve/internal/pkg/jwt"
	"festserve/internal/usecase"
	"festserve/internal/usecase/queries"
	queriesmock "festserve/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestValidateToken(t *testing.T) {
	svc := jwt.NewService("test-secret-key", time.Hour)
	notFound := infra.WrapRepoErr("identity not found", nil, infra.KindNotFound)

	t.Run("live advertiser subject resolves to its actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		identities := queriesmock.NewMockIdentityReadStore(ctrl)
		subjectID := uuid.New()

		token, err := svc.GenerateToken(subjectID, identity.RoleAdvertiser)
		require.NoError(t, err)

		identities.EXPECT().FindAdvertiserByID(gomock.Any(), subjectID).
			Return(&queries.AdvertiserView{ID: subjectID}, nil)

		validator := usecase.NewTokenValidator(svc, identities)
		actor, err := validator.ValidateToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, subjectID, actor.ID)
		assert.Equal(t, identity.RoleAdvertiser, actor.Role)
	})

	t.Run("live scanner subject resolves to its actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		identities := queriesmock.NewMockIdentityReadStore(ctrl)
		subjectID := uuid.New()

		token, err := svc.GenerateToken(subjectID, identity.RoleScanner)
		require.NoError(t, err)

		identities.EXPECT().FindScannerByID(gomock.Any(), subjectID).
			Return(&queries.ScannerView{ID: subjectID}, nil)

		validator := usecase.NewTokenValidator(svc, identities)
		actor, err := validator.ValidateToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, identity.RoleScanner, actor.Role)
	})

	t.Run("token for a deleted advertiser is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		identities := queriesmock.NewMockIdentityReadStore(ctrl)
		ghostID := uuid.New()

		token, err := svc.GenerateToken(ghostID, identity.RoleAdvertiser)
		require.NoError(t, err)

		identities.EXPECT().FindAdvertiserByID(gomock.Any(), ghostID).Return(nil, notFound)

		validator := usecase.NewTokenValidator(svc, identities)
		_, err = validator.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, usecase.ErrSubjectGone)
	})

	t.Run("token for a deleted scanner is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		identities := queriesmock.NewMockIdentityReadStore(ctrl)
		ghostID := uuid.New()

		token, err := svc.GenerateToken(ghostID, identity.RoleScanner)
		require.NoError(t, err)

		identities.EXPECT().FindScannerByID(gomock.Any(), ghostID).Return(nil, notFound)

		validator := usecase.NewTokenValidator(svc, identities)
		_, err = validator.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, usecase.ErrSubjectGone)
	})

	t.Run("malformed token never reaches the read store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		identities := queriesmock.NewMockIdentityReadStore(ctrl)

		validator := usecase.NewTokenValidator(svc, identities)
		_, err := validator.ValidateToken(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("read store failure surfaces as an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		identities := queriesmock.NewMockIdentityReadStore(ctrl)
		subjectID := uuid.New()

		token, err := svc.GenerateToken(subjectID, identity.RoleAdvertiser)
		require.NoError(t, err)

		dbErr := infra.WrapRepoErr("query failed", assert.AnError, infra.KindDBFailure)
		identities.EXPECT().FindAdvertiserByID(gomock.Any(), subjectID).Return(nil, dbErr)

		validator := usecase.NewTokenValidator(svc, identities)
		_, err = validator.ValidateToken(context.Background(), token)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, usecase.ErrSubjectGone)
	})
}

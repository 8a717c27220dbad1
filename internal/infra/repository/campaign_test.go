//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"festserve/internal/domain/campaign"
	"festserve/internal/infra"
	sqlc "festserve/internal/infra/sqlc/generated"
	"festserve/internal/usecase/shared"
	"festserve/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCampaignWriteQueries struct {
	mock.Mock
}

func (m *MockCampaignWriteQueries) CreateCampaign(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCampaignParams) (sqlc.Campaign, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Campaign), args.Error(1)
}

func (m *MockCampaignWriteQueries) UpdateCampaign(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCampaignParams) (sqlc.Campaign, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Campaign), args.Error(1)
}

func (m *MockCampaignWriteQueries) DeleteCampaign(ctx context.Context, db sqlc.DBTX, campaignID uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, campaignID)
	return args.Get(0).(int64), args.Error(1)
}

func TestCampaignRepositoryCreate(t *testing.T) {
	entity, err := builder.NewCampaignBuilder().BuildDomain()
	require.NoError(t, err)

	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name: "success",
		},
		{
			name:      "duplicate schedule",
			mockError: &pgconn.PgError{Code: "23505"},
			wantKind:  infra.KindDuplicateKey,
		},
		{
			name:      "unknown stall or product",
			mockError: &pgconn.PgError{Code: "23503"},
			wantKind:  infra.KindForeignKeyViolated,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockCampaignWriteQueries)
			mockQueries.On("CreateCampaign", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.CreateCampaignParams) bool {
				return arg.CampaignID == entity.ID() &&
					arg.UnitsAllocated == entity.UnitsAllocated() &&
					arg.Status == sqlc.CampaignStatus(campaign.StatusScheduled)
			})).Return(sqlc.Campaign{CampaignID: entity.ID()}, tt.mockError)

			repo := NewCampaignRepository(mockQueries)

			id, err := repo.Create(context.Background(), nil, entity)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Equal(t, uuid.Nil, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, entity.ID(), id)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestCampaignRepositoryUpdate(t *testing.T) {
	campaignID := uuid.New()
	units := int32(150)
	status := campaign.StatusActive

	t.Run("patched fields marked valid, untouched fields null", func(t *testing.T) {
		mockQueries := new(MockCampaignWriteQueries)
		mockQueries.On("UpdateCampaign", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.UpdateCampaignParams) bool {
			return arg.CampaignID == campaignID &&
				arg.UnitsAllocated.Valid && arg.UnitsAllocated.Int32 == units &&
				arg.Status.Valid && arg.Status.CampaignStatus == sqlc.CampaignStatus(status) &&
				!arg.StartDatetime.Valid && !arg.EndDatetime.Valid
		})).Return(sqlc.Campaign{CampaignID: campaignID}, nil)

		repo := NewCampaignRepository(mockQueries)

		err := repo.Update(context.Background(), nil, campaignID, shared.CampaignPatch{
			UnitsAllocated: &units,
			Status:         &status,
		})
		assert.NoError(t, err)
		mockQueries.AssertExpectations(t)
	})

	t.Run("window patch carries timestamps", func(t *testing.T) {
		start := time.Date(2026, 7, 19, 9, 0, 0, 0, time.UTC)
		end := start.Add(6 * time.Hour)

		mockQueries := new(MockCampaignWriteQueries)
		mockQueries.On("UpdateCampaign", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.UpdateCampaignParams) bool {
			return arg.StartDatetime.Valid && arg.StartDatetime.Time.Equal(start) &&
				arg.EndDatetime.Valid && arg.EndDatetime.Time.Equal(end) &&
				!arg.UnitsAllocated.Valid && !arg.Status.Valid
		})).Return(sqlc.Campaign{CampaignID: campaignID}, nil)

		repo := NewCampaignRepository(mockQueries)

		err := repo.Update(context.Background(), nil, campaignID, shared.CampaignPatch{
			StartDatetime: &start,
			EndDatetime:   &end,
		})
		assert.NoError(t, err)
		mockQueries.AssertExpectations(t)
	})

	t.Run("campaign not found", func(t *testing.T) {
		mockQueries := new(MockCampaignWriteQueries)
		mockQueries.On("UpdateCampaign", mock.Anything, mock.Anything, mock.Anything).
			Return(sqlc.Campaign{}, pgx.ErrNoRows)

		repo := NewCampaignRepository(mockQueries)

		err := repo.Update(context.Background(), nil, campaignID, shared.CampaignPatch{UnitsAllocated: &units})
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestCampaignRepositoryDelete(t *testing.T) {
	campaignID := uuid.New()

	t.Run("reports affected rows", func(t *testing.T) {
		mockQueries := new(MockCampaignWriteQueries)
		mockQueries.On("DeleteCampaign", mock.Anything, mock.Anything, campaignID).
			Return(int64(1), nil)

		repo := NewCampaignRepository(mockQueries)

		affected, err := repo.Delete(context.Background(), nil, campaignID)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("zero affected rows without error", func(t *testing.T) {
		mockQueries := new(MockCampaignWriteQueries)
		mockQueries.On("DeleteCampaign", mock.Anything, mock.Anything, campaignID).
			Return(int64(0), nil)

		repo := NewCampaignRepository(mockQueries)

		affected, err := repo.Delete(context.Background(), nil, campaignID)
		assert.NoError(t, err)
		assert.Zero(t, affected)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockCampaignWriteQueries)
		mockQueries.On("DeleteCampaign", mock.Anything, mock.Anything, campaignID).
			Return(int64(0), assert.AnError)

		repo := NewCampaignRepository(mockQueries)

		_, err := repo.Delete(context.Background(), nil, campaignID)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

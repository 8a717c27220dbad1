//go:build unit

package queries_test

import (
	"context"
	"testing"

	"festserve/internal/infra"
	"festserve/internal/usecase/queries"
	"festserve/tests/common/builder"
	queriesmock "festserve/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetOwned(t *testing.T) {
	advertiserID := uuid.New()
	campaignID := uuid.New()

	t.Run("owned campaign is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockCampaignReadStore(ctrl)
		view := builder.NewCampaignBuilder().WithAdvertiser(advertiserID).BuildView()

		readStore.EXPECT().FindByID(gomock.Any(), campaignID).Return(view, nil)

		got, err := queries.NewCampaignQueries(readStore).GetOwned(context.Background(), advertiserID, campaignID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("absent campaign", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockCampaignReadStore(ctrl)
		notFound := infra.WrapRepoErr("campaign not found", nil, infra.KindNotFound)

		readStore.EXPECT().FindByID(gomock.Any(), campaignID).Return(nil, notFound)

		_, err := queries.NewCampaignQueries(readStore).GetOwned(context.Background(), advertiserID, campaignID)
		assert.ErrorIs(t, err, queries.ErrCampaignNotFound)
	})

	t.Run("foreign campaign is indistinguishable from an absent one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockCampaignReadStore(ctrl)
		foreign := builder.NewCampaignBuilder().BuildView()

		readStore.EXPECT().FindByID(gomock.Any(), campaignID).Return(foreign, nil)

		_, err := queries.NewCampaignQueries(readStore).GetOwned(context.Background(), advertiserID, campaignID)
		assert.ErrorIs(t, err, queries.ErrCampaignNotFound)
	})
}

func TestScanQueriesOwnershipGate(t *testing.T) {
	advertiserID := uuid.New()
	campaignID := uuid.New()

	t.Run("count passes through once ownership checks out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		campaigns := queriesmock.NewMockCampaignQueries(ctrl)
		scans := queriesmock.NewMockScanReadStore(ctrl)
		owned := builder.NewCampaignBuilder().WithAdvertiser(advertiserID).BuildView()

		campaigns.EXPECT().GetOwned(gomock.Any(), advertiserID, campaignID).Return(owned, nil)
		scans.EXPECT().CountByCampaign(gomock.Any(), campaignID).Return(int64(42), nil)

		view, err := queries.NewScanQueries(scans, campaigns).CountForCampaign(context.Background(), advertiserID, campaignID)
		require.NoError(t, err)
		assert.Equal(t, int64(42), view.TotalScans)
		assert.Equal(t, campaignID, view.CampaignID)
	})

	t.Run("ownership failure stops the read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		campaigns := queriesmock.NewMockCampaignQueries(ctrl)
		scans := queriesmock.NewMockScanReadStore(ctrl)

		campaigns.EXPECT().GetOwned(gomock.Any(), advertiserID, campaignID).Return(nil, queries.ErrCampaignNotFound)

		_, err := queries.NewScanQueries(scans, campaigns).ListForCampaign(context.Background(), advertiserID, campaignID)
		assert.ErrorIs(t, err, queries.ErrCampaignNotFound)
	})
}

//go:build e2e

package campaign_test

import (
	"net/http"
	"testing"
	"time"

	reqdto "festserve/internal/handler/dto/request"
	resdto "festserve/internal/handler/dto/response"
	"festserve/tests/common/authtest"
	"festserve/tests/common/dbtest"
	"festserve/tests/common/httptest"
	"festserve/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const campaignsURL = "/api/campaigns"

type campaignSuite struct {
	e2e.SharedSuite

	advertiserID uuid.UUID
	stallID      uuid.UUID
	productID    uuid.UUID
	scannerID    uuid.UUID

	advertiserToken string
	otherToken      string
	scannerToken    string
}

func TestCampaignSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(campaignSuite))
}

func (s *campaignSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	festivalDate := time.Date(2026, 7, 18, 0, 0, 0, 0, time.UTC)

	s.advertiserID = dbtest.CreateTestAdvertiser(s.T(), s.DB, "Takoyaki Taro", "taro@example.com")
	dbtest.CreateTestAdvertiser(s.T(), s.DB, "Rival Ramen", "rival@example.com")
	s.stallID = dbtest.CreateTestStall(s.T(), s.DB, "Center Street North", festivalDate)
	s.productID = dbtest.CreateTestProduct(s.T(), s.DB, "Takoyaki 8pc")
	s.scannerID = dbtest.CreateTestScanner(s.T(), s.DB, "gate-scanner-1", &s.stallID)

	s.advertiserToken = authtest.IssueToken(s.T(), s.Router, "taro@example.com", dbtest.FixturePassword, "advertiser")
	s.otherToken = authtest.IssueToken(s.T(), s.Router, "rival@example.com", dbtest.FixturePassword, "advertiser")
	s.scannerToken = authtest.IssueToken(s.T(), s.Router, "gate-scanner-1", dbtest.FixturePassword, "scanner")
}

func (s *campaignSuite) createCampaign(units int32, start time.Time) resdto.CampaignResponse {
	req := reqdto.CreateCampaignRequest{
		StallID:        s.stallID,
		ProductID:      s.productID,
		UnitsAllocated: units,
		StartDatetime:  start,
		EndDatetime:    start.Add(8 * time.Hour),
	}

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, campaignsURL, req, s.advertiserToken)

	var created resdto.CampaignResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
	return created
}

func (s *campaignSuite) recordScan(campaignID uuid.UUID, fingerprint string) {
	body := map[string]any{"campaign_id": campaignID}
	if fingerprint != "" {
		body["device_fingerprint"] = fingerprint
	}

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/scan-events", body, s.scannerToken)

	var event resdto.ScanEventResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &event)
	s.Equal(campaignID, event.CampaignID)
	s.Equal(s.scannerID, event.ScannerUserID)
	s.False(event.ScannedAt.IsZero(), "scanned_at must be server-assigned")
}

func (s *campaignSuite) TestCampaignLifecycle() {
	s.Run("create, update, scan, snapshot, delete", func() {
		start := time.Date(2026, 7, 18, 10, 0, 0, 0, time.UTC)
		created := s.createCampaign(100, start)
		s.Equal("scheduled", created.Status)
		s.Equal(s.advertiserID, created.AdvertiserID)
		s.Equal(int32(100), created.UnitsAllocated)

		campaignURL := campaignsURL + "/" + created.CampaignID.String()

		// Raise the allocation and activate
		units := int32(150)
		status := "active"
		updateReq := reqdto.UpdateCampaignRequest{UnitsAllocated: &units, Status: &status}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, campaignURL, updateReq, s.advertiserToken)

		var updated resdto.CampaignResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &updated)
		s.Equal(int32(150), updated.UnitsAllocated)
		s.Equal("active", updated.Status)
		s.True(start.Equal(updated.StartDatetime), "untouched fields must survive the patch")

		// Scanner hands out three samples
		s.recordScan(created.CampaignID, "device-1")
		s.recordScan(created.CampaignID, "device-2")
		s.recordScan(created.CampaignID, "")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, campaignURL+"/scans/count", nil, s.advertiserToken)
		var count resdto.ScanCountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &count)
		s.Equal(int64(3), count.TotalScans)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, campaignURL+"/scans", nil, s.advertiserToken)
		var scans []resdto.ScanEventResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &scans)
		s.Len(scans, 3)

		// Snapshot captures remaining inventory at this moment
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, campaignURL+"/snapshots", nil, s.advertiserToken)
		var snapshot resdto.SnapshotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &snapshot)
		s.Equal(int32(3), snapshot.TotalScans)
		s.Equal(int32(147), snapshot.RemainingUnits)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, campaignURL+"/snapshots", nil, s.advertiserToken)
		var snapshots []resdto.SnapshotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &snapshots)
		s.Len(snapshots, 1)
		s.Equal(snapshot.SnapshotID, snapshots[0].SnapshotID)

		// A second snapshot with no new scans repeats the totals under a
		// later timestamp
		time.Sleep(10 * time.Millisecond)
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, campaignURL+"/snapshots", nil, s.advertiserToken)
		var second resdto.SnapshotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &second)
		s.Equal(snapshot.TotalScans, second.TotalScans)
		s.Equal(snapshot.RemainingUnits, second.RemainingUnits)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, campaignURL+"/snapshots", nil, s.advertiserToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &snapshots)
		s.Require().Len(snapshots, 2)
		s.Equal(snapshot.SnapshotID, snapshots[0].SnapshotID)
		s.Equal(second.SnapshotID, snapshots[1].SnapshotID)
		s.True(snapshots[1].SnapshotTime.After(snapshots[0].SnapshotTime),
			"snapshots must list in ascending snapshot_time order")

		// Delete takes the campaign and its children with it
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, campaignURL, nil, s.advertiserToken)
		s.Equal(http.StatusNoContent, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, campaignURL, nil, s.advertiserToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Campaign not found")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, campaignsURL, nil, s.advertiserToken)
		var remaining []resdto.CampaignResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &remaining)
		s.Empty(remaining)
	})
}

func (s *campaignSuite) TestCreateValidation() {
	s.Run("duplicate schedule is rejected with 409", func() {
		start := time.Date(2026, 7, 18, 10, 0, 0, 0, time.UTC)
		s.createCampaign(100, start)

		req := reqdto.CreateCampaignRequest{
			StallID:        s.stallID,
			ProductID:      s.productID,
			UnitsAllocated: 50,
			StartDatetime:  start,
			EndDatetime:    start.Add(4 * time.Hour),
		}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, campaignsURL, req, s.advertiserToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
	})

	s.Run("inverted window is rejected with 422", func() {
		start := time.Date(2026, 7, 18, 10, 0, 0, 0, time.UTC)
		req := reqdto.CreateCampaignRequest{
			StallID:        s.stallID,
			ProductID:      s.productID,
			UnitsAllocated: 100,
			StartDatetime:  start,
			EndDatetime:    start.Add(-time.Hour),
		}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, campaignsURL, req, s.advertiserToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "validation failed")
	})

	s.Run("unknown stall is rejected with 404", func() {
		start := time.Date(2026, 7, 18, 10, 0, 0, 0, time.UTC)
		req := reqdto.CreateCampaignRequest{
			StallID:        uuid.New(),
			ProductID:      s.productID,
			UnitsAllocated: 100,
			StartDatetime:  start,
			EndDatetime:    start.Add(8 * time.Hour),
		}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, campaignsURL, req, s.advertiserToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Stall not found")
	})
}

func (s *campaignSuite) TestOwnership() {
	s.Run("another advertiser sees 404, not 403", func() {
		start := time.Date(2026, 7, 18, 10, 0, 0, 0, time.UTC)
		created := s.createCampaign(100, start)
		campaignURL := campaignsURL + "/" + created.CampaignID.String()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, campaignURL, nil, s.otherToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Campaign not found")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, campaignURL, nil, s.otherToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Campaign not found")

		// The owner still sees it, byte for byte what create returned
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, campaignURL, nil, s.advertiserToken)
		var view resdto.CampaignResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)
		if diff := cmp.Diff(created, view); diff != "" {
			s.T().Errorf("Campaign mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("listing is scoped to the owner", func() {
		start := time.Date(2026, 7, 18, 10, 0, 0, 0, time.UTC)
		s.createCampaign(100, start)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, campaignsURL, nil, s.otherToken)
		var views []resdto.CampaignResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &views)
		s.Empty(views)
	})
}

func (s *campaignSuite) TestScannerView() {
	s.Run("scanner lists only their own events", func() {
		start := time.Date(2026, 7, 18, 10, 0, 0, 0, time.UTC)
		created := s.createCampaign(100, start)

		s.recordScan(created.CampaignID, "device-1")
		s.recordScan(created.CampaignID, "device-2")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/scan-events", nil, s.scannerToken)
		var events []resdto.ScanEventResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &events)
		s.Len(events, 2)
		for _, e := range events {
			s.Equal(s.scannerID, e.ScannerUserID)
		}
	})

	s.Run("scan against an unknown campaign is 404", func() {
		body := map[string]any{"campaign_id": uuid.New()}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/scan-events", body, s.scannerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Campaign not found")
	})
}

func (s *campaignSuite) TestSnapshotOverScan() {
	s.Run("remaining units go negative when scans exceed the allocation", func() {
		start := time.Date(2026, 7, 18, 10, 0, 0, 0, time.UTC)
		created := s.createCampaign(2, start)
		campaignURL := campaignsURL + "/" + created.CampaignID.String()

		for range 3 {
			s.recordScan(created.CampaignID, "")
		}

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, campaignURL+"/snapshots", nil, s.advertiserToken)
		var snapshot resdto.SnapshotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &snapshot)
		s.Equal(int32(3), snapshot.TotalScans)
		s.Equal(int32(-1), snapshot.RemainingUnits)
	})
}

//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"festserve/internal/domain/identity"
	"festserve/internal/handler/api"
	reqdto "festserve/internal/handler/dto/request"
	resdto "festserve/internal/handler/dto/response"
	"festserve/internal/usecase/commands"
	"festserve/internal/usecase/queries"
	"festserve/tests/common/httptest"
	commandsmock "festserve/tests/mock/commands"
	queriesmock "festserve/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScanHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockScanCommands
	mockQueries  *queriesmock.MockScanQueries
	handler      *api.ScanHandler
	actor        identity.Actor
}

func (s *ScanHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockScanCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockScanQueries(s.mockCtrl)
	s.handler = api.NewScanHandler(s.mockCommands, s.mockQueries)
	s.actor = identity.Actor{ID: uuid.New(), Role: identity.RoleScanner}

	// Mock middleware behavior: inject the scanner actor
	group := s.router.Group("/scan-events", func(c *gin.Context) {
		c.Set("actor", s.actor)
	})
	group.POST("", s.handler.Record)
	group.GET("", s.handler.ListOwn)
}

func (s *ScanHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestScanHandlerSuite(t *testing.T) {
	suite.Run(t, new(ScanHandlerTestSuite))
}

func (s *ScanHandlerTestSuite) TestRecord() {
	path := "/scan-events"
	campaignID := uuid.New()

	s.Run("success: returns 201 Created with the server-assigned timestamp", func() {
		fingerprint := "device-abc-123"
		reqBody := reqdto.CreateScanEventRequest{CampaignID: campaignID, DeviceFingerprint: &fingerprint}
		scannedAt := time.Date(2026, 7, 18, 12, 30, 0, 0, time.UTC)

		s.mockCommands.EXPECT().Record(gomock.Any(), s.actor.ID, reqBody).
			Return(&queries.ScanEventView{
				ID:                uuid.New(),
				CampaignID:        campaignID,
				ScannerUserID:     s.actor.ID,
				ScannedAt:         scannedAt,
				DeviceFingerprint: &fingerprint,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, reqBody, "")

		var response resdto.ScanEventResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(campaignID, response.CampaignID)
		s.Equal(s.actor.ID, response.ScannerUserID)
		s.True(scannedAt.Equal(response.ScannedAt))
		if s.NotNil(response.DeviceFingerprint) {
			s.Equal(fingerprint, *response.DeviceFingerprint)
		}
	})

	s.Run("success: fingerprint is optional", func() {
		reqBody := reqdto.CreateScanEventRequest{CampaignID: campaignID}

		s.mockCommands.EXPECT().Record(gomock.Any(), s.actor.ID, reqBody).
			Return(&queries.ScanEventView{
				ID:            uuid.New(),
				CampaignID:    campaignID,
				ScannerUserID: s.actor.ID,
				ScannedAt:     time.Now().UTC(),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, reqBody, "")

		var response resdto.ScanEventResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Nil(response.DeviceFingerprint)
	})

	s.Run("error: 400 Bad Request when campaign_id is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, gin.H{"device_fingerprint": "x"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 404 Not Found for an unknown campaign", func() {
		reqBody := reqdto.CreateScanEventRequest{CampaignID: campaignID}
		s.mockCommands.EXPECT().Record(gomock.Any(), s.actor.ID, reqBody).
			Return(nil, commands.ErrCampaignNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Campaign not found")
	})
}

func (s *ScanHandlerTestSuite) TestListOwn() {
	s.Run("success: returns only this scanner's events", func() {
		views := []*queries.ScanEventView{
			{ID: uuid.New(), CampaignID: uuid.New(), ScannerUserID: s.actor.ID, ScannedAt: time.Now().UTC()},
			{ID: uuid.New(), CampaignID: uuid.New(), ScannerUserID: s.actor.ID, ScannedAt: time.Now().UTC()},
		}
		s.mockQueries.EXPECT().ListOwn(gomock.Any(), s.actor.ID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/scan-events", nil, "")

		var response []resdto.ScanEventResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(s.actor.ID, response[0].ScannerUserID)
	})
}

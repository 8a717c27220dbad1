//go:build unit

package api_test

import (
	"net/http"
	"net/url"
	"testing"

	"festserve/internal/domain/identity"
	"festserve/internal/handler/api"
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

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockIdentityQueries
	handler      *api.AuthHandler
	actor        identity.Actor
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockIdentityQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries)
	s.actor = identity.Actor{ID: uuid.New(), Role: identity.RoleAdvertiser}

	s.router.POST("/auth/token", s.handler.Token)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Mock middleware behavior for /auth/me
		if c.GetHeader("Authorization") != "" {
			c.Set("actor", s.actor)
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestToken() {
	path := "/auth/token"

	validForm := func() url.Values {
		return url.Values{
			"username": {"advertiser@example.com"},
			"password": {"password123"},
			"scope":    {"advertiser"},
		}
	}

	s.Run("success: returns 200 OK with a bearer token", func() {
		s.mockCommands.EXPECT().IssueToken(gomock.Any(), gomock.Any()).
			Return(&commands.TokenResult{SubjectID: s.actor.ID, AccessToken: "test-jwt-token"}, nil).Times(1)

		rec := httptest.PerformFormRequest(s.T(), s.router, path, validForm())

		var response resdto.TokenResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-jwt-token", response.AccessToken)
		s.Equal("bearer", response.TokenType)
	})

	s.Run("error: 401 Unauthorized on invalid credentials", func() {
		s.mockCommands.EXPECT().IssueToken(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformFormRequest(s.T(), s.router, path, validForm())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Incorrect username or password")
	})

	s.Run("error: 401 Unauthorized on unsupported role", func() {
		s.mockCommands.EXPECT().IssueToken(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrAuthenticationFailed).Times(1)

		rec := httptest.PerformFormRequest(s.T(), s.router, path, validForm())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Incorrect username or password")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		tests := []struct {
			name   string
			mutate func(form url.Values)
		}{
			{name: "missing username", mutate: func(f url.Values) { f.Del("username") }},
			{name: "missing password", mutate: func(f url.Values) { f.Del("password") }},
			{name: "missing scope", mutate: func(f url.Values) { f.Del("scope") }},
			{name: "unknown scope", mutate: func(f url.Values) { f.Set("scope", "admin") }},
		}

		for _, tc := range tests {
			s.Run(tc.name, func() {
				form := validForm()
				tc.mutate(form)

				rec := httptest.PerformFormRequest(s.T(), s.router, path, form)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	path := "/auth/me"

	s.Run("success: returns the current advertiser", func() {
		email := "advertiser@example.com"
		s.mockQueries.EXPECT().CurrentIdentity(gomock.Any(), s.actor).
			Return(&queries.IdentityView{
				ID:           s.actor.ID,
				Role:         "advertiser",
				Name:         "Takoyaki Taro",
				ContactEmail: &email,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "some-token")

		var response resdto.IdentityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.actor.ID, response.ID)
		s.Equal("advertiser", response.Role)
		if s.NotNil(response.ContactEmail) {
			s.Equal(email, *response.ContactEmail)
		}
	})

	s.Run("error: 401 Unauthorized without an actor", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Not authenticated")
	})

	s.Run("error: 401 Unauthorized when the identity row is gone", func() {
		s.mockQueries.EXPECT().CurrentIdentity(gomock.Any(), s.actor).
			Return(nil, queries.ErrIdentityNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "some-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Not authenticated")
	})
}

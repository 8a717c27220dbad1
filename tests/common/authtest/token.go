//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	commonhttp "festserve/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// IssueToken authenticates through the real token endpoint and returns the
// bearer token. Advertisers pass their contact email as username.
func IssueToken(t *testing.T, router *gin.Engine, username, pass, scope string) string {
	t.Helper()

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", pass)
	form.Set("scope", scope)

	rec := commonhttp.PerformFormRequest(t, router, "/api/auth/token", form)
	require.Equal(t, http.StatusOK, rec.Code, "token issuance failed: %s", rec.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, "bearer", resp.TokenType)

	return resp.AccessToken
}

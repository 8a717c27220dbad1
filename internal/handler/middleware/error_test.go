//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"festserve/internal/handler/httperr"
	"festserve/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performGet(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAbortWithError(t *testing.T) {
	t.Run("writes the public body and keeps the cause on the context", func(t *testing.T) {
		var captured []*gin.Error

		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/boom", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusInternalServerError, assert.AnError, "Internal server error")
			captured = c.Errors
		})

		rec := performGet(t, router, "/boom")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error": "Internal server error"}`, rec.Body.String())

		require.Len(t, captured, 1)
		assert.ErrorIs(t, captured[0].Err, assert.AnError)
		assert.True(t, captured[0].IsType(gin.ErrorTypePublic))
	})

	t.Run("panics when called without a cause", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.Panics(t, func() {
			httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		})
	})
}

func TestErrorHandler(t *testing.T) {
	t.Run("renders a pushed error when the handler wrote nothing", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/teapot", func(c *gin.Context) {
			_ = c.Error(&gin.Error{
				Err:  assert.AnError,
				Type: gin.ErrorTypePublic,
				Meta: httperr.Response{Status: http.StatusTeapot, Error: "I'm a teapot"},
			})
		})

		rec := performGet(t, router, "/teapot")
		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.JSONEq(t, `{"error": "I'm a teapot"}`, rec.Body.String())
	})

	t.Run("leaves a written response alone", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/ok", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		rec := performGet(t, router, "/ok")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
	})
}

func TestCustomRecovery(t *testing.T) {
	router := gin.New()
	router.Use(middleware.CustomRecovery())
	router.GET("/panic", func(_ *gin.Context) {
		panic("unreachable state")
	})

	rec := performGet(t, router, "/panic")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Internal server error"}`, rec.Body.String())
}

package api

import (
	"errors"
	"net/http"

	reqdto "festserve/internal/handler/dto/request"
	resdto "festserve/internal/handler/dto/response"
	"festserve/internal/handler/httperr"
	"festserve/internal/handler/middleware"
	"festserve/internal/usecase/commands"
	"festserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands    commands.AuthCommands
	identityQueries queries.IdentityQueries
}

func NewAuthHandler(authCommands commands.AuthCommands, identityQueries queries.IdentityQueries) *AuthHandler {
	return &AuthHandler{
		authCommands:    authCommands,
		identityQueries: identityQueries,
	}
}

// @Summary Issue access token
// @Description Authenticate within the requested scope and issue a bearer token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Contact email (advertiser) or username (scanner)"
// @Param password formData string true "Password"
// @Param scope formData string true "advertiser or scanner"
// @Success 200 {object} resdto.TokenResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req reqdto.TokenRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.IssueToken(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials),
			errors.Is(err, commands.ErrAuthenticationFailed):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Incorrect username or password",
			})
		default:
			httperr.Internal(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.TokenResponse{
		AccessToken: result.AccessToken,
		TokenType:   "bearer",
	})
}

// @Summary Get current identity
// @Description Get the authenticated advertiser or scanner
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.IdentityResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return
	}

	view, err := h.identityQueries.CurrentIdentity(c.Request.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrIdentityNotFound):
			// The subject vanished after the token was issued. That is an
			// authentication failure, not a missing resource.
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Not authenticated",
			})
		default:
			httperr.Internal(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromIdentityView(view))
}

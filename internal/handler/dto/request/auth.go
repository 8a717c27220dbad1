package request

import (
	"festserve/internal/domain/identity"
)

// TokenRequest is form-encoded (OAuth2 password flow shape). Advertisers put
// their contact email in the username field, scanners their username.
type TokenRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
	Scope    string `form:"scope" binding:"required,oneof=advertiser scanner"`
}

func (r *TokenRequest) ScopeRole() (identity.Role, error) {
	return identity.NewRole(r.Scope)
}

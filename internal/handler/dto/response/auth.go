package response

import (
	"festserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type IdentityResponse struct {
	ID              uuid.UUID  `json:"id"`
	Role            string     `json:"role"`
	Name            string     `json:"name"`
	ContactEmail    *string    `json:"contact_email,omitempty"`
	AssignedStallID *uuid.UUID `json:"assigned_stall_id,omitempty"`
}

func FromIdentityView(v *queries.IdentityView) *IdentityResponse {
	return &IdentityResponse{
		ID:              v.ID,
		Role:            v.Role,
		Name:            v.Name,
		ContactEmail:    v.ContactEmail,
		AssignedStallID: v.AssignedStallID,
	}
}

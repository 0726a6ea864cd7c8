package response

import "hotel-frontdesk/internal/usecase/queries"

type CurrentUserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
}

func FromAuthorizedUser(v *queries.AuthorizedUserView) *CurrentUserResponse {
	return &CurrentUserResponse{
		ID:       v.ID.String(),
		Email:    v.Email,
		FullName: v.FullName,
		Role:     v.Role,
		IsActive: v.IsActive,
	}
}

type LoginResponse struct {
	AccessToken string               `json:"accessToken"`
	User        *CurrentUserResponse `json:"user"`
}

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

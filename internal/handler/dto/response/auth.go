package response

import "courtbook/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string                      `json:"accessToken"`
	User        *queries.AuthorizedUserView `json:"user"`
}

type UserResponse struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	DisplayName string  `json:"displayName"`
	Role        string  `json:"role"`
	LastLoginAt *string `json:"lastLoginAt,omitempty"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	resp := &UserResponse{
		ID:          v.ID.String(),
		Email:       v.Email,
		DisplayName: v.DisplayName,
		Role:        v.Role,
	}
	if v.LastLoginAt != nil {
		s := v.LastLoginAt.Format("2006-01-02T15:04:05Z07:00")
		resp.LastLoginAt = &s
	}
	return resp
}

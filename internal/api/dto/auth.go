package dto

import (
	"time"

	"transport-management-service/internal/domain"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    string `json:"role,omitempty"`
	Company string `json:"company,omitempty"`
}

type LoginResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

func NewUserResponse(p domain.Principal) UserResponse {
	return UserResponse{
		ID:      p.ID,
		Email:   p.Email,
		Name:    p.Name,
		Role:    string(p.Role),
		Company: p.Company,
	}
}

func NewLoginResponse(s domain.Session) LoginResponse {
	return LoginResponse{User: NewUserResponse(s.Principal), Token: s.Token, ExpiresAt: s.ExpiresAt}
}

type ResourcesResponse struct {
	Role      string   `json:"role"`
	Resources []string `json:"resources"`
}

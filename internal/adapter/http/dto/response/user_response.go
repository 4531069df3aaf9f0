package response

import (
	"time"

	"vip_mudancas/internal/domain/entities"
)

type UserResponse struct {
	ID    string `json:"id"`
	CPF   string `json:"cpf"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type UserDetailResponse struct {
	UserResponse
	Active    bool       `json:"active"`
	LastLogin *time.Time `json:"last_login"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		CPF:   u.CPF,
		Email: u.Email,
		Name:  u.Name,
		Role:  string(u.Role),
	}
}

func FromUserDetail(u entities.User) UserDetailResponse {
	return UserDetailResponse{
		UserResponse: FromUser(u),
		Active:       u.Active,
		LastLogin:    u.LastLogin,
	}
}

type LoginResponse struct {
	Message     string       `json:"message"`
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

package request

import "vip_mudancas/internal/usecase"

type LoginRequest struct {
	CPF      string `json:"cpf"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	CPF      string `json:"cpf"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (r RegisterRequest) ToInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		CPF:      r.CPF,
		Password: r.Password,
		Name:     r.Name,
		Email:    r.Email,
		Role:     r.Role,
	}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

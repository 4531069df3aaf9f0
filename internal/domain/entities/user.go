package entities

import (
	"strings"
	"time"
	"unicode"
)

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

// User is a back-office collaborator. CPF is the login key and is unique
// through the unique_keys table.
type User struct {
	ID           string     `json:"id"`
	CPF          string     `json:"cpf"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name"`
	Role         UserRole   `json:"role"`
	Active       bool       `json:"active"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (u User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// NormalizeCPF strips every non-digit character.
func NormalizeCPF(cpf string) string {
	var b strings.Builder
	for _, r := range cpf {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCPF checks the CPF shape: 11 digits, not all equal. Check digits are
// not verified.
func ValidCPF(cpf string) bool {
	cpf = NormalizeCPF(cpf)
	if len(cpf) != 11 {
		return false
	}
	return strings.Count(cpf, cpf[:1]) != len(cpf)
}

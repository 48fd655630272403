//go:build unit || e2e

package builder

import (
	reqdto "volunteer-hub/internal/handler/dto/request"
)

type AuthBuilder struct {
	Identifier string
	Password   string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Identifier: "12345678",
		Password:   "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Identifier: a.Identifier,
		Password:   a.Password,
	}
}

type RegisterBuilder struct {
	DNI       string
	FullName  string
	Email     string
	Phone     string
	Password  string
	ShirtSize string
	IsOver18  bool
}

func NewRegisterBuilder() *RegisterBuilder {
	return &RegisterBuilder{
		DNI:       "12345678",
		FullName:  "Ana Garcia",
		Email:     "ana@example.org",
		Phone:     "+34 600 000 000",
		Password:  "password123",
		ShirtSize: "M",
		IsOver18:  true,
	}
}

func (r *RegisterBuilder) BuildDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		DNI:       r.DNI,
		FullName:  r.FullName,
		Email:     r.Email,
		Phone:     r.Phone,
		Password:  r.Password,
		ShirtSize: r.ShirtSize,
		IsOver18:  r.IsOver18,
	}
}

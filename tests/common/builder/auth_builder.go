//go:build unit || e2e

package builder

import (
	"hotel-frontdesk/internal/domain/user"
	reqdto "hotel-frontdesk/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "staff@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildCredentials() user.Credentials {
	c, err := user.NewCredentials(a.Email, a.Password)
	if err != nil {
		panic(err)
	}
	return c
}

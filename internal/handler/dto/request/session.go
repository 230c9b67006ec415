package request

import (
	"hotel-portal/internal/domain/auth"
	"hotel-portal/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password)
}

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *SignUpRequest) ToDomain() (user.SignUp, error) {
	return user.NewSignUp(r.Email, r.Password)
}

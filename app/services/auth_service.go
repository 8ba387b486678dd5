package services

import (
	"errors"

	"github.com/sweetdelights/bakery/config"
	"github.com/sweetdelights/bakery/pkg/auth"
)

// ErrInvalidCredentials is returned for any username/password mismatch.
var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginResult is the payload returned on a successful admin login.
type LoginResult struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	ExpiresIn string `json:"expiresIn"`
}

// AuthService verifies configured admin credentials and issues session tokens.
type AuthService struct{}

func NewAuthService() *AuthService {
	return &AuthService{}
}

// Login checks the credentials against configuration. A bcrypt hash
// (ADMIN_PASSWORD_HASH) takes precedence; ADMIN_PASSWORD is a plain-text
// fallback for local development.
func (s *AuthService) Login(username, password string) (LoginResult, error) {
	if username != config.AdminUsername() {
		return LoginResult{}, ErrInvalidCredentials
	}
	if hash := config.AdminPasswordHash(); hash != "" {
		if !auth.CheckPassword(hash, password) {
			return LoginResult{}, ErrInvalidCredentials
		}
	} else if plain := config.AdminPassword(); plain == "" || password != plain {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(username)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: token, Username: username, ExpiresIn: "24h"}, nil
}

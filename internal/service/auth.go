package service

import (
	"crypto/subtle"

	"github.com/jarana/guia/internal/domain"
)

var (
	ErrInvalidCredentials = domain.ErrInvalidCredentials
)

// AuthService checks the single admin credential pair taken from configuration.
type AuthService struct {
	username string
	password string
}

func NewAuthService(username, password string) *AuthService {
	return &AuthService{
		username: username,
		password: password,
	}
}

// Login fails when the pair does not match or when no admin is configured.
func (s *AuthService) Login(username, password string) error {
	if s.username == "" || s.password == "" {
		return ErrInvalidCredentials
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return ErrInvalidCredentials
	}

	return nil
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name     string
		svc      *AuthService
		username string
		password string
		wantErr  error
	}{
		{
			name:     "match",
			svc:      NewAuthService("admin", "s3cret"),
			username: "admin",
			password: "s3cret",
		},
		{
			name:     "wrong password",
			svc:      NewAuthService("admin", "s3cret"),
			username: "admin",
			password: "S3cret",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "wrong username",
			svc:      NewAuthService("admin", "s3cret"),
			username: "root",
			password: "s3cret",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "no admin configured",
			svc:      NewAuthService("", ""),
			username: "",
			password: "",
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.svc.Login(tt.username, tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

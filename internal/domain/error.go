package domain

import "errors"

var (
	ErrNotFound             = errors.New("record not found")
	ErrConflict             = errors.New("record conflicts with an existing one")
	ErrUnknownMutation      = errors.New("unknown admin operation")
	ErrUnknownTable         = errors.New("unknown table")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidImage         = errors.New("only png, jpg, jpeg and gif images are allowed")
	ErrUploadFailed         = errors.New("image upload failed")
	ErrPublishFailed        = errors.New("publish webhook failed")
	ErrPublishNotConfigured = errors.New("publish webhook is not configured")
)

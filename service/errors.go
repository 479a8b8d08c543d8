package service

import "errors"

// Sentinel errors returned across the service boundary. Handlers map these
// to HTTP codes; nothing below raw store or collaborator errors leaks out.
var (
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrSelfFollow         = errors.New("cannot follow or unfollow yourself")
	ErrUpload             = errors.New("profile picture upload failed")
)

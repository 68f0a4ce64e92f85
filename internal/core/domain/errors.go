package domain

import "errors"

var (
	ErrPostNotFound       = errors.New("post not found")
	ErrTagNotFound        = errors.New("tag not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrImageNotInContent  = errors.New("image not referenced in post content")
	ErrNotAnImage         = errors.New("file is not an image")
)

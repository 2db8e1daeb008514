package core

import "errors"

var (
	ErrInvalidInput       error = errors.New("invalid input")
	ErrEmailTaken         error = errors.New("email already registered")
	ErrInvalidCredentials error = errors.New("invalid credentials")
	ErrFetchFailed        error = errors.New("fetching remote file failed")
	ErrFileNotFound       error = errors.New("file not found")
)

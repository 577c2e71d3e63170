package model

import (
	"errors"
	"slices"
)

var ErrUserNotFound = errors.New("cannot find user")
var ErrEmailAlreadyExist = errors.New("this email already exists")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrSignupDisabled = errors.New("signup is disabled")
var ErrMovieNotFound = errors.New("movie not found")
var ErrSavedMovieNotFound = errors.New("saved movie not found")
var ErrPosterNotFound = errors.New("poster not found")
var ErrInvalidMovieId = errors.New("invalid movieId")
var ErrEmptyCredentials = errors.New("username, email and password are required")
var ErrShortPassword = errors.New("password must be at least 6 characters")
var ErrInvalidEmail = errors.New("invalid email address")

func GetErrorCode(err error) int {
	code400 := []error{
		ErrInvalidMovieId,
		ErrEmptyCredentials,
		ErrShortPassword,
		ErrInvalidEmail,
	}
	code401 := []error{
		ErrInvalidCredentials,
	}
	code403 := []error{
		ErrSignupDisabled,
	}
	code404 := []error{
		ErrUserNotFound,
		ErrMovieNotFound,
		ErrSavedMovieNotFound,
		ErrPosterNotFound,
	}
	code409 := []error{
		ErrEmailAlreadyExist,
	}

	if slices.Contains(code400, err) {
		return 400
	}
	if slices.Contains(code401, err) {
		return 401
	}
	if slices.Contains(code403, err) {
		return 403
	}
	if slices.Contains(code404, err) {
		return 404
	}
	if slices.Contains(code409, err) {
		return 409
	}

	return 0
}

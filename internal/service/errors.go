package service

import "errors"

var (
	ErrWrongPassword = errors.New("wrong password")

	ErrTokenIsInvalid = errors.New("token is invalid")
)

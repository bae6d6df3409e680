package entity

import "errors"

var (
	ErrLeadNotFound = errors.New("lead not found")
	ErrUserNotFound = errors.New("user not found")
)

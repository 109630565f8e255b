package domain

import "errors"

var (
	ErrCaravanNotFound     = errors.New("caravan not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

var (
	ErrReservationNotPending = errors.New("reservation is not in pending status")
	ErrReservationNotActive  = errors.New("reservation is not active")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
	ErrUnauthorized  = errors.New("invalid username or password")
	ErrForbidden     = errors.New("operation not permitted")
)

var (
	ErrValidation = errors.New("validation error")
)

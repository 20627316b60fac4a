package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedSessionInvalid = "failed to resolve session"

	ErrSessionNotFound = errors.New("session not found or expired")
	ErrUpstreamFailure = errors.New("upstream kitchen API request failed")
)

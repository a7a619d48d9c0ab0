package domain

import "errors"

var (
	ErrNotFound         = errors.New("resource not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrMissingAction    = errors.New("missing action parameter")
	ErrUnknownAction    = errors.New("unknown action")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrMissingParameter = errors.New("missing required parameter")
	ErrCodeNotFound     = errors.New("HTS code not found")
	ErrRateNotFound     = errors.New("no duty rate record for code")
)

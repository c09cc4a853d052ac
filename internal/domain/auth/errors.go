package auth

import "errors"

var (
	ErrInvalidToken   = errors.New("invalid or missing access token")
	ErrMissingCompany = errors.New("company_id claim is missing or invalid")
)

package worksession

import "errors"

var (
	ErrWorkSessionNotFound = errors.New("work session not found")
)

package port

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrConfiguration = errors.New("invalid configuration")
)

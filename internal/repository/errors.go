package repository

import "errors"

var (
	ErrNotFound      = errors.New("entity not found")
	ErrMalformedData = errors.New("persisted data is malformed")
)

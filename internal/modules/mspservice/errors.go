package mspservice

import "errors"

var (
	ErrNotFound  = errors.New("service not found")
	ErrForbidden = errors.New("not the owner of this service")
)

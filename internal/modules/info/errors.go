package info

import "errors"

var (
	ErrNotFound  = errors.New("info not found")
	ErrForbidden = errors.New("not the owner of this info")
)

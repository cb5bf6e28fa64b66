package image

import "errors"

var (
	ErrNotFound  = errors.New("image not found")
	ErrForbidden = errors.New("not the owner of this image")
)

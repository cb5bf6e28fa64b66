package blog

import "errors"

var (
	ErrNotFound       = errors.New("blog not found")
	ErrForbidden      = errors.New("not the owner of this blog")
	ErrSlugGeneration = errors.New("could not generate a unique slug")
	ErrSlugConflict   = errors.New("slug already taken")
)

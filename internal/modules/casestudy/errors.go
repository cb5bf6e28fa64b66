package casestudy

import "errors"

var ErrNotFound = errors.New("case study not found")

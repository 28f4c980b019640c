package member

import "errors"

var (
	ErrNotFound   = errors.New("member not found")
	ErrEmailTaken = errors.New("member email already exists")
)

package domain

import "errors"

var (
	ErrPlayerNotFound = errors.New("player not found")
)

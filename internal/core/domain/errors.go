package domain

import "errors"

var (
	ErrNotFound        = errors.New("resource not found")
	ErrDuplicateName   = errors.New("name already exists")
	ErrInvalidCategory = errors.New("referenced category does not exist")
)

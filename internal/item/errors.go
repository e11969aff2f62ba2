package item

import "errors"

var (
	ErrInvalidPrice = errors.New("price must be a finite number")
)

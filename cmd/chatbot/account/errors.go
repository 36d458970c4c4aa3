package account

import "errors"

var (
	ErrAccountNotFound   = errors.New("account does not exist")
	ErrNonPositiveAmount = errors.New("deposit amount can't be negative")
)

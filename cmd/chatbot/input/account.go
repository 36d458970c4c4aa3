package input

import (
	"errors"
	"strconv"
	"strings"
)

// Directory reports whether an account is known.
type Directory interface {
	Exists(id int64) bool
}

// Account validates an account number against the known accounts. A whole
// number too large for an id can't be an account either.
func Account(line string, accounts Directory) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, reject(ErrAccountNotFound, msgAccountNotFound)
		}
		return 0, reject(ErrInvalidFormat, msgAccountFormat)
	}

	if !accounts.Exists(id) {
		return 0, reject(ErrAccountNotFound, msgAccountNotFound)
	}

	return id, nil
}

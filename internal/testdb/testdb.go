package testdb

import (
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// NewMock returns an sqlx handle backed by sqlmock. Expectations are matched
// as regular expressions, like sqlmock does by default.
func NewMock() (*sqlx.DB, sqlmock.Sqlmock, error) {
	db, mock, err := sqlmock.New()
	if err != nil {
		return nil, nil, errors.Wrap(err, "open stub database connection")
	}

	return sqlx.NewDb(db, "sqlmock"), mock, nil
}

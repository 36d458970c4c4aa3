package audit

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/tamasbrandstadter/pixell-chatbot/internal/testdb"
)

const insertQuery = "INSERT INTO transactions\\(id, account_id, transaction_type, amount, created_at\\) VALUES\\(\\$1,\\$2,\\$3,\\$4,\\$5\\);"

func TestNewTxRecord(t *testing.T) {
	r := NewTxRecord(123456, Deposit, decimal.RequireFromString("10.5"))

	assert.NotEmpty(t, r.ID.String())
	assert.Equal(t, int64(123456), r.AccountID)
	assert.Equal(t, "deposit", r.Type.String())
	assert.Equal(t, "10.5", r.Amount.String())
	assert.False(t, r.CreatedAt.IsZero())
	assert.NotEqual(t, r.ID, NewTxRecord(123456, Deposit, decimal.Zero).ID)
}

func TestTxTypeString(t *testing.T) {
	assert.Equal(t, "balance", Balance.String())
	assert.Equal(t, "deposit", Deposit.String())
	assert.Equal(t, "TxType(5)", TxType(5).String())
	assert.Equal(t, "TxType(-1)", TxType(-1).String())
}

func TestDBRecorder(t *testing.T) {
	db, mock := NewMockDb()
	defer db.Close()

	r := NewTxRecord(123456, Deposit, decimal.RequireFromString("1500.01"))

	mock.ExpectBegin()
	mock.ExpectPrepare(insertQuery).ExpectExec().
		WithArgs(r.ID.String(), int64(123456), "deposit", "1500.01", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := DBRecorder{DB: db}.Record(context.Background(), r)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBRecorderInsertError(t *testing.T) {
	db, mock := NewMockDb()
	defer db.Close()

	r := NewTxRecord(789012, Balance, decimal.Zero)

	mock.ExpectBegin()
	mock.ExpectPrepare(insertQuery).ExpectExec().
		WithArgs(r.ID.String(), int64(789012), "balance", "0", sqlmock.AnyArg()).
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := DBRecorder{DB: db}.Record(context.Background(), r)

	assert.Error(t, err)
	assert.Equal(t, sql.ErrConnDone, errors.Cause(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBRecorderBeginError(t *testing.T) {
	db, mock := NewMockDb()
	defer db.Close()

	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

	err := DBRecorder{DB: db}.Record(context.Background(), NewTxRecord(1, Deposit, decimal.NewFromInt(1)))

	assert.Equal(t, sql.ErrConnDone, errors.Cause(err))
}

func TestMulti(t *testing.T) {
	failing := &stubRecorder{err: errors.New("broker down")}
	ok := &stubRecorder{}

	err := Multi{LogRecorder{}, failing, ok}.Record(context.Background(), NewTxRecord(1, Deposit, decimal.NewFromInt(1)))

	assert.EqualError(t, err, "broker down")
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, ok.calls)
}

func TestMultiEmpty(t *testing.T) {
	assert.NoError(t, Multi{}.Record(context.Background(), NewTxRecord(1, Balance, decimal.Zero)))
}

type stubRecorder struct {
	calls int
	err   error
}

func (s *stubRecorder) Record(context.Context, TxRecord) error {
	s.calls++
	return s.err
}

func NewMockDb() (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := testdb.NewMock()
	if err != nil {
		log.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}

	return db, mock
}

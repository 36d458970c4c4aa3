package audit

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DBRecorder writes audit records to the transactions table. Rows are only
// ever appended, balances are not read back from it.
type DBRecorder struct {
	DB *sqlx.DB
}

func (d DBRecorder) Record(ctx context.Context, r TxRecord) error {
	tx, err := d.DB.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return errors.Wrap(err, "begin audit tx")
	}

	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		_ = tx.Rollback()
		return errors.Wrap(err, "prepare audit record insert")
	}

	defer func() {
		if err := stmt.Close(); err != nil {
			log.WithError(errors.Wrap(err, "close psql statement")).Info("save audit record")
		}
	}()

	if _, err = stmt.ExecContext(ctx, r.ID.String(), r.AccountID, r.Type.String(), r.Amount.String(), r.CreatedAt); err != nil {
		_ = tx.Rollback()
		log.Warnf("audit record %s was rolled back, error: %v", r.ID, err)
		return errors.Wrap(err, "insert audit record")
	}

	if err = tx.Commit(); err != nil {
		log.Errorf("failed to commit audit record, error: %v", err)
		return errors.Wrap(err, "commit audit record")
	}

	log.Infof("successfully saved audit record with tx id %s", r.ID)
	return nil
}

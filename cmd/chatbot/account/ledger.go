package account

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// Ledger runs balance inquiries and deposits against a Store.
type Ledger struct {
	mu    sync.Mutex
	store Store
}

func NewLedger(store Store) *Ledger {
	return &Ledger{store: store}
}

func (l *Ledger) Exists(id int64) bool {
	return l.store.Exists(id)
}

// Balance returns the balance message for account id.
func (l *Ledger) Balance(id int64) (string, error) {
	b, err := l.store.Balance(id)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Your current balance for account %d is %s.", id, Display(b)), nil
}

// Deposit adds amount to the balance of account id and returns the
// confirmation message. Only negative amounts are refused here, a zero
// deposit goes through as a no-op.
func (l *Ledger) Deposit(id int64, amount decimal.Decimal) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, err := l.store.Balance(id)
	if err != nil {
		return "", err
	}
	if amount.IsNegative() {
		return "", ErrNonPositiveAmount
	}

	newBalance := b.Add(amount)
	if err := l.store.SetBalance(id, newBalance); err != nil {
		return "", err
	}

	log.WithFields(log.Fields{
		"account": id,
		"amount":  amount.StringFixed(2),
		"balance": newBalance.StringFixed(2),
	}).Info("deposit applied")

	return fmt.Sprintf("You have made a deposit of %s to account %d.", Display(amount), id), nil
}

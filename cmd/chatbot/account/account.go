package account

import (
	"sync"

	"github.com/shopspring/decimal"
)

type Account struct {
	ID      int64
	Balance decimal.Decimal
}

// Store holds account balances. Accounts are never created or removed through it.
type Store interface {
	Exists(id int64) bool
	Balance(id int64) (decimal.Decimal, error)
	SetBalance(id int64, balance decimal.Decimal) error
}

// Seed returns the test accounts every session starts with.
func Seed() []Account {
	return []Account{
		{ID: 123456, Balance: decimal.NewFromInt(1000)},
		{ID: 789012, Balance: decimal.NewFromInt(2000)},
	}
}

type MemoryStore struct {
	mu       sync.Mutex
	balances map[int64]decimal.Decimal
}

func NewMemoryStore(accounts ...Account) *MemoryStore {
	s := MemoryStore{balances: make(map[int64]decimal.Decimal, len(accounts))}
	for _, acc := range accounts {
		s.balances[acc.ID] = acc.Balance
	}

	return &s
}

func (s *MemoryStore) Exists(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.balances[id]
	return ok
}

func (s *MemoryStore) Balance(id int64) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.balances[id]
	if !ok {
		return decimal.Decimal{}, ErrAccountNotFound
	}

	return b, nil
}

func (s *MemoryStore) SetBalance(id int64, balance decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.balances[id]; !ok {
		return ErrAccountNotFound
	}
	s.balances[id] = balance

	return nil
}

var _ Store = (*MemoryStore)(nil)

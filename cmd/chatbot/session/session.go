package session

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/tamasbrandstadter/pixell-chatbot/cmd/chatbot/account"
	"github.com/tamasbrandstadter/pixell-chatbot/cmd/chatbot/audit"
	"github.com/tamasbrandstadter/pixell-chatbot/cmd/chatbot/input"
	"github.com/tamasbrandstadter/pixell-chatbot/internal/console"
)

type State int

const (
	AwaitingSelection State = iota
	AwaitingAccount
	AwaitingAmount
	Executing
	Terminated
)

var stateNames = [...]string{"awaiting selection", "awaiting account", "awaiting amount", "executing", "terminated"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Session is one conversation with the chatbot over a console.
type Session struct {
	console  *console.Console
	ledger   *account.Ledger
	recorder audit.Recorder

	state     State
	selection input.Selection
	accountID int64
	amount    decimal.Decimal
}

func New(c *console.Console, l *account.Ledger, r audit.Recorder) *Session {
	if r == nil {
		r = audit.Multi{}
	}

	return &Session{
		console:  c,
		ledger:   l,
		recorder: r,
		state:    AwaitingSelection,
	}
}

func (s *Session) State() State {
	return s.state
}

// Run greets the user and serves requests until exit is chosen or the input
// runs out. Running out of input is a regular exit; any other read failure
// ends the session too and is returned.
func (s *Session) Run(ctx context.Context) error {
	s.console.Say(welcome)

	var err error
	for s.state != Terminated {
		if ctx.Err() != nil {
			s.state = Terminated
			err = ctx.Err()
			break
		}

		if err = s.step(ctx); err != nil {
			// the prompt is still open on the current line
			s.console.Say("")
			s.state = Terminated
			if err == io.EOF {
				err = nil
			}
		}
	}

	s.console.Say(farewell)
	return err
}

func (s *Session) step(ctx context.Context) error {
	switch s.state {
	case AwaitingSelection:
		line, err := s.console.Prompt(menuPrompt)
		if err != nil {
			return err
		}
		sel, err := input.ParseSelection(line)
		if err != nil {
			s.console.Say(err.Error())
			return nil
		}
		s.selection = sel
		if sel == input.Exit {
			s.state = Terminated
		} else {
			s.state = AwaitingAccount
		}

	case AwaitingAccount:
		line, err := s.console.Prompt(accountPrompt)
		if err != nil {
			return err
		}
		id, err := input.Account(line, s.ledger)
		if err != nil {
			s.console.Say(err.Error())
			return nil
		}
		s.accountID = id
		if s.selection == input.Balance {
			s.state = Executing
		} else {
			s.state = AwaitingAmount
		}

	case AwaitingAmount:
		line, err := s.console.Prompt(amountPrompt)
		if err != nil {
			return err
		}
		amount, err := input.Amount(line)
		if err != nil {
			s.console.Say(err.Error())
			return nil
		}
		s.amount = amount
		s.state = Executing

	case Executing:
		s.execute(ctx)
		s.state = AwaitingSelection

	default:
		return errors.Errorf("unexpected session state %d", s.state)
	}

	return nil
}

func (s *Session) execute(ctx context.Context) {
	var (
		msg string
		rec audit.TxRecord
		err error
	)

	switch s.selection {
	case input.Balance:
		msg, err = s.ledger.Balance(s.accountID)
		rec = audit.NewTxRecord(s.accountID, audit.Balance, decimal.Zero)
	case input.Deposit:
		msg, err = s.ledger.Deposit(s.accountID, s.amount)
		rec = audit.NewTxRecord(s.accountID, audit.Deposit, s.amount)
	}

	if err != nil {
		log.WithFields(log.Fields{
			"account":   s.accountID,
			"selection": s.selection,
		}).WithError(err).Warn("operation rejected")
		s.console.Say(userMessage(err))
		return
	}

	s.console.Say(msg)

	if err := s.recorder.Record(ctx, rec); err != nil {
		log.WithError(errors.Wrap(err, "record audit trail")).Warnf("%s on account %d", rec.Type, s.accountID)
	}
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, account.ErrAccountNotFound):
		return accountMissing
	case errors.Is(err, account.ErrNonPositiveAmount):
		return negativeDeposit
	default:
		return operationFailed
	}
}

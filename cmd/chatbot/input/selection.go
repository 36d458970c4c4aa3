package input

import "strings"

type Selection string

const (
	Balance Selection = "balance"
	Deposit Selection = "deposit"
	Exit    Selection = "exit"
)

func (s Selection) Valid() bool {
	return s == Balance || s == Deposit || s == Exit
}

// ParseSelection normalizes the menu choice, ignoring case and surrounding blanks.
func ParseSelection(line string) (Selection, error) {
	s := Selection(strings.ToLower(strings.TrimSpace(line)))
	if !s.Valid() {
		return "", reject(ErrInvalidSelection, msgSelection)
	}

	return s, nil
}

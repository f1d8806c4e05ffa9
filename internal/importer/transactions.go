package importer

import (
	"fmt"
	"io"

	"github.com/balancebook-dev/balancebook/internal/journal"
	"github.com/balancebook-dev/balancebook/internal/model"
)

// TransactionsCSVParser parses the native transactions.csv layout.
type TransactionsCSVParser struct{}

// Format returns the parser's format key.
func (p *TransactionsCSVParser) Format() string {
	return "transactions"
}

// Parse reads transactions from a CSV reader and rejects rows the
// engine could never accept (zero or negative amounts).
func (p *TransactionsCSVParser) Parse(r io.Reader) ([]model.Transaction, error) {
	txns, err := journal.ReadTransactions(r)
	if err != nil {
		return nil, err
	}
	for i, t := range txns {
		if !t.Amount.IsPositive() {
			return nil, fmt.Errorf("row %d: amount must be positive, got %s", i+2, t.Amount)
		}
		if p, ok := t.Double(); ok && p.DebitAccountID == p.CreditAccountID {
			return nil, fmt.Errorf("row %d: debit and credit account must differ", i+2)
		}
	}
	return txns, nil
}

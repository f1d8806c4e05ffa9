// Package ledger projects the transaction stream onto accounts: the
// per-account general ledger with running balances, and the trial
// balance built on top of it.
package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/balancebook-dev/balancebook/internal/model"
)

// Entry is one ledger line: a transaction as seen from one account,
// with the balance after applying it.
type Entry struct {
	TransactionID  int             `json:"transactionId"`
	Date           time.Time       `json:"date"`
	Description    string          `json:"description"`
	CounterAccount int             `json:"counterAccountId"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	Balance        decimal.Decimal `json:"balance"` // running balance after this entry
}

// AccountLedger is the chronological projection of all transactions
// touching one account.
type AccountLedger struct {
	AccountID      int             `json:"accountId"`
	AccountCode    string          `json:"accountCode"`
	AccountName    string          `json:"accountName"`
	Entries        []Entry         `json:"entries"`
	TotalDebits    decimal.Decimal `json:"totalDebits"`
	TotalCredits   decimal.Decimal `json:"totalCredits"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	LegacyCount    int             `json:"legacyCount"` // transactions without per-account projection
}

// Build replays all double-entry transactions touching the account in
// (date, createdAt) order and returns the resulting ledger. A ledger is
// always computable; an account with no matching transactions yields an
// empty zero-balance ledger.
func Build(account model.Account, txns []model.Transaction) AccountLedger {
	ledger := AccountLedger{
		AccountID:      account.ID,
		AccountCode:    account.Code,
		AccountName:    account.Name,
		TotalDebits:    decimal.Zero,
		TotalCredits:   decimal.Zero,
		ClosingBalance: decimal.Zero,
	}

	var matched []model.Transaction
	for _, t := range txns {
		if t.Deleted() {
			continue
		}
		if _, ok := t.Double(); !ok {
			ledger.LegacyCount++
			continue
		}
		if t.Touches(account.ID) {
			matched = append(matched, t)
		}
	}

	// Creation timestamp breaks same-day ties so replay order is
	// deterministic regardless of input order.
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.Before(matched[j].Date)
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	balance := decimal.Zero
	for _, t := range matched {
		p, _ := t.Double()
		isDebit := p.DebitAccountID == account.ID

		debit := decimal.Zero
		credit := decimal.Zero
		counter := p.DebitAccountID
		if isDebit {
			debit = t.Amount
			counter = p.CreditAccountID
		} else {
			credit = t.Amount
		}

		if account.NormalBalance == model.SideDebit {
			balance = balance.Add(debit).Sub(credit)
		} else {
			balance = balance.Add(credit).Sub(debit)
		}

		// Raw legs, never netted against the sign convention.
		ledger.TotalDebits = ledger.TotalDebits.Add(debit)
		ledger.TotalCredits = ledger.TotalCredits.Add(credit)

		ledger.Entries = append(ledger.Entries, Entry{
			TransactionID:  t.ID,
			Date:           t.Date,
			Description:    t.Description,
			CounterAccount: counter,
			Debit:          debit,
			Credit:         credit,
			Balance:        balance,
		})
	}

	ledger.ClosingBalance = balance
	return ledger
}

package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/balancebook-dev/balancebook/internal/model"
)

// balanceEpsilon absorbs rounding noise, not real imbalance. One cent.
var balanceEpsilon = decimal.New(1, -2)

// TrialBalanceRow places one account's closing balance in exactly one
// column. A balance running against the account's normal side is
// flipped to the opposite column as a positive magnitude (contra
// behavior), never shown as a negative figure.
type TrialBalanceRow struct {
	AccountID   int               `json:"accountId"`
	AccountCode string            `json:"accountCode"`
	AccountName string            `json:"accountName"`
	AccountType model.AccountType `json:"accountType"`
	Debit       decimal.Decimal   `json:"debit"`
	Credit      decimal.Decimal   `json:"credit"`
}

// TrialBalance lists every active account with ledger activity and the
// column totals used to confirm the books balance.
type TrialBalance struct {
	Rows         []TrialBalanceRow `json:"rows"`
	TotalDebits  decimal.Decimal   `json:"totalDebits"`
	TotalCredits decimal.Decimal   `json:"totalCredits"`
	IsBalanced   bool              `json:"isBalanced"`
	Difference   decimal.Decimal   `json:"difference"` // reported even when balanced
}

// BuildTrialBalance builds a ledger for every active account and folds
// the closing balances into debit/credit columns, sorted by account
// code.
func BuildTrialBalance(accounts []model.Account, txns []model.Transaction) TrialBalance {
	tb := TrialBalance{
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
		Difference:   decimal.Zero,
	}

	for _, acct := range accounts {
		if !acct.IsActive {
			continue
		}
		led := Build(acct, txns)
		if len(led.Entries) == 0 {
			continue
		}

		row := TrialBalanceRow{
			AccountID:   acct.ID,
			AccountCode: acct.Code,
			AccountName: acct.Name,
			AccountType: acct.Type,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		}

		bal := led.ClosingBalance
		onNormalSide := !bal.IsNegative()
		switch {
		case acct.NormalBalance == model.SideDebit && onNormalSide:
			row.Debit = bal
		case acct.NormalBalance == model.SideDebit:
			row.Credit = bal.Abs()
		case onNormalSide:
			row.Credit = bal
		default:
			row.Debit = bal.Abs()
		}

		tb.Rows = append(tb.Rows, row)
		tb.TotalDebits = tb.TotalDebits.Add(row.Debit)
		tb.TotalCredits = tb.TotalCredits.Add(row.Credit)
	}

	sort.Slice(tb.Rows, func(i, j int) bool {
		return tb.Rows[i].AccountCode < tb.Rows[j].AccountCode
	})

	tb.Difference = tb.TotalDebits.Sub(tb.TotalCredits)
	tb.IsBalanced = tb.Difference.Abs().LessThan(balanceEpsilon)
	return tb
}

package statement

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/balancebook-dev/balancebook/internal/journal"
	"github.com/balancebook-dev/balancebook/internal/model"
)

// CashFlow is the period statement of cash movements split into the
// three conventional activities.
type CashFlow struct {
	Start          time.Time       `json:"start"`
	End            time.Time       `json:"end"`
	Operating      decimal.Decimal `json:"operating"`
	Investing      decimal.Decimal `json:"investing"`
	Financing      decimal.Decimal `json:"financing"`
	NetCashFlow    decimal.Decimal `json:"netCashFlow"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// BuildCashFlow computes the cash flow statement over start..end. The
// opening balance is the cumulative net cash flow of everything before
// the period start.
func BuildCashFlow(accounts []model.Account, txns []model.Transaction, start, end time.Time) CashFlow {
	clean := journal.Clean(txns)

	types := make(map[int]model.AccountType, len(accounts))
	for _, a := range accounts {
		types[a.ID] = a.Type
	}

	cf := CashFlow{Start: start, End: end}
	cf.Operating, cf.Investing, cf.Financing = activities(journal.Between(clean, start, end), types)
	cf.NetCashFlow = cf.Operating.Add(cf.Investing).Add(cf.Financing)

	// Everything strictly before the period start.
	opOpen, invOpen, finOpen := activities(journal.Through(clean, start.AddDate(0, 0, -1)), types)
	cf.OpeningBalance = opOpen.Add(invOpen).Add(finOpen)
	cf.ClosingBalance = cf.OpeningBalance.Add(cf.NetCashFlow)
	return cf
}

func activities(txns []model.Transaction, types map[int]model.AccountType) (operating, investing, financing decimal.Decimal) {
	s := summarize(txns)
	operating = s.TotalEarn.Sub(s.TotalOpex).Sub(s.TotalVar).Sub(s.TotalTax)
	investing = s.TotalCapex.Neg()

	// Financing nets FIN transactions by direction: debiting an asset
	// brings cash in, crediting an asset pays cash out. Legacy rows
	// carry no accounts and are treated as outflows, matching their
	// expense treatment on the income statement.
	financing = decimal.Zero
	for _, t := range txns {
		if t.Category != model.CategoryFin {
			continue
		}
		p, ok := t.Double()
		if !ok {
			financing = financing.Sub(t.Amount)
			continue
		}
		if types[p.DebitAccountID] == model.AccountTypeAsset {
			financing = financing.Add(t.Amount)
		} else {
			financing = financing.Sub(t.Amount)
		}
	}
	return operating, investing, financing
}

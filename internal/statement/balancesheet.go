package statement

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/balancebook-dev/balancebook/internal/journal"
	"github.com/balancebook-dev/balancebook/internal/ledger"
	"github.com/balancebook-dev/balancebook/internal/model"
)

// AssetsSection splits asset balances into cash-like and fixed-asset
// buckets.
type AssetsSection struct {
	Cash          decimal.Decimal `json:"cash"`
	PropertyValue decimal.Decimal `json:"propertyValue"`
	TotalAssets   decimal.Decimal `json:"totalAssets"`
}

// LiabilitiesSection aggregates liability balances.
type LiabilitiesSection struct {
	Loans            decimal.Decimal `json:"loans"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
}

// EquitySection is recorded capital plus cumulative retained earnings.
type EquitySection struct {
	Capital          decimal.Decimal `json:"capital"`
	RetainedEarnings decimal.Decimal `json:"retainedEarnings"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
}

// BalanceSheet is the point-in-time statement as of one date. Callers
// check |totalAssets - (totalLiabilities + totalEquity)| < 0.01.
type BalanceSheet struct {
	AsOf        time.Time          `json:"asOf"`
	Assets      AssetsSection      `json:"assets"`
	Liabilities LiabilitiesSection `json:"liabilities"`
	Equity      EquitySection      `json:"equity"`
}

// cashKeywords marks accounts treated as cash-like when splitting the
// assets section. Name matching is a convention, not a guarantee.
var cashKeywords = []string{"cash", "bank", "kas", "checking", "savings"}

func cashLike(acct model.Account) bool {
	name := strings.ToLower(acct.Name)
	for _, kw := range cashKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// BuildBalanceSheet computes the balance sheet from all transactions
// dated on or before asOf. Unlike the period statements it ignores any
// period start: balance sheets are cumulative to date. Capital is the
// business's recorded capital investment.
func BuildBalanceSheet(accounts []model.Account, txns []model.Transaction, asOf time.Time, capital decimal.Decimal) BalanceSheet {
	cumulative := journal.Through(journal.Clean(txns), asOf)

	bs := BalanceSheet{
		AsOf: asOf,
		Assets: AssetsSection{
			Cash:          decimal.Zero,
			PropertyValue: decimal.Zero,
		},
		Liabilities: LiabilitiesSection{
			Loans: decimal.Zero,
		},
		Equity: EquitySection{
			Capital: capital,
		},
	}

	for _, acct := range accounts {
		if !acct.IsActive {
			continue
		}
		switch acct.Type {
		case model.AccountTypeAsset:
			bal := ledger.Build(acct, cumulative).ClosingBalance
			if cashLike(acct) {
				bs.Assets.Cash = bs.Assets.Cash.Add(bal)
			} else {
				bs.Assets.PropertyValue = bs.Assets.PropertyValue.Add(bal)
			}
		case model.AccountTypeLiability:
			bal := ledger.Build(acct, cumulative).ClosingBalance
			bs.Liabilities.Loans = bs.Liabilities.Loans.Add(bal)
		}
	}

	bs.Equity.RetainedEarnings = summarize(cumulative).NetProfit

	bs.Assets.TotalAssets = bs.Assets.Cash.Add(bs.Assets.PropertyValue)
	bs.Liabilities.TotalLiabilities = bs.Liabilities.Loans
	bs.Equity.TotalEquity = bs.Equity.Capital.Add(bs.Equity.RetainedEarnings)
	return bs
}

// Package statement derives the three standard financial statements
// from a clean transaction stream: income statement, balance sheet,
// and cash flow.
package statement

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/balancebook-dev/balancebook/internal/journal"
	"github.com/balancebook-dev/balancebook/internal/model"
)

// Summary is the income statement over one period: category totals and
// the derived profit lines. Margins are nil (not zero) when there is no
// revenue, so callers can render "not meaningful" instead of 0%.
type Summary struct {
	TotalEarn  decimal.Decimal `json:"totalEarn"`
	TotalVar   decimal.Decimal `json:"totalVar"`
	TotalOpex  decimal.Decimal `json:"totalOpex"`
	TotalCapex decimal.Decimal `json:"totalCapex"`
	TotalTax   decimal.Decimal `json:"totalTax"`
	TotalFin   decimal.Decimal `json:"totalFin"`

	GrossProfit     decimal.Decimal `json:"grossProfit"`
	OperatingIncome decimal.Decimal `json:"operatingIncome"`
	EBIT            decimal.Decimal `json:"ebit"`
	EBT             decimal.Decimal `json:"ebt"`
	NetProfit       decimal.Decimal `json:"netProfit"`

	GrossMargin     *decimal.Decimal `json:"grossMargin"`
	OperatingMargin *decimal.Decimal `json:"operatingMargin"`
	NetMargin       *decimal.Decimal `json:"netMargin"`
}

// Summarize computes the income statement over start..end inclusive.
// Legacy transactions count toward category totals even though they
// have no per-account ledger projection.
func Summarize(txns []model.Transaction, start, end time.Time) Summary {
	return summarize(journal.Between(journal.Clean(txns), start, end))
}

func summarize(txns []model.Transaction) Summary {
	s := Summary{
		TotalEarn:  decimal.Zero,
		TotalVar:   decimal.Zero,
		TotalOpex:  decimal.Zero,
		TotalCapex: decimal.Zero,
		TotalTax:   decimal.Zero,
		TotalFin:   decimal.Zero,
	}

	for _, t := range txns {
		switch t.Category {
		case model.CategoryEarn:
			s.TotalEarn = s.TotalEarn.Add(t.Amount)
		case model.CategoryVar:
			s.TotalVar = s.TotalVar.Add(t.Amount)
		case model.CategoryOpex:
			s.TotalOpex = s.TotalOpex.Add(t.Amount)
		case model.CategoryCapex:
			s.TotalCapex = s.TotalCapex.Add(t.Amount)
		case model.CategoryTax:
			s.TotalTax = s.TotalTax.Add(t.Amount)
		case model.CategoryFin:
			s.TotalFin = s.TotalFin.Add(t.Amount)
		}
	}

	s.GrossProfit = s.TotalEarn.Sub(s.TotalVar)
	s.OperatingIncome = s.GrossProfit.Sub(s.TotalOpex)
	s.EBIT = s.OperatingIncome.Sub(s.TotalCapex)
	s.EBT = s.EBIT.Sub(s.TotalFin)
	s.NetProfit = s.EBT.Sub(s.TotalTax)

	s.GrossMargin = Margin(s.GrossProfit, s.TotalEarn)
	s.OperatingMargin = Margin(s.OperatingIncome, s.TotalEarn)
	s.NetMargin = Margin(s.NetProfit, s.TotalEarn)
	return s
}

// Margin returns profit/revenue as a percentage, or nil when revenue is
// zero. Never divides by zero.
func Margin(profit, revenue decimal.Decimal) *decimal.Decimal {
	if revenue.IsZero() {
		return nil
	}
	m := profit.Div(revenue).Mul(decimal.NewFromInt(100))
	return &m
}

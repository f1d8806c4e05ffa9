// Package scenario applies what-if assumptions to a baseline income
// statement and projects monthly results forward.
package scenario

import (
	"github.com/shopspring/decimal"

	"github.com/balancebook-dev/balancebook/internal/statement"
)

var hundred = decimal.NewFromInt(100)

// Assumptions are percentage adjustments applied to a baseline. A zero
// value everywhere reproduces the baseline exactly.
type Assumptions struct {
	RevenueGrowth  decimal.Decimal `json:"revenueGrowth" yaml:"revenue_growth"`
	CogsGrowth     decimal.Decimal `json:"cogsGrowth" yaml:"cogs_growth"`
	OpexGrowth     decimal.Decimal `json:"opexGrowth" yaml:"opex_growth"`
	InterestGrowth decimal.Decimal `json:"interestGrowth" yaml:"interest_growth"`
	TaxRate        decimal.Decimal `json:"taxRate" yaml:"tax_rate"`
}

// Result is a full income-statement shape under one assumption set.
type Result struct {
	Revenue         decimal.Decimal  `json:"revenue"`
	Cogs            decimal.Decimal  `json:"cogs"`
	GrossProfit     decimal.Decimal  `json:"grossProfit"`
	Opex            decimal.Decimal  `json:"opex"`
	OperatingIncome decimal.Decimal  `json:"operatingIncome"`
	Interest        decimal.Decimal  `json:"interest"`
	EBT             decimal.Decimal  `json:"ebt"`
	Tax             decimal.Decimal  `json:"tax"`
	NetIncome       decimal.Decimal  `json:"netIncome"`
	GrossMargin     *decimal.Decimal `json:"grossMargin"`
	OperatingMargin *decimal.Decimal `json:"operatingMargin"`
	NetMargin       *decimal.Decimal `json:"netMargin"`
}

// Baseline converts an actual income statement into the scenario shape.
func Baseline(s statement.Summary) Result {
	r := Result{
		Revenue:  s.TotalEarn,
		Cogs:     s.TotalVar,
		Opex:     s.TotalOpex,
		Interest: s.TotalFin,
		Tax:      s.TotalTax,
	}
	return derive(r)
}

// Apply grows each baseline line by its assumption and recomputes the
// derived lines. Tax is recomputed from the rate only when a nonzero
// rate is supplied; otherwise the baseline's absolute tax figure is
// carried forward unscaled.
func Apply(baseline Result, a Assumptions) Result {
	r := Result{
		Revenue:  grow(baseline.Revenue, a.RevenueGrowth),
		Cogs:     grow(baseline.Cogs, a.CogsGrowth),
		Opex:     grow(baseline.Opex, a.OpexGrowth),
		Interest: grow(baseline.Interest, a.InterestGrowth),
	}

	r.GrossProfit = r.Revenue.Sub(r.Cogs)
	r.OperatingIncome = r.GrossProfit.Sub(r.Opex)
	r.EBT = r.OperatingIncome.Sub(r.Interest)

	if a.TaxRate.IsPositive() {
		tax := r.EBT.Mul(a.TaxRate).Div(hundred)
		if tax.IsNegative() {
			tax = decimal.Zero
		}
		r.Tax = tax
	} else {
		r.Tax = baseline.Tax
	}

	r.NetIncome = r.EBT.Sub(r.Tax)
	r.GrossMargin = statement.Margin(r.GrossProfit, r.Revenue)
	r.OperatingMargin = statement.Margin(r.OperatingIncome, r.Revenue)
	r.NetMargin = statement.Margin(r.NetIncome, r.Revenue)
	return r
}

func derive(r Result) Result {
	r.GrossProfit = r.Revenue.Sub(r.Cogs)
	r.OperatingIncome = r.GrossProfit.Sub(r.Opex)
	r.EBT = r.OperatingIncome.Sub(r.Interest)
	r.NetIncome = r.EBT.Sub(r.Tax)
	r.GrossMargin = statement.Margin(r.GrossProfit, r.Revenue)
	r.OperatingMargin = statement.Margin(r.OperatingIncome, r.Revenue)
	r.NetMargin = statement.Margin(r.NetIncome, r.Revenue)
	return r
}

// grow returns base * (1 + pct/100).
func grow(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(decimal.NewFromInt(1).Add(pct.Div(hundred)))
}

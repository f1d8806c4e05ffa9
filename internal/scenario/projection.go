package scenario

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/balancebook-dev/balancebook/internal/journal"
	"github.com/balancebook-dev/balancebook/internal/model"
	"github.com/balancebook-dev/balancebook/internal/statement"
)

// ProjectionMonth is one projected future month.
type ProjectionMonth struct {
	Month         string          `json:"month"` // "2006-01"
	Revenue       decimal.Decimal `json:"revenue"`
	NetIncome     decimal.Decimal `json:"netIncome"`
	CumulativeNet decimal.Decimal `json:"cumulativeNet"`
}

const monthLabel = "2006-01"

// Project averages historical monthly revenue and net income, then
// compounds the monthly revenue growth factor forward for the given
// number of months. Net income is scaled by the same revenue factor
// rather than modeled from independently grown cost lines; this is a
// deliberate simplification.
func Project(txns []model.Transaction, a Assumptions, months int) []ProjectionMonth {
	clean := journal.Clean(txns)

	byMonth := make(map[string][]model.Transaction)
	for _, t := range clean {
		key := t.Date.Format(monthLabel)
		byMonth[key] = append(byMonth[key], t)
	}

	avgRevenue := decimal.Zero
	avgNet := decimal.Zero
	lastMonth := time.Time{}
	if len(byMonth) > 0 {
		keys := make([]string, 0, len(byMonth))
		for k := range byMonth {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		totalRevenue := decimal.Zero
		totalNet := decimal.Zero
		for _, k := range keys {
			s := statement.Summarize(byMonth[k],
				time.Time{}, time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC))
			totalRevenue = totalRevenue.Add(s.TotalEarn)
			totalNet = totalNet.Add(s.NetProfit)
		}

		n := decimal.NewFromInt(int64(len(keys)))
		avgRevenue = totalRevenue.Div(n)
		avgNet = totalNet.Div(n)
		lastMonth, _ = time.Parse(monthLabel, keys[len(keys)-1])
	}

	// Monthly compounding factor from the annual revenue growth rate.
	monthlyRate := a.RevenueGrowth.Div(hundred).Div(decimal.NewFromInt(12))
	base := decimal.NewFromInt(1).Add(monthlyRate)

	var result []ProjectionMonth
	cumulative := decimal.Zero
	for i := 1; i <= months; i++ {
		factor := base.Pow(decimal.NewFromInt(int64(i)))
		revenue := avgRevenue.Mul(factor)
		net := avgNet.Mul(factor)
		cumulative = cumulative.Add(net)

		label := lastMonth.AddDate(0, i, 0).Format(monthLabel)
		if lastMonth.IsZero() {
			label = time.Now().AddDate(0, i, 0).Format(monthLabel)
		}

		result = append(result, ProjectionMonth{
			Month:         label,
			Revenue:       revenue,
			NetIncome:     net,
			CumulativeNet: cumulative,
		})
	}
	return result
}

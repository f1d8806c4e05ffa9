package scenario

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balancebook-dev/balancebook/internal/model"
)

func sale(y int, m time.Month, d int, amount string) model.Transaction {
	return model.Transaction{
		Date:     time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Category: model.CategoryEarn,
		Amount:   dec(amount),
		Posting:  model.DoublePosting{DebitAccountID: 11, CreditAccountID: 41},
	}
}

func TestProject_FlatWithZeroGrowth(t *testing.T) {
	txns := []model.Transaction{
		sale(2025, 1, 10, "1000"),
		sale(2025, 2, 10, "2000"),
	}

	months := Project(txns, Assumptions{}, 3)
	require.Len(t, months, 3)

	// Average monthly revenue is 1500; zero growth keeps it flat.
	for _, m := range months {
		assert.True(t, m.Revenue.Equal(dec("1500")))
		assert.True(t, m.NetIncome.Equal(dec("1500")))
	}

	assert.True(t, months[0].CumulativeNet.Equal(dec("1500")))
	assert.True(t, months[1].CumulativeNet.Equal(dec("3000")))
	assert.True(t, months[2].CumulativeNet.Equal(dec("4500")))

	// Labels continue from the last historical month.
	assert.Equal(t, "2025-03", months[0].Month)
	assert.Equal(t, "2025-04", months[1].Month)
	assert.Equal(t, "2025-05", months[2].Month)
}

func TestProject_CompoundingGrowth(t *testing.T) {
	txns := []model.Transaction{
		sale(2025, 1, 10, "1200"),
	}

	// 12% annual -> 1% monthly, compounding.
	months := Project(txns, Assumptions{RevenueGrowth: dec("12")}, 2)
	require.Len(t, months, 2)

	assert.True(t, months[0].Revenue.Equal(dec("1212")), "got %s", months[0].Revenue)
	assert.True(t, months[1].Revenue.Equal(dec("1224.12")), "got %s", months[1].Revenue)

	// Net income is scaled by the revenue factor.
	assert.True(t, months[0].NetIncome.Equal(dec("1212")))
}

func TestProject_NoHistory(t *testing.T) {
	months := Project(nil, Assumptions{RevenueGrowth: dec("12")}, 2)
	require.Len(t, months, 2)
	for _, m := range months {
		assert.True(t, m.Revenue.IsZero())
		assert.True(t, m.NetIncome.IsZero())
		assert.True(t, m.CumulativeNet.IsZero())
	}
}

func TestProject_ZeroMonths(t *testing.T) {
	assert.Empty(t, Project(nil, Assumptions{}, 0))
}

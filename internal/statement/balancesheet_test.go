package statement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balancebook-dev/balancebook/internal/model"
)

var (
	bsCash = model.Account{
		ID: 11, Code: "1100", Name: "Cash",
		Type: model.AccountTypeAsset, NormalBalance: model.SideDebit,
		ParentID: 1, IsActive: true,
	}
	bsEquipment = model.Account{
		ID: 14, Code: "1400", Name: "Equipment",
		Type: model.AccountTypeAsset, NormalBalance: model.SideDebit,
		ParentID: 1, IsActive: true,
	}
	bsLoans = model.Account{
		ID: 21, Code: "2100", Name: "Loans Payable",
		Type: model.AccountTypeLiability, NormalBalance: model.SideCredit,
		ParentID: 2, IsActive: true,
	}
	bsSales = model.Account{
		ID: 41, Code: "4100", Name: "Sales Revenue",
		Type: model.AccountTypeRevenue, NormalBalance: model.SideCredit,
		ParentID: 4, IsActive: true,
	}
	bsOpex = model.Account{
		ID: 52, Code: "5200", Name: "Operating Expenses",
		Type: model.AccountTypeExpense, NormalBalance: model.SideDebit,
		ParentID: 5, IsActive: true,
	}

	bsAccounts = []model.Account{bsCash, bsEquipment, bsLoans, bsSales, bsOpex}
)

func entry(d time.Time, category model.Category, debit, credit int, amount string) model.Transaction {
	return model.Transaction{
		Date:     d,
		Category: category,
		Amount:   dec(amount),
		Posting:  model.DoublePosting{DebitAccountID: debit, CreditAccountID: credit},
	}
}

func TestBalanceSheet_AccountingEquation(t *testing.T) {
	txns := []model.Transaction{
		entry(date(2025, 1, 5), model.CategoryEarn, bsCash.ID, bsSales.ID, "1000"),
		entry(date(2025, 1, 8), model.CategoryOpex, bsOpex.ID, bsCash.ID, "200"),
		entry(date(2025, 1, 12), model.CategoryTax, bsOpex.ID, bsCash.ID, "50"),
		entry(date(2025, 1, 20), model.CategoryFin, bsOpex.ID, bsCash.ID, "25"),
	}

	bs := BuildBalanceSheet(bsAccounts, txns, date(2025, 1, 31), dec("0"))

	assert.True(t, bs.Assets.Cash.Equal(dec("725")))
	assert.True(t, bs.Assets.TotalAssets.Equal(dec("725")))
	assert.True(t, bs.Liabilities.TotalLiabilities.IsZero())
	assert.True(t, bs.Equity.RetainedEarnings.Equal(dec("725")))

	diff := bs.Assets.TotalAssets.Sub(bs.Liabilities.TotalLiabilities.Add(bs.Equity.TotalEquity))
	assert.True(t, diff.Abs().LessThan(dec("0.01")), "accounting equation must hold")
}

func TestBalanceSheet_CashVsPropertySplit(t *testing.T) {
	txns := []model.Transaction{
		entry(date(2025, 1, 5), model.CategoryEarn, bsCash.ID, bsSales.ID, "1000"),
		entry(date(2025, 1, 10), model.CategoryCapex, bsEquipment.ID, bsCash.ID, "800"),
	}

	bs := BuildBalanceSheet(bsAccounts, txns, date(2025, 1, 31), dec("0"))

	assert.True(t, bs.Assets.Cash.Equal(dec("200")))
	assert.True(t, bs.Assets.PropertyValue.Equal(dec("800")))
	assert.True(t, bs.Assets.TotalAssets.Equal(dec("1000")))
}

func TestBalanceSheet_CumulativeToDate(t *testing.T) {
	txns := []model.Transaction{
		entry(date(2024, 11, 5), model.CategoryEarn, bsCash.ID, bsSales.ID, "400"),
		entry(date(2025, 1, 5), model.CategoryEarn, bsCash.ID, bsSales.ID, "600"),
		entry(date(2025, 3, 1), model.CategoryEarn, bsCash.ID, bsSales.ID, "999"),
	}

	// Point-in-time: everything up to the as-of date counts, nothing
	// after it.
	bs := BuildBalanceSheet(bsAccounts, txns, date(2025, 1, 31), dec("0"))
	assert.True(t, bs.Assets.Cash.Equal(dec("1000")))
}

func TestBalanceSheet_LoansFromLiabilities(t *testing.T) {
	txns := []model.Transaction{
		entry(date(2025, 1, 5), model.CategoryFin, bsCash.ID, bsLoans.ID, "2000"),
	}

	bs := BuildBalanceSheet(bsAccounts, txns, date(2025, 1, 31), dec("0"))
	assert.True(t, bs.Liabilities.Loans.Equal(dec("2000")))
	assert.True(t, bs.Assets.Cash.Equal(dec("2000")))
}

func TestBalanceSheet_RecordedCapital(t *testing.T) {
	bs := BuildBalanceSheet(bsAccounts, nil, date(2025, 1, 31), dec("5000"))
	require.True(t, bs.Equity.Capital.Equal(dec("5000")))
	assert.True(t, bs.Equity.TotalEquity.Equal(dec("5000")))
	assert.True(t, bs.Assets.TotalAssets.IsZero())
}

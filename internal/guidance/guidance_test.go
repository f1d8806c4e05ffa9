package guidance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balancebook-dev/balancebook/internal/accounts"
	"github.com/balancebook-dev/balancebook/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// The default chart has cash (11), inventory (13), capital (31),
// sales (41), COGS (51) and friends.
var chart = accounts.NewService(accounts.DefaultChart())

func candidate(name string, category model.Category, debit, credit int, amount string) model.Transaction {
	return model.Transaction{
		Date:     time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Category: category,
		Name:     name,
		Amount:   dec(amount),
		Posting:  model.DoublePosting{DebitAccountID: debit, CreditAccountID: credit},
	}
}

func hasError(g Guidance, code ErrorCode) bool {
	for _, e := range g.Errors {
		if e.Code == code {
			return true
		}
	}
	return false
}

func hasWarning(g Guidance, code WarningCode) bool {
	for _, w := range g.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

func TestEvaluate_SameAccount(t *testing.T) {
	g := Evaluate(chart, candidate("transfer", model.CategoryOpex, 11, 11, "100"))
	assert.False(t, g.Valid)
	assert.True(t, hasError(g, CodeSameAccount))
}

func TestEvaluate_NonPositiveAmount(t *testing.T) {
	g := Evaluate(chart, candidate("beli", model.CategoryOpex, 52, 11, "0"))
	assert.False(t, g.Valid)
	assert.True(t, hasError(g, CodeInvalidAmount))

	g = Evaluate(chart, candidate("beli", model.CategoryOpex, 52, 11, "-5"))
	assert.True(t, hasError(g, CodeInvalidAmount))
}

func TestEvaluate_UnknownAccount(t *testing.T) {
	g := Evaluate(chart, candidate("x", model.CategoryOpex, 9999, 11, "100"))
	assert.False(t, g.Valid)
	assert.True(t, hasError(g, CodeUnknownAccount))
}

func TestEvaluate_InvalidCombination(t *testing.T) {
	// Debiting a liability while crediting revenue is not in the table.
	g := Evaluate(chart, candidate("aneh", model.CategoryEarn, 21, 41, "100"))
	assert.False(t, g.Valid)
	assert.True(t, hasError(g, CodeInvalidCombination))
}

func TestEvaluate_ValidPairs(t *testing.T) {
	cases := []struct {
		name    string
		debit   int
		credit  int
		pattern string
	}{
		{"cash sale", 11, 41, "sale"},
		{"expense paid", 52, 11, "cash_expense"},
		{"loan repaid", 21, 11, "debt_repayment"},
		{"owner takes cash", 32, 11, "owner_draw"},
		{"owner invests", 11, 31, "capital_injection"},
		{"loan received", 11, 21, "loan_proceeds"},
		{"bank to cash", 11, 12, "transfer"},
	}

	for _, tc := range cases {
		g := Evaluate(chart, candidate("entry", model.CategoryOpex, tc.debit, tc.credit, "100"))
		assert.True(t, g.Valid, "%s should be valid: %v", tc.name, g.Errors)
		require.NotNil(t, g.Pattern, tc.name)
		assert.Equal(t, tc.pattern, g.Pattern.Key, tc.name)
	}
}

func TestEvaluate_ReversalWarnsButValid(t *testing.T) {
	// Debiting revenue (a sales return) is valid but unusual.
	g := Evaluate(chart, candidate("retur", model.CategoryEarn, 41, 11, "100"))
	assert.True(t, g.Valid)
	assert.True(t, hasWarning(g, WarnUnusualCombination))

	// Crediting an expense likewise.
	g = Evaluate(chart, candidate("koreksi", model.CategoryOpex, 11, 52, "100"))
	assert.True(t, g.Valid)
	assert.True(t, hasWarning(g, WarnUnusualCombination))
}

func TestEvaluate_PatternFromName(t *testing.T) {
	// Name keywords win over the account pair: "setoran modal" names a
	// capital injection even on a plain cash/sales pair.
	g := Evaluate(chart, candidate("Setoran modal awal", model.CategoryFin, 11, 41, "100"))
	require.NotNil(t, g.Pattern)
	assert.Equal(t, "capital_injection", g.Pattern.Key)
}

func TestEvaluate_MatchingPrincipleWarning(t *testing.T) {
	// Sale credited to revenue, inventory exists, no stock ids
	// attached: advisory warning with a COGS suggestion.
	g := Evaluate(chart, candidate("Penjualan", model.CategoryEarn, 11, 41, "100"))
	assert.True(t, g.Valid, "warning must not block the sale")
	require.True(t, hasWarning(g, WarnMissingCOGS))

	for _, w := range g.Warnings {
		if w.Code != WarnMissingCOGS {
			continue
		}
		require.NotNil(t, w.Suggestion)
		cogs, _ := chart.Get(w.Suggestion.DebitAccountID)
		inventory, _ := chart.Get(w.Suggestion.CreditAccountID)
		assert.Equal(t, model.AccountTypeExpense, cogs.Type)
		assert.Equal(t, "Cost of Goods Sold", cogs.Name)
		assert.Equal(t, "Inventory", inventory.Name)
	}
}

func TestEvaluate_NoWarningWhenStockAttached(t *testing.T) {
	txn := candidate("Penjualan", model.CategoryEarn, 11, 41, "100")
	txn.Meta = &model.Meta{SoldStockIDs: []int{12}}

	g := Evaluate(chart, txn)
	assert.True(t, g.Valid)
	assert.False(t, hasWarning(g, WarnMissingCOGS))
}

func TestEvaluate_NoWarningWithoutInventoryAccount(t *testing.T) {
	bare := accounts.NewService([]model.Account{
		{ID: 11, Code: "1100", Name: "Cash", Type: model.AccountTypeAsset, NormalBalance: model.SideDebit, ParentID: 1, IsActive: true},
		{ID: 41, Code: "4100", Name: "Sales Revenue", Type: model.AccountTypeRevenue, NormalBalance: model.SideCredit, ParentID: 4, IsActive: true},
	})

	g := Evaluate(bare, candidate("Penjualan", model.CategoryEarn, 11, 41, "100"))
	assert.True(t, g.Valid)
	assert.False(t, hasWarning(g, WarnMissingCOGS))
}

func TestEvaluate_LegacyOnlyAmountCheck(t *testing.T) {
	legacy := model.Transaction{
		Date:     time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Category: model.CategoryOpex,
		Amount:   dec("100"),
		Posting:  model.LegacyPosting{Account: "Kas kecil"},
	}

	g := Evaluate(chart, legacy)
	assert.True(t, g.Valid)
	assert.Nil(t, g.Pattern)
	assert.Empty(t, g.Warnings)
}

package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balancebook-dev/balancebook/internal/accounts"
	"github.com/balancebook-dev/balancebook/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "book.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db)
}

func TestAccountsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	chart := accounts.DefaultChart()

	require.NoError(t, s.SaveAccounts(chart))

	got, err := s.ListAccounts()
	require.NoError(t, err)
	require.Len(t, got, len(chart))

	// ListAccounts orders by code; the default chart is already in
	// code order, sorted for comparison.
	byID := make(map[int]model.Account, len(got))
	for _, a := range got {
		byID[a.ID] = a
	}
	for _, want := range chart {
		stored, ok := byID[want.ID]
		require.True(t, ok, "account %d missing", want.ID)
		assert.Equal(t, want, stored)
	}
}

func TestSaveAccountsReplaces(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.SaveAccounts(accounts.DefaultChart()))

	small := []model.Account{
		{ID: 11, Code: "1100", Name: "Cash", Type: model.AccountTypeAsset, NormalBalance: model.SideDebit, ParentID: 1, IsActive: true},
	}
	require.NoError(t, s.SaveAccounts(small))

	got, err := s.ListAccounts()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1100", got[0].Code)
}

func TestTransactionRoundTrip(t *testing.T) {
	s := openTestStore(t)

	sold := model.Transaction{
		Date:        time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
		Category:    model.CategoryEarn,
		Name:        "Penjualan kopi",
		Description: "two bags",
		Amount:      decimal.RequireFromString("150.50"),
		CreatedAt:   time.Date(2025, 2, 10, 9, 30, 0, 0, time.UTC),
		Posting:     model.DoublePosting{DebitAccountID: 11, CreditAccountID: 41},
		Meta: &model.Meta{
			SoldStockIDs:  []int{3, 7},
			UnitBreakdown: &model.UnitBreakdown{UnitPrice: decimal.RequireFromString("75.25"), Quantity: 2},
		},
	}

	id, err := s.InsertTransaction(sold)
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	legacy := model.Transaction{
		Date:      time.Date(2025, 2, 11, 0, 0, 0, 0, time.UTC),
		Category:  model.CategoryOpex,
		Name:      "Listrik",
		Amount:    decimal.RequireFromString("40"),
		CreatedAt: time.Date(2025, 2, 11, 8, 0, 0, 0, time.UTC),
		Posting:   model.LegacyPosting{Account: "Kas kecil"},
	}
	_, err = s.InsertTransaction(legacy)
	require.NoError(t, err)

	got, err := s.ListTransactions()
	require.NoError(t, err)
	require.Len(t, got, 2)

	first := got[0]
	assert.Equal(t, "Penjualan kopi", first.Name)
	assert.True(t, first.Amount.Equal(sold.Amount))
	dp, ok := first.Double()
	require.True(t, ok)
	assert.Equal(t, 11, dp.DebitAccountID)
	assert.Equal(t, 41, dp.CreditAccountID)
	require.NotNil(t, first.Meta)
	assert.Equal(t, []int{3, 7}, first.Meta.SoldStockIDs)
	require.NotNil(t, first.Meta.UnitBreakdown)
	assert.True(t, first.Meta.UnitBreakdown.UnitPrice.Equal(decimal.RequireFromString("75.25")))
	assert.Equal(t, 2, first.Meta.UnitBreakdown.Quantity)

	second := got[1]
	lp, ok := second.Posting.(model.LegacyPosting)
	require.True(t, ok)
	assert.Equal(t, "Kas kecil", lp.Account)
	assert.Nil(t, second.Meta)
}

func TestSoftDelete(t *testing.T) {
	s := openTestStore(t)

	id, err := s.InsertTransaction(model.Transaction{
		Date:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Category: model.CategoryOpex,
		Name:     "Sewa",
		Amount:   decimal.RequireFromString("300"),
		Posting:  model.DoublePosting{DebitAccountID: 53, CreditAccountID: 11},
	})
	require.NoError(t, err)

	require.NoError(t, s.SoftDeleteTransaction(id))

	got, err := s.ListTransactions()
	require.NoError(t, err)
	require.Len(t, got, 1, "soft delete keeps the row")
	assert.True(t, got[0].Deleted())

	// Second delete and unknown ids both fail.
	assert.Error(t, s.SoftDeleteTransaction(id))
	assert.Error(t, s.SoftDeleteTransaction(999))
}

package journal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balancebook-dev/balancebook/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func txnOn(d time.Time) model.Transaction {
	return model.Transaction{
		Date:     d,
		Category: model.CategoryOpex,
		Amount:   decimal.NewFromInt(10),
		Posting:  model.DoublePosting{DebitAccountID: 52, CreditAccountID: 11},
	}
}

func TestClean_DropsSoftDeleted(t *testing.T) {
	deleted := txnOn(date(2025, 1, 5))
	now := date(2025, 2, 1)
	deleted.DeletedAt = &now

	kept := txnOn(date(2025, 1, 6))

	clean := Clean([]model.Transaction{deleted, kept})
	require.Len(t, clean, 1)
	assert.Equal(t, kept.Date, clean[0].Date)
}

func TestBetween_Inclusive(t *testing.T) {
	txns := []model.Transaction{
		txnOn(date(2025, 1, 1)),
		txnOn(date(2025, 1, 15)),
		txnOn(date(2025, 1, 31)),
		txnOn(date(2025, 2, 1)),
	}

	got := Between(txns, date(2025, 1, 1), date(2025, 1, 31))
	require.Len(t, got, 3)
	assert.Equal(t, date(2025, 1, 1), got[0].Date)
	assert.Equal(t, date(2025, 1, 31), got[2].Date)
}

func TestThrough_IgnoresPeriodStart(t *testing.T) {
	txns := []model.Transaction{
		txnOn(date(2024, 12, 1)),
		txnOn(date(2025, 1, 15)),
		txnOn(date(2025, 2, 1)),
	}

	got := Through(txns, date(2025, 1, 31))
	assert.Len(t, got, 2)
}

func TestDoubleEntry(t *testing.T) {
	legacy := model.Transaction{
		Date:     date(2025, 1, 5),
		Category: model.CategoryOpex,
		Amount:   decimal.NewFromInt(10),
		Posting:  model.LegacyPosting{Account: "Kas"},
	}

	got := DoubleEntry([]model.Transaction{legacy, txnOn(date(2025, 1, 6))})
	require.Len(t, got, 1)
	_, ok := got[0].Double()
	assert.True(t, ok)
}

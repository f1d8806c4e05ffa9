package journal

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balancebook-dev/balancebook/internal/model"
)

func sampleTransactions() []model.Transaction {
	deletedAt := time.Date(2025, 2, 1, 9, 30, 0, 0, time.UTC)
	return []model.Transaction{
		{
			ID:          1,
			Date:        date(2025, 1, 5),
			Category:    model.CategoryEarn,
			Name:        "Penjualan barang",
			Description: "Cash sale",
			Amount:      decimal.RequireFromString("1500.00"),
			CreatedAt:   time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC),
			Posting:     model.DoublePosting{DebitAccountID: 11, CreditAccountID: 41},
			Meta: &model.Meta{
				SoldStockIDs: []int{7, 9},
				UnitBreakdown: &model.UnitBreakdown{
					UnitPrice: decimal.RequireFromString("750.00"),
					Quantity:  2,
				},
			},
		},
		{
			ID:        2,
			Date:      date(2025, 1, 8),
			Category:  model.CategoryOpex,
			Name:      "Listrik",
			Amount:    decimal.RequireFromString("200.00"),
			CreatedAt: time.Date(2025, 1, 8, 14, 0, 0, 0, time.UTC),
			Posting:   model.LegacyPosting{Account: "Kas kecil"},
			DeletedAt: &deletedAt,
		},
	}
}

func TestTransactionsCSV_RoundTrip(t *testing.T) {
	txns := sampleTransactions()

	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, txns))

	got, err := ReadTransactions(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, txns[0].ID, got[0].ID)
	assert.True(t, got[0].Amount.Equal(txns[0].Amount))
	assert.Equal(t, txns[0].Posting, got[0].Posting)
	require.NotNil(t, got[0].Meta)
	assert.Equal(t, []int{7, 9}, got[0].Meta.SoldStockIDs)
	require.NotNil(t, got[0].Meta.UnitBreakdown)
	assert.Equal(t, 2, got[0].Meta.UnitBreakdown.Quantity)

	assert.Equal(t, model.LegacyPosting{Account: "Kas kecil"}, got[1].Posting)
	require.NotNil(t, got[1].DeletedAt)
	assert.True(t, got[1].Deleted())
}

func TestUnmarshalTransaction_BadCategory(t *testing.T) {
	row := MarshalTransaction(sampleTransactions()[0])
	row[colCategory] = "BOGUS"
	_, err := UnmarshalTransaction(row)
	require.Error(t, err)
}

func TestUnmarshalTransaction_MissingCredit(t *testing.T) {
	row := MarshalTransaction(sampleTransactions()[0])
	row[colCreditAcc] = ""
	_, err := UnmarshalTransaction(row)
	require.Error(t, err, "a double entry needs both account ids")
}

func TestReadTransactions_Empty(t *testing.T) {
	got, err := ReadTransactions(bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Nil(t, got)
}

// Package journal handles the transaction stream: CSV codec and the
// pre-filtering that produces a clean stream for the calculators.
package journal

import (
	"time"

	"github.com/balancebook-dev/balancebook/internal/model"
)

// Clean drops soft-deleted transactions and returns a fresh slice.
// Every calculator consumes a cleaned stream so the exclusion rule
// lives in exactly one place.
func Clean(txns []model.Transaction) []model.Transaction {
	var result []model.Transaction
	for _, t := range txns {
		if t.Deleted() {
			continue
		}
		result = append(result, t)
	}
	return result
}

// Between returns transactions with start <= date <= end (inclusive on
// both ends). Used by the period statements.
func Between(txns []model.Transaction, start, end time.Time) []model.Transaction {
	var result []model.Transaction
	for _, t := range txns {
		if t.Date.Before(start) || t.Date.After(end) {
			continue
		}
		result = append(result, t)
	}
	return result
}

// Through returns transactions with date <= asOf. The balance sheet is
// point-in-time, so it ignores any period start.
func Through(txns []model.Transaction, asOf time.Time) []model.Transaction {
	var result []model.Transaction
	for _, t := range txns {
		if t.Date.After(asOf) {
			continue
		}
		result = append(result, t)
	}
	return result
}

// DoubleEntry returns only double-entry transactions.
func DoubleEntry(txns []model.Transaction) []model.Transaction {
	var result []model.Transaction
	for _, t := range txns {
		if _, ok := t.Double(); ok {
			result = append(result, t)
		}
	}
	return result
}

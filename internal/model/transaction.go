package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the business classification of a transaction.
type Category string

const (
	CategoryEarn  Category = "EARN"  // revenue
	CategoryOpex  Category = "OPEX"  // operating expense
	CategoryVar   Category = "VAR"   // variable cost / cost of goods sold
	CategoryCapex Category = "CAPEX" // capital expenditure
	CategoryTax   Category = "TAX"   // tax payment
	CategoryFin   Category = "FIN"   // financing activity
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryEarn, CategoryOpex, CategoryVar, CategoryCapex, CategoryTax, CategoryFin:
		return true
	}
	return false
}

// Posting carries the account side of a transaction. A transaction is
// either a double-entry posting against two accounts or a legacy posting
// against a free-text label; the two cases never mix.
type Posting interface {
	isPosting()
}

// DoublePosting debits one account and credits another by the full amount.
type DoublePosting struct {
	DebitAccountID  int
	CreditAccountID int
}

func (DoublePosting) isPosting() {}

// LegacyPosting records only a free-text account label. Legacy postings
// have no per-account ledger projection but still count toward
// category-based statement totals.
type LegacyPosting struct {
	Account string
}

func (LegacyPosting) isPosting() {}

// UnitBreakdown records price-times-quantity provenance for an amount.
// Informational only.
type UnitBreakdown struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// Meta holds optional structured extras attached to a transaction.
type Meta struct {
	SoldStockIDs  []int // inventory-reduction transactions triggered by a sale
	UnitBreakdown *UnitBreakdown
}

// Transaction is the atomic unit of financial change. Amount is always
// positive; direction is carried by the posting, never by the sign.
type Transaction struct {
	ID          int
	Date        time.Time
	Category    Category
	Name        string
	Description string
	Amount      decimal.Decimal
	CreatedAt   time.Time // tie-break for same-day ordering
	Posting     Posting
	Meta        *Meta
	DeletedAt   *time.Time // soft delete; excluded from all calculations
}

// Double returns the double-entry posting, or false for legacy transactions.
func (t Transaction) Double() (DoublePosting, bool) {
	p, ok := t.Posting.(DoublePosting)
	return p, ok
}

// Deleted reports whether the transaction is soft-deleted.
func (t Transaction) Deleted() bool {
	return t.DeletedAt != nil
}

// Touches reports whether the transaction posts to the given account on
// either side.
func (t Transaction) Touches(accountID int) bool {
	p, ok := t.Double()
	if !ok {
		return false
	}
	return p.DebitAccountID == accountID || p.CreditAccountID == accountID
}

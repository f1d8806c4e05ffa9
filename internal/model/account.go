package model

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// Side is the debit or credit side of an entry.
type Side string

const (
	SideDebit  Side = "debit"
	SideCredit Side = "credit"
)

// NormalBalance returns the side on which an account of this type
// conventionally increases.
func (t AccountType) NormalBalance() Side {
	switch t {
	case AccountTypeAsset, AccountTypeExpense:
		return SideDebit
	case AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue:
		return SideCredit
	}
	// Unknown types fall back to debit so a corrupt row shows up in
	// reports instead of being silently dropped.
	return SideDebit
}

// Valid reports whether t is one of the five account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity,
		AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

// Account represents a row in the chart of accounts. Code and Type are
// immutable after creation; accounts are deactivated, never deleted.
type Account struct {
	ID              int
	Code            string // numeric string; top-level codes are multiples of 1000
	Name            string
	Type            AccountType
	NormalBalance   Side // stored explicitly to allow contra accounts
	ParentID        int  // 0 = top-level category node (not postable)
	IsActive        bool
	IsSystem        bool // system accounts cannot be deactivated
	DefaultCategory Category
	SortOrder       int
	Description     string
}

// Postable reports whether transactions may post directly to the account.
// Top-level category nodes only group their children.
func (a Account) Postable() bool {
	return a.ParentID != 0
}

package guidance

import (
	"strings"

	"github.com/balancebook-dev/balancebook/internal/model"
)

type typePair struct {
	debit  model.AccountType
	credit model.AccountType
}

// allowedPairs is the fixed table of valid (debit-type, credit-type)
// combinations. Anything outside it is an INVALID_COMBINATION, except
// reversals, which are handled before the table lookup.
var allowedPairs = map[typePair]string{
	{model.AccountTypeAsset, model.AccountTypeRevenue}:     "sale",
	{model.AccountTypeExpense, model.AccountTypeAsset}:     "cash_expense",
	{model.AccountTypeLiability, model.AccountTypeAsset}:   "debt_repayment",
	{model.AccountTypeEquity, model.AccountTypeAsset}:      "owner_draw",
	{model.AccountTypeAsset, model.AccountTypeEquity}:      "capital_injection",
	{model.AccountTypeAsset, model.AccountTypeLiability}:   "loan_proceeds",
	{model.AccountTypeAsset, model.AccountTypeAsset}:       "transfer",
	{model.AccountTypeExpense, model.AccountTypeLiability}: "accrued_expense",
}

// patterns describes every named transaction shape.
var patterns = map[string]Pattern{
	"sale": {
		Key:         "sale",
		Name:        "Sale / revenue recognition",
		Description: "Cash or receivable in, revenue recognized",
	},
	"cash_expense": {
		Key:         "cash_expense",
		Name:        "Cash expense",
		Description: "Expense paid from an asset account",
	},
	"debt_repayment": {
		Key:         "debt_repayment",
		Name:        "Debt repayment",
		Description: "Liability reduced by paying out of an asset account",
	},
	"owner_draw": {
		Key:         "owner_draw",
		Name:        "Owner draw",
		Description: "Owner takes money out of the business",
	},
	"capital_injection": {
		Key:         "capital_injection",
		Name:        "Capital injection",
		Description: "Owner puts money into the business",
	},
	"loan_proceeds": {
		Key:         "loan_proceeds",
		Name:        "Loan proceeds",
		Description: "Borrowed funds received into an asset account",
	},
	"transfer": {
		Key:         "transfer",
		Name:        "Transfer / asset purchase",
		Description: "Value moved between asset accounts",
	},
	"accrued_expense": {
		Key:         "accrued_expense",
		Name:        "Accrued expense",
		Description: "Expense recognized against a liability",
	},
	"reversal": {
		Key:         "reversal",
		Name:        "Reversal",
		Description: "Entry running against an account's normal direction",
	},
}

// nameKeywords maps free-text keywords to pattern keys. First match
// wins; matching is best-effort and independent of the chosen accounts.
var nameKeywords = []struct {
	keywords []string
	pattern  string
}{
	{[]string{"modal", "setoran", "capital", "investment"}, "capital_injection"},
	{[]string{"prive", "draw", "withdraw"}, "owner_draw"},
	{[]string{"pinjaman", "loan", "kredit"}, "loan_proceeds"},
	{[]string{"cicilan", "angsuran", "repay"}, "debt_repayment"},
	{[]string{"jual", "penjualan", "sale", "sold"}, "sale"},
	{[]string{"beli", "pembelian", "purchase", "transfer"}, "transfer"},
}

// matchPattern names the candidate: free-text keywords first, then the
// account-type pair.
func matchPattern(name string, debit, credit model.AccountType) *Pattern {
	lower := strings.ToLower(name)
	for _, entry := range nameKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				p := patterns[entry.pattern]
				return &p
			}
		}
	}

	if debit == model.AccountTypeRevenue || credit == model.AccountTypeExpense {
		p := patterns["reversal"]
		return &p
	}

	if key, ok := allowedPairs[typePair{debit, credit}]; ok {
		p := patterns[key]
		return &p
	}
	return nil
}

// Package guidance classifies a proposed journal entry before it is
// saved: structural validation of the debit/credit pair, best-effort
// pattern naming, and advisory warnings. It never touches storage.
package guidance

import (
	"fmt"
	"strings"

	"github.com/balancebook-dev/balancebook/internal/model"
)

// ErrorCode identifies a structural validation failure. Structural
// errors must block persistence.
type ErrorCode string

const (
	CodeSameAccount        ErrorCode = "SAME_ACCOUNT"
	CodeInvalidAmount      ErrorCode = "INVALID_AMOUNT"
	CodeInvalidCombination ErrorCode = "INVALID_COMBINATION"
	CodeUnknownAccount     ErrorCode = "UNKNOWN_ACCOUNT"
)

// ValidationError is one structural violation.
type ValidationError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WarningCode identifies an advisory warning. Warnings never block.
type WarningCode string

const (
	WarnUnusualCombination WarningCode = "UNUSUAL_COMBINATION"
	WarnMissingCOGS        WarningCode = "MISSING_COGS_ENTRY"
)

// Suggestion is a proposed follow-up entry attached to a warning.
type Suggestion struct {
	DebitAccountID  int `json:"debitAccountId"`
	CreditAccountID int `json:"creditAccountId"`
}

// Warning is one advisory finding.
type Warning struct {
	Code       WarningCode `json:"code"`
	Message    string      `json:"message"`
	Suggestion *Suggestion `json:"suggestion,omitempty"`
}

// Pattern names a recognized transaction shape.
type Pattern struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Guidance is the full classification of one candidate entry.
type Guidance struct {
	Valid    bool              `json:"valid"`
	Errors   []ValidationError `json:"errors,omitempty"`
	Warnings []Warning         `json:"warnings,omitempty"`
	Pattern  *Pattern          `json:"pattern,omitempty"`
}

// AccountSource supplies account lookup for classification.
// accounts.Service satisfies it.
type AccountSource interface {
	Get(id int) (model.Account, bool)
	All() []model.Account
}

// Evaluate classifies a candidate transaction against the chart of
// accounts. Legacy transactions only get the amount check; there is no
// account pair to classify.
func Evaluate(accounts AccountSource, txn model.Transaction) Guidance {
	var g Guidance

	if !txn.Amount.IsPositive() {
		g.Errors = append(g.Errors, ValidationError{
			Code:    CodeInvalidAmount,
			Message: fmt.Sprintf("amount must be positive, got %s", txn.Amount),
		})
	}

	p, ok := txn.Double()
	if !ok {
		g.Valid = len(g.Errors) == 0
		return g
	}

	if p.DebitAccountID == p.CreditAccountID {
		g.Errors = append(g.Errors, ValidationError{
			Code:    CodeSameAccount,
			Message: "debit and credit account must differ",
		})
		g.Valid = false
		return g
	}

	debit, okD := accounts.Get(p.DebitAccountID)
	credit, okC := accounts.Get(p.CreditAccountID)
	if !okD {
		g.Errors = append(g.Errors, ValidationError{
			Code:    CodeUnknownAccount,
			Message: fmt.Sprintf("unknown debit account %d", p.DebitAccountID),
		})
	}
	if !okC {
		g.Errors = append(g.Errors, ValidationError{
			Code:    CodeUnknownAccount,
			Message: fmt.Sprintf("unknown credit account %d", p.CreditAccountID),
		})
	}
	if !okD || !okC {
		g.Valid = false
		return g
	}

	// Reversals (revenue debit, expense credit) are structurally valid
	// but always warrant a warning, so they bypass the pair table.
	reversal := debit.Type == model.AccountTypeRevenue || credit.Type == model.AccountTypeExpense
	if reversal {
		g.Warnings = append(g.Warnings, Warning{
			Code:    WarnUnusualCombination,
			Message: fmt.Sprintf("unusual combination: debit %s / credit %s looks like a reversal", debit.Type, credit.Type),
		})
	} else if _, ok := allowedPairs[typePair{debit.Type, credit.Type}]; !ok {
		g.Errors = append(g.Errors, ValidationError{
			Code:    CodeInvalidCombination,
			Message: fmt.Sprintf("debiting a %s account while crediting a %s account is not a valid entry", debit.Type, credit.Type),
		})
	}

	g.Pattern = matchPattern(txn.Name, debit.Type, credit.Type)

	if w := matchingPrincipleWarning(accounts, txn, credit); w != nil {
		g.Warnings = append(g.Warnings, *w)
	}

	g.Valid = len(g.Errors) == 0
	return g
}

// inventoryKeywords flag an asset account as inventory. Heuristic only;
// DefaultCategory=VAR is the explicit flag.
var inventoryKeywords = []string{"inventory", "persediaan", "stock", "stok"}

// cogsKeywords pick the best-guess expense account for a suggested
// cost-of-goods entry.
var cogsKeywords = []string{"cogs", "cost of goods", "hpp", "harga pokok"}

func isInventory(acct model.Account) bool {
	if acct.Type != model.AccountTypeAsset {
		return false
	}
	if acct.DefaultCategory == model.CategoryVar {
		return true
	}
	return nameMatches(acct.Name, inventoryKeywords)
}

func nameMatches(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// matchingPrincipleWarning flags a sale that has no inventory reduction
// attached yet. Advisory only; it never blocks the sale itself.
func matchingPrincipleWarning(accounts AccountSource, txn model.Transaction, credit model.Account) *Warning {
	if txn.Category != model.CategoryEarn {
		return nil
	}
	if credit.Type != model.AccountTypeRevenue || isInventory(credit) {
		return nil
	}
	if txn.Meta != nil && len(txn.Meta.SoldStockIDs) > 0 {
		return nil
	}

	var inventory *model.Account
	for _, a := range accounts.All() {
		if a.IsActive && isInventory(a) {
			acct := a
			inventory = &acct
			break
		}
	}
	if inventory == nil {
		return nil
	}

	w := &Warning{
		Code:    WarnMissingCOGS,
		Message: "sale recorded without a matching inventory reduction; consider a cost-of-goods entry",
	}

	for _, a := range accounts.All() {
		if a.IsActive && a.Type == model.AccountTypeExpense && nameMatches(a.Name, cogsKeywords) {
			w.Suggestion = &Suggestion{
				DebitAccountID:  a.ID,
				CreditAccountID: inventory.ID,
			}
			break
		}
	}
	return w
}

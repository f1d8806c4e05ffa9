package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/balancebook-dev/balancebook/internal/accounts"
	"github.com/balancebook-dev/balancebook/internal/config"
	"github.com/balancebook-dev/balancebook/internal/guidance"
	"github.com/balancebook-dev/balancebook/internal/ledger"
	"github.com/balancebook-dev/balancebook/internal/model"
	"github.com/balancebook-dev/balancebook/internal/scenario"
	"github.com/balancebook-dev/balancebook/internal/statement"
	"github.com/balancebook-dev/balancebook/internal/store"
)

const dateFormat = "2006-01-02"

// Handlers serves the API over a snapshot store and config.
type Handlers struct {
	store *store.Store
	cfg   *config.Config
}

// NewHandlers creates Handlers.
func NewHandlers(st *store.Store, cfg *config.Config) *Handlers {
	return &Handlers{store: st, cfg: cfg}
}

func (h *Handlers) snapshot() (*accounts.Service, []model.Transaction, error) {
	accts, err := h.store.ListAccounts()
	if err != nil {
		return nil, nil, err
	}
	txns, err := h.store.ListTransactions()
	if err != nil {
		return nil, nil, err
	}
	return accounts.NewService(accts), txns, nil
}

// ListAccounts returns the chart of accounts.
func (h *Handlers) ListAccounts(c echo.Context) error {
	accts, err := h.store.ListAccounts()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accts)
}

type createAccountRequest struct {
	Name            string `json:"name"`
	ParentID        int    `json:"parentId"`
	DefaultCategory string `json:"defaultCategory"`
	Description     string `json:"description"`
}

// CreateAccount adds a child account under a parent, allocating the
// next free code in the parent's block.
func (h *Handlers) CreateAccount(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	svc, _, err := h.snapshot()
	if err != nil {
		return err
	}

	parent, ok := svc.Get(req.ParentID)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown parent account %d", req.ParentID))
	}

	code, err := svc.NextCodeFor(req.ParentID)
	if err != nil {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}

	maxID := 0
	for _, a := range svc.All() {
		if a.ID > maxID {
			maxID = a.ID
		}
	}

	acct := model.Account{
		ID:              maxID + 1,
		Code:            code,
		Name:            req.Name,
		Type:            parent.Type,
		NormalBalance:   parent.Type.NormalBalance(),
		ParentID:        req.ParentID,
		IsActive:        true,
		DefaultCategory: model.Category(req.DefaultCategory),
		Description:     req.Description,
	}

	if err := h.store.SaveAccounts(append(svc.All(), acct)); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, acct)
}

// DeactivateAccount soft-disables an account. System accounts refuse.
func (h *Handlers) DeactivateAccount(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid account id")
	}

	svc, _, err := h.snapshot()
	if err != nil {
		return err
	}
	if err := svc.Deactivate(id); err != nil {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	if err := h.store.SaveAccounts(svc.All()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type transactionRequest struct {
	Date            string `json:"date"`
	Category        string `json:"category"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Amount          string `json:"amount"`
	DebitAccountID  *int   `json:"debitAccountId"`
	CreditAccountID *int   `json:"creditAccountId"`
	Account         string `json:"account"`
	SoldStockIDs    []int  `json:"soldStockIds"`
}

func (r transactionRequest) toModel() (model.Transaction, error) {
	date, err := time.Parse(dateFormat, r.Date)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid date %q", r.Date)
	}

	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid amount %q", r.Amount)
	}

	category := model.Category(r.Category)
	if !category.Valid() {
		return model.Transaction{}, fmt.Errorf("unknown category %q", r.Category)
	}

	var posting model.Posting
	switch {
	case r.DebitAccountID != nil && r.CreditAccountID != nil:
		posting = model.DoublePosting{
			DebitAccountID:  *r.DebitAccountID,
			CreditAccountID: *r.CreditAccountID,
		}
	case r.DebitAccountID == nil && r.CreditAccountID == nil:
		posting = model.LegacyPosting{Account: r.Account}
	default:
		return model.Transaction{}, fmt.Errorf("debit and credit account must both be set or both absent")
	}

	txn := model.Transaction{
		Date:        date,
		Category:    category,
		Name:        r.Name,
		Description: r.Description,
		Amount:      amount,
		CreatedAt:   time.Now().UTC(),
		Posting:     posting,
	}
	if len(r.SoldStockIDs) > 0 {
		txn.Meta = &model.Meta{SoldStockIDs: r.SoldStockIDs}
	}
	return txn, nil
}

// ListTransactions returns all stored transactions.
func (h *Handlers) ListTransactions(c echo.Context) error {
	txns, err := h.store.ListTransactions()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, txns)
}

type createTransactionResponse struct {
	ID       int               `json:"id"`
	Guidance guidance.Guidance `json:"guidance"`
}

// CreateTransaction validates and stores a transaction. Structural
// errors block with 422; warnings are returned with the saved id.
func (h *Handlers) CreateTransaction(c echo.Context) error {
	var req transactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	txn, err := req.toModel()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	svc, _, err := h.snapshot()
	if err != nil {
		return err
	}

	g := guidance.Evaluate(svc, txn)
	if !g.Valid {
		return c.JSON(http.StatusUnprocessableEntity, g)
	}

	id, err := h.store.InsertTransaction(txn)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createTransactionResponse{ID: id, Guidance: g})
}

// DeleteTransaction soft-deletes a transaction.
func (h *Handlers) DeleteTransaction(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid transaction id")
	}
	if err := h.store.SoftDeleteTransaction(id); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// Guidance classifies a candidate entry without saving it.
func (h *Handlers) Guidance(c echo.Context) error {
	var req transactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	txn, err := req.toModel()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	svc, _, err := h.snapshot()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, guidance.Evaluate(svc, txn))
}

// Ledger returns the general ledger for one account.
func (h *Handlers) Ledger(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("accountId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid account id")
	}

	svc, txns, err := h.snapshot()
	if err != nil {
		return err
	}

	acct, ok := svc.Get(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("unknown account %d", id))
	}
	return c.JSON(http.StatusOK, ledger.Build(acct, txns))
}

// TrialBalance returns the trial balance over all active accounts.
func (h *Handlers) TrialBalance(c echo.Context) error {
	svc, txns, err := h.snapshot()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ledger.BuildTrialBalance(svc.All(), txns))
}

// IncomeStatement returns the period income statement.
func (h *Handlers) IncomeStatement(c echo.Context) error {
	start, end, err := periodParams(c)
	if err != nil {
		return err
	}

	_, txns, err := h.snapshot()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statement.Summarize(txns, start, end))
}

// BalanceSheet returns the point-in-time balance sheet.
func (h *Handlers) BalanceSheet(c echo.Context) error {
	asOf := time.Now().UTC()
	if v := c.QueryParam("as_of"); v != "" {
		var err error
		asOf, err = time.Parse(dateFormat, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid as_of date")
		}
	}

	svc, txns, err := h.snapshot()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statement.BuildBalanceSheet(svc.All(), txns, asOf, h.cfg.Business.Capital))
}

// CashFlow returns the period cash flow statement.
func (h *Handlers) CashFlow(c echo.Context) error {
	start, end, err := periodParams(c)
	if err != nil {
		return err
	}

	svc, txns, err := h.snapshot()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statement.BuildCashFlow(svc.All(), txns, start, end))
}

type scenarioRequest struct {
	Start       string               `json:"start"`
	End         string               `json:"end"`
	Months      int                  `json:"months"`
	Assumptions scenario.Assumptions `json:"assumptions"`
}

type scenarioResponse struct {
	Baseline   scenario.Result            `json:"baseline"`
	Scenario   scenario.Result            `json:"scenario"`
	Projection []scenario.ProjectionMonth `json:"projection"`
}

// Scenario applies assumptions to the period baseline and projects
// forward.
func (h *Handlers) Scenario(c echo.Context) error {
	var req scenarioRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	start, err := time.Parse(dateFormat, req.Start)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid start date")
	}
	end, err := time.Parse(dateFormat, req.End)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid end date")
	}

	months := req.Months
	if months <= 0 {
		months = h.cfg.Projection.Months
	}

	_, txns, err := h.snapshot()
	if err != nil {
		return err
	}

	baseline := scenario.Baseline(statement.Summarize(txns, start, end))
	return c.JSON(http.StatusOK, scenarioResponse{
		Baseline:   baseline,
		Scenario:   scenario.Apply(baseline, req.Assumptions),
		Projection: scenario.Project(txns, req.Assumptions, months),
	})
}

func periodParams(c echo.Context) (time.Time, time.Time, error) {
	start := time.Time{}
	end := time.Now().UTC()

	if v := c.QueryParam("start"); v != "" {
		var err error
		start, err = time.Parse(dateFormat, v)
		if err != nil {
			return start, end, echo.NewHTTPError(http.StatusBadRequest, "invalid start date")
		}
	}
	if v := c.QueryParam("end"); v != "" {
		var err error
		end, err = time.Parse(dateFormat, v)
		if err != nil {
			return start, end, echo.NewHTTPError(http.StatusBadRequest, "invalid end date")
		}
	}
	return start, end, nil
}

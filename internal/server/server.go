// Package server exposes the derived reports as a JSON API. It is a
// thin collaborator around the engine: load snapshot, compute, encode.
package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Server wraps the echo instance.
type Server struct {
	echo *echo.Echo
}

// New creates a Server with JSON defaults.
func New() *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
		}
		c.Logger().Error(err)
		_ = c.JSON(code, map[string]string{"error": err.Error()})
	}
	return &Server{echo: e}
}

// Echo returns the underlying echo instance.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// RegisterRoutes wires all API routes.
func RegisterRoutes(e *echo.Echo, h *Handlers) {
	api := e.Group("/api/v1")

	api.GET("/accounts", h.ListAccounts)
	api.POST("/accounts", h.CreateAccount)
	api.POST("/accounts/:id/deactivate", h.DeactivateAccount)

	api.GET("/transactions", h.ListTransactions)
	api.POST("/transactions", h.CreateTransaction)
	api.DELETE("/transactions/:id", h.DeleteTransaction)

	api.POST("/guidance", h.Guidance)

	reports := api.Group("/reports")
	reports.GET("/ledger/:accountId", h.Ledger)
	reports.GET("/trial-balance", h.TrialBalance)
	reports.GET("/income-statement", h.IncomeStatement)
	reports.GET("/balance-sheet", h.BalanceSheet)
	reports.GET("/cash-flow", h.CashFlow)

	api.POST("/scenario", h.Scenario)
}

// HealthResponse is the /healthz payload.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// RegisterHealth wires the health endpoint.
func RegisterHealth(e *echo.Echo) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now().UTC()})
	})
}

// Package store persists chart-of-accounts and transaction snapshots
// in SQLite. The accounting engine never touches it; callers load a
// snapshot here and hand plain slices to the engine.
package store

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/balancebook-dev/balancebook/internal/model"
)

// Store wraps the book database.
type Store struct {
	db *sql.DB
}

// New creates a Store over an open database.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// SaveAccounts replaces the stored chart of accounts.
func (s *Store) SaveAccounts(accts []model.Account) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM accounts`); err != nil {
		return fmt.Errorf("clearing accounts: %w", err)
	}

	const q = `INSERT INTO accounts
        (id, code, name, type, normal_balance, parent_id, is_active, is_system, default_category, sort_order, description)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, a := range accts {
		_, err := tx.Exec(q, a.ID, a.Code, a.Name, string(a.Type), string(a.NormalBalance),
			a.ParentID, a.IsActive, a.IsSystem, string(a.DefaultCategory), a.SortOrder, a.Description)
		if err != nil {
			return fmt.Errorf("inserting account %d: %w", a.ID, err)
		}
	}
	return tx.Commit()
}

// ListAccounts returns the stored chart of accounts ordered by code.
func (s *Store) ListAccounts() ([]model.Account, error) {
	rows, err := s.db.Query(`SELECT id, code, name, type, normal_balance, parent_id,
        is_active, is_system, default_category, sort_order, description
        FROM accounts ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("querying accounts: %w", err)
	}
	defer rows.Close()

	var accts []model.Account
	for rows.Next() {
		var a model.Account
		var acctType, normal, category string
		if err := rows.Scan(&a.ID, &a.Code, &a.Name, &acctType, &normal, &a.ParentID,
			&a.IsActive, &a.IsSystem, &category, &a.SortOrder, &a.Description); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}
		a.Type = model.AccountType(acctType)
		a.NormalBalance = model.Side(normal)
		a.DefaultCategory = model.Category(category)
		accts = append(accts, a)
	}
	return accts, rows.Err()
}

// InsertTransaction stores a transaction and returns its assigned ID.
func (s *Store) InsertTransaction(t model.Transaction) (int, error) {
	var debitID, creditID sql.NullInt64
	var account string
	switch p := t.Posting.(type) {
	case model.DoublePosting:
		debitID = sql.NullInt64{Int64: int64(p.DebitAccountID), Valid: true}
		creditID = sql.NullInt64{Int64: int64(p.CreditAccountID), Valid: true}
	case model.LegacyPosting:
		account = p.Account
	}

	var soldIDs string
	var unitPrice sql.NullString
	var quantity sql.NullInt64
	if t.Meta != nil {
		ids := make([]string, len(t.Meta.SoldStockIDs))
		for i, id := range t.Meta.SoldStockIDs {
			ids[i] = strconv.Itoa(id)
		}
		soldIDs = strings.Join(ids, ";")
		if ub := t.Meta.UnitBreakdown; ub != nil {
			unitPrice = sql.NullString{String: ub.UnitPrice.String(), Valid: true}
			quantity = sql.NullInt64{Int64: int64(ub.Quantity), Valid: true}
		}
	}

	createdAt := t.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	res, err := s.db.Exec(`INSERT INTO transactions
        (date, category, name, description, amount, debit_account_id, credit_account_id,
         account, sold_stock_ids, unit_price, quantity, created_at, deleted_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.Date, string(t.Category), t.Name, t.Description, t.Amount.String(),
		debitID, creditID, account, soldIDs, unitPrice, quantity, createdAt, t.DeletedAt)
	if err != nil {
		return 0, fmt.Errorf("inserting transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading transaction id: %w", err)
	}
	return int(id), nil
}

// ListTransactions returns all transactions, including soft-deleted
// rows; callers filter through journal.Clean.
func (s *Store) ListTransactions() ([]model.Transaction, error) {
	rows, err := s.db.Query(`SELECT id, date, category, name, description, amount,
        debit_account_id, credit_account_id, account, sold_stock_ids, unit_price, quantity,
        created_at, deleted_at
        FROM transactions ORDER BY date, created_at`)
	if err != nil {
		return nil, fmt.Errorf("querying transactions: %w", err)
	}
	defer rows.Close()

	var txns []model.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

// SoftDeleteTransaction marks a transaction deleted without removing
// the row.
func (s *Store) SoftDeleteTransaction(id int) error {
	res, err := s.db.Exec(`UPDATE transactions SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`,
		time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("soft-deleting transaction %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking soft delete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("transaction %d not found or already deleted", id)
	}
	return nil
}

func scanTransaction(rows *sql.Rows) (model.Transaction, error) {
	var t model.Transaction
	var category, amount, account, soldIDs string
	var debitID, creditID, quantity sql.NullInt64
	var unitPrice sql.NullString
	var deletedAt sql.NullTime

	err := rows.Scan(&t.ID, &t.Date, &category, &t.Name, &t.Description, &amount,
		&debitID, &creditID, &account, &soldIDs, &unitPrice, &quantity,
		&t.CreatedAt, &deletedAt)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("scanning transaction: %w", err)
	}

	t.Category = model.Category(category)
	t.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", amount, err)
	}

	if debitID.Valid && creditID.Valid {
		t.Posting = model.DoublePosting{
			DebitAccountID:  int(debitID.Int64),
			CreditAccountID: int(creditID.Int64),
		}
	} else {
		t.Posting = model.LegacyPosting{Account: account}
	}

	if soldIDs != "" {
		t.Meta = &model.Meta{}
		for _, s := range strings.Split(soldIDs, ";") {
			id, err := strconv.Atoi(s)
			if err != nil {
				return model.Transaction{}, fmt.Errorf("parsing sold_stock_ids %q: %w", soldIDs, err)
			}
			t.Meta.SoldStockIDs = append(t.Meta.SoldStockIDs, id)
		}
	}
	if unitPrice.Valid && quantity.Valid {
		price, err := decimal.NewFromString(unitPrice.String)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing unit_price %q: %w", unitPrice.String, err)
		}
		if t.Meta == nil {
			t.Meta = &model.Meta{}
		}
		t.Meta.UnitBreakdown = &model.UnitBreakdown{UnitPrice: price, Quantity: int(quantity.Int64)}
	}

	if deletedAt.Valid {
		d := deletedAt.Time
		t.DeletedAt = &d
	}
	return t, nil
}

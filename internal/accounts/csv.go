package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/balancebook-dev/balancebook/internal/model"
)

const (
	numFields   = 11
	colID       = 0
	colCode     = 1
	colName     = 2
	colType     = 3
	colNormal   = 4
	colParent   = 5
	colActive   = 6
	colSystem   = 7
	colCategory = 8
	colSort     = 9
	colDesc     = 10
)

// ReadAccounts reads chart-of-accounts.csv.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accounts []model.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes chart-of-accounts.csv.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"account_id", "account_code", "account_name", "account_type",
		"normal_balance", "parent_id", "is_active", "is_system", "default_category",
		"sort_order", "description"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colID] = strconv.Itoa(acct.ID)
	row[colCode] = acct.Code
	row[colName] = acct.Name
	row[colType] = string(acct.Type)
	row[colNormal] = string(acct.NormalBalance)
	if acct.ParentID != 0 {
		row[colParent] = strconv.Itoa(acct.ParentID)
	}
	row[colActive] = strconv.FormatBool(acct.IsActive)
	row[colSystem] = strconv.FormatBool(acct.IsSystem)
	row[colCategory] = string(acct.DefaultCategory)
	row[colSort] = strconv.Itoa(acct.SortOrder)
	row[colDesc] = acct.Description
	return row
}

// UnmarshalAccount converts a CSV row to an Account.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	id, err := strconv.Atoi(record[colID])
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing account_id %q: %w", record[colID], err)
	}

	acctType := model.AccountType(record[colType])
	if !acctType.Valid() {
		return model.Account{}, fmt.Errorf("unknown account_type %q", record[colType])
	}

	normal := model.Side(record[colNormal])
	if normal == "" {
		normal = acctType.NormalBalance()
	}

	var parentID int
	if record[colParent] != "" {
		parentID, err = strconv.Atoi(record[colParent])
		if err != nil {
			return model.Account{}, fmt.Errorf("parsing parent_id %q: %w", record[colParent], err)
		}
	}

	isActive, err := strconv.ParseBool(record[colActive])
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing is_active %q: %w", record[colActive], err)
	}

	isSystem, err := strconv.ParseBool(record[colSystem])
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing is_system %q: %w", record[colSystem], err)
	}

	var sortOrder int
	if record[colSort] != "" {
		sortOrder, err = strconv.Atoi(record[colSort])
		if err != nil {
			return model.Account{}, fmt.Errorf("parsing sort_order %q: %w", record[colSort], err)
		}
	}

	return model.Account{
		ID:              id,
		Code:            record[colCode],
		Name:            record[colName],
		Type:            acctType,
		NormalBalance:   normal,
		ParentID:        parentID,
		IsActive:        isActive,
		IsSystem:        isSystem,
		DefaultCategory: model.Category(record[colCategory]),
		SortOrder:       sortOrder,
		Description:     record[colDesc],
	}, nil
}

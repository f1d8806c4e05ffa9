package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/balancebook-dev/balancebook/internal/model"
)

// Header is the CSV header for transactions.csv.
const Header = "id,date,category,name,description,amount,debit_account_id,credit_account_id,account,sold_stock_ids,unit_price,quantity,created_at,deleted_at"

const (
	numFields    = 14
	dateFormat   = "2006-01-02"
	colID        = 0
	colDate      = 1
	colCategory  = 2
	colName      = 3
	colDesc      = 4
	colAmount    = 5
	colDebitAcct = 6
	colCreditAcc = 7
	colAccount   = 8
	colSoldIDs   = 9
	colUnitPrice = 10
	colQuantity  = 11
	colCreatedAt = 12
	colDeletedAt = 13
)

// ReadTransactions reads all transactions from a transactions.csv reader.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// WriteTransactions writes transactions to a transactions.csv writer
// (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = strconv.Itoa(txn.ID)
	row[colDate] = txn.Date.Format(dateFormat)
	row[colCategory] = string(txn.Category)
	row[colName] = txn.Name
	row[colDesc] = txn.Description
	row[colAmount] = txn.Amount.StringFixed(2)

	switch p := txn.Posting.(type) {
	case model.DoublePosting:
		row[colDebitAcct] = strconv.Itoa(p.DebitAccountID)
		row[colCreditAcc] = strconv.Itoa(p.CreditAccountID)
	case model.LegacyPosting:
		row[colAccount] = p.Account
	}

	if txn.Meta != nil {
		if len(txn.Meta.SoldStockIDs) > 0 {
			ids := make([]string, len(txn.Meta.SoldStockIDs))
			for i, id := range txn.Meta.SoldStockIDs {
				ids[i] = strconv.Itoa(id)
			}
			row[colSoldIDs] = strings.Join(ids, ";")
		}
		if ub := txn.Meta.UnitBreakdown; ub != nil {
			row[colUnitPrice] = ub.UnitPrice.StringFixed(2)
			row[colQuantity] = strconv.Itoa(ub.Quantity)
		}
	}

	row[colCreatedAt] = txn.CreatedAt.Format(time.RFC3339)
	if txn.DeletedAt != nil {
		row[colDeletedAt] = txn.DeletedAt.Format(time.RFC3339)
	}
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction. A row with
// both debit and credit account ids becomes a double-entry posting;
// otherwise the legacy account label is used.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	id, err := strconv.Atoi(record[colID])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing id %q: %w", record[colID], err)
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	category := model.Category(record[colCategory])
	if !category.Valid() {
		return model.Transaction{}, fmt.Errorf("unknown category %q", record[colCategory])
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	var posting model.Posting
	if record[colDebitAcct] != "" || record[colCreditAcc] != "" {
		debit, err := strconv.Atoi(record[colDebitAcct])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing debit_account_id %q: %w", record[colDebitAcct], err)
		}
		credit, err := strconv.Atoi(record[colCreditAcc])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing credit_account_id %q: %w", record[colCreditAcc], err)
		}
		posting = model.DoublePosting{DebitAccountID: debit, CreditAccountID: credit}
	} else {
		posting = model.LegacyPosting{Account: record[colAccount]}
	}

	var meta *model.Meta
	if record[colSoldIDs] != "" {
		meta = &model.Meta{}
		for _, s := range strings.Split(record[colSoldIDs], ";") {
			sid, err := strconv.Atoi(s)
			if err != nil {
				return model.Transaction{}, fmt.Errorf("parsing sold_stock_ids %q: %w", record[colSoldIDs], err)
			}
			meta.SoldStockIDs = append(meta.SoldStockIDs, sid)
		}
	}
	if record[colUnitPrice] != "" {
		price, err := decimal.NewFromString(record[colUnitPrice])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing unit_price %q: %w", record[colUnitPrice], err)
		}
		qty, err := strconv.Atoi(record[colQuantity])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing quantity %q: %w", record[colQuantity], err)
		}
		if meta == nil {
			meta = &model.Meta{}
		}
		meta.UnitBreakdown = &model.UnitBreakdown{UnitPrice: price, Quantity: qty}
	}

	createdAt := date
	if record[colCreatedAt] != "" {
		createdAt, err = time.Parse(time.RFC3339, record[colCreatedAt])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing created_at %q: %w", record[colCreatedAt], err)
		}
	}

	var deletedAt *time.Time
	if record[colDeletedAt] != "" {
		d, err := time.Parse(time.RFC3339, record[colDeletedAt])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing deleted_at %q: %w", record[colDeletedAt], err)
		}
		deletedAt = &d
	}

	return model.Transaction{
		ID:          id,
		Date:        date,
		Category:    category,
		Name:        record[colName],
		Description: record[colDesc],
		Amount:      amount,
		CreatedAt:   createdAt,
		Posting:     posting,
		Meta:        meta,
		DeletedAt:   deletedAt,
	}, nil
}

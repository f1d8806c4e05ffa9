package commands

import (
	"fmt"
	"path/filepath"

	"github.com/balancebook-dev/balancebook/internal/config"
	"github.com/balancebook-dev/balancebook/internal/model"
	"github.com/balancebook-dev/balancebook/internal/store"
)

const (
	configFile = "balancebook.yaml"
	dbFile     = "book.db"
)

// book bundles everything a command needs from a book directory.
type book struct {
	root  string
	cfg   *config.Config
	store *store.Store
	close func() error
}

// openBook loads config and opens the snapshot database for a book dir.
func openBook(dir string) (*book, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(root, configFile))
	if err != nil {
		return nil, fmt.Errorf("not a balancebook directory (missing %s): %w", configFile, err)
	}

	db, err := store.OpenSQLite(filepath.Join(root, dbFile))
	if err != nil {
		return nil, fmt.Errorf("opening book database: %w", err)
	}

	return &book{
		root:  root,
		cfg:   cfg,
		store: store.New(db),
		close: db.Close,
	}, nil
}

// snapshot loads the account and transaction collections.
func (b *book) snapshot() ([]model.Account, []model.Transaction, error) {
	accts, err := b.store.ListAccounts()
	if err != nil {
		return nil, nil, err
	}
	txns, err := b.store.ListTransactions()
	if err != nil {
		return nil, nil, err
	}
	return accts, txns, nil
}

package accounts

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/balancebook-dev/balancebook/internal/model"
)

// Service provides in-memory lookup over the chart of accounts.
type Service struct {
	accounts []model.Account
	byID     map[int]model.Account
	byCode   map[string]model.Account
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	byID := make(map[int]model.Account, len(accounts))
	byCode := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
		byCode[a.Code] = a
	}
	return &Service{accounts: accounts, byID: byID, byCode: byCode}
}

// Load reads chart-of-accounts.csv from a book root and returns a Service.
func Load(bookRoot string) (*Service, error) {
	path := filepath.Join(bookRoot, "accounts", "chart-of-accounts.csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewService(accts), nil
}

// All returns all accounts.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Active returns all active accounts sorted by code.
func (s *Service) Active() []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.IsActive {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Code < result[j].Code
	})
	return result
}

// Get returns an account by ID.
func (s *Service) Get(id int) (model.Account, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// GetByCode returns an account by its code.
func (s *Service) GetByCode(code string) (model.Account, bool) {
	a, ok := s.byCode[code]
	return a, ok
}

// Exists reports whether an account ID exists.
func (s *Service) Exists(id int) bool {
	_, ok := s.byID[id]
	return ok
}

// ByType returns all accounts of the given type.
func (s *Service) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Type == accountType {
			result = append(result, a)
		}
	}
	return result
}

// Children returns the direct children of a parent account.
func (s *Service) Children(parentID int) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.ParentID == parentID {
			result = append(result, a)
		}
	}
	return result
}

// NextCodeFor allocates the next free child code under the given parent
// account. See NextChildCode for the allocation order.
func (s *Service) NextCodeFor(parentID int) (string, error) {
	parent, ok := s.byID[parentID]
	if !ok {
		return "", fmt.Errorf("unknown parent account %d", parentID)
	}
	existing := make(map[string]bool, len(s.accounts))
	for _, a := range s.accounts {
		existing[a.Code] = true
	}
	return NextChildCode(parent.Code, existing)
}

// Deactivate marks an account inactive. System accounts cannot be
// deactivated; accounts are never physically deleted.
func (s *Service) Deactivate(id int) error {
	a, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("unknown account %d", id)
	}
	if a.IsSystem {
		return fmt.Errorf("account %d (%s) is a system account and cannot be deactivated", id, a.Name)
	}
	a.IsActive = false
	s.byID[id] = a
	s.byCode[a.Code] = a
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			s.accounts[i].IsActive = false
		}
	}
	return nil
}

// Save writes the chart of accounts to accounts/chart-of-accounts.csv.
func (s *Service) Save(bookRoot string) error {
	dir := filepath.Join(bookRoot, "accounts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	path := filepath.Join(dir, "chart-of-accounts.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}

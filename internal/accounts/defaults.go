package accounts

import "github.com/balancebook-dev/balancebook/internal/model"

// DefaultChart returns the default chart of accounts seeded into a new
// book. Top-level category nodes carry round-thousand codes and are not
// postable; every postable leaf sits inside its parent's block.
func DefaultChart() []model.Account {
	active := func(a model.Account) model.Account {
		a.IsActive = true
		a.NormalBalance = a.Type.NormalBalance()
		return a
	}

	accts := []model.Account{
		// Category nodes.
		{ID: 1, Code: "1000", Name: "Assets", Type: model.AccountTypeAsset, IsSystem: true, SortOrder: 10},
		{ID: 2, Code: "2000", Name: "Liabilities", Type: model.AccountTypeLiability, IsSystem: true, SortOrder: 20},
		{ID: 3, Code: "3000", Name: "Equity", Type: model.AccountTypeEquity, IsSystem: true, SortOrder: 30},
		{ID: 4, Code: "4000", Name: "Revenue", Type: model.AccountTypeRevenue, IsSystem: true, SortOrder: 40},
		{ID: 5, Code: "5000", Name: "Expenses", Type: model.AccountTypeExpense, IsSystem: true, SortOrder: 50},

		// Asset leaves.
		{ID: 11, Code: "1100", Name: "Cash", Type: model.AccountTypeAsset, ParentID: 1, IsSystem: true, SortOrder: 11},
		{ID: 12, Code: "1200", Name: "Bank", Type: model.AccountTypeAsset, ParentID: 1, SortOrder: 12},
		{ID: 13, Code: "1300", Name: "Inventory", Type: model.AccountTypeAsset, ParentID: 1, DefaultCategory: model.CategoryVar, SortOrder: 13},
		{ID: 14, Code: "1400", Name: "Equipment", Type: model.AccountTypeAsset, ParentID: 1, DefaultCategory: model.CategoryCapex, SortOrder: 14},

		// Liability leaves.
		{ID: 21, Code: "2100", Name: "Loans Payable", Type: model.AccountTypeLiability, ParentID: 2, DefaultCategory: model.CategoryFin, SortOrder: 21},
		{ID: 22, Code: "2200", Name: "Taxes Payable", Type: model.AccountTypeLiability, ParentID: 2, DefaultCategory: model.CategoryTax, SortOrder: 22},

		// Equity leaves.
		{ID: 31, Code: "3100", Name: "Owner's Capital", Type: model.AccountTypeEquity, ParentID: 3, IsSystem: true, DefaultCategory: model.CategoryFin, SortOrder: 31},
		{ID: 32, Code: "3200", Name: "Owner's Draw", Type: model.AccountTypeEquity, ParentID: 3, DefaultCategory: model.CategoryFin, SortOrder: 32},

		// Revenue leaves.
		{ID: 41, Code: "4100", Name: "Sales Revenue", Type: model.AccountTypeRevenue, ParentID: 4, IsSystem: true, DefaultCategory: model.CategoryEarn, SortOrder: 41},
		{ID: 42, Code: "4200", Name: "Service Revenue", Type: model.AccountTypeRevenue, ParentID: 4, DefaultCategory: model.CategoryEarn, SortOrder: 42},

		// Expense leaves.
		{ID: 51, Code: "5100", Name: "Cost of Goods Sold", Type: model.AccountTypeExpense, ParentID: 5, DefaultCategory: model.CategoryVar, SortOrder: 51},
		{ID: 52, Code: "5200", Name: "Operating Expenses", Type: model.AccountTypeExpense, ParentID: 5, DefaultCategory: model.CategoryOpex, SortOrder: 52},
		{ID: 53, Code: "5300", Name: "Rent", Type: model.AccountTypeExpense, ParentID: 5, DefaultCategory: model.CategoryOpex, SortOrder: 53},
		{ID: 54, Code: "5400", Name: "Salaries", Type: model.AccountTypeExpense, ParentID: 5, DefaultCategory: model.CategoryOpex, SortOrder: 54},
		{ID: 55, Code: "5500", Name: "Interest Expense", Type: model.AccountTypeExpense, ParentID: 5, DefaultCategory: model.CategoryFin, SortOrder: 55},
		{ID: 56, Code: "5600", Name: "Tax Expense", Type: model.AccountTypeExpense, ParentID: 5, DefaultCategory: model.CategoryTax, SortOrder: 56},
	}

	for i := range accts {
		accts[i] = active(accts[i])
	}
	return accts
}

package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/balancebook-dev/balancebook/internal/accounts"
	"github.com/balancebook-dev/balancebook/internal/guidance"
	"github.com/balancebook-dev/balancebook/internal/model"
)

func newCheckCommand() *cobra.Command {
	var dir, name, category string
	var debitCode, creditCode string
	var amountStr string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Classify a candidate entry before saving it",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBook(dir)
			if err != nil {
				return err
			}
			defer b.close()

			accts, err := b.store.ListAccounts()
			if err != nil {
				return err
			}
			svc := accounts.NewService(accts)

			debit, ok := svc.GetByCode(debitCode)
			if !ok {
				return fmt.Errorf("unknown debit account code %q", debitCode)
			}
			credit, ok := svc.GetByCode(creditCode)
			if !ok {
				return fmt.Errorf("unknown credit account code %q", creditCode)
			}

			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("invalid amount %q", amountStr)
			}

			txn := model.Transaction{
				Date:     time.Now().UTC(),
				Category: model.Category(category),
				Name:     name,
				Amount:   amount,
				Posting: model.DoublePosting{
					DebitAccountID:  debit.ID,
					CreditAccountID: credit.ID,
				},
			}

			g := guidance.Evaluate(svc, txn)

			if g.Pattern != nil {
				fmt.Printf("Pattern: %s (%s)\n", g.Pattern.Name, g.Pattern.Description)
			}
			for _, e := range g.Errors {
				fmt.Printf("ERROR %s: %s\n", e.Code, e.Message)
			}
			for _, w := range g.Warnings {
				fmt.Printf("WARNING %s: %s\n", w.Code, w.Message)
				if w.Suggestion != nil {
					d, _ := svc.Get(w.Suggestion.DebitAccountID)
					c, _ := svc.Get(w.Suggestion.CreditAccountID)
					fmt.Printf("  suggested follow-up: debit %s / credit %s\n", d.Name, c.Name)
				}
			}
			if g.Valid {
				fmt.Println("OK to save.")
				return nil
			}
			return fmt.Errorf("entry is not valid")
		},
	}

	addBookFlag(cmd, &dir)
	cmd.Flags().StringVar(&name, "name", "", "transaction name")
	cmd.Flags().StringVar(&category, "category", string(model.CategoryOpex), "category (EARN/OPEX/VAR/CAPEX/TAX/FIN)")
	cmd.Flags().StringVar(&debitCode, "debit", "", "debit account code (required)")
	cmd.Flags().StringVar(&creditCode, "credit", "", "credit account code (required)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount (required)")
	_ = cmd.MarkFlagRequired("debit")
	_ = cmd.MarkFlagRequired("credit")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

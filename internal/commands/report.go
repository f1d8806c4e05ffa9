package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/balancebook-dev/balancebook/internal/accounts"
	"github.com/balancebook-dev/balancebook/internal/ledger"
	"github.com/balancebook-dev/balancebook/internal/statement"
)

const dateFormat = "2006-01-02"

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Financial reports",
	}
	cmd.AddCommand(newLedgerCommand())
	cmd.AddCommand(newTrialBalanceCommand())
	cmd.AddCommand(newIncomeCommand())
	cmd.AddCommand(newBalanceSheetCommand())
	cmd.AddCommand(newCashFlowCommand())
	return cmd
}

func addBookFlag(cmd *cobra.Command, dir *string) {
	cmd.Flags().StringVar(dir, "book", ".", "book directory")
}

func parsePeriod(startStr, endStr string) (time.Time, time.Time, error) {
	start := time.Time{}
	end := time.Now().UTC()

	if startStr != "" {
		var err error
		start, err = time.Parse(dateFormat, startStr)
		if err != nil {
			return start, end, fmt.Errorf("invalid start date %q", startStr)
		}
	}
	if endStr != "" {
		var err error
		end, err = time.Parse(dateFormat, endStr)
		if err != nil {
			return start, end, fmt.Errorf("invalid end date %q", endStr)
		}
	}
	return start, end, nil
}

func newLedgerCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "ledger <account-code>",
		Short: "General ledger for one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBook(dir)
			if err != nil {
				return err
			}
			defer b.close()

			accts, txns, err := b.snapshot()
			if err != nil {
				return err
			}

			svc := accounts.NewService(accts)
			acct, ok := svc.GetByCode(args[0])
			if !ok {
				return fmt.Errorf("unknown account code %q", args[0])
			}

			led := ledger.Build(acct, txns)

			fmt.Printf("Ledger %s %s\n", led.AccountCode, led.AccountName)
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tDESCRIPTION\tDEBIT\tCREDIT\tBALANCE")
			for _, e := range led.Entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					e.Date.Format(dateFormat), e.Description,
					e.Debit.StringFixed(2), e.Credit.StringFixed(2), e.Balance.StringFixed(2))
			}
			w.Flush()
			fmt.Printf("Totals: debit %s, credit %s, closing %s",
				led.TotalDebits.StringFixed(2), led.TotalCredits.StringFixed(2), led.ClosingBalance.StringFixed(2))
			if led.LegacyCount > 0 {
				fmt.Printf(" (%d legacy transactions not projected)", led.LegacyCount)
			}
			fmt.Println()
			return nil
		},
	}
	addBookFlag(cmd, &dir)
	return cmd
}

func newTrialBalanceCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Trial balance over all active accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBook(dir)
			if err != nil {
				return err
			}
			defer b.close()

			accts, txns, err := b.snapshot()
			if err != nil {
				return err
			}

			tb := ledger.BuildTrialBalance(accts, txns)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tACCOUNT\tDEBIT\tCREDIT")
			for _, row := range tb.Rows {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					row.AccountCode, row.AccountName,
					row.Debit.StringFixed(2), row.Credit.StringFixed(2))
			}
			fmt.Fprintf(w, "\tTOTAL\t%s\t%s\n", tb.TotalDebits.StringFixed(2), tb.TotalCredits.StringFixed(2))
			w.Flush()

			if tb.IsBalanced {
				fmt.Println("Balanced.")
			} else {
				fmt.Printf("NOT BALANCED: difference %s\n", tb.Difference.StringFixed(2))
			}
			return nil
		},
	}
	addBookFlag(cmd, &dir)
	return cmd
}

func newIncomeCommand() *cobra.Command {
	var dir, startStr, endStr string

	cmd := &cobra.Command{
		Use:   "income",
		Short: "Income statement for a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parsePeriod(startStr, endStr)
			if err != nil {
				return err
			}

			b, err := openBook(dir)
			if err != nil {
				return err
			}
			defer b.close()

			_, txns, err := b.snapshot()
			if err != nil {
				return err
			}

			s := statement.Summarize(txns, start, end)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Revenue\t%s\n", s.TotalEarn.StringFixed(2))
			fmt.Fprintf(w, "Cost of goods\t%s\n", s.TotalVar.StringFixed(2))
			fmt.Fprintf(w, "Gross profit\t%s\n", s.GrossProfit.StringFixed(2))
			fmt.Fprintf(w, "Operating expenses\t%s\n", s.TotalOpex.StringFixed(2))
			fmt.Fprintf(w, "Operating income\t%s\n", s.OperatingIncome.StringFixed(2))
			fmt.Fprintf(w, "EBIT\t%s\n", s.EBIT.StringFixed(2))
			fmt.Fprintf(w, "EBT\t%s\n", s.EBT.StringFixed(2))
			fmt.Fprintf(w, "Net profit\t%s\n", s.NetProfit.StringFixed(2))
			if s.NetMargin != nil {
				fmt.Fprintf(w, "Net margin\t%s%%\n", s.NetMargin.StringFixed(1))
			} else {
				fmt.Fprintf(w, "Net margin\tn/a\n")
			}
			w.Flush()
			return nil
		},
	}
	addBookFlag(cmd, &dir)
	cmd.Flags().StringVar(&startStr, "start", "", "period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endStr, "end", "", "period end (YYYY-MM-DD)")
	return cmd
}

func newBalanceSheetCommand() *cobra.Command {
	var dir, asOfStr string

	cmd := &cobra.Command{
		Use:   "balance-sheet",
		Short: "Balance sheet as of a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			asOf := time.Now().UTC()
			if asOfStr != "" {
				var err error
				asOf, err = time.Parse(dateFormat, asOfStr)
				if err != nil {
					return fmt.Errorf("invalid as-of date %q", asOfStr)
				}
			}

			b, err := openBook(dir)
			if err != nil {
				return err
			}
			defer b.close()

			accts, txns, err := b.snapshot()
			if err != nil {
				return err
			}

			bs := statement.BuildBalanceSheet(accts, txns, asOf, b.cfg.Business.Capital)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Cash\t%s\n", bs.Assets.Cash.StringFixed(2))
			fmt.Fprintf(w, "Property\t%s\n", bs.Assets.PropertyValue.StringFixed(2))
			fmt.Fprintf(w, "Total assets\t%s\n", bs.Assets.TotalAssets.StringFixed(2))
			fmt.Fprintf(w, "Loans\t%s\n", bs.Liabilities.Loans.StringFixed(2))
			fmt.Fprintf(w, "Capital\t%s\n", bs.Equity.Capital.StringFixed(2))
			fmt.Fprintf(w, "Retained earnings\t%s\n", bs.Equity.RetainedEarnings.StringFixed(2))
			fmt.Fprintf(w, "Total equity\t%s\n", bs.Equity.TotalEquity.StringFixed(2))
			w.Flush()
			return nil
		},
	}
	addBookFlag(cmd, &dir)
	cmd.Flags().StringVar(&asOfStr, "as-of", "", "as-of date (YYYY-MM-DD)")
	return cmd
}

func newCashFlowCommand() *cobra.Command {
	var dir, startStr, endStr string

	cmd := &cobra.Command{
		Use:   "cash-flow",
		Short: "Cash flow statement for a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parsePeriod(startStr, endStr)
			if err != nil {
				return err
			}

			b, err := openBook(dir)
			if err != nil {
				return err
			}
			defer b.close()

			accts, txns, err := b.snapshot()
			if err != nil {
				return err
			}

			cf := statement.BuildCashFlow(accts, txns, start, end)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Opening balance\t%s\n", cf.OpeningBalance.StringFixed(2))
			fmt.Fprintf(w, "Operating\t%s\n", cf.Operating.StringFixed(2))
			fmt.Fprintf(w, "Investing\t%s\n", cf.Investing.StringFixed(2))
			fmt.Fprintf(w, "Financing\t%s\n", cf.Financing.StringFixed(2))
			fmt.Fprintf(w, "Net cash flow\t%s\n", cf.NetCashFlow.StringFixed(2))
			fmt.Fprintf(w, "Closing balance\t%s\n", cf.ClosingBalance.StringFixed(2))
			w.Flush()
			return nil
		},
	}
	addBookFlag(cmd, &dir)
	cmd.Flags().StringVar(&startStr, "start", "", "period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endStr, "end", "", "period end (YYYY-MM-DD)")
	return cmd
}

package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/balancebook-dev/balancebook/internal/scenario"
	"github.com/balancebook-dev/balancebook/internal/statement"
)

func newScenarioCommand() *cobra.Command {
	var dir, startStr, endStr string
	var revGrowth, cogsGrowth, opexGrowth, interestGrowth, taxRate float64
	var months int

	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "What-if scenario and monthly projection",
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

			assumptions := scenario.Assumptions{
				RevenueGrowth:  decimal.NewFromFloat(revGrowth),
				CogsGrowth:     decimal.NewFromFloat(cogsGrowth),
				OpexGrowth:     decimal.NewFromFloat(opexGrowth),
				InterestGrowth: decimal.NewFromFloat(interestGrowth),
				TaxRate:        decimal.NewFromFloat(taxRate),
			}

			if months <= 0 {
				months = b.cfg.Projection.Months
			}

			baseline := scenario.Baseline(statement.Summarize(txns, start, end))
			result := scenario.Apply(baseline, assumptions)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "\tBASELINE\tSCENARIO")
			line := func(name string, a, b decimal.Decimal) {
				fmt.Fprintf(w, "%s\t%s\t%s\n", name, a.StringFixed(2), b.StringFixed(2))
			}
			line("Revenue", baseline.Revenue, result.Revenue)
			line("COGS", baseline.Cogs, result.Cogs)
			line("Gross profit", baseline.GrossProfit, result.GrossProfit)
			line("Opex", baseline.Opex, result.Opex)
			line("Operating income", baseline.OperatingIncome, result.OperatingIncome)
			line("Interest", baseline.Interest, result.Interest)
			line("EBT", baseline.EBT, result.EBT)
			line("Tax", baseline.Tax, result.Tax)
			line("Net income", baseline.NetIncome, result.NetIncome)
			w.Flush()

			fmt.Printf("\nProjection (%d months):\n", months)
			pw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(pw, "MONTH\tREVENUE\tNET INCOME\tCUMULATIVE")
			for _, m := range scenario.Project(txns, assumptions, months) {
				fmt.Fprintf(pw, "%s\t%s\t%s\t%s\n",
					m.Month, m.Revenue.StringFixed(2), m.NetIncome.StringFixed(2), m.CumulativeNet.StringFixed(2))
			}
			pw.Flush()
			return nil
		},
	}

	addBookFlag(cmd, &dir)
	cmd.Flags().StringVar(&startStr, "start", "", "baseline period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endStr, "end", "", "baseline period end (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&revGrowth, "revenue-growth", 0, "revenue growth (%)")
	cmd.Flags().Float64Var(&cogsGrowth, "cogs-growth", 0, "COGS growth (%)")
	cmd.Flags().Float64Var(&opexGrowth, "opex-growth", 0, "opex growth (%)")
	cmd.Flags().Float64Var(&interestGrowth, "interest-growth", 0, "interest growth (%)")
	cmd.Flags().Float64Var(&taxRate, "tax-rate", 0, "tax rate (%); 0 keeps baseline tax")
	cmd.Flags().IntVar(&months, "months", 0, "projection horizon in months (default from config)")
	return cmd
}

package cmd

import (
	"fmt"
	"time"

	"incomebook/internal/cli"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Income overview and forecast",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	budget, err := s.MonthlyBudget()
	if err != nil {
		return err
	}

	engine := newEngine(s)
	stats, err := engine.Statistics(time.Now(), budget)
	if err != nil {
		return err
	}

	symbol := cfg.General.CurrencySymbol

	fmt.Println()
	fmt.Println(cli.RenderTitle("INCOME SUMMARY"))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Rows: [][]string{
			{"Total income", cli.FormatCurrency(stats.TotalIncome, symbol)},
			{"This year", cli.FormatCurrency(stats.YearlyIncome, symbol)},
			{"Last 30 days", cli.FormatCurrency(stats.MonthlyIncome, symbol)},
			{"Daily average", cli.FormatCurrency(stats.DailyAverage, symbol)},
			{"Records", cli.FormatNumber(int64(stats.RecordCount))},
		},
	}))

	f := stats.Forecast
	fmt.Println()
	fmt.Printf("  Month-end forecast: %s  %s\n",
		cli.FormatCurrency(f.PredictedTotal, symbol),
		cli.StatusStyle(string(f.Status)).Render(string(f.Status)),
	)
	fmt.Printf("  Month to date: %s, %d days remaining\n",
		cli.FormatCurrency(f.CurrentMonthSpending, symbol), f.RemainingDays)
	if budget > 0 {
		fmt.Printf("  Budget %s %s\n",
			cli.FormatCurrency(budget, symbol),
			cli.RenderBudgetBar(f.PredictedTotal, budget, 30),
		)
	}
	fmt.Println()

	return nil
}

package cmd

import (
	"fmt"
	"time"

	"incomebook/internal/cli"

	"github.com/spf13/cobra"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Month-end income forecast",
	RunE:  runForecast,
}

func init() {
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(_ *cobra.Command, _ []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	budget, err := s.MonthlyBudget()
	if err != nil {
		return err
	}

	now := time.Now()
	f, err := newEngine(s).Forecast(now, budget)
	if err != nil {
		return err
	}

	symbol := cfg.General.CurrencySymbol

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("FORECAST  %s", now.Format("January 2006"))))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Rows: [][]string{
			{"Month to date", cli.FormatCurrency(f.CurrentMonthSpending, symbol)},
			{"Daily rate", cli.FormatCurrency(f.DailyAverage, symbol)},
			{"Days remaining", cli.FormatNumber(int64(f.RemainingDays))},
			{"Predicted total", cli.FormatCurrency(f.PredictedTotal, symbol)},
		},
	}))

	fmt.Printf("  Status: %s\n", cli.StatusStyle(string(f.Status)).Render(string(f.Status)))
	if budget > 0 {
		fmt.Printf("  Budget %s %s\n",
			cli.FormatCurrency(budget, symbol),
			cli.RenderBudgetBar(f.PredictedTotal, budget, 30),
		)
	} else {
		fmt.Println("  No monthly budget set. Use `incomebook budget set <amount>`.")
	}
	fmt.Println()

	return nil
}

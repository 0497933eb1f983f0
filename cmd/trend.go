package cmd

import (
	"fmt"
	"time"

	"incomebook/internal/cli"

	"github.com/spf13/cobra"
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Daily income table",
	RunE:  runTrend,
}

func init() {
	rootCmd.AddCommand(trendCmd)
}

func runTrend(_ *cobra.Command, _ []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	days := trendDays(cfg)
	dates, values, err := newEngine(s).DailyTrend(time.Now(), days)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DAILY INCOME  Last %dd", days)))
	fmt.Println()
	fmt.Printf("  %s\n\n", cli.RenderSparkline(values))

	rows := make([][]string, 0, len(dates))
	var total float64
	for i, d := range dates {
		if values[i] == 0 {
			continue
		}
		day, _ := time.ParseInLocation("2006-01-02", d, time.Local)
		rows = append(rows, []string{
			d,
			cli.FormatDayOfWeek(int(day.Weekday())),
			cli.FormatCurrency(values[i], cfg.General.CurrencySymbol),
		})
		total += values[i]
	}

	if len(rows) == 0 {
		fmt.Println("  No income in the selected period.")
		return nil
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Amount"},
		Rows:    rows,
	}))
	fmt.Printf("  Total %s\n", cli.FormatCurrency(total, cfg.General.CurrencySymbol))

	return nil
}

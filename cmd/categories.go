package cmd

import (
	"fmt"
	"sort"
	"time"

	"incomebook/internal/cli"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Income split by category",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	var start *time.Time
	days := trendDays(cfg)
	if flagDays > 0 {
		t := time.Now().AddDate(0, 0, -days)
		start = &t
	}

	totals, err := newEngine(s).CategoryDistribution(start, nil)
	if err != nil {
		return err
	}
	if len(totals) == 0 {
		fmt.Println("\n  No records found.")
		return nil
	}

	type entry struct {
		name  string
		total float64
	}
	entries := make([]entry, 0, len(totals))
	var max, sum float64
	for name, total := range totals {
		entries = append(entries, entry{name, total})
		if total > max {
			max = total
		}
		sum += total
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].total > entries[j].total })

	title := "CATEGORIES"
	if start != nil {
		title = fmt.Sprintf("CATEGORIES  Last %dd", days)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()
	for _, e := range entries {
		fmt.Println(cli.RenderHorizontalBar(e.name, e.total, max, 30))
	}
	fmt.Println()
	fmt.Printf("  Total %s\n", cli.FormatCurrency(sum, cfg.General.CurrencySymbol))

	return nil
}

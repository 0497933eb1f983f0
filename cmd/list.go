package cmd

import (
	"fmt"
	"time"

	"incomebook/internal/cli"
	"incomebook/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagListFrom     string
	flagListTo       string
	flagListCategory string
	flagListLimit    int
	flagListOffset   int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List income records, newest first",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&flagListFrom, "from", "", "Start date YYYY-MM-DD")
	listCmd.Flags().StringVar(&flagListTo, "to", "", "End date YYYY-MM-DD (inclusive)")
	listCmd.Flags().StringVarP(&flagListCategory, "category", "c", "", "Filter to category")
	listCmd.Flags().IntVar(&flagListLimit, "limit", 50, "Max records to show")
	listCmd.Flags().IntVar(&flagListOffset, "offset", 0, "Records to skip")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	filter := store.Filter{
		Category: flagListCategory,
		Limit:    flagListLimit,
		Offset:   flagListOffset,
	}
	if flagListFrom != "" {
		t, err := parseDate(flagListFrom)
		if err != nil {
			return fmt.Errorf("invalid --from %q: %w", flagListFrom, err)
		}
		filter.Start = &t
	}
	if flagListTo != "" {
		t, err := parseDate(flagListTo)
		if err != nil {
			return fmt.Errorf("invalid --to %q: %w", flagListTo, err)
		}
		end := t.AddDate(0, 0, 1).Add(-time.Second)
		filter.End = &end
	}

	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	records, err := s.Query(filter)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("\n  No records found.")
		return nil
	}

	rows := make([][]string, 0, len(records))
	var total float64
	for _, r := range records {
		id := ""
		if r.ID != nil {
			id = fmt.Sprintf("%d", *r.ID)
		}
		rows = append(rows, []string{
			id,
			r.Date.Format("2006-01-02"),
			r.Category,
			cli.FormatCurrency(r.Amount, cfg.General.CurrencySymbol),
			r.Description,
		})
		total += r.Amount
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Date", "Category", "Amount", "Description"},
		Rows:    rows,
	}))
	fmt.Printf("  %d records, %s\n", len(records),
		cli.FormatCurrency(total, cfg.General.CurrencySymbol))

	return nil
}

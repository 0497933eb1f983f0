package cmd

import (
	"fmt"
	"strconv"
	"time"

	"incomebook/internal/categorize"
	"incomebook/internal/cli"
	"incomebook/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagAddCategory string
	flagAddDate     string
	flagAddDesc     string
)

var addCmd = &cobra.Command{
	Use:   "add <amount>",
	Short: "Record an income entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", "", "Income category (guessed from description if empty)")
	addCmd.Flags().StringVar(&flagAddDate, "date", "", "Record date as YYYY-MM-DD (default today)")
	addCmd.Flags().StringVarP(&flagAddDesc, "desc", "m", "", "Description")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[0], err)
	}

	date := time.Now()
	if flagAddDate != "" {
		if date, err = parseDate(flagAddDate); err != nil {
			return fmt.Errorf("invalid date %q: %w", flagAddDate, err)
		}
	}

	category := flagAddCategory
	if category == "" {
		category = categorize.Suggest(flagAddDesc)
	}
	if category == "" {
		category = "Other"
	}

	r, err := model.NewRecord(amount, category, flagAddDesc, date, time.Now())
	if err != nil {
		return err
	}

	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	id, err := s.Insert(r)
	if err != nil {
		return fmt.Errorf("saving record: %w", err)
	}

	fmt.Printf("  Added #%d: %s %s (%s)\n",
		id,
		cli.FormatCurrency(amount, cfg.General.CurrencySymbol),
		category,
		date.Format("2006-01-02"),
	)
	return nil
}

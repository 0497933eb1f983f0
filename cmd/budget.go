package cmd

import (
	"fmt"
	"strconv"

	"incomebook/internal/cli"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Show the monthly budget",
	RunE:  runBudgetShow,
}

var budgetSetCmd = &cobra.Command{
	Use:   "set <amount>",
	Short: "Set the monthly budget (0 disables it)",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetSet,
}

func init() {
	budgetCmd.AddCommand(budgetSetCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudgetShow(_ *cobra.Command, _ []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	budget, err := s.MonthlyBudget()
	if err != nil {
		return err
	}
	if budget <= 0 {
		fmt.Println("  No monthly budget set.")
		return nil
	}
	fmt.Printf("  Monthly budget: %s\n",
		cli.FormatCurrency(budget, cfg.General.CurrencySymbol))
	return nil
}

func runBudgetSet(_ *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[0], err)
	}
	if amount < 0 {
		return fmt.Errorf("budget cannot be negative")
	}

	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if _, err := s.SetMonthlyBudget(amount); err != nil {
		return err
	}

	if amount == 0 {
		fmt.Println("  Monthly budget cleared.")
		return nil
	}
	fmt.Printf("  Monthly budget set to %s\n",
		cli.FormatCurrency(amount, cfg.General.CurrencySymbol))
	return nil
}

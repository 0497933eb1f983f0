package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"incomebook/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := loadConfig()

	fmt.Println()
	fmt.Println("  Welcome to incomebook!")
	fmt.Println()

	// 1. Monthly budget
	fmt.Println("  1. Monthly budget")
	fmt.Println("     Used for the month-end forecast status. Empty skips it.")
	fmt.Print("     > ")
	budgetInput, _ := reader.ReadString('\n')
	budgetInput = strings.TrimSpace(budgetInput)
	var budget float64
	if budgetInput != "" {
		b, err := strconv.ParseFloat(budgetInput, 64)
		if err != nil || b < 0 {
			fmt.Println("     Not a valid amount, skipping.")
		} else {
			budget = b
		}
	}
	fmt.Println()

	// 2. Default trend window
	fmt.Println("  2. Default trend window")
	fmt.Println("     (1) 7 days")
	fmt.Println("     (2) 30 days [default]")
	fmt.Println("     (3) 90 days")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	choice = strings.TrimSpace(choice)
	switch choice {
	case "1":
		cfg.General.TrendDays = 7
	case "3":
		cfg.General.TrendDays = 90
	default:
		cfg.General.TrendDays = 30
	}
	fmt.Println()

	// 3. Currency symbol
	fmt.Println("  3. Currency symbol")
	fmt.Printf("     Current: %s (empty keeps it)\n", cfg.General.CurrencySymbol)
	fmt.Print("     > ")
	symbol, _ := reader.ReadString('\n')
	symbol = strings.TrimSpace(symbol)
	if symbol != "" {
		cfg.General.CurrencySymbol = symbol
	}
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	themeChoice = strings.TrimSpace(themeChoice)
	switch themeChoice {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	if budget > 0 {
		s, _, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()
		if _, err := s.SetMonthlyBudget(budget); err != nil {
			return err
		}
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `incomebook setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

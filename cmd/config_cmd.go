// Package cmd implements the incomebook CLI commands.
package cmd

import (
	"fmt"

	"incomebook/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Trend days:      %d\n", cfg.General.TrendDays)
	fmt.Printf("    Currency symbol: %s\n", cfg.General.CurrencySymbol)
	fmt.Printf("    Data directory:  %s\n", config.DataDir(cfg))
	fmt.Printf("    Database:        %s\n", config.DBPath(cfg))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `incomebook setup` to reconfigure.")
	return nil
}

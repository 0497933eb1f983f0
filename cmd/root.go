package cmd

import (
	"os"
	"time"

	"incomebook/internal/config"
	"incomebook/internal/stats"
	"incomebook/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDays    int
	flagDataDir string
)

var rootCmd = &cobra.Command{
	Use:   "incomebook",
	Short: "Personal income ledger",
	Long:  "Track income records and see totals, trends, and a month-end forecast.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagDays, "days", "n", 0, "Time window in days (default from config)")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Ledger data directory")
}

// loadConfig resolves config plus the --data-dir override.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	return cfg, nil
}

// openStore is the shared open path used by all commands.
func openStore() (*store.Store, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, err
	}
	s, err := store.Open(config.DBPath(cfg))
	if err != nil {
		return nil, cfg, err
	}
	return s, cfg, nil
}

func newEngine(s *store.Store) *stats.Engine {
	return stats.New(s)
}

// trendDays resolves the window: flag beats config, config beats 30.
func trendDays(cfg config.Config) int {
	if flagDays > 0 {
		return flagDays
	}
	if cfg.General.TrendDays > 0 {
		return cfg.General.TrendDays
	}
	return 30
}

// parseDate accepts YYYY-MM-DD in local time.
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

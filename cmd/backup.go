package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"incomebook/internal/config"

	"github.com/spf13/cobra"
)

var flagBackupOut string

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up the ledger database",
	RunE:  runBackup,
}

func init() {
	backupCmd.Flags().StringVarP(&flagBackupOut, "out", "o", "", "Backup file (default in the data directory)")
	rootCmd.AddCommand(backupCmd)
}

func runBackup(_ *cobra.Command, _ []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	now := time.Now()
	out := flagBackupOut
	if out == "" {
		out = filepath.Join(config.DataDir(cfg),
			fmt.Sprintf("incomebook_backup_%s.db", now.Format("20060102_150405")))
	}

	// Fold the WAL into the main file so the copy is complete.
	if err := s.CheckpointWAL(); err != nil {
		return err
	}
	if err := s.Backup(out); err != nil {
		return fmt.Errorf("backing up to %s: %w", out, err)
	}
	if _, err := s.SetSetting("last_backup_time", now.Format(time.RFC3339)); err != nil {
		return err
	}

	fmt.Printf("  Backup written to %s\n", out)
	return nil
}

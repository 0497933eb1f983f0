package cmd

import (
	"fmt"
	"time"

	"incomebook/internal/export"
	"incomebook/internal/store"

	"github.com/spf13/cobra"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all records to CSV",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file (default income_YYYYMMDD.csv)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	count, err := s.Count()
	if err != nil {
		return err
	}
	records, err := s.Query(store.Filter{Limit: count + 1})
	if err != nil {
		return err
	}

	out := flagExportOut
	if out == "" {
		out = fmt.Sprintf("income_%s.csv", time.Now().Format("20060102"))
	}

	if err := export.ExportCSV(out, records); err != nil {
		return err
	}

	fmt.Printf("  Exported %d records to %s\n", len(records), out)
	return nil
}

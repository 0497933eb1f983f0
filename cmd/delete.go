package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an income record",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", args[0], err)
	}

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	ok, err := s.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Printf("  No record with id %d.\n", id)
		return nil
	}
	fmt.Printf("  Deleted record #%d.\n", id)
	return nil
}

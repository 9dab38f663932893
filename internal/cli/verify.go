//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-retailgen/internal/loader"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check generated output",
}

var verifyActiveCmd = &cobra.Command{
	Use:   "monthly-active [orders.csv]",
	Short: "Report distinct active customers per month",
	Long: `Read an exported orders CSV and report the number of distinct
customers with at least one order in each month, followed by the
smallest and largest monthly counts.

The path defaults to orders.csv in the configured CSV directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(cfg.Export.CSVDir, "orders.csv")
		if len(args) == 1 {
			path = args[0]
		} else if cfg.Export.CSVDir == "" {
			return fmt.Errorf("orders CSV path is required")
		}

		sum, err := loader.VerifyMonthlyActive(path)
		if err != nil {
			return err
		}
		for _, m := range sum.Months {
			cmd.Printf("%d-%02d  %d\n", m.YearMonth/100, m.YearMonth%100, m.Customers)
		}
		cmd.Printf("Months: %d  min: %d  max: %d\n", len(sum.Months), sum.Min, sum.Max)
		return nil
	},
}

func init() {
	verifyCmd.AddCommand(verifyActiveCmd)
}

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
	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-retailgen/internal/export"
	"github.com/pgEdge/pgedge-retailgen/internal/logging"
)

var (
	exportDir     string
	exportTables  []string
	exportMaxRows int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export database tables to files",
	Long: `Export tables from the database to CSV files or Excel workbooks.
Tables that do not exist are skipped with a warning; a failing table
does not stop the others.`,
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export tables to <dir>/<table>.csv",
	Long: `Export tables to UTF-8 CSV files with a byte order mark and a
header row.

Example:
  pgedge-retailgen export csv --dir ./db_csv
  pgedge-retailgen export csv --dir ./db_csv --tables orders,order_items`,
	RunE: runExportCSV,
}

var exportXLSXCmd = &cobra.Command{
	Use:   "xlsx",
	Short: "Export tables to Excel workbooks",
	Long: `Export tables to <dir>/<table>.xlsx. Tables with more rows than
--max-rows are split into <table>_part1.xlsx, <table>_part2.xlsx and so
on, each with its own header row.

Example:
  pgedge-retailgen export xlsx --dir ./xlsx --max-rows 500000`,
	RunE: runExportXLSX,
}

func init() {
	exportCmd.PersistentFlags().StringVar(&exportDir, "dir", "",
		"output directory")
	exportCmd.PersistentFlags().StringSliceVar(&exportTables, "tables", nil,
		"tables to export (default: all dataset tables)")
	exportXLSXCmd.Flags().IntVar(&exportMaxRows, "max-rows", 0,
		"maximum data rows per workbook")

	exportCmd.AddCommand(exportCSVCmd)
	exportCmd.AddCommand(exportXLSXCmd)
}

func applyExportFlags(dir string) string {
	if len(exportTables) > 0 {
		cfg.Export.Tables = exportTables
	}
	if exportMaxRows > 0 {
		cfg.Export.MaxRowsPerFile = exportMaxRows
	}
	if exportDir != "" {
		return exportDir
	}
	return dir
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	dir := applyExportFlags(cfg.Export.DBCSVDir)
	if err := cfg.ValidateExport(dir); err != nil {
		return err
	}

	ctx, stop := signalContext(cmd.Context())
	defer stop()

	s := newSink()
	defer s.Close()

	rep, err := export.TablesToCSV(ctx, s, dir, cfg.Export.Tables)
	if err != nil {
		return err
	}
	logging.Info().
		Int("files", len(rep.Files)).
		Strs("skipped", rep.Skipped).
		Str("dir", dir).
		Msg("CSV export complete")
	reportFiles(rep.Files)
	return rep.Err()
}

func runExportXLSX(cmd *cobra.Command, args []string) error {
	dir := applyExportFlags(cfg.Export.XLSXDir)
	if err := cfg.ValidateExport(dir); err != nil {
		return err
	}

	ctx, stop := signalContext(cmd.Context())
	defer stop()

	s := newSink()
	defer s.Close()

	rep, err := export.TablesToXLSX(ctx, s, dir, cfg.Export.Tables, cfg.Export.MaxRowsPerFile)
	if err != nil {
		return err
	}
	logging.Info().
		Int("files", len(rep.Files)).
		Strs("skipped", rep.Skipped).
		Str("dir", dir).
		Msg("XLSX export complete")
	reportFiles(rep.Files)
	return rep.Err()
}

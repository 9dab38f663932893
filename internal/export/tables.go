//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pgEdge/pgedge-retailgen/internal/logging"
	"github.com/pgEdge/pgedge-retailgen/internal/retail"
)

// Source is a store that tables can be exported from.
type Source interface {
	TableName(ctx context.Context, name string) (string, bool, error)
	ExportTableToCSV(ctx context.Context, table, path string) (int64, error)
	CountRows(ctx context.Context, table string) (int64, error)
	ScanTable(ctx context.Context, table string, onColumns func([]string) error, onRow func([]any) error) error
}

// Report summarizes an export run.
type Report struct {
	// Files lists the written files in order.
	Files []string

	// Skipped lists requested tables that do not exist.
	Skipped []string

	// Failed lists tables whose export failed.
	Failed []string
}

// Err returns an error naming the failed tables, or nil.
func (r Report) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	return fmt.Errorf("export failed for tables: %s", strings.Join(r.Failed, ", "))
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory %s: %w", dir, err)
	}
	return nil
}

// resolve maps a requested table to the stored name. Missing tables are
// recorded as skipped, lookup errors as failed.
func resolve(ctx context.Context, src Source, name string, r *Report) (string, bool) {
	table, ok, err := src.TableName(ctx, name)
	if err != nil {
		logging.Error().Err(err).Str("table", name).Msg("Failed to look up table")
		r.Failed = append(r.Failed, name)
		return "", false
	}
	if !ok {
		logging.Warn().Str("table", name).Msg("Table not found, skipping")
		r.Skipped = append(r.Skipped, name)
		return "", false
	}
	return table, true
}

// TablesToCSV exports each table from src to <dir>/<table>.csv. A failing
// table is logged and the remaining tables are still exported.
func TablesToCSV(ctx context.Context, src Source, dir string, tables []string) (Report, error) {
	var r Report
	if err := ensureDir(dir); err != nil {
		return r, err
	}

	for _, name := range tables {
		table, ok := resolve(ctx, src, name, &r)
		if !ok {
			continue
		}
		path := filepath.Join(dir, table+".csv")
		n, err := src.ExportTableToCSV(ctx, table, path)
		if err != nil {
			logging.Error().Err(err).Str("table", table).Msg("Failed to export table")
			r.Failed = append(r.Failed, table)
			continue
		}
		r.Files = append(r.Files, path)
		logging.Info().Str("table", table).Int64("rows", n).Str("path", path).Msg("Exported CSV")
	}
	return r, nil
}

// DatasetToCSV writes generated tables to <dir>/<table>.csv without going
// through a database.
func DatasetToCSV(dir string, tables []retail.TableRows) (Report, error) {
	var r Report
	if err := ensureDir(dir); err != nil {
		return r, err
	}

	for _, t := range tables {
		path := filepath.Join(dir, t.Table.Name+".csv")
		if err := WriteCSV(path, t.Table.Columns, t.Rows); err != nil {
			logging.Error().Err(err).Str("table", t.Table.Name).Msg("Failed to write CSV")
			r.Failed = append(r.Failed, t.Table.Name)
			continue
		}
		r.Files = append(r.Files, path)
		logging.Info().Str("table", t.Table.Name).Int("rows", len(t.Rows)).Str("path", path).Msg("Wrote CSV")
	}
	return r, nil
}

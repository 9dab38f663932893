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
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/pgEdge/pgedge-retailgen/internal/config"
	"github.com/pgEdge/pgedge-retailgen/internal/logging"
)

// maxSheetName is the longest worksheet name a workbook accepts.
const maxSheetName = 31

// SheetName returns the worksheet name used for a table.
func SheetName(table string) string {
	r := []rune(table)
	if len(r) > maxSheetName {
		r = r[:maxSheetName]
	}
	return string(r)
}

// PartPaths returns the workbook paths for a table of n rows split into
// files of at most maxRows data rows. An empty table still gets one file.
func PartPaths(dir, table string, n int64, maxRows int) []string {
	if maxRows <= 0 || maxRows > config.MaxXLSXRows {
		maxRows = config.MaxXLSXRows
	}
	if n <= int64(maxRows) {
		return []string{filepath.Join(dir, table+".xlsx")}
	}
	parts := (n + int64(maxRows) - 1) / int64(maxRows)
	paths := make([]string, parts)
	for i := range paths {
		paths[i] = partPath(dir, table, i+1)
	}
	return paths
}

func partPath(dir, table string, part int) string {
	return filepath.Join(dir, fmt.Sprintf("%s_part%d.xlsx", table, part))
}

// workbook is one output file being streamed.
type workbook struct {
	path string
	file *excelize.File
	sw   *excelize.StreamWriter
	row  int
}

func newWorkbook(path, sheet string, columns []string) (*workbook, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet %s: %w", sheet, err)
	}
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to open sheet %s: %w", sheet, err)
	}

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header of %s: %w", path, err)
	}
	return &workbook{path: path, file: f, sw: sw, row: 1}, nil
}

func (w *workbook) write(values []any) error {
	w.row++
	cell, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		return err
	}
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = cellValue(v)
	}
	if err := w.sw.SetRow(cell, row); err != nil {
		return fmt.Errorf("failed to write row %d of %s: %w", w.row, w.path, err)
	}
	return nil
}

func (w *workbook) save() error {
	defer w.file.Close()
	if err := w.sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", w.path, err)
	}
	if err := w.file.SaveAs(w.path); err != nil {
		return fmt.Errorf("failed to save %s: %w", w.path, err)
	}
	return nil
}

// cellValue keeps numbers and booleans native and renders dates as text.
func cellValue(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case time.Time:
		return FormatValue(x)
	case decimal.Decimal:
		return x.InexactFloat64()
	default:
		return v
	}
}

// TableToXLSX streams one table into workbooks under dir and returns the
// written paths.
func TableToXLSX(ctx context.Context, src Source, dir, table string, maxRows int) ([]string, error) {
	n, err := src.CountRows(ctx, table)
	if err != nil {
		return nil, err
	}
	paths := PartPaths(dir, table, n, maxRows)
	perFile := maxRows
	if perFile <= 0 || perFile > config.MaxXLSXRows {
		perFile = config.MaxXLSXRows
	}

	sheet := SheetName(table)
	var (
		columns []string
		current *workbook
		written []string
		inPart  int
	)

	open := func() error {
		path := paths[0]
		if len(written) > 0 {
			path = partPath(dir, table, len(written)+1)
		}
		wb, err := newWorkbook(path, sheet, columns)
		if err != nil {
			return err
		}
		current, inPart = wb, 0
		return nil
	}
	closeCurrent := func() error {
		if current == nil {
			return nil
		}
		wb := current
		current = nil
		if err := wb.save(); err != nil {
			return err
		}
		written = append(written, wb.path)
		return nil
	}

	err = src.ScanTable(ctx, table,
		func(cols []string) error {
			columns = cols
			return open()
		},
		func(values []any) error {
			if current == nil {
				if err := open(); err != nil {
					return err
				}
			}
			if err := current.write(values); err != nil {
				return err
			}
			inPart++
			if inPart == perFile {
				return closeCurrent()
			}
			return nil
		})
	if err != nil {
		if current != nil {
			current.file.Close()
		}
		return written, fmt.Errorf("failed to export %s: %w", table, err)
	}

	// The last part is still open unless it filled up exactly. An empty
	// table keeps its header-only workbook.
	if err := closeCurrent(); err != nil {
		return written, err
	}
	return written, nil
}

// TablesToXLSX exports each table from src to workbooks under dir. A
// failing table is logged and the remaining tables are still exported.
func TablesToXLSX(ctx context.Context, src Source, dir string, tables []string, maxRows int) (Report, error) {
	var r Report
	if err := ensureDir(dir); err != nil {
		return r, err
	}

	for _, name := range tables {
		table, ok := resolve(ctx, src, name, &r)
		if !ok {
			continue
		}
		paths, err := TableToXLSX(ctx, src, dir, table, maxRows)
		r.Files = append(r.Files, paths...)
		if err != nil {
			logging.Error().Err(err).Str("table", table).Msg("Failed to export table")
			r.Failed = append(r.Failed, table)
			continue
		}
		logging.Info().Str("table", table).Int("files", len(paths)).Str("dir", dir).Msg("Exported XLSX")
	}
	return r, nil
}

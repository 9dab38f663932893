//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package export writes dataset tables to CSV and XLSX files.
package export

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// BOM is the UTF-8 byte order mark written at the start of CSV files so
// spreadsheet tools read Vietnamese text correctly.
const BOM = "\ufeff"

// CSVFile is a CSV file being written row by row.
type CSVFile struct {
	path string
	f    *os.File
	buf  *bufio.Writer
	w    *csv.Writer
	rows int64
}

// CreateCSV creates path and writes the byte order mark and header.
func CreateCSV(path string, columns []string) (*CSVFile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	buf := bufio.NewWriter(f)
	c := &CSVFile{path: path, f: f, buf: buf, w: csv.NewWriter(buf)}

	if _, err := buf.WriteString(BOM); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := c.w.Write(columns); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return c, nil
}

// Write appends one row.
func (c *CSVFile) Write(values []any) error {
	record := make([]string, len(values))
	for i, v := range values {
		record[i] = FormatValue(v)
	}
	if err := c.w.Write(record); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.path, err)
	}
	c.rows++
	return nil
}

// Rows returns the number of data rows written.
func (c *CSVFile) Rows() int64 {
	return c.rows
}

// Close flushes and closes the file.
func (c *CSVFile) Close() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		c.f.Close()
		return fmt.Errorf("failed to write %s: %w", c.path, err)
	}
	if err := c.buf.Flush(); err != nil {
		c.f.Close()
		return fmt.Errorf("failed to write %s: %w", c.path, err)
	}
	return c.f.Close()
}

// WriteCSV writes a whole table to path.
func WriteCSV(path string, columns []string, rows [][]any) error {
	c, err := CreateCSV(path, columns)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if err := c.Write(row); err != nil {
			c.Close()
			return err
		}
	}
	return c.Close()
}

// FormatValue renders a value the way PostgreSQL prints it in CSV. NULL is
// the empty string and dates without a time of day print as YYYY-MM-DD.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case decimal.Decimal:
		return x.String()
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format(time.DateOnly)
		}
		return x.Format(time.RFC3339)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

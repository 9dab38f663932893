//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package sink writes datasets to a relational store and reads them back
// for export and refresh.
package sink

import (
	"context"
	"errors"
)

// ErrUnknownTable is returned for tables the sink does not have.
var ErrUnknownTable = errors.New("unknown table")

// Sink is the relational store the dataset is loaded into.
//
// Rows are positional and follow the given column order. A nil value is
// written as NULL.
type Sink interface {
	// CreateDatabaseIfAbsent creates the target database when missing and
	// reports whether it did.
	CreateDatabaseIfAbsent(ctx context.Context) (bool, error)

	// ExecuteSchema creates every dataset table.
	ExecuteSchema(ctx context.Context) error

	// TruncateAll removes all rows from the given tables and resets their
	// serial keys.
	TruncateAll(ctx context.Context, tables []string) error

	// InsertRows appends rows to a table and returns the number written.
	InsertRows(ctx context.Context, table string, columns []string, rows [][]any) (int64, error)

	// ExportTableToCSV writes a table with a header row to path, prefixed
	// with a UTF-8 byte order mark, and returns the number of data rows.
	ExportTableToCSV(ctx context.Context, table, path string) (int64, error)

	// TableName resolves name case-insensitively to the stored table name.
	TableName(ctx context.Context, name string) (string, bool, error)

	// CountRows returns the number of rows in a table.
	CountRows(ctx context.Context, table string) (int64, error)

	// ScanTable calls onColumns once with the column names, then onRow for
	// every row in storage order.
	ScanTable(ctx context.Context, table string, onColumns func([]string) error, onRow func([]any) error) error

	// ReadKeys returns the values of the key column ordered by key.
	ReadKeys(ctx context.Context, table, key string) ([]string, error)

	// UpdateRows updates existing rows matched on key. The key value is
	// the first value of each row and must not appear in columns.
	UpdateRows(ctx context.Context, table, key string, columns []string, rows [][]any) (int64, error)

	// UpsertRows inserts rows or overwrites the rows with the same key.
	// The key value is the first value of each row.
	UpsertRows(ctx context.Context, table, key string, columns []string, rows [][]any) (int64, error)

	// SaveMetadata records run bookkeeping.
	SaveMetadata(ctx context.Context, metadata map[string]string) error

	// Close releases the sink's resources.
	Close()
}

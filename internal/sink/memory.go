//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package sink

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/pgEdge/pgedge-retailgen/internal/export"
	"github.com/pgEdge/pgedge-retailgen/internal/schema"
)

type memTable struct {
	name    string
	columns []string
	rows    [][]any
}

func (t *memTable) column(name string) int {
	return slices.Index(t.columns, name)
}

// Memory is an in-process Sink. It backs dry runs and pipeline tests.
type Memory struct {
	tables   map[string]*memTable
	order    []string
	metadata map[string]string

	// FailInsert makes InsertRows fail for the named tables.
	FailInsert map[string]error

	// FailExport makes ExportTableToCSV fail for the named tables.
	FailExport map[string]error

	// DatabaseCreated reports whether CreateDatabaseIfAbsent ran.
	DatabaseCreated bool

	// Closed reports whether Close ran.
	Closed bool
}

// NewMemory creates an empty in-process sink.
func NewMemory() *Memory {
	return &Memory{
		tables:     make(map[string]*memTable),
		metadata:   make(map[string]string),
		FailInsert: make(map[string]error),
		FailExport: make(map[string]error),
	}
}

// CreateTable adds a table with the given columns if it does not exist.
func (m *Memory) CreateTable(name string, columns []string) {
	if _, ok := m.tables[name]; ok {
		return
	}
	m.tables[name] = &memTable{name: name, columns: slices.Clone(columns)}
	m.order = append(m.order, name)
}

func (m *Memory) table(name string) (*memTable, error) {
	t, ok := m.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, name)
	}
	return t, nil
}

// CreateDatabaseIfAbsent creates the database the first time it is called.
func (m *Memory) CreateDatabaseIfAbsent(ctx context.Context) (bool, error) {
	created := !m.DatabaseCreated
	m.DatabaseCreated = true
	return created, nil
}

// ExecuteSchema creates every dataset table.
func (m *Memory) ExecuteSchema(ctx context.Context) error {
	for _, t := range schema.LoadOrder() {
		m.CreateTable(t.Name, t.Columns)
	}
	return nil
}

// TruncateAll removes all rows from the tables.
func (m *Memory) TruncateAll(ctx context.Context, tables []string) error {
	for _, name := range tables {
		t, err := m.table(name)
		if err != nil {
			return err
		}
		t.rows = nil
	}
	return nil
}

// InsertRows appends rows, reordering values into the table's column order.
func (m *Memory) InsertRows(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	if err := m.FailInsert[table]; err != nil {
		return 0, err
	}
	t, err := m.table(table)
	if err != nil {
		return 0, err
	}

	idx := make([]int, len(columns))
	for i, c := range columns {
		if idx[i] = t.column(c); idx[i] < 0 {
			return 0, fmt.Errorf("table %s has no column %s", table, c)
		}
	}

	added := make([][]any, 0, len(rows))
	for _, row := range rows {
		if len(row) != len(columns) {
			return 0, fmt.Errorf("table %s: row has %d values for %d columns", table, len(row), len(columns))
		}
		stored := make([]any, len(t.columns))
		for i, v := range row {
			stored[idx[i]] = v
		}
		added = append(added, stored)
	}
	t.rows = append(t.rows, added...)
	return int64(len(added)), nil
}

// ExportTableToCSV writes the table with the CSV writer.
func (m *Memory) ExportTableToCSV(ctx context.Context, table, path string) (int64, error) {
	if err := m.FailExport[table]; err != nil {
		return 0, err
	}
	t, err := m.table(table)
	if err != nil {
		return 0, err
	}
	if err := export.WriteCSV(path, t.columns, t.rows); err != nil {
		return 0, err
	}
	return int64(len(t.rows)), nil
}

// TableName resolves name ignoring case. An exact match wins.
func (m *Memory) TableName(ctx context.Context, name string) (string, bool, error) {
	if _, ok := m.tables[name]; ok {
		return name, true, nil
	}
	for _, n := range m.order {
		if strings.EqualFold(n, name) {
			return n, true, nil
		}
	}
	return "", false, nil
}

// CountRows returns the number of rows of a table.
func (m *Memory) CountRows(ctx context.Context, table string) (int64, error) {
	t, err := m.table(table)
	if err != nil {
		return 0, err
	}
	return int64(len(t.rows)), nil
}

// ScanTable visits the rows in insertion order.
func (m *Memory) ScanTable(ctx context.Context, table string, onColumns func([]string) error, onRow func([]any) error) error {
	t, err := m.table(table)
	if err != nil {
		return err
	}
	if err := onColumns(slices.Clone(t.columns)); err != nil {
		return err
	}
	for _, row := range t.rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := onRow(slices.Clone(row)); err != nil {
			return err
		}
	}
	return nil
}

// ReadKeys returns the key column values sorted.
func (m *Memory) ReadKeys(ctx context.Context, table, key string) ([]string, error) {
	t, err := m.table(table)
	if err != nil {
		return nil, err
	}
	k := t.column(key)
	if k < 0 {
		return nil, fmt.Errorf("table %s has no column %s", table, key)
	}
	keys := make([]string, 0, len(t.rows))
	for _, row := range t.rows {
		keys = append(keys, export.FormatValue(row[k]))
	}
	sort.Strings(keys)
	return keys, nil
}

// UpdateRows overwrites columns of the rows matched on key.
func (m *Memory) UpdateRows(ctx context.Context, table, key string, columns []string, rows [][]any) (int64, error) {
	return m.write(table, key, columns, rows, false)
}

// UpsertRows overwrites matched rows and appends the others.
func (m *Memory) UpsertRows(ctx context.Context, table, key string, columns []string, rows [][]any) (int64, error) {
	return m.write(table, key, columns, rows, true)
}

func (m *Memory) write(table, key string, columns []string, rows [][]any, insert bool) (int64, error) {
	t, err := m.table(table)
	if err != nil {
		return 0, err
	}
	k := t.column(key)
	if k < 0 {
		return 0, fmt.Errorf("table %s has no column %s", table, key)
	}
	idx := make([]int, len(columns))
	for i, c := range columns {
		if idx[i] = t.column(c); idx[i] < 0 {
			return 0, fmt.Errorf("table %s has no column %s", table, c)
		}
	}

	byKey := make(map[string]int, len(t.rows))
	for i, row := range t.rows {
		byKey[export.FormatValue(row[k])] = i
	}

	var affected int64
	for _, row := range rows {
		if len(row) != len(columns)+1 {
			return affected, fmt.Errorf("table %s: row has %d values for %d columns", table, len(row), len(columns)+1)
		}
		id := export.FormatValue(row[0])
		pos, ok := byKey[id]
		if !ok {
			if !insert {
				continue
			}
			stored := make([]any, len(t.columns))
			stored[k] = row[0]
			t.rows = append(t.rows, stored)
			pos = len(t.rows) - 1
			byKey[id] = pos
		}
		for i, v := range row[1:] {
			t.rows[pos][idx[i]] = v
		}
		affected++
	}
	return affected, nil
}

// SaveMetadata merges run metadata.
func (m *Memory) SaveMetadata(ctx context.Context, metadata map[string]string) error {
	for k, v := range metadata {
		m.metadata[k] = v
	}
	return nil
}

// Metadata returns a copy of the saved metadata.
func (m *Memory) Metadata() map[string]string {
	out := make(map[string]string, len(m.metadata))
	for k, v := range m.metadata {
		out[k] = v
	}
	return out
}

// Rows returns a copy of the rows of a table in insertion order.
func (m *Memory) Rows(table string) [][]any {
	t, ok := m.tables[table]
	if !ok {
		return nil
	}
	out := make([][]any, len(t.rows))
	for i, r := range t.rows {
		out[i] = slices.Clone(r)
	}
	return out
}

// Close marks the sink closed.
func (m *Memory) Close() {
	m.Closed = true
}

var (
	_ Sink = (*Memory)(nil)
	_ Sink = (*Postgres)(nil)
)

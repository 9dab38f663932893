package export

import (
	"context"
	"fmt"
	"strings"
)

// fakeSource is an in-test Source over fixed tables.
type fakeSource struct {
	columns map[string][]string
	rows    map[string][][]any
	fail    map[string]error
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		columns: make(map[string][]string),
		rows:    make(map[string][][]any),
		fail:    make(map[string]error),
	}
}

func (s *fakeSource) add(name string, columns []string, rows [][]any) {
	s.columns[name] = columns
	s.rows[name] = rows
}

func (s *fakeSource) TableName(ctx context.Context, name string) (string, bool, error) {
	for n := range s.columns {
		if strings.EqualFold(n, name) {
			return n, true, nil
		}
	}
	return "", false, nil
}

func (s *fakeSource) ExportTableToCSV(ctx context.Context, table, path string) (int64, error) {
	if err := s.fail[table]; err != nil {
		return 0, err
	}
	if err := WriteCSV(path, s.columns[table], s.rows[table]); err != nil {
		return 0, err
	}
	return int64(len(s.rows[table])), nil
}

func (s *fakeSource) CountRows(ctx context.Context, table string) (int64, error) {
	return int64(len(s.rows[table])), nil
}

func (s *fakeSource) ScanTable(ctx context.Context, table string, onColumns func([]string) error, onRow func([]any) error) error {
	if err := s.fail[table]; err != nil {
		return err
	}
	cols, ok := s.columns[table]
	if !ok {
		return fmt.Errorf("no table %s", table)
	}
	if err := onColumns(cols); err != nil {
		return err
	}
	for _, r := range s.rows[table] {
		if err := onRow(r); err != nil {
			return err
		}
	}
	return nil
}

func numberedRows(n int) [][]any {
	rows := make([][]any, n)
	for i := range rows {
		rows[i] = []any{i + 1, fmt.Sprintf("row %d", i+1)}
	}
	return rows
}

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
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pgEdge/pgedge-retailgen/internal/db"
	"github.com/pgEdge/pgedge-retailgen/internal/export"
	"github.com/pgEdge/pgedge-retailgen/internal/logging"
	"github.com/pgEdge/pgedge-retailgen/internal/schema"
)

// Postgres is a Sink backed by a PostgreSQL database. It connects on first
// use so the database can be created beforehand.
type Postgres struct {
	connString    string
	maintenanceDB string
	batch         BatchConfig
	pool          *pgxpool.Pool
}

// NewPostgres creates a PostgreSQL sink. maintenanceDB is used to create
// the target database when it is missing.
func NewPostgres(connString, maintenanceDB string) *Postgres {
	return &Postgres{
		connString:    connString,
		maintenanceDB: maintenanceDB,
		batch:         DefaultBatchConfig(),
	}
}

// NewPostgresFromPool wraps an existing pool.
func NewPostgresFromPool(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool, batch: DefaultBatchConfig()}
}

// SetBatchConfig changes the COPY chunk size and progress interval.
func (p *Postgres) SetBatchConfig(cfg BatchConfig) {
	if cfg.BatchSize > 0 {
		p.batch.BatchSize = cfg.BatchSize
	}
	if cfg.ProgressInterval > 0 {
		p.batch.ProgressInterval = cfg.ProgressInterval
	}
}

func (p *Postgres) conn(ctx context.Context) (*pgxpool.Pool, error) {
	if p.pool != nil {
		return p.pool, nil
	}
	pool, err := db.Connect(ctx, p.connString)
	if err != nil {
		return nil, err
	}
	p.pool = pool
	return pool, nil
}

func quote(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = quote(n)
	}
	return strings.Join(quoted, ", ")
}

// CreateDatabaseIfAbsent creates the target database when it is missing.
func (p *Postgres) CreateDatabaseIfAbsent(ctx context.Context) (bool, error) {
	if p.connString == "" {
		return false, nil
	}
	return db.EnsureDatabase(ctx, p.connString, p.maintenanceDB)
}

// ExecuteSchema runs the dataset DDL.
func (p *Postgres) ExecuteSchema(ctx context.Context) error {
	pool, err := p.conn(ctx)
	if err != nil {
		return err
	}
	for _, stmt := range schema.Statements() {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement %q: %w", firstLine(stmt), err)
		}
	}
	logging.Info().Int("statements", len(schema.Statements())).Msg("Schema created")
	return nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// TruncateAll truncates tables in a single statement.
func (p *Postgres) TruncateAll(ctx context.Context, tables []string) error {
	if len(tables) == 0 {
		return nil
	}
	pool, err := p.conn(ctx)
	if err != nil {
		return err
	}
	sql := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", quoteAll(tables))
	if _, err := pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	logging.Debug().Strs("tables", tables).Msg("Truncated tables")
	return nil
}

// InsertRows copies rows into a table in chunks inside one transaction,
// so a failed table leaves no partial rows behind.
func (p *Postgres) InsertRows(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	pool, err := p.conn(ctx)
	if err != nil {
		return 0, err
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	progress := NewProgressReporter(table, int64(len(rows)), p.batch.ProgressInterval)
	size := max(p.batch.BatchSize, 1)
	for start := 0; start < len(rows); start += size {
		end := min(start+size, len(rows))
		n, err := tx.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows[start:end]))
		if err != nil {
			return 0, fmt.Errorf("failed to copy into %s: %w", table, err)
		}
		progress.Update(n)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit %s: %w", table, err)
	}
	progress.Done()
	return progress.Rows(), nil
}

// ExportTableToCSV streams a table through COPY TO STDOUT.
func (p *Postgres) ExportTableToCSV(ctx context.Context, table, path string) (int64, error) {
	pool, err := p.conn(ctx)
	if err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString(export.BOM); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}

	conn, err := pool.Acquire(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	sql := fmt.Sprintf("COPY (SELECT * FROM %s ORDER BY 1) TO STDOUT WITH (FORMAT csv, HEADER true)", quote(table))
	tag, err := conn.Conn().PgConn().CopyTo(ctx, w, sql)
	if err != nil {
		return 0, fmt.Errorf("failed to export %s: %w", table, err)
	}
	if err := w.Flush(); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return tag.RowsAffected(), f.Close()
}

// TableName looks the table up in the current schema. An exact match wins
// over a case-insensitive one.
func (p *Postgres) TableName(ctx context.Context, name string) (string, bool, error) {
	pool, err := p.conn(ctx)
	if err != nil {
		return "", false, err
	}
	var found string
	err = pool.QueryRow(ctx, `
        SELECT table_name::text FROM information_schema.tables
        WHERE table_schema = current_schema() AND lower(table_name::text) = lower($1::text)
        ORDER BY table_name::text = $1::text DESC, table_name
        LIMIT 1
    `, name).Scan(&found)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to look up table %s: %w", name, err)
	}
	return found, true, nil
}

// CountRows counts the rows of a table.
func (p *Postgres) CountRows(ctx context.Context, table string) (int64, error) {
	pool, err := p.conn(ctx)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := pool.QueryRow(ctx, "SELECT count(*) FROM "+quote(table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}

// ScanTable reads every row of a table ordered by its first column.
// Numeric values are returned as float64.
func (p *Postgres) ScanTable(ctx context.Context, table string, onColumns func([]string) error, onRow func([]any) error) error {
	pool, err := p.conn(ctx)
	if err != nil {
		return err
	}
	rows, err := pool.Query(ctx, fmt.Sprintf("SELECT * FROM %s ORDER BY 1", quote(table)))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", table, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, fd := range fields {
		columns[i] = fd.Name
	}
	if err := onColumns(columns); err != nil {
		return err
	}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", table, err)
		}
		for i, v := range values {
			values[i] = normalizeValue(v)
		}
		if err := onRow(values); err != nil {
			return err
		}
	}
	return rows.Err()
}

func normalizeValue(v any) any {
	n, ok := v.(pgtype.Numeric)
	if !ok {
		return v
	}
	f, err := n.Float64Value()
	if err != nil || !f.Valid {
		return nil
	}
	return f.Float64
}

// ReadKeys reads a key column as text, ordered by key.
func (p *Postgres) ReadKeys(ctx context.Context, table, key string) ([]string, error) {
	pool, err := p.conn(ctx)
	if err != nil {
		return nil, err
	}
	sql := fmt.Sprintf("SELECT %[1]s::text FROM %[2]s ORDER BY %[1]s", quote(key), quote(table))
	rows, err := pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to read keys of %s: %w", table, err)
	}
	keys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to read keys of %s: %w", table, err)
	}
	return keys, nil
}

// UpdateRows sends one UPDATE per row in a single batch and transaction.
func (p *Postgres) UpdateRows(ctx context.Context, table, key string, columns []string, rows [][]any) (int64, error) {
	sets := make([]string, len(columns))
	for i, c := range columns {
		sets[i] = fmt.Sprintf("%s = $%d", quote(c), i+2)
	}
	sql := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $1", quote(table), strings.Join(sets, ", "), quote(key))
	return p.execBatch(ctx, table, sql, rows)
}

// UpsertRows sends one INSERT ... ON CONFLICT per row in a single batch
// and transaction.
func (p *Postgres) UpsertRows(ctx context.Context, table, key string, columns []string, rows [][]any) (int64, error) {
	all := append([]string{key}, columns...)
	params := make([]string, len(all))
	for i := range all {
		params[i] = fmt.Sprintf("$%d", i+1)
	}
	sets := make([]string, len(columns))
	for i, c := range columns {
		sets[i] = fmt.Sprintf("%[1]s = EXCLUDED.%[1]s", quote(c))
	}
	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s",
		quote(table), quoteAll(all), strings.Join(params, ", "), quote(key), strings.Join(sets, ", "))
	return p.execBatch(ctx, table, sql, rows)
}

func (p *Postgres) execBatch(ctx context.Context, table, sql string, rows [][]any) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	pool, err := p.conn(ctx)
	if err != nil {
		return 0, err
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(sql, row...)
	}
	results := tx.SendBatch(ctx, batch)

	var affected int64
	for range rows {
		tag, err := results.Exec()
		if err != nil {
			_ = results.Close()
			return 0, fmt.Errorf("failed to write %s: %w", table, err)
		}
		affected += tag.RowsAffected()
	}
	if err := results.Close(); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", table, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit %s: %w", table, err)
	}
	return affected, nil
}

// SaveMetadata upserts run metadata.
func (p *Postgres) SaveMetadata(ctx context.Context, metadata map[string]string) error {
	pool, err := p.conn(ctx)
	if err != nil {
		return err
	}
	return db.SaveMetadata(ctx, pool, metadata)
}

// Close closes the connection pool.
func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
}

//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package loader runs the dataset pipeline: generate, load into a sink,
// export, and the in-place refresh operations.
package loader

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
	"github.com/pgEdge/pgedge-retailgen/internal/db"
	"github.com/pgEdge/pgedge-retailgen/internal/export"
	"github.com/pgEdge/pgedge-retailgen/internal/logging"
	"github.com/pgEdge/pgedge-retailgen/internal/retail"
	"github.com/pgEdge/pgedge-retailgen/internal/schema"
	"github.com/pgEdge/pgedge-retailgen/internal/sink"
)

// Report summarizes a load.
type Report struct {
	// Loaded holds the rows written per table.
	Loaded map[string]int64

	// Failed lists tables whose insert failed, in load order.
	Failed []string
}

// Err returns an error naming the failed tables, or nil.
func (r Report) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	return fmt.Errorf("load failed for tables: %s", strings.Join(r.Failed, ", "))
}

// Prepare creates the database when missing and runs the schema. Any
// failure here is fatal for the run.
func Prepare(ctx context.Context, s sink.Sink) error {
	if _, err := s.CreateDatabaseIfAbsent(ctx); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	if err := s.ExecuteSchema(ctx); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Load clears the dataset tables and inserts the dataset in dependency
// order. A failing table is logged and the remaining tables are still
// loaded. Only a failed truncate aborts the load.
func Load(ctx context.Context, s sink.Sink, d *retail.Dataset) (Report, error) {
	r := Report{Loaded: make(map[string]int64)}

	if err := s.TruncateAll(ctx, schema.TruncateOrder()); err != nil {
		return r, fmt.Errorf("failed to clear tables: %w", err)
	}

	for _, t := range d.Tables() {
		start := time.Now()
		n, err := s.InsertRows(ctx, t.Table.Name, t.Table.Columns, t.Rows)
		if err != nil {
			logging.Error().Err(err).Str("table", t.Table.Name).Msg("Failed to load table")
			r.Failed = append(r.Failed, t.Table.Name)
			continue
		}
		r.Loaded[t.Table.Name] = n
		logging.Info().
			Str("table", t.Table.Name).
			Int64("rows", n).
			Dur("elapsed", time.Since(start)).
			Msg("Loaded table")
	}
	return r, nil
}

// Options configures a generate run.
type Options struct {
	Params retail.Params

	// Seed seeds the random source. Zero picks a time-based seed.
	Seed uint64

	// Today anchors the calendar. Zero means now.
	Today time.Time

	// CustomersMin and CustomersMax draw the customer count when both are
	// positive, replacing Params.Customers.
	CustomersMin int
	CustomersMax int

	// CSVDir receives the generated dataset before loading.
	CSVDir string

	// DBCSVDir receives the loaded tables after loading.
	DBCSVDir string

	// ExportTables are the tables written to DBCSVDir.
	ExportTables []string

	// ExportOnly skips schema changes and generation and only exports
	// to DBCSVDir.
	ExportOnly bool
}

// Result is the outcome of a generate run.
type Result struct {
	Seed     uint64
	RunID    string
	Dataset  *retail.Dataset
	Load     Report
	CSV      export.Report
	DBExport export.Report
}

// Err returns an error naming every failed table, or nil.
func (r *Result) Err() error {
	var errs []error
	for _, err := range []error{r.Load.Err(), r.CSV.Err(), r.DBExport.Err()} {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Run generates a dataset, loads it and exports it as configured.
func Run(ctx context.Context, s sink.Sink, opts Options) (*Result, error) {
	res := &Result{}

	if opts.ExportOnly {
		logging.Info().Str("dir", opts.DBCSVDir).Msg("Export-only mode, skipping generation")
		rep, err := export.TablesToCSV(ctx, s, opts.DBCSVDir, opts.ExportTables)
		res.DBExport = rep
		return res, err
	}

	if err := Prepare(ctx, s); err != nil {
		return res, err
	}

	faker := datagen.NewFaker()
	if opts.Seed != 0 {
		faker = datagen.NewFakerWithSeed(opts.Seed)
	}
	res.Seed = faker.Seed()

	params := opts.Params
	if opts.CustomersMin > 0 && opts.CustomersMax > 0 {
		lo, hi := retail.NormalizeRange(opts.CustomersMin, opts.CustomersMax)
		params.Customers = faker.Int(lo, hi)
		logging.Info().Int("customers", params.Customers).Msg("Drew customer count")
	}

	today := opts.Today
	if today.IsZero() {
		today = time.Now()
	}

	start := time.Now()
	res.Dataset = retail.NewGenerator(faker, today).Generate(params)
	counts := res.Dataset.Counts()
	logging.Info().
		Uint64("seed", res.Seed).
		Int("orders", counts[schema.Orders]).
		Int("items", counts[schema.OrderItems]).
		Dur("elapsed", time.Since(start)).
		Msg("Generated dataset")

	if opts.CSVDir != "" {
		rep, err := export.DatasetToCSV(opts.CSVDir, res.Dataset.Tables())
		res.CSV = rep
		if err != nil {
			return res, err
		}
	}

	load, err := Load(ctx, s, res.Dataset)
	res.Load = load
	if err != nil {
		return res, err
	}

	metadata := db.RunMetadata(res.Seed, counts)
	res.RunID = metadata["run_id"]
	if err := s.SaveMetadata(ctx, metadata); err != nil {
		logging.Warn().Err(err).Msg("Failed to save run metadata")
	}

	if opts.DBCSVDir != "" {
		rep, err := export.TablesToCSV(ctx, s, opts.DBCSVDir, opts.ExportTables)
		res.DBExport = rep
		if err != nil {
			return res, err
		}
	}

	logging.Info().
		Str("run_id", res.RunID).
		Int("tables", len(res.Load.Loaded)).
		Strs("failed", res.Load.Failed).
		Msg("Run complete")
	return res, nil
}

// SortedCounts returns table counts in load order for display.
func SortedCounts(counts map[string]int) []string {
	order := make(map[string]int)
	for i, t := range schema.LoadOrder() {
		order[t.Name] = i
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		oi, iok := order[names[i]]
		oj, jok := order[names[j]]
		if iok != jok {
			return iok
		}
		if oi != oj {
			return oi < oj
		}
		return names[i] < names[j]
	})
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = fmt.Sprintf("%s=%d", n, counts[n])
	}
	return out
}

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
	"testing"

	"github.com/spf13/pflag"

	"github.com/pgEdge/pgedge-retailgen/internal/config"
)

func generateFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("generate", pflag.ContinueOnError)
	fs.IntVar(&genCustomers, "customers", 0, "")
	fs.IntVar(&genCustomersMin, "customers-min", 0, "")
	fs.IntVar(&genCustomersMax, "customers-max", 0, "")
	fs.IntVar(&genProducts, "products", 0, "")
	fs.IntVar(&genYears, "years", 0, "")
	fs.IntVar(&genMinRows, "min-rows", 0, "")
	fs.IntVar(&genMaxRows, "max-rows", 0, "")
	fs.IntVar(&genActive, "monthly-active-customers", 0, "")
	fs.StringVar(&genDBExportDir, "db-export-dir", "", "")
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}
	return fs
}

func TestApplyGenerateFlags(t *testing.T) {
	c := config.DefaultConfig()
	c.Generate.CustomersMin = 200
	c.Generate.CustomersMax = 300

	applyGenerateFlags(generateFlags(t, "--customers", "50", "--products", "20",
		"--min-rows", "900", "--max-rows", "100"), c)

	g := c.Generate
	if g.Customers != 50 || g.Products != 20 {
		t.Errorf("Expected 50 customers and 20 products, got %d and %d", g.Customers, g.Products)
	}
	if g.CustomersMin != 0 || g.CustomersMax != 0 {
		t.Errorf("Expected customer range to be cleared, got %d-%d", g.CustomersMin, g.CustomersMax)
	}
	if g.MinRows != 100 || g.MaxRows != 900 {
		t.Errorf("Expected row range 100-900, got %d-%d", g.MinRows, g.MaxRows)
	}
	if g.Employees != config.DefaultConfig().Generate.Employees {
		t.Errorf("Expected unset flags to keep defaults, got %d employees", g.Employees)
	}
}

func TestApplyGenerateFlagsCustomerRange(t *testing.T) {
	c := config.DefaultConfig()
	applyGenerateFlags(generateFlags(t, "--customers", "50",
		"--customers-min", "10", "--customers-max", "20"), c)

	opts := generateOptions(c)
	if opts.CustomersMin != 10 || opts.CustomersMax != 20 {
		t.Errorf("Expected range 10-20, got %d-%d", opts.CustomersMin, opts.CustomersMax)
	}
}

func TestApplyGenerateFlagsMonthlyActivePin(t *testing.T) {
	c := config.DefaultConfig()
	applyGenerateFlags(generateFlags(t, "--monthly-active-customers", "42"), c)

	opts := generateOptions(c)
	if opts.Params.MonthlyActiveMin != 42 || opts.Params.MonthlyActiveMax != 42 {
		t.Errorf("Expected 42-42, got %d-%d", opts.Params.MonthlyActiveMin, opts.Params.MonthlyActiveMax)
	}
}

func TestApplyGenerateFlagsMonthlyActiveZeroPin(t *testing.T) {
	c := config.DefaultConfig()
	applyGenerateFlags(generateFlags(t, "--monthly-active-customers", "0"), c)

	opts := generateOptions(c)
	if opts.Params.MonthlyActiveMin != 0 || opts.Params.MonthlyActiveMax != 0 {
		t.Errorf("Expected 0-0, got %d-%d", opts.Params.MonthlyActiveMin, opts.Params.MonthlyActiveMax)
	}

	d := config.DefaultConfig()
	applyGenerateFlags(generateFlags(t), d)
	if d.Generate.MonthlyActiveMin != 700 || d.Generate.MonthlyActiveMax != 900 {
		t.Errorf("Expected default range 700-900, got %d-%d", d.Generate.MonthlyActiveMin, d.Generate.MonthlyActiveMax)
	}
}

func TestGenerateOptionsExportOnly(t *testing.T) {
	c := config.DefaultConfig()
	c.Generate = config.GenerateConfig{}
	applyGenerateFlags(generateFlags(t, "--db-export-dir", "out"), c)

	opts := generateOptions(c)
	if !opts.ExportOnly {
		t.Error("Expected export-only mode")
	}
	if opts.DBCSVDir != "out" {
		t.Errorf("Expected out, got %s", opts.DBCSVDir)
	}
	if len(opts.ExportTables) != len(config.DefaultExportTables) {
		t.Errorf("Expected default export tables, got %v", opts.ExportTables)
	}
}

func TestGenerateOptionsParams(t *testing.T) {
	c := config.DefaultConfig()
	c.Seed = 99
	opts := generateOptions(c)

	if opts.Seed != 99 {
		t.Errorf("Expected seed 99, got %d", opts.Seed)
	}
	if opts.ExportOnly {
		t.Error("Expected a full run")
	}
	p := opts.Params
	g := c.Generate
	if p.Customers != g.Customers || p.Years != g.Years || p.MaxRows != g.MaxRows {
		t.Errorf("Expected params to mirror config, got %+v", p)
	}
}

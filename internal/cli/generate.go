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
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pgEdge/pgedge-retailgen/internal/config"
	"github.com/pgEdge/pgedge-retailgen/internal/loader"
	"github.com/pgEdge/pgedge-retailgen/internal/logging"
	"github.com/pgEdge/pgedge-retailgen/internal/retail"
	"github.com/pgEdge/pgedge-retailgen/internal/sink"
)

var (
	genCustomers      int
	genCustomersMin   int
	genCustomersMax   int
	genProducts       int
	genEmployees      int
	genStores         int
	genPromotions     int
	genYears          int
	genMinRows        int
	genMaxRows        int
	genActiveMin      int
	genActiveMax      int
	genActive         int
	genCSVDir         string
	genDBExportDir    string
	genDryRun         bool
	genBatchSize      int
	genReportInterval int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the dataset and load it into PostgreSQL",
	Long: `Generate the full dataset and load it into PostgreSQL. The database is
created when missing, the schema is applied and every table is truncated
before loading.

When every size is zero and --db-export-dir is set, nothing is generated
and the existing tables are only exported.

Example:
  pgedge-retailgen generate --customers 500 --years 2 --seed 42
  pgedge-retailgen generate --csv-dir ./out --db-export-dir ./db_csv
  pgedge-retailgen generate --dry-run`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.IntVar(&genCustomers, "customers", 0, "number of customers")
	f.IntVar(&genCustomersMin, "customers-min", 0,
		"lower bound for a random customer count")
	f.IntVar(&genCustomersMax, "customers-max", 0,
		"upper bound for a random customer count")
	f.IntVar(&genProducts, "products", 0, "number of products")
	f.IntVar(&genEmployees, "employees", 0, "number of employees")
	f.IntVar(&genStores, "stores", 0, "number of physical stores")
	f.IntVar(&genPromotions, "promotions", 0, "number of promotions")
	f.IntVar(&genYears, "years", 0, "years of calendar ending today")
	f.IntVar(&genMinRows, "min-rows", 0, "minimum number of orders")
	f.IntVar(&genMaxRows, "max-rows", 0, "maximum number of orders")
	f.IntVar(&genActiveMin, "monthly-active-min", 0,
		"minimum active customers per month")
	f.IntVar(&genActiveMax, "monthly-active-max", 0,
		"maximum active customers per month")
	f.IntVar(&genActive, "monthly-active-customers", 0,
		"fixed number of active customers per month")
	f.StringVar(&genCSVDir, "csv-dir", "",
		"write the generated tables as CSV to this directory")
	f.StringVar(&genDBExportDir, "db-export-dir", "",
		"export the loaded tables as CSV to this directory")
	f.BoolVar(&genDryRun, "dry-run", false,
		"generate in memory and print row counts without a database")
	f.IntVar(&genBatchSize, "batch-size", 0,
		"rows per COPY batch (default: 10000)")
	f.Int64Var(&genReportInterval, "report-interval", 0,
		"rows between load progress reports (default: 100000)")
}

// applyGenerateFlags overrides cfg with the generate flags that were set.
// Zero is a meaningful size, so flags apply whenever they were given.
func applyGenerateFlags(flags *pflag.FlagSet, c *config.Config) {
	g := &c.Generate
	ints := []struct {
		name string
		src  int
		dst  *int
	}{
		{"customers", genCustomers, &g.Customers},
		{"customers-min", genCustomersMin, &g.CustomersMin},
		{"customers-max", genCustomersMax, &g.CustomersMax},
		{"products", genProducts, &g.Products},
		{"employees", genEmployees, &g.Employees},
		{"stores", genStores, &g.Stores},
		{"promotions", genPromotions, &g.Promotions},
		{"years", genYears, &g.Years},
		{"min-rows", genMinRows, &g.MinRows},
		{"max-rows", genMaxRows, &g.MaxRows},
		{"monthly-active-min", genActiveMin, &g.MonthlyActiveMin},
		{"monthly-active-max", genActiveMax, &g.MonthlyActiveMax},
	}
	for _, i := range ints {
		if flags.Changed(i.name) {
			*i.dst = i.src
		}
	}

	if flags.Changed("monthly-active-customers") {
		pin := genActive
		g.MonthlyActiveCustomers = &pin
	}

	// An explicit customer count wins over a configured range.
	if flags.Changed("customers") && !flags.Changed("customers-min") && !flags.Changed("customers-max") {
		g.CustomersMin, g.CustomersMax = 0, 0
	}
	if flags.Changed("csv-dir") {
		c.Export.CSVDir = genCSVDir
	}
	if flags.Changed("db-export-dir") {
		c.Export.DBCSVDir = genDBExportDir
	}
	c.Normalize()
}

// generateOptions maps configuration onto a loader run.
func generateOptions(c *config.Config) loader.Options {
	g := c.Generate
	return loader.Options{
		Params: retail.Params{
			Customers:        g.Customers,
			Products:         g.Products,
			Employees:        g.Employees,
			Stores:           g.Stores,
			Promotions:       g.Promotions,
			Years:            g.Years,
			MinRows:          g.MinRows,
			MaxRows:          g.MaxRows,
			MonthlyActiveMin: g.MonthlyActiveMin,
			MonthlyActiveMax: g.MonthlyActiveMax,
		},
		Seed:         c.Seed,
		CustomersMin: g.CustomersMin,
		CustomersMax: g.CustomersMax,
		CSVDir:       c.Export.CSVDir,
		DBCSVDir:     c.Export.DBCSVDir,
		ExportTables: c.Export.Tables,
		ExportOnly:   c.ExportOnly(),
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	applyGenerateFlags(cmd.Flags(), cfg)
	opts := generateOptions(cfg)

	ctx, stop := signalContext(cmd.Context())
	defer stop()

	if genDryRun {
		opts.DBCSVDir = ""
		opts.ExportOnly = false
		res, err := loader.Run(ctx, sink.NewMemory(), opts)
		if err != nil {
			return err
		}
		cmd.Printf("Seed: %d\n", res.Seed)
		for _, line := range loader.SortedCounts(res.Dataset.Counts()) {
			cmd.Printf("  %s\n", line)
		}
		return res.Err()
	}

	if err := cfg.ValidateGenerate(); err != nil {
		return err
	}

	s := newSink()
	defer s.Close()

	batch := sink.DefaultBatchConfig()
	if genBatchSize > 0 {
		batch.BatchSize = genBatchSize
	}
	if genReportInterval > 0 {
		batch.ProgressInterval = genReportInterval
	}
	s.SetBatchConfig(batch)

	logging.Info().
		Str("database", cfg.Database.Name).
		Bool("export_only", opts.ExportOnly).
		Msg("Starting generate")

	res, err := loader.Run(ctx, s, opts)
	if err != nil {
		return err
	}

	if res.Dataset != nil {
		logging.Info().
			Uint64("seed", res.Seed).
			Str("run_id", res.RunID).
			Str("counts", strings.Join(loader.SortedCounts(res.Dataset.Counts()), " ")).
			Msg("Generate complete")
	}
	reportFiles(res.CSV.Files)
	reportFiles(res.DBExport.Files)
	return res.Err()
}

// reportFiles logs the size of each written file.
func reportFiles(paths []string) {
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		logging.Debug().Str("path", p).Str("size", sink.FormatSize(info.Size())).Msg("Wrote file")
	}
}

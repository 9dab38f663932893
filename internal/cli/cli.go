//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for pgedge-retailgen.
package cli

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-retailgen/internal/config"
	"github.com/pgEdge/pgedge-retailgen/internal/logging"
	"github.com/pgEdge/pgedge-retailgen/internal/schema"
	"github.com/pgEdge/pgedge-retailgen/internal/sink"
	"github.com/pgEdge/pgedge-retailgen/pkg/version"
)

var (
	// Global flags
	cfgFile    string
	connection string
	pgHost     string
	pgPort     int
	pgDB       string
	pgUser     string
	pgPassword string
	logLevel   string
	seed       uint64

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "pgedge-retailgen",
		Short: "Synthetic retail dataset generator for PostgreSQL",
		Long: `pgedge-retailgen generates a synthetic dataset for a Vietnamese mother
and baby retail chain: a calendar, customers and their children, products
with daily costs, stores, employees, promotions, orders with line items
and monthly KPI targets.

The dataset is loaded into PostgreSQL and can be exported to CSV files
(UTF-8 with a byte order mark) or Excel workbooks split into parts.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "",
		"config file (default: ./pgedge-retailgen.yaml)")
	pf.StringVar(&connection, "connection", "",
		"PostgreSQL connection string (overrides --pg-* flags)")
	pf.StringVar(&pgHost, "pg-host", "", "PostgreSQL host")
	pf.IntVar(&pgPort, "pg-port", 0, "PostgreSQL port")
	pf.StringVar(&pgDB, "pg-db", "", "PostgreSQL database name")
	pf.StringVar(&pgUser, "pg-user", "", "PostgreSQL user")
	pf.StringVar(&pgPassword, "pg-password", "", "PostgreSQL password")
	pf.StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")
	pf.Uint64Var(&seed, "seed", 0,
		"random seed (0 picks a time-based seed)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(verifyCmd)
}

func initConfig(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}
	applyGlobalFlags(cmd, cfg)

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: !strings.EqualFold(cfg.LogFormat, "json"),
	})

	return nil
}

// applyGlobalFlags overrides cfg with the persistent flags that were set.
func applyGlobalFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if connection != "" {
		c.Connection = connection
	}
	if flags.Changed("pg-host") {
		c.Database.Host = pgHost
	}
	if flags.Changed("pg-port") {
		c.Database.Port = pgPort
	}
	if flags.Changed("pg-db") {
		c.Database.Name = pgDB
	}
	if flags.Changed("pg-user") {
		c.Database.User = pgUser
	}
	if flags.Changed("pg-password") {
		c.Database.Password = pgPassword
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if flags.Changed("seed") {
		c.Seed = seed
	}
}

// signalContext returns a context canceled on interrupt or SIGTERM, so
// long COPY, UPDATE and export batches stop with the process.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// newSink opens the configured PostgreSQL database.
func newSink() *sink.Postgres {
	return sink.NewPostgres(cfg.ConnString(), cfg.Database.MaintenanceDB)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the dataset tables",
	Long: `List the tables of the dataset in load order with their columns.
Foreign keys always point to tables listed earlier.`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range schema.LoadOrder() {
			cmd.Printf("  %-22s %s\n", t.Name, strings.Join(t.Columns, ", "))
		}
	},
}

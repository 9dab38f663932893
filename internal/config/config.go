//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for pgedge-retailgen.
// Configuration is loaded from a .env file, environment variables, config
// files and CLI flags. CLI flags take precedence over environment variables,
// which take precedence over config file values.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// MaxXLSXRows is the largest number of data rows a single worksheet can hold
// below its header row.
const MaxXLSXRows = 1048575

// Config holds all configuration for pgedge-retailgen.
type Config struct {
	// Connection is a full PostgreSQL connection string. When set it wins
	// over the individual Database fields.
	Connection string `mapstructure:"connection"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// LogFormat is "console" or "json".
	LogFormat string `mapstructure:"log_format"`

	// Seed for the random source. Zero picks a time-based seed.
	Seed uint64 `mapstructure:"seed"`

	Database DatabaseConfig `mapstructure:"database"`
	Generate GenerateConfig `mapstructure:"generate"`
	Export   ExportConfig   `mapstructure:"export"`
}

// DatabaseConfig holds individual PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"sslmode"`

	// MaintenanceDB is the database used to create Name when it is missing.
	MaintenanceDB string `mapstructure:"maintenance_db"`
}

// GenerateConfig holds dataset sizing.
type GenerateConfig struct {
	Customers  int `mapstructure:"customers"`
	Products   int `mapstructure:"products"`
	Employees  int `mapstructure:"employees"`
	Stores     int `mapstructure:"stores"`
	Promotions int `mapstructure:"promotions"`
	Years      int `mapstructure:"years"`

	// MinRows and MaxRows bound the number of generated orders.
	MinRows int `mapstructure:"min_rows"`
	MaxRows int `mapstructure:"max_rows"`

	// MonthlyActiveMin and MonthlyActiveMax bound the monthly cohort size.
	MonthlyActiveMin int `mapstructure:"monthly_active_min"`
	MonthlyActiveMax int `mapstructure:"monthly_active_max"`

	// MonthlyActiveCustomers pins both cohort bounds to its value, zero
	// included, whenever it is set.
	MonthlyActiveCustomers *int `mapstructure:"monthly_active_customers"`

	// CustomersMin and CustomersMax draw the customer count when both are
	// positive and the customer count was not given explicitly.
	CustomersMin int `mapstructure:"customers_min"`
	CustomersMax int `mapstructure:"customers_max"`
}

// ExportConfig holds export destinations.
type ExportConfig struct {
	// CSVDir receives the generated dataset as CSV before it is loaded.
	CSVDir string `mapstructure:"csv_dir"`

	// DBCSVDir receives a CSV copy of every database table after loading.
	DBCSVDir string `mapstructure:"db_csv_dir"`

	// XLSXDir receives workbook copies of database tables.
	XLSXDir string `mapstructure:"xlsx_dir"`

	// MaxRowsPerFile splits large tables into <table>_partN.xlsx files.
	MaxRowsPerFile int `mapstructure:"max_rows_per_file"`

	// Tables lists the tables exported by the export commands.
	Tables []string `mapstructure:"tables"`
}

// DefaultExportTables is the table list exported when none is configured.
var DefaultExportTables = []string{
	"dates",
	"customers",
	"customer_children",
	"products",
	"employees",
	"stores",
	"promotions",
	"product_daily_costs",
	"orders",
	"order_items",
	"kpi_target_monthly",
}

// envBindings maps config keys to the environment variables that set them.
var envBindings = map[string]string{
	"connection":                        "PG_CONNECTION",
	"log_level":                         "LOG_LEVEL",
	"log_format":                        "LOG_FORMAT",
	"seed":                              "RETAILGEN_SEED",
	"database.host":                     "PG_HOST",
	"database.port":                     "PG_PORT",
	"database.name":                     "PG_DB",
	"database.user":                     "PG_USER",
	"database.password":                 "PG_PASSWORD",
	"database.sslmode":                  "PG_SSLMODE",
	"database.maintenance_db":           "PG_MAINTENANCE_DB",
	"generate.customers":                "CUSTOMERS",
	"generate.products":                 "PRODUCTS",
	"generate.employees":                "EMPLOYEES",
	"generate.stores":                   "STORES",
	"generate.promotions":               "PROMOTIONS",
	"generate.years":                    "YEARS",
	"generate.min_rows":                 "MIN_ROWS",
	"generate.max_rows":                 "MAX_ROWS",
	"generate.monthly_active_min":       "MONTHLY_ACTIVE_MIN",
	"generate.monthly_active_max":       "MONTHLY_ACTIVE_MAX",
	"generate.monthly_active_customers": "MONTHLY_ACTIVE_CUSTOMERS",
	"generate.customers_min":            "CUSTOMERS_MIN",
	"generate.customers_max":            "CUSTOMERS_MAX",
	"export.csv_dir":                    "EXPORT_CSV_DIR",
	"export.db_csv_dir":                 "DB_EXPORT_DIR",
	"export.xlsx_dir":                   "XLSX_EXPORT_DIR",
	"export.max_rows_per_file":          "XLSX_MAX_ROWS",
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "console",
		Database: DatabaseConfig{
			Host:          "localhost",
			Port:          5432,
			Name:          "bi_courses",
			User:          "postgres",
			Password:      "1",
			SSLMode:       "disable",
			MaintenanceDB: "postgres",
		},
		Generate: GenerateConfig{
			Customers:        100,
			Products:         180,
			Employees:        40,
			Stores:           10,
			Promotions:       15,
			Years:            3,
			MinRows:          1000,
			MaxRows:          5000,
			MonthlyActiveMin: 700,
			MonthlyActiveMax: 900,
		},
		Export: ExportConfig{
			MaxRowsPerFile: 1000000,
			Tables:         append([]string(nil), DefaultExportTables...),
		},
	}
}

// Load reads configuration from a .env file, the environment and config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./pgedge-retailgen.yaml
// 3. ~/.config/pgedge-retailgen/config.yaml
func Load(configFile string) (*Config, error) {
	// A missing .env is normal
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	// Set config name and type
	v.SetConfigName("pgedge-retailgen")
	v.SetConfigType("yaml")

	// Add config paths
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "pgedge-retailgen"))
	}

	// Use specific config file if provided
	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("error binding %s: %w", env, err)
		}
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Start with defaults
	cfg := DefaultConfig()

	// Unmarshal config file and environment values
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.Normalize()
	return cfg, nil
}

// Normalize corrects inverted ranges and negative sizes instead of
// rejecting them, and applies the legacy monthly-active pin.
func (c *Config) Normalize() {
	g := &c.Generate
	for _, n := range []*int{
		&g.Customers, &g.Products, &g.Employees, &g.Stores, &g.Promotions,
		&g.Years, &g.MinRows, &g.MaxRows, &g.MonthlyActiveMin,
		&g.MonthlyActiveMax, &g.CustomersMin, &g.CustomersMax,
	} {
		if *n < 0 {
			*n = 0
		}
	}

	if g.MonthlyActiveCustomers != nil {
		pin := max(*g.MonthlyActiveCustomers, 0)
		g.MonthlyActiveMin = pin
		g.MonthlyActiveMax = pin
	}

	swapIfInverted(&g.MinRows, &g.MaxRows)
	swapIfInverted(&g.MonthlyActiveMin, &g.MonthlyActiveMax)
	swapIfInverted(&g.CustomersMin, &g.CustomersMax)

	if c.Export.MaxRowsPerFile <= 0 || c.Export.MaxRowsPerFile > MaxXLSXRows {
		c.Export.MaxRowsPerFile = MaxXLSXRows
	}
	if len(c.Export.Tables) == 0 {
		c.Export.Tables = append([]string(nil), DefaultExportTables...)
	}
}

func swapIfInverted(lo, hi *int) {
	if *lo > *hi {
		*lo, *hi = *hi, *lo
	}
}

// ExportOnly reports whether every generation size is zero and a database
// export directory is set. In that mode nothing is generated and the
// schema is left untouched.
func (c *Config) ExportOnly() bool {
	g := c.Generate
	sizes := []int{
		g.Customers, g.Products, g.Employees, g.Stores, g.Promotions,
		g.Years, g.MinRows, g.MaxRows,
	}
	for _, n := range sizes {
		if n != 0 {
			return false
		}
	}
	return c.Export.DBCSVDir != ""
}

// ConnString returns the PostgreSQL connection string.
func (c *Config) ConnString() string {
	if c.Connection != "" {
		return c.Connection
	}
	d := c.Database
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + d.Name,
	}
	if d.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{d.SSLMode}}.Encode()
	}
	return u.String()
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.Connection != "" {
		return nil
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("database port must be between 1 and 65535")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("database name is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	return nil
}

// ValidateGenerate checks configuration required for the generate command.
func (c *Config) ValidateGenerate() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.ExportOnly() {
		return nil
	}
	if c.Generate.Years < 1 {
		return fmt.Errorf("years must be at least 1")
	}
	return nil
}

// ValidateExport checks configuration required for an export to dir.
func (c *Config) ValidateExport(dir string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if dir == "" {
		return fmt.Errorf("export directory is required")
	}
	if len(c.Export.Tables) == 0 {
		return fmt.Errorf("at least one table must be selected for export")
	}
	return nil
}

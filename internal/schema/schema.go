//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package schema holds the relational schema of the retail dataset.
package schema

import (
	_ "embed"
	"strings"
)

// DDL creates every dataset table. It is idempotent.
//
//go:embed schema.sql
var DDL string

// Table names.
const (
	Dates             = "dates"
	Customers         = "customers"
	CustomerChildren  = "customer_children"
	Products          = "products"
	ProductDailyCosts = "product_daily_costs"
	Stores            = "stores"
	Employees         = "employees"
	Promotions        = "promotions"
	Orders            = "orders"
	OrderItems        = "order_items"
	KPITargetMonthly  = "kpi_target_monthly"
)

// Table describes the columns written for one table. Serial key columns
// are left out and assigned by the database.
type Table struct {
	Name    string
	Columns []string
}

var tables = []Table{
	{Dates, []string{"date_id", "full_date", "day", "week", "month", "month_name", "quarter", "year", "is_weekend"}},
	{Customers, []string{"id", "full_name", "gender", "date_of_birth", "phone", "email", "address", "city", "province", "points", "tier"}},
	{CustomerChildren, []string{"customer_id", "full_name", "gender", "date_of_birth"}},
	{Products, []string{"id", "name", "category", "brand", "unit", "list_price"}},
	{Stores, []string{"id", "name", "address", "city", "province", "region"}},
	{Employees, []string{"id", "full_name", "role", "default_store_id"}},
	{Promotions, []string{"id", "name", "type", "value", "start_date", "end_date"}},
	{ProductDailyCosts, []string{"product_id", "date_id", "cost"}},
	{Orders, []string{"id", "date_id", "customer_id", "employee_id", "store_id", "channel"}},
	{OrderItems, []string{"order_id", "product_id", "promotion_id", "quantity", "unit_price", "promo_per_unit", "discount_per_unit", "revenue"}},
	{KPITargetMonthly, []string{"store_id", "year_month", "revenue", "order_count", "quantity"}},
}

// LoadOrder returns the tables in foreign key dependency order.
func LoadOrder() []Table {
	out := make([]Table, len(tables))
	copy(out, tables)
	return out
}

// TruncateOrder returns table names with dependents first.
func TruncateOrder() []string {
	out := make([]string, 0, len(tables))
	for i := len(tables) - 1; i >= 0; i-- {
		out = append(out, tables[i].Name)
	}
	return out
}

// Lookup returns the table with the given name, ignoring case.
func Lookup(name string) (Table, bool) {
	for _, t := range tables {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Table{}, false
}

// Statements splits DDL into individual statements.
func Statements() []string {
	var stmts []string
	for _, part := range strings.Split(DDL, ";") {
		var lines []string
		for _, line := range strings.Split(part, "\n") {
			if trimmed := strings.TrimSpace(line); trimmed != "" && !strings.HasPrefix(trimmed, "--") {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			stmts = append(stmts, strings.Join(lines, "\n"))
		}
	}
	return stmts
}

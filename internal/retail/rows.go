//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package retail

import (
	"github.com/shopspring/decimal"

	"github.com/pgEdge/pgedge-retailgen/internal/schema"
)

// TableRows is the content of one table, with values in the order of
// Table.Columns.
type TableRows struct {
	Table schema.Table
	Rows  [][]any
}

// nullable maps an empty reference to NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// money converts an amount at the sink boundary.
func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// Tables returns every table of the dataset in load order.
func (d *Dataset) Tables() []TableRows {
	out := make([]TableRows, 0, len(schema.LoadOrder()))
	for _, t := range schema.LoadOrder() {
		out = append(out, TableRows{Table: t, Rows: d.rows(t.Name)})
	}
	return out
}

func (d *Dataset) rows(table string) [][]any {
	var rows [][]any
	switch table {
	case schema.Dates:
		for _, r := range d.Calendar {
			rows = append(rows, []any{r.DateID, r.Date, r.Day, r.Week, r.Month, r.MonthName, r.Quarter, r.Year, r.IsWeekend})
		}
	case schema.Customers:
		for _, r := range d.Customers {
			rows = append(rows, []any{r.ID, r.FullName, r.Gender, r.DateOfBirth, r.Phone, r.Email, r.Address, r.City, r.Province, r.Points, r.Tier})
		}
	case schema.CustomerChildren:
		for _, r := range d.Children {
			rows = append(rows, []any{r.CustomerID, r.FullName, r.Gender, r.DateOfBirth})
		}
	case schema.Products:
		rows = ProductRows(d.Products)
	case schema.Stores:
		rows = StoreRows(d.Stores)
	case schema.Employees:
		for _, r := range d.Employees {
			rows = append(rows, []any{r.ID, r.FullName, r.Role, nullable(r.DefaultStoreID)})
		}
	case schema.Promotions:
		for _, r := range d.Promotions {
			rows = append(rows, []any{r.ID, r.Name, r.Type, money(r.Value), r.StartDate, r.EndDate})
		}
	case schema.ProductDailyCosts:
		for _, r := range d.Costs {
			rows = append(rows, []any{r.ProductID, r.DateID, money(r.Cost)})
		}
	case schema.Orders:
		for _, r := range d.Orders {
			rows = append(rows, []any{r.ID, r.DateID, nullable(r.CustomerID), nullable(r.EmployeeID), nullable(r.StoreID), r.Channel})
		}
	case schema.OrderItems:
		for _, r := range d.Items {
			rows = append(rows, []any{r.OrderID, r.ProductID, nullable(r.PromotionID), r.Quantity,
				money(r.UnitPrice), money(r.PromoPerUnit), money(r.DiscountPerUnit), money(r.Revenue)})
		}
	case schema.KPITargetMonthly:
		for _, r := range d.KPITargets {
			rows = append(rows, []any{r.StoreID, r.YearMonth, money(r.Revenue), r.OrderCount, r.Quantity})
		}
	}
	return rows
}

// ProductRows converts products to rows of the products table.
func ProductRows(products []Product) [][]any {
	rows := make([][]any, 0, len(products))
	for _, r := range products {
		rows = append(rows, []any{r.ID, r.Name, r.Category, r.Brand, r.Unit, money(r.ListPrice)})
	}
	return rows
}

// StoreRows converts stores to rows of the stores table.
func StoreRows(stores []Store) [][]any {
	rows := make([][]any, 0, len(stores))
	for _, r := range stores {
		rows = append(rows, []any{r.ID, r.Name, nullable(r.Address), nullable(r.City), nullable(r.Province), r.Region})
	}
	return rows
}

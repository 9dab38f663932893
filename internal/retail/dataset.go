//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package retail generates the mother & baby retail dataset: the calendar,
// the dimensions, the order stream and the monthly KPI targets.
package retail

import (
	"time"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
	"github.com/pgEdge/pgedge-retailgen/internal/logging"
	"github.com/pgEdge/pgedge-retailgen/internal/schema"
)

// Generator builds datasets. All randomness comes from its Faker, so a
// seeded Faker and a fixed today reproduce a dataset exactly.
type Generator struct {
	faker *datagen.Faker
	today time.Time
}

// NewGenerator creates a Generator. Only the date part of today is used.
func NewGenerator(faker *datagen.Faker, today time.Time) *Generator {
	return &Generator{faker: faker, today: truncateDay(today)}
}

// Params sizes a dataset.
type Params struct {
	Customers  int
	Products   int
	Employees  int
	Stores     int
	Promotions int
	Years      int

	MinRows int
	MaxRows int

	MonthlyActiveMin int
	MonthlyActiveMax int
}

// Dataset is a complete generated dataset.
type Dataset struct {
	Calendar   []CalendarDay
	Customers  []Customer
	Children   []Child
	Products   []Product
	Costs      []ProductDailyCost
	Stores     []Store
	Employees  []Employee
	Promotions []Promotion
	Orders     []Order
	Items      []OrderItem
	KPITargets []KPITarget
}

// Generate builds a dataset in dependency order: calendar, dimensions,
// facts, then KPI targets.
func (g *Generator) Generate(p Params) *Dataset {
	d := &Dataset{}

	d.Calendar = BuildCalendar(p.Years, g.today)
	logging.Debug().Int("days", len(d.Calendar)).Msg("Built calendar")

	d.Customers = g.Customers(p.Customers)
	d.Children = g.Children(d.Customers)
	d.Products = g.Products(p.Products)
	d.Stores = g.Stores(p.Stores)
	d.Employees = g.Employees(p.Employees, d.Stores)
	d.Promotions = g.Promotions(p.Promotions, d.Calendar)
	logging.Debug().
		Int("customers", len(d.Customers)).
		Int("children", len(d.Children)).
		Int("products", len(d.Products)).
		Int("stores", len(d.Stores)).
		Int("employees", len(d.Employees)).
		Int("promotions", len(d.Promotions)).
		Msg("Generated dimensions")

	d.Costs = g.DailyCosts(d.Calendar, d.Products)
	logging.Debug().Int("rows", len(d.Costs)).Msg("Generated product daily costs")

	facts := g.Orders(OrderParams{
		MinRows:          p.MinRows,
		MaxRows:          p.MaxRows,
		MonthlyActiveMin: p.MonthlyActiveMin,
		MonthlyActiveMax: p.MonthlyActiveMax,
	}, d.Calendar, d.Customers, d.Products, d.Stores, d.Employees, d.Promotions)
	d.Orders = facts.Orders
	d.Items = facts.Items
	logging.Debug().
		Int("orders", len(d.Orders)).
		Int("items", len(d.Items)).
		Strs("top_stores", facts.Traffic.TopStores()).
		Msg("Generated orders")

	d.KPITargets = DeriveKPITargets(d.Orders, d.Items)
	logging.Debug().Int("rows", len(d.KPITargets)).Msg("Derived KPI targets")

	return d
}

// Counts returns the number of rows per table.
func (d *Dataset) Counts() map[string]int {
	return map[string]int{
		schema.Dates:             len(d.Calendar),
		schema.Customers:         len(d.Customers),
		schema.CustomerChildren:  len(d.Children),
		schema.Products:          len(d.Products),
		schema.ProductDailyCosts: len(d.Costs),
		schema.Stores:            len(d.Stores),
		schema.Employees:         len(d.Employees),
		schema.Promotions:        len(d.Promotions),
		schema.Orders:            len(d.Orders),
		schema.OrderItems:        len(d.Items),
		schema.KPITargetMonthly:  len(d.KPITargets),
	}
}

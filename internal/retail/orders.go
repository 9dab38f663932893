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

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
)

const (
	// PromotionProbability is the chance an order uses one of the
	// promotions active on its day.
	PromotionProbability = 0.35

	// MaxItemsPerOrder caps the distinct products of one order.
	MaxItemsPerOrder = 5
)

// Order is an order header. Empty IDs mean no reference.
type Order struct {
	ID         int64
	DateID     int
	CustomerID string
	EmployeeID string
	StoreID    string
	Channel    string
}

// OrderItem is one line of an order. PromotionID is empty when the order
// carries no promotion.
type OrderItem struct {
	OrderID         int64
	ProductID       string
	PromotionID     string
	Quantity        int
	UnitPrice       decimal.Decimal
	PromoPerUnit    decimal.Decimal
	DiscountPerUnit decimal.Decimal
	Revenue         decimal.Decimal
}

// OrderParams sizes the order stream.
type OrderParams struct {
	MinRows          int
	MaxRows          int
	MonthlyActiveMin int
	MonthlyActiveMax int
}

// Facts holds the generated order stream.
type Facts struct {
	Orders    []Order
	Items     []OrderItem
	Scheduler *Scheduler
	Traffic   *Traffic
}

// Orders generates the order headers and line items.
//
// The number of orders is drawn once from [MinRows, MaxRows]. Every order
// gets a random calendar day, a channel with store and employee, the next
// active customer of its month, and with some probability one of the
// promotions active that day. Each order has one to five distinct
// products. No orders are generated for an empty calendar.
func (g *Generator) Orders(p OrderParams, cal []CalendarDay, customers []Customer, products []Product,
	stores []Store, employees []Employee, promos []Promotion) Facts {
	sched := g.ScheduleCohorts(cal, customers, p.MonthlyActiveMin, p.MonthlyActiveMax)
	traffic := g.NewTraffic(stores, employees)
	facts := Facts{Scheduler: sched, Traffic: traffic}

	if len(cal) == 0 {
		return facts
	}

	lo, hi := NormalizeRange(p.MinRows, p.MaxRows)
	n := g.faker.Int(lo, hi)
	promoIdx := IndexPromotions(promos)

	facts.Orders = make([]Order, 0, n)
	facts.Items = make([]OrderItem, 0, n*3)
	for id := int64(1); id <= int64(n); id++ {
		day := datagen.Choose(g.faker, cal)
		a := traffic.Assign()
		order := Order{
			ID:         id,
			DateID:     day.DateID,
			CustomerID: sched.Next(YearMonth(day.DateID)),
			EmployeeID: a.EmployeeID,
			StoreID:    a.StoreID,
			Channel:    a.Channel,
		}
		facts.Orders = append(facts.Orders, order)

		var promo *Promotion
		if active := promoIdx.Active(day.DateID); len(active) > 0 && g.faker.Probability(PromotionProbability) {
			promo = datagen.Choose(g.faker, active)
		}

		count := min(g.faker.Int(1, MaxItemsPerOrder), len(products))
		for _, prod := range datagen.Sample(g.faker, products, count) {
			qty := g.quantity()
			line := g.priceLine(prod.ListPrice, qty, promo)
			item := OrderItem{
				OrderID:         id,
				ProductID:       prod.ID,
				Quantity:        qty,
				UnitPrice:       line.UnitPrice,
				PromoPerUnit:    line.PromoPerUnit,
				DiscountPerUnit: line.DiscountPerUnit,
				Revenue:         line.Revenue,
			}
			if promo != nil {
				item.PromotionID = promo.ID
			}
			facts.Items = append(facts.Items, item)
		}
	}
	return facts
}

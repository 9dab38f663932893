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
)

// ProductDailyCost is the purchase cost of a product on one day.
type ProductDailyCost struct {
	ProductID string
	DateID    int
	Cost      decimal.Decimal
}

var (
	costFloor   = decimal.NewFromInt(1000)
	costLowBand = decimal.NewFromFloat(0.85)
	costTopBand = decimal.NewFromFloat(1.15)
	costDamping = decimal.NewFromFloat(0.8)
	anchorPull  = decimal.NewFromFloat(0.2)
)

// DailyCosts generates one cost per product per calendar day.
func (g *Generator) DailyCosts(cal []CalendarDay, products []Product) []ProductDailyCost {
	if len(cal) == 0 || len(products) == 0 {
		return nil
	}
	out := make([]ProductDailyCost, 0, len(cal)*len(products))
	for _, p := range products {
		costs, _ := g.costSeries(p.ListPrice, len(cal))
		for i, c := range costs {
			out = append(out, ProductDailyCost{ProductID: p.ID, DateID: cal[i].DateID, Cost: c})
		}
	}
	return out
}

// costSeries walks a cost around a slowly drifting anchor for the given
// number of days. It returns the daily costs and the anchor in force on
// each day.
//
// The anchor starts at 70-90% of the list price and drifts by up to 2%
// every 30 to 60 days. Each day moves by up to 1.5%, is pulled a fifth of
// the way back to the anchor and kept within 15% of it, never below 1000.
func (g *Generator) costSeries(list decimal.Decimal, days int) ([]decimal.Decimal, []decimal.Decimal) {
	costs := make([]decimal.Decimal, 0, days)
	anchors := make([]decimal.Decimal, 0, days)

	anchor := list.Mul(decimal.NewFromFloat(g.faker.Float64(0.70, 0.90))).Round(6)
	lastDrift := 0
	interval := g.faker.Int(30, 60)

	var prev decimal.Decimal
	for day := 0; day < days; day++ {
		if day-lastDrift >= interval {
			anchor = anchor.Mul(decimal.NewFromFloat(g.faker.Float64(0.98, 1.02))).Round(6)
			lastDrift = day
			interval = g.faker.Int(30, 60)
		}

		c := anchor
		if day > 0 {
			step := decimal.NewFromFloat(g.faker.Float64(-0.015, 0.015))
			c = prev.Mul(one.Add(step))
			c = c.Mul(costDamping).Add(anchor.Mul(anchorPull))
		}
		c = clamp(c, anchor.Mul(costLowBand), anchor.Mul(costTopBand))
		c = decimal.Max(c, costFloor).Round(2)

		costs = append(costs, c)
		anchors = append(anchors, anchor)
		prev = c
	}
	return costs, anchors
}

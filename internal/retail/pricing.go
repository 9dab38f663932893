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

var (
	quantities      = []int{1, 2, 3, 4, 5, 6}
	quantityWeights = []int{45, 25, 15, 8, 5, 2}

	one         = decimal.NewFromInt(1)
	three       = decimal.NewFromInt(3)
	hundred     = decimal.NewFromInt(100)
	thousand    = decimal.NewFromInt(1000)
	amountCap   = decimal.NewFromFloat(0.6)
	discountCap = decimal.NewFromFloat(0.1)
)

// LinePrice holds the per-unit amounts and revenue of one order line.
type LinePrice struct {
	UnitPrice       decimal.Decimal
	PromoPerUnit    decimal.Decimal
	DiscountPerUnit decimal.Decimal
	Revenue         decimal.Decimal
}

// sellingPrice perturbs a list price by U(0.95, 1.02) and rounds it to the
// nearest 1000.
func (g *Generator) sellingPrice(list decimal.Decimal) decimal.Decimal {
	p := list.Mul(decimal.NewFromFloat(g.faker.Float64(0.95, 1.02)))
	return p.Div(thousand).Round(0).Mul(thousand)
}

func (g *Generator) quantity() int {
	return datagen.ChooseWeighted(g.faker, quantities, quantityWeights)
}

// PromoPerUnit returns the per-unit promotional amount of promo for a line
// of qty units at price. It is zero without a promotion.
//
// Amount promotions are divided across the units of each line separately,
// so a flat amount is granted once per qualifying line.
func PromoPerUnit(price decimal.Decimal, qty int, promo *Promotion) decimal.Decimal {
	if promo == nil {
		return decimal.Zero
	}
	units := decimal.NewFromInt(int64(max(qty, 1)))
	switch promo.Type {
	case PromoPercent:
		return price.Mul(promo.Value).Div(hundred)
	case PromoAmount:
		v := decimal.Max(promo.Value.Div(units), decimal.Zero)
		return decimal.Min(v, price.Mul(amountCap))
	case PromoBundle:
		free := decimal.NewFromInt(int64(max(qty, 0))).Div(three).Floor()
		return free.Mul(price).Div(units)
	}
	return decimal.Zero
}

// ClampDiscounts rounds both per-unit amounts to whole currency units and
// limits them so that promo+discount <= price-1. The promotion is clamped
// first and the discount gets the remaining headroom.
func ClampDiscounts(price, promo, discount decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	headroom := decimal.Max(price.Sub(one).Floor(), decimal.Zero)

	promo = clamp(promo.Round(0), decimal.Zero, headroom)
	discount = clamp(discount.Round(0), decimal.Zero, headroom.Sub(promo))
	return promo, discount
}

func clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	return decimal.Max(lo, decimal.Min(v, hi))
}

// LineRevenue returns max((price-promo-discount)*qty, 0) rounded to a
// whole currency unit.
func LineRevenue(price, promo, discount decimal.Decimal, qty int) decimal.Decimal {
	net := price.Sub(promo).Sub(discount).Mul(decimal.NewFromInt(int64(qty)))
	return decimal.Max(net, decimal.Zero).Round(0)
}

// priceLine prices one line of qty units of a product listed at list.
func (g *Generator) priceLine(list decimal.Decimal, qty int, promo *Promotion) LinePrice {
	price := g.sellingPrice(list)
	promoUnit := PromoPerUnit(price, qty, promo)
	discount := decimal.NewFromFloat(g.faker.Float64(0, 1)).Mul(price).Mul(discountCap)
	promoUnit, discount = ClampDiscounts(price, promoUnit, discount)

	return LinePrice{
		UnitPrice:       price,
		PromoPerUnit:    promoUnit,
		DiscountPerUnit: discount,
		Revenue:         LineRevenue(price, promoUnit, discount, qty),
	}
}

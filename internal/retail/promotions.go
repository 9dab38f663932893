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
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
)

// Promotion types.
const (
	PromoPercent = "Percent"
	PromoAmount  = "Amount"
	PromoBundle  = "Bundle"
)

var promoTypes = []string{PromoPercent, PromoAmount, PromoBundle}

// Promotion is a discount campaign valid on every day of [StartDate, EndDate].
type Promotion struct {
	ID        string
	Name      string
	Type      string
	Value     decimal.Decimal
	StartDate time.Time
	EndDate   time.Time
}

// Promotions generates n promotions. Campaigns start at least 30 days
// before the end of the calendar when the calendar is long enough, and
// last 5 to 30 days.
func (g *Generator) Promotions(n int, cal []CalendarDay) []Promotion {
	if len(cal) == 0 {
		return nil
	}
	starts := cal
	if len(cal) > 30 {
		starts = cal[:len(cal)-30]
	}

	out := make([]Promotion, 0, max(n, 0))
	for i := 0; i < n; i++ {
		start := datagen.Choose(g.faker, starts).Date
		end := start.AddDate(0, 0, g.faker.Int(5, 30))

		p := Promotion{
			ID:        fmt.Sprintf("PRO-%03d", i+1),
			Type:      datagen.Choose(g.faker, promoTypes),
			StartDate: start,
			EndDate:   end,
		}
		switch p.Type {
		case PromoPercent:
			p.Value = decimal.NewFromFloat(g.faker.Float64(5, 40)).Round(2)
			p.Name = fmt.Sprintf("Giảm %s%% toàn bộ danh mục", p.Value.String())
		case PromoAmount:
			p.Value = decimal.NewFromFloat(g.faker.Float64(10000, 200000)).Round(0)
			p.Name = fmt.Sprintf("Giảm %sđ cho đơn hàng", groupThousands(p.Value.IntPart()))
		default:
			p.Value = decimal.NewFromInt(1)
			p.Name = "Mua 2 tặng 1"
		}
		out = append(out, p)
	}
	return out
}

// groupThousands formats n with '.' between groups of three digits.
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// PromotionIndex maps a date key to the promotions active that day.
type PromotionIndex map[int][]*Promotion

// IndexPromotions explodes every promotion window, both ends inclusive,
// into per-day entries.
func IndexPromotions(promos []Promotion) PromotionIndex {
	idx := make(PromotionIndex)
	for i := range promos {
		p := &promos[i]
		for d := truncateDay(p.StartDate); !d.After(p.EndDate); d = d.AddDate(0, 0, 1) {
			key := DateKey(d)
			idx[key] = append(idx[key], p)
		}
	}
	return idx
}

// Active returns the promotions valid on dateID.
func (idx PromotionIndex) Active(dateID int) []*Promotion {
	return idx[dateID]
}

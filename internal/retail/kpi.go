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
	"sort"

	"github.com/shopspring/decimal"
)

// KPITarget is the monthly target of one store.
type KPITarget struct {
	StoreID    string
	YearMonth  int
	Revenue    decimal.Decimal
	OrderCount int
	Quantity   int
}

type storeMonth struct {
	store string
	month int
}

// DeriveKPITargets aggregates line items per store and month and turns
// every metric into a running maximum over the store's months, so targets
// never go down. Lines of orders without a store are ignored. The result
// is sorted by store, then month.
func DeriveKPITargets(orders []Order, items []OrderItem) []KPITarget {
	byID := make(map[int64]*Order, len(orders))
	for i := range orders {
		byID[orders[i].ID] = &orders[i]
	}

	agg := make(map[storeMonth]*KPITarget)
	seen := make(map[storeMonth]map[int64]bool)
	for _, it := range items {
		o, ok := byID[it.OrderID]
		if !ok || o.StoreID == "" {
			continue
		}
		key := storeMonth{o.StoreID, YearMonth(o.DateID)}
		t, ok := agg[key]
		if !ok {
			t = &KPITarget{StoreID: key.store, YearMonth: key.month, Revenue: decimal.Zero}
			agg[key] = t
			seen[key] = make(map[int64]bool)
		}
		t.Revenue = t.Revenue.Add(it.Revenue)
		t.Quantity += it.Quantity
		if !seen[key][o.ID] {
			seen[key][o.ID] = true
			t.OrderCount++
		}
	}

	out := make([]KPITarget, 0, len(agg))
	for _, t := range agg {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StoreID != out[j].StoreID {
			return out[i].StoreID < out[j].StoreID
		}
		return out[i].YearMonth < out[j].YearMonth
	})

	for i := 1; i < len(out); i++ {
		prev, cur := &out[i-1], &out[i]
		if prev.StoreID != cur.StoreID {
			continue
		}
		cur.Revenue = decimal.Max(cur.Revenue, prev.Revenue)
		cur.OrderCount = max(cur.OrderCount, prev.OrderCount)
		cur.Quantity = max(cur.Quantity, prev.Quantity)
	}
	return out
}

// MonthlyActiveCustomers counts the distinct customers per month of the
// orders. Orders without a customer are not counted.
func MonthlyActiveCustomers(orders []Order) map[int]int {
	sets := make(map[int]map[string]bool)
	for _, o := range orders {
		ym := YearMonth(o.DateID)
		if sets[ym] == nil {
			sets[ym] = make(map[string]bool)
		}
		if o.CustomerID != "" {
			sets[ym][o.CustomerID] = true
		}
	}
	out := make(map[int]int, len(sets))
	for ym, s := range sets {
		out[ym] = len(s)
	}
	return out
}

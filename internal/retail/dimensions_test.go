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
	"slices"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		points int
		want   string
	}{
		{0, TierBronze},
		{999, TierBronze},
		{1000, TierSilver},
		{4999, TierSilver},
		{5000, TierGold},
		{14999, TierGold},
		{15000, TierPlatinum},
		{20000, TierPlatinum},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.points), func(t *testing.T) {
			if got := TierFor(tt.points); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestRegionOf(t *testing.T) {
	tests := []struct {
		city     string
		province string
		want     string
	}{
		{"Hà Nội", "Hà Nội", RegionNorth},
		{"Huế", "Thừa Thiên Huế", RegionCentral},
		{"Nha Trang", "", RegionCentral},
		{"Biên Hòa", "Đồng Nai", RegionSouth},
		{"Unknown", "Somewhere", RegionSouth},
		{"", "", RegionSouth},
	}
	for _, tt := range tests {
		t.Run(tt.city+"/"+tt.province, func(t *testing.T) {
			if got := RegionOf(tt.city, tt.province); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestCustomers(t *testing.T) {
	g := newTestGenerator(1)
	customers := g.Customers(200)

	if len(customers) != 200 {
		t.Fatalf("Expected 200 customers, got %d", len(customers))
	}
	if customers[0].ID != "CUST-0001" || customers[199].ID != "CUST-0200" {
		t.Errorf("Unexpected IDs %s..%s", customers[0].ID, customers[199].ID)
	}

	oldest := g.today.AddDate(-45, 0, -1)
	youngest := g.today.AddDate(-18, 0, 0)
	for _, c := range customers {
		if c.Tier != TierFor(c.Points) {
			t.Errorf("%s: tier %s does not match %d points", c.ID, c.Tier, c.Points)
		}
		if c.Points < 0 || c.Points > 20000 {
			t.Errorf("%s: points %d out of range", c.ID, c.Points)
		}
		if c.DateOfBirth.Before(oldest) || c.DateOfBirth.After(youngest) {
			t.Errorf("%s: date of birth %v out of 18-45 age range", c.ID, c.DateOfBirth)
		}
		if c.FullName == "" || c.Email == "" || c.Phone == "" {
			t.Errorf("%s: missing contact details", c.ID)
		}
		if c.City == "" || c.Province == "" {
			t.Errorf("%s: missing location", c.ID)
		}
	}
}

func TestChildren(t *testing.T) {
	g := newTestGenerator(2)
	customers := g.Customers(100)
	children := g.Children(customers)

	perCustomer := make(map[string]int)
	oldest := g.today.AddDate(-11, 0, 0)
	for _, c := range children {
		perCustomer[c.CustomerID]++
		if c.DateOfBirth.Before(oldest) || c.DateOfBirth.After(g.today) {
			t.Errorf("Child of %s born %v, outside 0-10 age range", c.CustomerID, c.DateOfBirth)
		}
	}
	for id, n := range perCustomer {
		if n > 5 {
			t.Errorf("Customer %s has %d children, expected at most 5", id, n)
		}
	}
}

func TestProductsMatchCategory(t *testing.T) {
	g := newTestGenerator(3)
	products := g.Products(500)

	if len(products) != 500 {
		t.Fatalf("Expected 500 products, got %d", len(products))
	}
	thousand := decimal.NewFromInt(1000)
	for _, p := range products {
		cat, ok := CategoryByName(p.Category)
		if !ok {
			t.Fatalf("%s: unknown category %q", p.ID, p.Category)
		}
		if !slices.Contains(cat.Brands, p.Brand) {
			t.Errorf("%s: brand %q not in category %q", p.ID, p.Brand, p.Category)
		}
		if !slices.Contains(cat.Units, p.Unit) {
			t.Errorf("%s: unit %q not in category %q", p.ID, p.Unit, p.Category)
		}
		if !strings.Contains(p.Name, p.Brand) {
			t.Errorf("%s: name %q does not mention brand %q", p.ID, p.Name, p.Brand)
		}
		if p.ListPrice.LessThan(decimal.NewFromInt(cat.MinPrice)) || p.ListPrice.GreaterThan(decimal.NewFromInt(cat.MaxPrice)) {
			t.Errorf("%s: price %s outside band of %q", p.ID, p.ListPrice, p.Category)
		}
		if !p.ListPrice.Mod(thousand).IsZero() {
			t.Errorf("%s: price %s not rounded to 1000", p.ID, p.ListPrice)
		}
	}
}

func TestStores(t *testing.T) {
	g := newTestGenerator(4)
	stores := g.Stores(3)

	if len(stores) != 3+len(OnlinePlatforms) {
		t.Fatalf("Expected %d stores, got %d", 3+len(OnlinePlatforms), len(stores))
	}
	for i, s := range stores[:3] {
		if s.ID != fmt.Sprintf("STO-%03d", i+1) {
			t.Errorf("Expected STO-%03d, got %s", i+1, s.ID)
		}
		if s.IsOnline() {
			t.Errorf("%s should be a physical store", s.ID)
		}
		if s.Region != RegionOf(s.City, s.Province) {
			t.Errorf("%s: region %s does not match %s", s.ID, s.Region, s.Province)
		}
	}
	for i, s := range stores[3:] {
		if s.ID != OnlinePlatforms[i].ID || !s.IsOnline() {
			t.Errorf("Expected online store %s, got %s", OnlinePlatforms[i].ID, s.ID)
		}
		if s.Region != RegionOnline || s.Address != "" || s.City != "" || s.Province != "" {
			t.Errorf("%s: online store should have region Online and no location", s.ID)
		}
	}

	if only := g.Stores(0); len(only) != len(OnlinePlatforms) {
		t.Errorf("Expected only online stores, got %d", len(only))
	}
}

func TestEmployeesUsePhysicalStores(t *testing.T) {
	g := newTestGenerator(5)
	stores := g.Stores(4)
	employees := g.Employees(50, stores)

	for _, e := range employees {
		if !strings.HasPrefix(e.DefaultStoreID, OfflineStorePrefix) {
			t.Errorf("%s: default store %q is not a physical store", e.ID, e.DefaultStoreID)
		}
		if !slices.Contains(employeeRoles, e.Role) {
			t.Errorf("%s: unexpected role %q", e.ID, e.Role)
		}
	}

	for _, e := range g.Employees(5, g.Stores(0)) {
		if e.DefaultStoreID != "" {
			t.Errorf("%s: expected no default store, got %q", e.ID, e.DefaultStoreID)
		}
	}
}

func TestPromotions(t *testing.T) {
	g := newTestGenerator(6)
	cal := BuildCalendar(1, g.today)
	promos := g.Promotions(100, cal)

	lastStart := cal[len(cal)-31].Date
	for _, p := range promos {
		days := int(p.EndDate.Sub(p.StartDate).Hours() / 24)
		if days < 5 || days > 30 {
			t.Errorf("%s: window of %d days, expected 5-30", p.ID, days)
		}
		if p.StartDate.After(lastStart) {
			t.Errorf("%s: starts %v, later than 30 days before the end", p.ID, p.StartDate)
		}
		switch p.Type {
		case PromoPercent:
			if p.Value.LessThan(decimal.NewFromInt(5)) || p.Value.GreaterThan(decimal.NewFromInt(40)) {
				t.Errorf("%s: percent value %s out of range", p.ID, p.Value)
			}
			if !strings.Contains(p.Name, "%") {
				t.Errorf("%s: unexpected name %q", p.ID, p.Name)
			}
		case PromoAmount:
			if p.Value.LessThan(decimal.NewFromInt(10000)) || p.Value.GreaterThan(decimal.NewFromInt(200000)) {
				t.Errorf("%s: amount value %s out of range", p.ID, p.Value)
			}
			if !strings.HasSuffix(p.Name, "đ cho đơn hàng") {
				t.Errorf("%s: unexpected name %q", p.ID, p.Name)
			}
		case PromoBundle:
			if !p.Value.Equal(decimal.NewFromInt(1)) || p.Name != "Mua 2 tặng 1" {
				t.Errorf("%s: unexpected bundle %s %q", p.ID, p.Value, p.Name)
			}
		default:
			t.Errorf("%s: unknown type %q", p.ID, p.Type)
		}
	}
}

func TestPromotionsShortCalendar(t *testing.T) {
	g := newTestGenerator(7)
	cal := BuildCalendar(0, g.today)
	promos := g.Promotions(3, cal)
	if len(promos) != 3 {
		t.Fatalf("Expected 3 promotions, got %d", len(promos))
	}
	for _, p := range promos {
		if !p.StartDate.Equal(cal[0].Date) {
			t.Errorf("%s: expected start %v, got %v", p.ID, cal[0].Date, p.StartDate)
		}
	}
	if g.Promotions(3, nil) != nil {
		t.Error("Expected no promotions without a calendar")
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{10000, "10.000"},
		{200000, "200.000"},
		{1234567, "1.234.567"},
		{-45000, "-45.000"},
	}
	for _, tt := range tests {
		if got := groupThousands(tt.in); got != tt.want {
			t.Errorf("groupThousands(%d): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestIndexPromotions(t *testing.T) {
	promos := []Promotion{
		{ID: "PRO-001", StartDate: DateFromKey(20250101), EndDate: DateFromKey(20250105)},
		{ID: "PRO-002", StartDate: DateFromKey(20250105), EndDate: DateFromKey(20250106)},
	}
	idx := IndexPromotions(promos)

	tests := []struct {
		key  int
		want []string
	}{
		{20241231, nil},
		{20250101, []string{"PRO-001"}},
		{20250105, []string{"PRO-001", "PRO-002"}},
		{20250106, []string{"PRO-002"}},
		{20250107, nil},
	}
	for _, tt := range tests {
		var got []string
		for _, p := range idx.Active(tt.key) {
			got = append(got, p.ID)
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("%d: expected %v, got %v", tt.key, tt.want, got)
		}
	}
}

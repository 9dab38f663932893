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
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
)

// Customer is a loyalty program member.
type Customer struct {
	ID          string
	FullName    string
	Gender      string
	DateOfBirth time.Time
	Phone       string
	Email       string
	Address     string
	City        string
	Province    string
	Points      int
	Tier        string
}

// Child is a dependent of a customer who uses the products.
type Child struct {
	CustomerID  string
	FullName    string
	Gender      string
	DateOfBirth time.Time
}

// Product is a catalog item.
type Product struct {
	ID        string
	Name      string
	Category  string
	Brand     string
	Unit      string
	ListPrice decimal.Decimal
}

// Store is a physical store or an online pseudo-store. Online stores have
// no address, city or province.
type Store struct {
	ID       string
	Name     string
	Address  string
	City     string
	Province string
	Region   string
}

// IsOnline reports whether s is a marketplace pseudo-store.
func (s Store) IsOnline() bool {
	return strings.HasPrefix(s.ID, OnlineStorePrefix)
}

// Employee works in the stores. DefaultStoreID is empty when there are no
// physical stores.
type Employee struct {
	ID             string
	FullName       string
	Role           string
	DefaultStoreID string
}

// Customers generates n customers aged 18 to 45.
func (g *Generator) Customers(n int) []Customer {
	out := make([]Customer, 0, max(n, 0))
	for i := 0; i < n; i++ {
		city := datagen.Choose(g.faker, cities)
		gender := g.faker.Gender()
		points := g.faker.Int(0, 20000)
		out = append(out, Customer{
			ID:          fmt.Sprintf("CUST-%04d", i+1),
			FullName:    g.faker.FullName(gender),
			Gender:      gender,
			DateOfBirth: truncateDay(g.faker.DateRange(g.today.AddDate(-45, 0, 0), g.today.AddDate(-18, 0, 0))),
			Phone:       g.faker.Phone(),
			Email:       g.faker.Email(),
			Address:     g.faker.StreetAddress(),
			City:        city.Name,
			Province:    city.Province,
			Points:      points,
			Tier:        TierFor(points),
		})
	}
	return out
}

// Children generates zero to five children aged 0 to 10 per customer.
func (g *Generator) Children(customers []Customer) []Child {
	var out []Child
	for _, c := range customers {
		count := g.faker.Int(0, 5)
		for j := 0; j < count; j++ {
			gender := g.faker.Gender()
			dob := g.today.AddDate(-g.faker.Int(0, 10), 0, -g.faker.Int(0, 364))
			out = append(out, Child{
				CustomerID:  c.ID,
				FullName:    g.faker.GivenName(gender),
				Gender:      gender,
				DateOfBirth: dob,
			})
		}
	}
	return out
}

// roundThousand rounds v to the nearest 1000.
func roundThousand(v float64) int64 {
	return int64(math.Round(v/1000) * 1000)
}

// Products generates n products. Brand, unit, size, name and price band
// always come from the product's category.
func (g *Generator) Products(n int) []Product {
	out := make([]Product, 0, max(n, 0))
	for i := 0; i < n; i++ {
		cat := datagen.Choose(g.faker, categories)
		brand := datagen.Choose(g.faker, cat.Brands)
		unit := datagen.Choose(g.faker, cat.Units)
		base := datagen.Choose(g.faker, cat.BaseNames)
		size := datagen.Choose(g.faker, cat.Sizes)
		price := roundThousand(g.faker.Float64(float64(cat.MinPrice), float64(cat.MaxPrice)))

		name := base + " " + brand
		if size != "" {
			name += " " + size
		}
		out = append(out, Product{
			ID:        fmt.Sprintf("PRD-%04d", i+1),
			Name:      name,
			Category:  cat.Name,
			Brand:     brand,
			Unit:      unit,
			ListPrice: decimal.NewFromInt(price),
		})
	}
	return out
}

// Stores generates n physical stores followed by the online pseudo-stores.
func (g *Generator) Stores(n int) []Store {
	out := make([]Store, 0, max(n, 0)+len(OnlinePlatforms))
	for i := 0; i < n; i++ {
		city := datagen.Choose(g.faker, cities)
		out = append(out, Store{
			ID:       fmt.Sprintf("%s%03d", OfflineStorePrefix, i+1),
			Name:     fmt.Sprintf("Cửa hàng Mẹ&Bé %d", i+1),
			Address:  g.faker.StreetAddress(),
			City:     city.Name,
			Province: city.Province,
			Region:   RegionOf(city.Name, city.Province),
		})
	}
	out = append(out, onlineStores()...)
	return out
}

func onlineStores() []Store {
	out := make([]Store, 0, len(OnlinePlatforms))
	for _, p := range OnlinePlatforms {
		out = append(out, Store{ID: p.ID, Name: p.Name, Region: RegionOnline})
	}
	return out
}

// Employees generates n employees. Default stores are drawn from the
// physical stores only.
func (g *Generator) Employees(n int, stores []Store) []Employee {
	var offline []string
	for _, s := range stores {
		if !s.IsOnline() {
			offline = append(offline, s.ID)
		}
	}

	out := make([]Employee, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, Employee{
			ID:             fmt.Sprintf("EMP-%04d", i+1),
			FullName:       g.faker.FullName(g.faker.Gender()),
			Role:           datagen.Choose(g.faker, employeeRoles),
			DefaultStoreID: datagen.Choose(g.faker, offline),
		})
	}
	return out
}

//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package loader

import (
	"context"
	"reflect"
	"slices"
	"testing"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
	"github.com/pgEdge/pgedge-retailgen/internal/retail"
	"github.com/pgEdge/pgedge-retailgen/internal/schema"
	"github.com/pgEdge/pgedge-retailgen/internal/sink"
)

func loadedMemory(t *testing.T) (*sink.Memory, *Result) {
	t.Helper()
	mem := sink.NewMemory()
	res, err := Run(context.Background(), mem, testOptions())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return mem, res
}

func column(rows [][]any, i int) []any {
	out := make([]any, len(rows))
	for j, r := range rows {
		out[j] = r[i]
	}
	return out
}

func TestRefreshProducts(t *testing.T) {
	ctx := context.Background()
	mem, _ := loadedMemory(t)
	beforeProducts := mem.Rows(schema.Products)
	beforeItems := mem.Rows(schema.OrderItems)

	gen := retail.NewGenerator(datagen.NewFakerWithSeed(99), testToday)
	n, err := RefreshProducts(ctx, mem, gen)
	if err != nil {
		t.Fatalf("RefreshProducts failed: %v", err)
	}
	if n != int64(len(beforeProducts)) {
		t.Errorf("Expected %d updated products, got %d", len(beforeProducts), n)
	}

	after := mem.Rows(schema.Products)
	if !reflect.DeepEqual(column(after, 0), column(beforeProducts, 0)) {
		t.Error("Expected product keys to be preserved")
	}
	if reflect.DeepEqual(column(after, 1), column(beforeProducts, 1)) {
		t.Error("Expected product names to change")
	}
	if !reflect.DeepEqual(mem.Rows(schema.OrderItems), beforeItems) {
		t.Error("Expected order items to be untouched")
	}
}

func TestRefreshStores(t *testing.T) {
	ctx := context.Background()
	mem, res := loadedMemory(t)
	_, err := mem.InsertRows(ctx, schema.Stores, []string{"id", "name", "region"},
		[][]any{{"LEGACY-1", "Kho cũ", "Miền Nam"}})
	if err != nil {
		t.Fatalf("InsertRows failed: %v", err)
	}
	before := mem.Rows(schema.Stores)
	beforeByID := make(map[any][]any, len(before))
	for _, row := range before {
		beforeByID[row[0]] = row
	}

	gen := retail.NewGenerator(datagen.NewFakerWithSeed(98), testToday)
	got, err := RefreshStores(ctx, mem, gen)
	if err != nil {
		t.Fatalf("RefreshStores failed: %v", err)
	}
	if got.Offline != 4 {
		t.Errorf("Expected 4 physical stores updated, got %d", got.Offline)
	}
	if got.Online != int64(len(retail.OnlinePlatforms)) {
		t.Errorf("Expected %d online stores upserted, got %d", len(retail.OnlinePlatforms), got.Online)
	}
	if !slices.Equal(got.Skipped, []string{"LEGACY-1"}) {
		t.Errorf("Expected LEGACY-1 to be skipped, got %v", got.Skipped)
	}

	after := mem.Rows(schema.Stores)
	if len(after) != len(before) {
		t.Fatalf("Expected %d stores, got %d", len(before), len(after))
	}
	if !reflect.DeepEqual(column(after, 0), column(before, 0)) {
		t.Error("Expected store keys to be preserved")
	}
	changed := 0
	for _, row := range after {
		id := row[0].(string)
		switch {
		case id == "LEGACY-1":
			if !reflect.DeepEqual(row, beforeByID[id]) {
				t.Errorf("Expected LEGACY-1 untouched, got %v", row)
			}
		case row[5] == retail.RegionOnline:
			if row[2] != nil || row[3] != nil {
				t.Errorf("%s: expected no address, got %v", id, row)
			}
		default:
			if !reflect.DeepEqual(row, beforeByID[id]) {
				changed++
			}
		}
	}
	if changed == 0 {
		t.Error("Expected physical store attributes to change")
	}

	// Orders keep pointing at the same store keys.
	stores := make(map[any]bool)
	for _, row := range after {
		stores[row[0]] = true
	}
	for _, o := range res.Dataset.Orders {
		if o.StoreID != "" && !stores[o.StoreID] {
			t.Fatalf("Order %d references missing store %s", o.ID, o.StoreID)
		}
	}
}

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
	"fmt"

	"github.com/pgEdge/pgedge-retailgen/internal/logging"
	"github.com/pgEdge/pgedge-retailgen/internal/retail"
	"github.com/pgEdge/pgedge-retailgen/internal/schema"
	"github.com/pgEdge/pgedge-retailgen/internal/sink"
)

var (
	productAttributes = []string{"name", "category", "brand", "unit", "list_price"}
	storeAttributes   = []string{"name", "address", "city", "province", "region"}
)

// RefreshProducts regenerates the attributes of every stored product and
// updates them in place. Product keys and the rows referencing them are
// left untouched.
func RefreshProducts(ctx context.Context, s sink.Sink, gen *retail.Generator) (int64, error) {
	keys, err := s.ReadKeys(ctx, schema.Products, "id")
	if err != nil {
		return 0, err
	}
	products, err := gen.RefreshProducts(keys)
	if err != nil {
		return 0, err
	}

	n, err := s.UpdateRows(ctx, schema.Products, "id", productAttributes, retail.ProductRows(products))
	if err != nil {
		return 0, fmt.Errorf("failed to update products: %w", err)
	}
	logging.Info().Int("keys", len(keys)).Int64("rows", n).Msg("Refreshed products")
	return n, nil
}

// StoreRefresh reports the rows touched by a store refresh.
type StoreRefresh struct {
	Offline int64
	Online  int64
	Skipped []string
}

// RefreshStores regenerates the attributes of every stored physical store
// and upserts the online pseudo-stores. Keys with an unknown prefix are
// left alone.
func RefreshStores(ctx context.Context, s sink.Sink, gen *retail.Generator) (StoreRefresh, error) {
	var res StoreRefresh

	keys, err := s.ReadKeys(ctx, schema.Stores, "id")
	if err != nil {
		return res, err
	}
	offlineKeys, _, other := retail.StoreKeys(keys)
	for _, k := range other {
		logging.Warn().Str("store", k).Msg("Skipping store with unknown key prefix")
	}
	res.Skipped = other

	offline, online, err := gen.RefreshStores(offlineKeys)
	if err != nil {
		return res, err
	}

	res.Offline, err = s.UpdateRows(ctx, schema.Stores, "id", storeAttributes, retail.StoreRows(offline))
	if err != nil {
		return res, fmt.Errorf("failed to update stores: %w", err)
	}
	res.Online, err = s.UpsertRows(ctx, schema.Stores, "id", storeAttributes, retail.StoreRows(online))
	if err != nil {
		return res, fmt.Errorf("failed to upsert online stores: %w", err)
	}

	logging.Info().
		Int64("offline", res.Offline).
		Int64("online", res.Online).
		Int("skipped", len(res.Skipped)).
		Msg("Refreshed stores")
	return res, nil
}

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
	"errors"
	"fmt"
	"strings"
)

// ErrCountMismatch is returned when regenerated attributes do not line up
// with the existing keys.
var ErrCountMismatch = errors.New("regenerated row count does not match existing keys")

// rekey assigns keys to generated rows by position.
func rekey[T any](keys []string, rows []T, setKey func(*T, string)) ([]T, error) {
	if len(keys) != len(rows) {
		return nil, fmt.Errorf("%w: %d keys, %d rows", ErrCountMismatch, len(keys), len(rows))
	}
	out := make([]T, len(rows))
	for i := range rows {
		out[i] = rows[i]
		setKey(&out[i], keys[i])
	}
	return out, nil
}

// RefreshProducts regenerates product attributes for the existing keys.
// The result has one product per key, in key order.
func (g *Generator) RefreshProducts(keys []string) ([]Product, error) {
	return rekey(keys, g.Products(len(keys)), func(p *Product, k string) { p.ID = k })
}

// StoreKeys splits store keys into physical and online stores. Keys with
// neither prefix are returned as other.
func StoreKeys(keys []string) (offline, online, other []string) {
	for _, k := range keys {
		switch {
		case strings.HasPrefix(k, OfflineStorePrefix):
			offline = append(offline, k)
		case strings.HasPrefix(k, OnlineStorePrefix):
			online = append(online, k)
		default:
			other = append(other, k)
		}
	}
	return offline, online, other
}

// RefreshStores regenerates attributes for the existing physical store
// keys and returns them along with the fixed online pseudo-stores.
func (g *Generator) RefreshStores(offlineKeys []string) (offline, online []Store, err error) {
	var generated []Store
	for _, s := range g.Stores(len(offlineKeys)) {
		if !s.IsOnline() {
			generated = append(generated, s)
		}
	}
	offline, err = rekey(offlineKeys, generated, func(s *Store, k string) { s.ID = k })
	if err != nil {
		return nil, nil, err
	}
	return offline, onlineStores(), nil
}

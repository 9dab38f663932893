//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
	"github.com/pgEdge/pgedge-retailgen/internal/loader"
	"github.com/pgEdge/pgedge-retailgen/internal/logging"
	"github.com/pgEdge/pgedge-retailgen/internal/retail"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Regenerate dimension attributes in place",
	Long: `Regenerate the descriptive attributes of an already loaded dimension
while keeping its keys, so orders and other referencing rows stay valid.`,
}

var refreshProductsCmd = &cobra.Command{
	Use:   "products",
	Short: "Regenerate product names, categories, brands and prices",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		ctx, stop := signalContext(cmd.Context())
		defer stop()

		s := newSink()
		defer s.Close()

		n, err := loader.RefreshProducts(ctx, s, refreshGenerator())
		if err != nil {
			return err
		}
		cmd.Printf("Updated %d products\n", n)
		return nil
	},
}

var refreshStoresCmd = &cobra.Command{
	Use:   "stores",
	Short: "Regenerate physical stores and upsert online stores",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		ctx, stop := signalContext(cmd.Context())
		defer stop()

		s := newSink()
		defer s.Close()

		res, err := loader.RefreshStores(ctx, s, refreshGenerator())
		if err != nil {
			return err
		}
		cmd.Printf("Updated %d physical stores, upserted %d online stores\n", res.Offline, res.Online)
		if len(res.Skipped) > 0 {
			cmd.Printf("Skipped %d stores with unknown keys\n", len(res.Skipped))
		}
		return nil
	},
}

func init() {
	refreshCmd.AddCommand(refreshProductsCmd)
	refreshCmd.AddCommand(refreshStoresCmd)
}

func refreshGenerator() *retail.Generator {
	faker := datagen.NewFaker()
	if cfg.Seed != 0 {
		faker = datagen.NewFakerWithSeed(cfg.Seed)
	}
	logging.Debug().Uint64("seed", faker.Seed()).Msg("Refresh seed")
	return retail.NewGenerator(faker, time.Now())
}

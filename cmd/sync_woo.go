package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"remiks.GO/service/source"
	"remiks.GO/service/sync"
)

var syncWooCmd = &cobra.Command{
	Use:   "sync:woo",
	Short: "Pull the WooCommerce catalog and push it to the Remiks platform",
	Run: func(cmd *cobra.Command, args []string) {
		start := time.Now()
		svc, cfg := newSyncService()

		fmt.Printf("Fetching published products from %s ...\n", cfg.WooSiteURL)
		rows, err := source.NewWooSource(cfg).Rows(context.Background())
		if err != nil {
			fmt.Printf("Failed to fetch catalog: %v\n", err)
			return
		}
		fmt.Printf("Fetched %d rows.\n", len(rows))

		res, err := svc.RunProductSync(context.Background(), rows, sync.AssembleOptions{
			Channel:          sync.ChannelWoo,
			DefaultWarehouse: cfg.DefaultWarehouse,
		})
		if errors.Is(err, sync.ErrNoRows) {
			fmt.Println("Catalog is empty, nothing submitted.")
			return
		}
		if err != nil {
			fmt.Printf("Sync failed: %v\n", err)
			return
		}
		printRunResult(res, start)
	},
}

func init() {
	rootCmd.AddCommand(syncWooCmd)
}

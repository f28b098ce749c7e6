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

var (
	productsFile  string
	productsDelim string
)

var syncProductsCmd = &cobra.Command{
	Use:   "sync:products",
	Short: "Push products from a sheet export to the Remiks platform",
	Run: func(cmd *cobra.Command, args []string) {
		start := time.Now()
		svc, cfg := newSyncService()

		src := source.NewCSVSource(productsFile)
		if productsDelim != "" {
			src.Comma = rune(productsDelim[0])
		}
		rows, err := src.Rows(context.Background())
		if err != nil {
			fmt.Printf("Failed to read %s: %v\n", productsFile, err)
			return
		}

		res, err := svc.RunProductSync(context.Background(), rows, sync.AssembleOptions{
			Channel:          sync.ChannelExcel,
			DefaultWarehouse: cfg.DefaultWarehouse,
		})
		if errors.Is(err, sync.ErrNoRows) {
			fmt.Println("Source is empty, nothing submitted.")
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
	syncProductsCmd.Flags().StringVarP(&productsFile, "file", "f", "", "CSV export of the master sheet (required)")
	syncProductsCmd.MarkFlagRequired("file")
	syncProductsCmd.Flags().StringVar(&productsDelim, "delimiter", "", "Field delimiter (default comma)")
	rootCmd.AddCommand(syncProductsCmd)
}

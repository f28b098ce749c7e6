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

var stockFile string

var syncStockCmd = &cobra.Command{
	Use:   "sync:stock",
	Short: "Push stock levels and prices from a sheet export",
	Run: func(cmd *cobra.Command, args []string) {
		start := time.Now()
		svc, _ := newSyncService()

		rows, err := source.NewCSVSource(stockFile).Rows(context.Background())
		if err != nil {
			fmt.Printf("Failed to read %s: %v\n", stockFile, err)
			return
		}

		res, err := svc.RunStockSync(context.Background(), rows)
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
	syncStockCmd.Flags().StringVarP(&stockFile, "file", "f", "", "CSV export of the stock sheet (required)")
	syncStockCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(syncStockCmd)
}

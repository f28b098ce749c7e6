package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"remiks.GO/service/archive"
	"remiks.GO/service/source"
	"remiks.GO/service/sync"
)

var (
	updateFile    string
	updatePayload string
	updatePrefix  string
)

var stockUpdateCmd = &cobra.Command{
	Use:   "stock:update",
	Short: "Refresh stock for SKUs from the last archived product payload",
	Run: func(cmd *cobra.Command, args []string) {
		start := time.Now()
		svc, cfg := newSyncService()
		store := archive.NewStore(cfg.ArchiveDir, cfg.ErrorLogPath)

		payloadPath := updatePayload
		if payloadPath == "" {
			var err error
			payloadPath, err = store.LatestPayload(updatePrefix)
			if errors.Is(err, archive.ErrNoPayload) {
				fmt.Printf("No archived %s payload found in %s. Run a product sync first.\n", updatePrefix, cfg.ArchiveDir)
				return
			}
			if err != nil {
				fmt.Printf("Failed to locate payload: %v\n", err)
				return
			}
		}
		fmt.Printf("Using product payload: %s\n", payloadPath)

		prior, err := store.LoadRecords(payloadPath)
		if err != nil {
			fmt.Printf("Failed to load payload: %v\n", err)
			return
		}

		rows, err := source.NewCSVSource(updateFile).Rows(context.Background())
		if err != nil {
			fmt.Printf("Failed to read %s: %v\n", updateFile, err)
			return
		}

		res, err := svc.RunStockUpdate(context.Background(), rows, prior, cfg.DefaultWarehouse)
		if errors.Is(err, sync.ErrNoRows) {
			fmt.Println("Nothing to update.")
			return
		}
		if err != nil {
			fmt.Printf("Update failed: %v\n", err)
			return
		}
		printRunResult(res, start)
	},
}

func init() {
	stockUpdateCmd.Flags().StringVarP(&updateFile, "file", "f", "", "CSV export with new stock levels (required)")
	stockUpdateCmd.MarkFlagRequired("file")
	stockUpdateCmd.Flags().StringVar(&updatePayload, "payload", "", "Explicit product payload file (default: newest archived)")
	stockUpdateCmd.Flags().StringVar(&updatePrefix, "source", "excel_to_remiks", "Archived payload prefix to update against")
	rootCmd.AddCommand(stockUpdateCmd)
}

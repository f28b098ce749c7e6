package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"remiks.GO/config"
	"remiks.GO/service/archive"
	"remiks.GO/service/remiks"
	"remiks.GO/service/sync"
)

var rootCmd = &cobra.Command{
	Use:   "remiks",
	Short: "Product and stock feed tools for the Remiks platform",
}

func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newSyncService wires the sync pipeline from the app config.
func newSyncService() (*sync.Service, *config.Config) {
	config.LoadAppConfig()
	cfg := config.AppConfig
	store := archive.NewStore(cfg.ArchiveDir, cfg.ErrorLogPath)
	return sync.NewService(remiks.NewClient(cfg), store), cfg
}

func printRunResult(res *sync.RunResult, start time.Time) {
	for _, w := range res.Warnings {
		fmt.Printf("  [warn] %s\n", w)
	}
	for _, e := range res.ServiceErrors {
		fmt.Printf("  [service error] %s\n", e)
	}
	fmt.Printf(`
=== Sync Report ===
Products:       %d
Payload:        %s
Service errors: %d
Total time:     %s
===================
`, res.Products, res.PayloadPath, len(res.ServiceErrors), time.Since(start).Round(time.Millisecond))
}

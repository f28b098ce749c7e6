package jobs

import (
	"context"
	"errors"
	"log"
	"os"

	"remiks.GO/config"
	"remiks.GO/cron"
	"remiks.GO/service/archive"
	"remiks.GO/service/remiks"
	"remiks.GO/service/source"
	"remiks.GO/service/sync"
)

func init() {
	cron.Register("woosync", "0 3 * * *", WooSyncJob)
	cron.Register("stocksync", "30 6 * * *", StockSyncJob)
}

func newService() (*sync.Service, *config.Config) {
	config.LoadAppConfig()
	cfg := config.AppConfig
	store := archive.NewStore(cfg.ArchiveDir, cfg.ErrorLogPath)
	return sync.NewService(remiks.NewClient(cfg), store), cfg
}

// WooSyncJob pulls the WooCommerce catalog and pushes it to the platform.
func WooSyncJob(args ...string) {
	svc, cfg := newService()
	ctx := context.Background()

	rows, err := source.NewWooSource(cfg).Rows(ctx)
	if err != nil {
		log.Printf("woosync: fetch catalog: %v", err)
		return
	}
	res, err := svc.RunProductSync(ctx, rows, sync.AssembleOptions{
		Channel:          sync.ChannelWoo,
		DefaultWarehouse: cfg.DefaultWarehouse,
	})
	if errors.Is(err, sync.ErrNoRows) {
		log.Println("woosync: catalog empty, nothing submitted")
		return
	}
	if err != nil {
		log.Printf("woosync: %v", err)
		return
	}
	log.Printf("woosync: %d products submitted, %d service errors", res.Products, len(res.ServiceErrors))
}

// StockSyncJob pushes stock levels from the CSV named by the first arg or
// the STOCK_FILE variable.
func StockSyncJob(args ...string) {
	svc, _ := newService()
	ctx := context.Background()

	path := os.Getenv("STOCK_FILE")
	if len(args) > 0 && args[0] != "" {
		path = args[0]
	}
	if path == "" {
		log.Println("stocksync: no stock file configured (set STOCK_FILE)")
		return
	}

	rows, err := source.NewCSVSource(path).Rows(ctx)
	if err != nil {
		log.Printf("stocksync: read %s: %v", path, err)
		return
	}
	res, err := svc.RunStockSync(ctx, rows)
	if errors.Is(err, sync.ErrNoRows) {
		log.Println("stocksync: source empty, nothing submitted")
		return
	}
	if err != nil {
		log.Printf("stocksync: %v", err)
		return
	}
	log.Printf("stocksync: %d records submitted, %d service errors", res.Products, len(res.ServiceErrors))
}

package cmd

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"remiks.GO/config"
	"remiks.GO/service/source"
	"remiks.GO/service/sync"
)

var (
	analyzeFile    string
	analyzeChannel string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Classify a source file and report the breakdown without submitting",
	Run: func(cmd *cobra.Command, args []string) {
		start := time.Now()
		config.LoadAppConfig()
		cfg := config.AppConfig

		rows, err := source.NewCSVSource(analyzeFile).Rows(context.Background())
		if err != nil {
			fmt.Printf("Failed to read %s: %v\n", analyzeFile, err)
			return
		}

		records := sync.Assemble(rows, sync.AssembleOptions{
			Channel:          sync.Channel(analyzeChannel),
			DefaultWarehouse: cfg.DefaultWarehouse,
		})

		genders := map[string]int{}
		categories := map[string]int{}
		brands := map[string]int{}
		seasons := map[string]int{}
		warehouses := map[string]int{}
		specials := 0
		for _, r := range records {
			genders[r.Gender]++
			categories[r.CategoryCode+" "+r.ProductCategoryName]++
			brands[r.Brand]++
			seasons[r.Season]++
			for _, byWarehouse := range r.Stock {
				for w, qty := range byWarehouse {
					warehouses[w] += qty
				}
			}
			if r.HasSpecialPrice {
				specials++
			}
		}

		fmt.Printf(`
=== Source Analysis ===
Rows:           %d
Products:       %d
Special prices: %d
`, len(rows), len(records), specials)
		printBreakdown("Genders", genders)
		printBreakdown("Categories", categories)
		printBreakdown("Brands", brands)
		printBreakdown("Seasons", seasons)
		printBreakdown("Stock by warehouse", warehouses)
		fmt.Printf("Total time:     %s\n", time.Since(start).Round(time.Millisecond))
	},
}

func printBreakdown(title string, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Printf("%s:\n", title)
	for _, k := range keys {
		fmt.Printf("  %-28s %d\n", k, counts[k])
	}
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "CSV file to analyze (required)")
	analyzeCmd.MarkFlagRequired("file")
	analyzeCmd.Flags().StringVar(&analyzeChannel, "channel", "excel", "Classifier tables to use: excel or woo")
	rootCmd.AddCommand(analyzeCmd)
}

package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"

	"remiks.GO/config"
	"remiks.GO/service/sync"
)

const wooWarehouse = "10-GLAVNI MAGACIN"

// WooSource pages through the WooCommerce REST API and flattens published
// products into rows, one row per size variation.
type WooSource struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
	PageSize       int
	HTTP           *http.Client
}

func NewWooSource(cfg *config.Config) *WooSource {
	return &WooSource{
		BaseURL:        cfg.WooSiteURL,
		ConsumerKey:    cfg.WooConsumerKey,
		ConsumerSecret: cfg.WooConsumerSecret,
		PageSize:       cfg.WooPageSize,
		HTTP:           &http.Client{Timeout: 60 * time.Second},
	}
}

type wooTerm struct {
	Name string `mapstructure:"name"`
}

type wooImage struct {
	Src string `mapstructure:"src"`
}

type wooAttribute struct {
	Name   string `mapstructure:"name"`
	Option string `mapstructure:"option"`
}

type wooProduct struct {
	ID            int            `mapstructure:"id"`
	SKU           string         `mapstructure:"sku"`
	Name          string         `mapstructure:"name"`
	Type          string         `mapstructure:"type"`
	RegularPrice  string         `mapstructure:"regular_price"`
	Price         string         `mapstructure:"price"`
	SalePrice     string         `mapstructure:"sale_price"`
	StockQuantity *int           `mapstructure:"stock_quantity"`
	Categories    []wooTerm      `mapstructure:"categories"`
	Tags          []wooTerm      `mapstructure:"tags"`
	Images        []wooImage     `mapstructure:"images"`
	Description   string         `mapstructure:"description"`
	Attributes    []wooAttribute `mapstructure:"attributes"`
}

type wooVariation struct {
	SKU           string         `mapstructure:"sku"`
	StockQuantity *int           `mapstructure:"stock_quantity"`
	Attributes    []wooAttribute `mapstructure:"attributes"`
}

// Rows fetches all published products page by page and flattens them.
// Variable products get one row per size variation; simple products get a
// single sizeless row.
func (s *WooSource) Rows(ctx context.Context) ([]sync.Row, error) {
	var rows []sync.Row
	pageSize := s.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}

	for page := 1; ; page++ {
		url := fmt.Sprintf("%s/wp-json/wc/v3/products?status=publish&per_page=%d&page=%d",
			strings.TrimRight(s.BaseURL, "/"), pageSize, page)

		var raw []map[string]interface{}
		if err := s.fetch(ctx, url, &raw); err != nil {
			return nil, fmt.Errorf("fetch products page %d: %w", page, err)
		}
		if len(raw) == 0 {
			break
		}

		for _, item := range raw {
			var p wooProduct
			if err := decodeLoose(item, &p); err != nil {
				return nil, fmt.Errorf("decode product: %w", err)
			}
			if p.SKU == "" {
				continue
			}
			productRows, err := s.flatten(ctx, &p)
			if err != nil {
				return nil, err
			}
			rows = append(rows, productRows...)
		}

		if len(raw) < pageSize {
			break
		}
	}
	return rows, nil
}

func (s *WooSource) flatten(ctx context.Context, p *wooProduct) ([]sync.Row, error) {
	// Some catalog entries only carry the computed price field.
	retail := p.RegularPrice
	if retail == "" {
		retail = p.Price
	}

	base := sync.Row{
		"SKU":           p.SKU,
		"NAME":          p.Name,
		"TYPE":          p.Type,
		"CATEGORY":      joinTerms(p.Categories),
		"TAGS":          joinTerms(p.Tags),
		"RETAIL_PRICE":  retail,
		"SPECIAL_PRICE": p.SalePrice,
		"IMAGES":        joinImages(p.Images),
		"DESCRIPTION":   p.Description,
		"WAREHOUSE":     wooWarehouse,
	}

	if p.Type != "variable" {
		row := base.Clone()
		if size := sizeOption(p.Attributes); size != "" {
			row["SIZE"] = size
			row["QTY"] = qty(p.StockQuantity)
		}
		return []sync.Row{row}, nil
	}

	url := fmt.Sprintf("%s/wp-json/wc/v3/products/%d/variations?per_page=100",
		strings.TrimRight(s.BaseURL, "/"), p.ID)
	var raw []map[string]interface{}
	if err := s.fetch(ctx, url, &raw); err != nil {
		return nil, fmt.Errorf("fetch variations for %s: %w", p.SKU, err)
	}

	var rows []sync.Row
	for _, item := range raw {
		var v wooVariation
		if err := decodeLoose(item, &v); err != nil {
			return nil, fmt.Errorf("decode variation for %s: %w", p.SKU, err)
		}
		size := sizeOption(v.Attributes)
		if size == "" {
			continue
		}
		row := base.Clone()
		row["SIZE"] = size
		row["QTY"] = qty(v.StockQuantity)
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		rows = append(rows, base.Clone())
	}
	return rows, nil
}

func (s *WooSource) fetch(ctx context.Context, url string, out *[]map[string]interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(s.ConsumerKey, s.ConsumerSecret)

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}
	return json.Unmarshal(body, out)
}

// decodeLoose maps the generic API response onto a typed struct. The API
// mixes strings and numbers for the same fields across versions, so the
// decoder converts between them.
func decodeLoose(in map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(in)
}

// sizeOption finds the size attribute among a product's attributes.
func sizeOption(attrs []wooAttribute) string {
	for _, a := range attrs {
		switch strings.ToLower(strings.TrimSpace(a.Name)) {
		case "veličina", "velicina", "size":
			return strings.TrimSpace(a.Option)
		}
	}
	return ""
}

func qty(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}

func joinTerms(terms []wooTerm) string {
	names := make([]string, 0, len(terms))
	for _, t := range terms {
		names = append(names, t.Name)
	}
	return strings.Join(names, "; ")
}

func joinImages(images []wooImage) string {
	srcs := make([]string, 0, len(images))
	for _, img := range images {
		srcs = append(srcs, img.Src)
	}
	return strings.Join(srcs, ",")
}

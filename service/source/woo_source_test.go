package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func wooTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/wp-json/wc/v3/products", func(w http.ResponseWriter, r *http.Request) {
		if user, pass, ok := r.BasicAuth(); !ok || user != "ck" || pass != "cs" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if r.URL.Query().Get("status") != "publish" {
			http.Error(w, "bad query", http.StatusBadRequest)
			return
		}
		switch r.URL.Query().Get("page") {
		case "1":
			_, _ = w.Write([]byte(`[
				{"id": 11, "sku": "W-1", "name": "Duks za dečake", "type": "variable",
				 "regular_price": "5990", "sale_price": "",
				 "categories": [{"name": "Duksevi"}, {"name": "Dečaci"}],
				 "tags": [{"name": "Zima"}],
				 "images": [{"src": "https://img/1.jpg"}],
				 "description": "<p>Topli duks</p>"},
				{"id": 12, "sku": "W-2", "name": "Kačket", "type": "simple",
				 "regular_price": "", "price": "1990", "sale_price": "990", "stock_quantity": 4,
				 "categories": [{"name": "Kačketi"}]},
				{"id": 13, "sku": "", "name": "Bez šifre", "type": "simple"}
			]`))
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	})
	mux.HandleFunc("/wp-json/wc/v3/products/11/variations", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"sku": "W-1-140", "stock_quantity": 3, "attributes": [{"name": "Veličina", "option": "140"}]},
			{"sku": "W-1-152", "stock_quantity": null, "attributes": [{"name": "Veličina", "option": "152"}]},
			{"sku": "W-1-X", "attributes": [{"name": "Boja", "option": "plava"}]}
		]`))
	})
	return httptest.NewServer(mux)
}

func TestWooSourceRows(t *testing.T) {
	srv := wooTestServer(t)
	defer srv.Close()

	src := &WooSource{
		BaseURL:        srv.URL,
		ConsumerKey:    "ck",
		ConsumerSecret: "cs",
		PageSize:       10,
		HTTP:           srv.Client(),
	}
	rows, err := src.Rows(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	// Two size variations for W-1, one sizeless row for W-2; the product
	// without a SKU is dropped.
	if len(rows) != 3 {
		t.Fatalf("got %d rows: %v", len(rows), rows)
	}

	first := rows[0]
	if got := first.GetString("SKU", ""); got != "W-1" {
		t.Errorf("SKU = %q", got)
	}
	if got := first.GetString("CATEGORY", ""); got != "Duksevi; Dečaci" {
		t.Errorf("CATEGORY = %q", got)
	}
	if got := first.GetString("TAGS", ""); got != "Zima" {
		t.Errorf("TAGS = %q", got)
	}
	if got := first.GetString("SIZE", ""); got != "140" {
		t.Errorf("SIZE = %q", got)
	}
	if got := first.GetInt("QTY", -1); got != 3 {
		t.Errorf("QTY = %d", got)
	}
	if got := first.GetFloat("RETAIL_PRICE", 0); got != 5990 {
		t.Errorf("RETAIL_PRICE = %v", got)
	}
	if got := first.GetString("WAREHOUSE", ""); got != "10-GLAVNI MAGACIN" {
		t.Errorf("WAREHOUSE = %q", got)
	}
	// The description keeps its markup; the platform renders it as is.
	if got := first.GetString("DESCRIPTION", ""); got != "<p>Topli duks</p>" {
		t.Errorf("DESCRIPTION = %q", got)
	}

	// Null stock on a variation reads as 0.
	if got := rows[1].GetInt("QTY", -1); got != 0 {
		t.Errorf("rows[1] QTY = %d", got)
	}

	simple := rows[2]
	if got := simple.GetString("SKU", ""); got != "W-2" {
		t.Errorf("rows[2] SKU = %q", got)
	}
	if got := simple.GetString("SIZE", ""); got != "" {
		t.Errorf("simple product has SIZE %q", got)
	}
	// A blank regular_price falls back to the computed price field.
	if got := simple.GetFloat("RETAIL_PRICE", 0); got != 1990 {
		t.Errorf("rows[2] RETAIL_PRICE = %v", got)
	}
}

func TestWooSourceBadCredentials(t *testing.T) {
	srv := wooTestServer(t)
	defer srv.Close()

	src := &WooSource{BaseURL: srv.URL, ConsumerKey: "wrong", ConsumerSecret: "x", PageSize: 10, HTTP: srv.Client()}
	if _, err := src.Rows(context.Background()); err == nil {
		t.Error("expected error")
	}
}

package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheet.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCSVSourceRows(t *testing.T) {
	path := writeCSV(t, ` SKU ,NAME,RETAIL_PRICE,SIZE,QTY
JJ-1,Duks za decake,100,140,3
JJ-1,Duks za decake,100,152
`)
	rows, err := NewCSVSource(path).Rows(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	// Header names are trimmed.
	if got := rows[0].GetString("SKU", ""); got != "JJ-1" {
		t.Errorf("SKU = %q", got)
	}
	if got := rows[0].GetFloat("RETAIL_PRICE", 0); got != 100 {
		t.Errorf("RETAIL_PRICE = %v", got)
	}
	// The second line is short; the missing QTY cell reads as blank.
	if got := rows[1].GetInt("QTY", 7); got != 7 {
		t.Errorf("QTY = %d", got)
	}
}

func TestCSVSourceEmpty(t *testing.T) {
	path := writeCSV(t, "SKU,NAME\n")
	rows, err := NewCSVSource(path).Rows(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}

func TestCSVSourceMissingFile(t *testing.T) {
	if _, err := NewCSVSource("/no/such/file.csv").Rows(context.Background()); err == nil {
		t.Error("expected error")
	}
}

func TestCSVSourceSemicolon(t *testing.T) {
	path := writeCSV(t, "SKU;NAME\nJJ-1;Duks\n")
	src := NewCSVSource(path)
	src.Comma = ';'
	rows, err := src.Rows(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].GetString("NAME", "") != "Duks" {
		t.Errorf("rows = %v", rows)
	}
}

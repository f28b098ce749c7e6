package source

import (
	"context"
	"encoding/csv"
	"os"
	"strings"

	"remiks.GO/service/sync"
)

// Source yields raw rows for the sync pipeline.
type Source interface {
	Rows(ctx context.Context) ([]sync.Row, error)
}

// CSVSource reads rows from a CSV export of the master sheet. The first
// line is the header; cells are keyed by the trimmed header names.
type CSVSource struct {
	Path  string
	Comma rune
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path, Comma: ','}
}

func (s *CSVSource) Rows(ctx context.Context) ([]sync.Row, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	if s.Comma != 0 {
		r.Comma = s.Comma
	}
	// Sheet exports are ragged; short lines are padded with blanks below.
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, nil
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}

	rows := make([]sync.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(sync.Row, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

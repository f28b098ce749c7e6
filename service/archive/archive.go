package archive

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"remiks.GO/model/product"
)

// ErrNoPayload is returned when no archived payload matches a prefix.
var ErrNoPayload = errors.New("archive: no payload found")

// Store keeps timestamped payload files on disk and appends to the error
// log. Payloads are written before every submission so a failed run can
// be replayed and stock updates can reuse the last product payload.
type Store struct {
	Dir          string
	ErrorLogPath string
}

func NewStore(dir, errorLog string) *Store {
	return &Store{Dir: dir, ErrorLogPath: errorLog}
}

// SavePayload writes data to payload_<prefix>_<timestamp>.json under the
// archive directory and returns the path.
func (s *Store) SavePayload(prefix string, data []byte) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("payload_%s_%s.json", prefix, time.Now().Format("20060102_150405"))
	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// LogErrors appends timestamped lines to the error log file.
func (s *Store) LogErrors(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	f, err := os.OpenFile(s.ErrorLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	ts := time.Now().Format("2006-01-02 15:04:05")
	for _, e := range errs {
		if _, err := fmt.Fprintf(f, "%s: %s\n", ts, e); err != nil {
			return err
		}
	}
	return nil
}

// LatestPayload returns the newest archived payload path for a prefix.
// The timestamp format sorts lexicographically, so the last name wins.
func (s *Store) LatestPayload(prefix string) (string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoPayload
		}
		return "", err
	}

	want := "payload_" + prefix + "_"
	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, want) || !strings.HasSuffix(name, ".json") {
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return "", ErrNoPayload
	}
	sort.Strings(names)
	return filepath.Join(s.Dir, names[len(names)-1]), nil
}

// LoadRecords reads an archived product payload back into records. Wire
// payloads carry a superset of the canonical field names, so the price
// and type fields needed for stock updates survive the round trip.
func (s *Store) LoadRecords(path string) ([]product.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []product.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return records, nil
}

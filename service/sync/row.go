package sync

import (
	"strconv"
	"strings"
)

// Row is one raw input record: a bag of loosely-typed named fields coming
// from a spreadsheet row or an API line item. Sources are inconsistent and
// partially populated, so every accessor takes a default and never fails —
// a bad cell must not abort the batch.
type Row map[string]interface{}

// Clone returns a shallow copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Get returns the raw value for a field, or def when the field is absent
// or nil.
func (r Row) Get(field string, def interface{}) interface{} {
	if r == nil {
		return def
	}
	v, ok := r[field]
	if !ok || v == nil {
		return def
	}
	return v
}

// GetString returns the field as a trimmed string, or def when the field
// is absent, nil or blank.
func (r Row) GetString(field, def string) string {
	v := r.Get(field, nil)
	if v == nil {
		return def
	}
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		s = strconv.Itoa(t)
	case bool:
		s = strconv.FormatBool(t)
	default:
		return def
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}

// GetFloat returns the field as a float64, or def when absent or not a
// number. String values are parsed; comma decimals from spreadsheet
// exports are accepted.
func (r Row) GetFloat(field string, def float64) float64 {
	v := r.Get(field, nil)
	if v == nil {
		return def
	}
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return def
		}
		s = strings.ReplaceAll(s, ",", ".")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return def
		}
		return f
	default:
		return def
	}
}

// GetInt returns the field as an int, or def when absent or unparsable.
// Fractional values are truncated.
func (r Row) GetInt(field string, def int) int {
	v := r.Get(field, nil)
	if v == nil {
		return def
	}
	switch t := v.(type) {
	case int:
		return t
	case float64:
		return int(t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return def
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f)
		}
		return def
	default:
		return def
	}
}

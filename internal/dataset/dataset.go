// Package dataset loads and generates the record collections the paginator
// CLI pages over. Records are schemaless JSON objects; the engine only
// needs their count and index order.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
)

// ErrNotArray is returned when the input document is not a JSON array.
var ErrNotArray = errors.New("input must be a JSON array of objects")

// Record is a single schemaless item.
type Record map[string]any

// Load decodes a JSON array of records from r.
func Load(r io.Reader) ([]Record, error) {
	dec := json.NewDecoder(r)

	var records []Record
	if err := dec.Decode(&records); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: got %s", ErrNotArray, typeErr.Value)
		}
		return nil, fmt.Errorf("cannot decode input: %w", err)
	}
	return records, nil
}

// LoadFile decodes records from the file at path; "-" means stdin.
func LoadFile(path string) ([]Record, error) {
	if path == "-" {
		return Load(os.Stdin)
	}

	f, err := os.Open(path) //nolint:gosec // Path comes from the user's own flag.
	if err != nil {
		return nil, fmt.Errorf("cannot open input %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck // Read-only handle.

	records, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Generate produces n synthetic records for demos and tests.
func Generate(n int) []Record {
	records := make([]Record, 0, n)
	for i := range n {
		records = append(records, Record{
			"id":   i + 1,
			"name": fmt.Sprintf("item-%04d", i+1),
		})
	}
	return records
}

// Slice returns records[start:end] clamped to valid bounds, so callers can
// feed the engine's item index bounds straight in.
func Slice(records []Record, start, end int) []Record {
	if start < 0 {
		start = 0
	}
	if end > len(records) {
		end = len(records)
	}
	if start >= end {
		return []Record{}
	}
	return records[start:end]
}

// labelKeys are tried in order when picking a display label for a record.
var labelKeys = []string{"name", "title", "label", "id"} //nolint:gochecknoglobals // Static lookup order.

// Label picks a human-readable label for a record: the first well-known
// key present, falling back to a compact sorted key=value rendering.
func Label(rec Record) string {
	for _, key := range labelKeys {
		if v, ok := rec[key]; ok {
			return fmt.Sprintf("%v", v)
		}
	}

	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := ""
	for i, k := range keys {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%s=%v", k, rec[k])
	}
	if out == "" {
		return "(empty record)"
	}
	return out
}

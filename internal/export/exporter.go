// Package export writes the visible leads and the saved views to files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
	"github.com/zaibi326/crm-success-hub-sub000/internal/schema"
)

// WriteCSV writes records as CSV with one column per field key, headed by the
// field labels. Empty keys export every field in schema order; unknown keys
// are skipped.
func WriteCSV[T any](w io.Writer, s *schema.Schema[T], records []T, keys []string) error {
	fields := columns(s, keys)

	writer := csv.NewWriter(w)

	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = f.Label
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	row := make([]string, len(fields))
	for _, rec := range records {
		for i, f := range fields {
			row[i] = schema.Stringify(f.Get(rec))
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ExportToCSV writes records to a CSV file at path.
func ExportToCSV[T any](s *schema.Schema[T], records []T, keys []string, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := WriteCSV(file, s, records, keys); err != nil {
		return err
	}
	return file.Close()
}

// ExportViewsToJSON exports saved views to a JSON file
func ExportViewsToJSON(views []models.SavedFilter, path string) error {
	if views == nil {
		views = []models.SavedFilter{}
	}
	data, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal saved views to JSON: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	return nil
}

func columns[T any](s *schema.Schema[T], keys []string) []schema.Field[T] {
	if len(keys) == 0 {
		return s.Fields()
	}
	var out []schema.Field[T]
	for _, k := range keys {
		if f, ok := s.Lookup(k); ok {
			out = append(out, f)
		}
	}
	return out
}

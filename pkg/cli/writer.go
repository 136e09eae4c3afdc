package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/khalid-nowaf/lextrie/pkg/dictionary"
)

// Stats counts the entries a command read and wrote.
type Stats struct {
	Input  int
	Output int
}

type Writer interface {
	Write(dict *dictionary.Dictionary, out io.Writer) error
}

// newWriter returns the writer for an output format.
func newWriter(format string, columns Columns, stats *Stats) (Writer, error) {
	switch format {
	case "csv":
		return &CsvWriter{columns: columns, Stats: stats}, nil
	case "tsv":
		return &CsvWriter{isTSV: true, columns: columns, Stats: stats}, nil
	case "json":
		return &JsonWriter{columns: columns, Stats: stats}, nil
	case "tree":
		return &TreeWriter{Stats: stats}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

type JsonWriter struct {
	columns Columns
	Stats   *Stats
}

// Write writes the entries as a JSON array of records, in word order.
func (w JsonWriter) Write(dict *dictionary.Dictionary, out io.Writer) error {
	encoder := json.NewEncoder(out)

	if _, err := out.Write([]byte("[")); err != nil {
		return err
	}
	for i, entry := range dict.Entries() {
		if i > 0 {
			if _, err := out.Write([]byte(",")); err != nil {
				return err
			}
		}
		if err := encoder.Encode(toRecord(entry, w.columns)); err != nil {
			return err
		}
		w.Stats.Output++
	}
	if _, err := out.Write([]byte("]\n")); err != nil {
		return err
	}
	return nil
}

type CsvWriter struct {
	isTSV   bool
	columns Columns
	Stats   *Stats
}

// Write writes the entries as CSV (or TSV) with a header line, in word order.
func (w CsvWriter) Write(dict *dictionary.Dictionary, out io.Writer) error {
	writer := csv.NewWriter(out)
	if w.isTSV {
		writer.Comma = '\t'
	}

	entries := dict.Entries()

	// key and value first, then every attribute seen, sorted
	headers := []string{w.columns.Key, w.columns.Value}
	headers = append(headers, attributeNames(entries)...)
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, entry := range entries {
		record := toRecord(entry, w.columns)
		row := make([]string, 0, len(headers))
		// Ensure the fields are written in the same order as headers
		for _, header := range headers {
			row = append(row, record[header])
		}
		if err := writer.Write(row); err != nil {
			return err
		}
		w.Stats.Output++
	}

	writer.Flush()
	return writer.Error()
}

// TreeWriter writes the indented tree layout of the dictionary.
type TreeWriter struct {
	Stats *Stats
}

func (w TreeWriter) Write(dict *dictionary.Dictionary, out io.Writer) error {
	if err := dict.Print(out); err != nil {
		return err
	}
	w.Stats.Output += dict.Len()
	return nil
}

func toRecord(entry dictionary.Entry, columns Columns) Record {
	record := Record{}
	for key, value := range entry.Attributes {
		record[key] = value
	}
	record[columns.Key] = entry.Word
	record[columns.Value] = entry.Translation
	return record
}

func attributeNames(entries []dictionary.Entry) []string {
	seen := map[string]bool{}
	names := []string{}
	for _, entry := range entries {
		for key := range entry.Attributes {
			if !seen[key] {
				seen[key] = true
				names = append(names, key)
			}
		}
	}
	sort.Strings(names)
	return names
}

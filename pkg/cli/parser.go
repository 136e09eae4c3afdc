package cli

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/khalid-nowaf/lextrie/pkg/dictionary"
)

var (
	ErrUnknownFormat = errors.New("unknown input format")
	ErrMissingColumn = errors.New("missing column")
)

// Record is one row of an input file, keyed by column name.
type Record map[string]string

// Columns names the record fields holding the word and its translation.
type Columns struct {
	Key   string
	Value string
}

// detectFormat returns the input format of path, preferring forced when set.
func detectFormat(path string, forced string) (string, error) {
	if forced != "" {
		return forced, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return "csv", nil
	case ".tsv":
		return "tsv", nil
	case ".json":
		return "json", nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// parseFile opens path and calls onEachRecord for every record it holds.
func parseFile(path string, format string, onEachRecord func(record Record) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch format {
	case "csv":
		return parseCsv(file, ',', onEachRecord)
	case "tsv":
		return parseCsv(file, '\t', onEachRecord)
	case "json":
		return parseJson(file, onEachRecord)
	}
	return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

func parseJson(r io.Reader, onEachRecord func(record Record) error) error {
	decoder := json.NewDecoder(r)

	// Read opening bracket of the array
	if _, err := decoder.Token(); err != nil {
		return err
	}

	// Decode each element of the array
	for decoder.More() {
		data := Record{}
		if err := decoder.Decode(&data); err != nil {
			return err
		}
		if err := onEachRecord(data); err != nil {
			return err
		}
	}

	// Read closing bracket of the array
	if _, err := decoder.Token(); err != nil {
		return err
	}
	return nil
}

func parseCsv(r io.Reader, separator rune, onEachRecord func(record Record) error) error {
	reader := csv.NewReader(r)
	reader.Comma = separator

	// the first line is the header
	headers, err := reader.Read()
	if err != nil {
		return err
	}

	for {
		recordData, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		record := make(Record)
		for i, value := range recordData {
			record[headers[i]] = value
		}
		if err := onEachRecord(record); err != nil {
			return err
		}
	}
}

// toEntry splits a record into the word, and metadata holding the translation and every other column.
func toEntry(record Record, columns Columns) (string, *dictionary.Metadata, error) {
	word, found := record[columns.Key]
	if !found {
		return "", nil, fmt.Errorf("%w: %q in record %v", ErrMissingColumn, columns.Key, record)
	}
	translation, found := record[columns.Value]
	if !found {
		return "", nil, fmt.Errorf("%w: %q in record %v", ErrMissingColumn, columns.Value, record)
	}

	metadata := dictionary.NewMetadata(translation)
	for key, value := range record {
		if key != columns.Key && key != columns.Value {
			metadata.Attributes[key] = value
		}
	}
	return word, metadata, nil
}

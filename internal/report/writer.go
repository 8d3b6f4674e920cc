package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/arcanaland/riftdata/internal/card"
)

// WriteJSON writes records as an indented JSON array. Non-ASCII and HTML
// characters are written literally and no trailing newline is added.
func WriteJSON(w io.Writer, records []*card.Record) error {
	if records == nil {
		records = []*card.Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("error encoding cards: %w", err)
	}

	_, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return err
}

// WriteFile writes records to path, replacing any existing file
func WriteFile(path string, records []*card.Record) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer file.Close()

	if err := WriteJSON(file, records); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return file.Close()
}

// ReadFile loads records from a previously written output file
func ReadFile(path string) ([]*card.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading card data: %w", err)
	}

	var records []*card.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("error parsing card data %s: %w", path, err)
	}
	return records, nil
}

package parsers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// CSVParser implements the Parser interface for CSV scorecard files.
type CSVParser struct{}

// NewCSVParser creates a new CSV parser instance.
func NewCSVParser() *CSVParser {
	return &CSVParser{}
}

// Parse reads CSV data and returns a ParsedScorecard.
func (p *CSVParser) Parse(fileData []byte, fileName string) (*ParsedScorecard, error) {
	reader := csv.NewReader(bytes.NewReader(fileData))
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV: %w", err)
		}
		rows = append(rows, record)
	}

	return parseRows(rows)
}

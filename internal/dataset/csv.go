package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fr4nk3nst1ner/salarypredictor/internal/models"
)

const utf8BOM = "\ufeff"

// ReadCSV reads job records from a CSV stream with a header row.
// Rows may have fewer or more cells than the header; absent cells are null.
func ReadCSV(r io.Reader, opts Options) ([]models.JobRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("csv dataset is empty")
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	mapper, err := newRowMapper(header, opts)
	if err != nil {
		return nil, err
	}

	var records []models.JobRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		line, _ := reader.FieldPos(0)
		records = append(records, mapper.record(line, row))
	}

	return records, nil
}

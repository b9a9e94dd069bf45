package dataset

import (
	"errors"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/fr4nk3nst1ner/salarypredictor/internal/models"
)

// ReadHTML reads job records from the first <table> of an HTML document, such as a
// saved job board listing or a spreadsheet exported as HTML. The header is taken from
// the first row.
func ReadHTML(r io.Reader, opts Options) ([]models.JobRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html dataset: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, errors.New("html dataset has no <table>")
	}

	var header []string
	var mapper *rowMapper
	var records []models.JobRecord
	var mapErr error

	// Rows of nested tables are skipped by only visiting direct row children
	table.ChildrenFiltered("thead, tbody, tfoot").AddSelection(table).
		ChildrenFiltered("tr").
		EachWithBreak(func(i int, tr *goquery.Selection) bool {
			var cells []string
			tr.ChildrenFiltered("th, td").Each(func(_ int, cell *goquery.Selection) {
				cells = append(cells, cell.Text())
			})

			if header == nil {
				header = cells
				mapper, mapErr = newRowMapper(header, opts)
				return mapErr == nil
			}

			records = append(records, mapper.record(i+1, cells))
			return true
		})

	if mapErr != nil {
		return nil, mapErr
	}
	if header == nil {
		return nil, errors.New("html dataset table has no rows")
	}

	return records, nil
}

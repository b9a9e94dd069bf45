// Package dataset reads job posting tables from CSV, HTML and SQLite sources
// and turns them into an encoded training set.
package dataset

import (
	"fmt"
	"strings"

	"github.com/fr4nk3nst1ner/salarypredictor/internal/models"
)

// Columns names the four required columns of a dataset
type Columns struct {
	JobTitle   string `yaml:"job_title"`
	Company    string `yaml:"company"`
	Experience string `yaml:"experience"`
	Salary     string `yaml:"salary"`
}

// DefaultColumns returns the column names of the Job.csv dataset
func DefaultColumns() Columns {
	return Columns{
		JobTitle:   "Type_of_job",
		Company:    "company_name",
		Experience: "experience",
		Salary:     "salary",
	}
}

// names returns the required column names in record order
func (c Columns) names() [4]string {
	return [4]string{c.JobTitle, c.Company, c.Experience, c.Salary}
}

// DefaultNullValues lists the cell values read as missing, the same markers
// spreadsheet and dataframe tooling treat as null
func DefaultNullValues() []string {
	return []string{
		"#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
		"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
		"n/a", "nan", "null",
	}
}

// Options controls how a dataset source is read
type Options struct {
	Columns    Columns
	NullValues []string
	// Table is the SQLite table holding the job postings
	Table string
}

// DefaultOptions returns options for the default Job.csv layout
func DefaultOptions() Options {
	return Options{
		Columns:    DefaultColumns(),
		NullValues: DefaultNullValues(),
		Table:      "jobs",
	}
}

// MissingColumnError is returned when a required column is absent from the header
type MissingColumnError struct {
	Column string
	Found  []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q not found (columns: %s)", e.Column, strings.Join(e.Found, ", "))
}

// rowMapper maps raw table rows to JobRecords using the header positions
type rowMapper struct {
	index [4]int
	nulls map[string]struct{}
}

func newRowMapper(header []string, opts Options) (*rowMapper, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		// First occurrence wins on duplicate headers
		if _, exists := positions[name]; !exists {
			positions[name] = i
		}
	}

	m := &rowMapper{nulls: make(map[string]struct{}, len(opts.NullValues))}
	for i, name := range opts.Columns.names() {
		pos, ok := positions[name]
		if !ok {
			return nil, &MissingColumnError{Column: name, Found: header}
		}
		m.index[i] = pos
	}

	for _, v := range opts.NullValues {
		m.nulls[v] = struct{}{}
	}
	return m, nil
}

// cell returns the trimmed value at column i of row and whether it is null.
// Every reader goes through here, so whitespace-only cells are missing everywhere.
func (m *rowMapper) cell(row []string, i int) (string, bool) {
	pos := m.index[i]
	if pos >= len(row) {
		return "", true
	}
	value := strings.TrimSpace(row[pos])
	if value == "" {
		return "", true
	}
	if _, null := m.nulls[value]; null {
		return value, true
	}
	return value, false
}

func (m *rowMapper) record(line int, row []string) models.JobRecord {
	var r models.JobRecord
	r.Line = line
	r.Title, r.Missing.Title = m.cell(row, 0)
	r.Company, r.Missing.Company = m.cell(row, 1)
	r.Experience, r.Missing.Experience = m.cell(row, 2)
	r.Salary, r.Missing.Salary = m.cell(row, 3)
	return r
}

package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"regexp"

	"github.com/fr4nk3nst1ner/salarypredictor/internal/models"

	_ "modernc.org/sqlite"
)

var tableNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ReadSQLite reads job records from a table of an existing SQLite database.
// SQL NULL cells are treated as missing.
func ReadSQLite(ctx context.Context, path string, opts Options) ([]models.JobRecord, error) {
	if !tableNameRegex.MatchString(opts.Table) {
		return nil, fmt.Errorf("invalid sqlite table name %q", opts.Table)
	}

	// sql.Open would silently create an empty database
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open sqlite dataset: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite dataset: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, fmt.Sprintf(`SELECT * FROM "%s"`, opts.Table))
	if err != nil {
		return nil, fmt.Errorf("failed to query table %s: %w", opts.Table, err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", opts.Table, err)
	}

	mapper, err := newRowMapper(header, opts)
	if err != nil {
		return nil, err
	}

	values := make([]sql.NullString, len(header))
	dest := make([]any, len(header))
	for i := range values {
		dest[i] = &values[i]
	}

	var records []models.JobRecord
	line := 0
	for rows.Next() {
		line++
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row %d of %s: %w", line, opts.Table, err)
		}

		// NULL scans to an invalid NullString with an empty value, which is missing
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = v.String
		}
		records = append(records, mapper.record(line, row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", opts.Table, err)
	}

	return records, nil
}

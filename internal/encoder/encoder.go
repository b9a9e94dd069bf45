// Package encoder maps categorical string values to small integer codes.
package encoder

import (
	"fmt"
	"sort"
)

// Field names used by the salary model
const (
	FieldJobTitle   = "job_title"
	FieldCompany    = "company"
	FieldExperience = "experience"
)

// UnknownCategoryError is returned when a value was not seen when the table was fit
type UnknownCategoryError struct {
	Field string
	Value string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Field, e.Value)
}

// InvalidCodeError is returned when decoding a code outside of 0..k-1
type InvalidCodeError struct {
	Field string
	Code  int
	Size  int
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("invalid %s code %d (valid range 0..%d)", e.Field, e.Code, e.Size-1)
}

// Table is a fitted, read-only mapping between category strings and codes.
// Codes follow the lexicographic order of the distinct values.
type Table struct {
	field  string
	values []string
	codes  map[string]int
}

// Fit builds a Table from the observed values. Duplicates and input order do not
// affect the resulting codes.
func Fit(field string, values []string) *Table {
	seen := make(map[string]struct{}, len(values))
	distinct := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		distinct = append(distinct, v)
	}
	sort.Strings(distinct)

	codes := make(map[string]int, len(distinct))
	for i, v := range distinct {
		codes[v] = i
	}

	return &Table{
		field:  field,
		values: distinct,
		codes:  codes,
	}
}

// Field returns the name of the encoded field
func (t *Table) Field() string {
	return t.field
}

// Len returns the number of distinct categories
func (t *Table) Len() int {
	return len(t.values)
}

// Encode returns the code for value
func (t *Table) Encode(value string) (int, error) {
	code, ok := t.codes[value]
	if !ok {
		return 0, &UnknownCategoryError{Field: t.field, Value: value}
	}
	return code, nil
}

// Decode returns the value for code
func (t *Table) Decode(code int) (string, error) {
	if code < 0 || code >= len(t.values) {
		return "", &InvalidCodeError{Field: t.field, Code: code, Size: len(t.values)}
	}
	return t.values[code], nil
}

// Values returns the categories in code order
func (t *Table) Values() []string {
	out := make([]string, len(t.values))
	copy(out, t.values)
	return out
}

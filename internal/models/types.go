package models

// JobRecord represents one raw row of the job postings dataset
type JobRecord struct {
	Line       int    `json:"line"`
	Title      string `json:"title"`
	Company    string `json:"company"`
	Experience string `json:"experience"`
	Salary     string `json:"salary"`

	// Missing marks null cells (SQL NULL or a configured null marker)
	Missing MissingFields `json:"-"`
}

// MissingFields flags which required fields were null in the source
type MissingFields struct {
	Title      bool
	Company    bool
	Experience bool
	Salary     bool
}

// Complete reports whether all four required fields carry a value
func (r JobRecord) Complete() bool {
	if r.Missing.Title || r.Missing.Company || r.Missing.Experience || r.Missing.Salary {
		return false
	}
	return r.Title != "" && r.Company != "" && r.Experience != "" && r.Salary != ""
}

// CleanedRecord is a JobRecord with a parsed salary and its category codes
type CleanedRecord struct {
	JobRecord
	SalaryValue    float64 `json:"salary_value"`
	TitleCode      int     `json:"title_code"`
	CompanyCode    int     `json:"company_code"`
	ExperienceCode int     `json:"experience_code"`
}

// Features returns the encoded feature triple in model order
func (c CleanedRecord) Features() [3]int {
	return [3]int{c.TitleCode, c.CompanyCode, c.ExperienceCode}
}

// LoadStats represents the outcome of filtering a dataset
type LoadStats struct {
	RowsRead          int `json:"rows_read"`
	DroppedMissing    int `json:"dropped_missing"`
	DroppedUnparsable int `json:"dropped_unparseable"`
	Kept              int `json:"kept"`
}

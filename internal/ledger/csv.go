package ledger

import (
	"encoding/csv"
	"fmt"
	"os"
)

// LoadCSV reads a comma-separated file into a Table. The first record is the
// header; records may have a variable number of fields.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %v", err)
	}
	if len(records) == 0 {
		return NewTable(nil), nil
	}
	t := NewTable(records[0])
	for _, rec := range records[1:] {
		t.AppendRow(rec)
	}
	return t, nil
}

package importer

import (
	"github.com/go-faster/errors"
	"github.com/xuri/excelize/v2"
)

const templateSheet = "Members"

// Template renders a downloadable .xlsx with the canonical header row and one
// example row showing accepted formats.
func Template() ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(templateSheet)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create sheet")
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, errors.Wrap(err, "failed to drop default sheet")
	}

	header := make([]interface{}, len(Columns))
	for i, col := range Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(templateSheet, "A1", &header); err != nil {
		return nil, errors.Wrap(err, "failed to write header")
	}

	example := []interface{}{
		"Priya Sharma", "priya@example.com", "9876543210",
		"1990-04-12", "2024-01-15", "Engineer",
		"12 MG Road", "", "Pune", "Maharashtra", "411001",
		"12 MG Road", "", "Pune", "Maharashtra", "411001",
	}
	if err := f.SetSheetRow(templateSheet, "A2", &example); err != nil {
		return nil, errors.Wrap(err, "failed to write example row")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize template")
	}
	return buf.Bytes(), nil
}

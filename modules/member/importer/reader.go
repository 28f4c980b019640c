package importer

import (
	"io"
	"strings"

	"github.com/go-faster/errors"
	"github.com/xuri/excelize/v2"
)

// ParseSpreadsheet reads the first sheet of an .xlsx stream. The first row is
// the header; captions are matched case-insensitively against the known
// aliases and unrecognized columns are ignored. Returned row numbers are the
// real spreadsheet rows, so the header is row 1 and data starts at row 2.
func ParseSpreadsheet(r io.Reader) ([]RawRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open spreadsheet")
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read rows")
	}
	if len(rows) == 0 {
		return nil, nil
	}

	columns := make([]string, len(rows[0]))
	for i, caption := range rows[0] {
		columns[i] = NormalizeHeader(caption)
	}

	var records []RawRecord
	for i, row := range rows[1:] {
		fields := map[string]string{}
		empty := true
		for j, cell := range row {
			if j >= len(columns) || columns[j] == "" {
				continue
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			fields[columns[j]] = cell
			empty = false
		}
		if empty {
			continue
		}
		records = append(records, RawRecord{Row: i + 2, Fields: fields})
	}
	return records, nil
}

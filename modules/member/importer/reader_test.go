package importer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sheetBytes(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParseSpreadsheet(t *testing.T) {
	t.Parallel()

	data := sheetBytes(t, [][]interface{}{
		{"Full Name", "E-Mail", "Phone Number", "Unknown Column"},
		{"John Doe", "john@x.com", "9876543210", "ignored"},
		{"", "", "", ""},
		{"Priya Shah", "", "98765 43211", ""},
	})

	records, err := ParseSpreadsheet(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Row numbers are real spreadsheet rows; the blank row 3 is dropped but
	// row 4 keeps its position.
	require.Equal(t, 2, records[0].Row)
	require.Equal(t, "John Doe", records[0].Get(ColName))
	require.Equal(t, "john@x.com", records[0].Get(ColEmail))
	require.Equal(t, "9876543210", records[0].Get(ColMobile))
	require.False(t, records[0].Has("unknown_column"))

	require.Equal(t, 4, records[1].Row)
	require.Equal(t, "Priya Shah", records[1].Get(ColName))
}

func TestParseSpreadsheet_HeaderOnly(t *testing.T) {
	t.Parallel()

	data := sheetBytes(t, [][]interface{}{{"Name", "Email"}})

	records, err := ParseSpreadsheet(bytes.NewReader(data))
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestParseSpreadsheet_NotASpreadsheet(t *testing.T) {
	t.Parallel()

	_, err := ParseSpreadsheet(bytes.NewReader([]byte("name,email\njohn,john@x.com\n")))
	require.Error(t, err)
}

func TestTemplate_RoundTrips(t *testing.T) {
	t.Parallel()

	data, err := Template()
	require.NoError(t, err)

	records, err := ParseSpreadsheet(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := Validate(records[0])
	require.True(t, got.Valid, "template example row must validate: %v", got.Errors)

	fields := records[0].MemberFields()
	require.Equal(t, "Priya Sharma", fields.Name)
	require.NotNil(t, fields.DateOfBirth)
	require.Equal(t, "1990-04-12", FormatDate(*fields.DateOfBirth))
}

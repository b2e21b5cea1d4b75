package spreadsheet

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/phenrril/enterprises/internal/domain"
)

func TestWriteEnterprises(t *testing.T) {
	list := []domain.Enterprise{{
		ID:         "id-1",
		Title:      "Acme",
		Phone:      "905321234567",
		Email:      "a@acme.com",
		Balance:    decimal.RequireFromString("10.5"),
		Verified:   true,
		Address:    "Street 12",
		TaxNumber:  1234567890,
		TaxAddress: domain.TaxAddress{Province: "Istanbul", District: "Besiktas"},
		CreatedAt:  time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC),
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteEnterprises(&buf, list))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())
	rows, err := f.GetRows(SheetName, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Title", rows[0][1])
	assert.Equal(t, "id-1", rows[1][0])
	assert.True(t, strings.HasPrefix(rows[1][2], "+90"), rows[1][2])
	assert.Equal(t, "10.50", rows[1][4])
	assert.Equal(t, "1234567890", rows[1][7])
	assert.Equal(t, "2024-05-06 07:08:09", rows[1][10])
}

func buildImportFile(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	header := []any{"title", "phone", "email", "balance", "address", "tax_number", "province", "district"}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	return &buf
}

func TestReadEnterprises(t *testing.T) {
	buf := buildImportFile(t, [][]any{
		{"Acme", 901234567890, "a@acme.com", "10,5", "Street 12", "1234567890", "Istanbul", "Kadikoy"},
		{},
		{"Short", "901234567890"},
	})

	rows, err := ReadEnterprises(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, 2, first.Row)
	assert.Equal(t, "Acme", first.Input.Title)
	assert.Equal(t, "901234567890", first.Input.Phone)
	assert.Equal(t, "10,5", first.Input.Balance)
	assert.Equal(t, "1234567890", first.Input.TaxNumber)
	require.NotNil(t, first.Input.TaxAddress)
	assert.Equal(t, "Kadikoy", first.Input.TaxAddress.District)

	second := rows[1]
	assert.Equal(t, 4, second.Row)
	assert.Equal(t, "", second.Input.Email)
	require.NotNil(t, second.Input.TaxAddress)
	assert.Equal(t, "", second.Input.TaxAddress.Province)
}

func TestReadEnterprises_NotAWorkbook(t *testing.T) {
	_, err := ReadEnterprises(strings.NewReader("title,phone\n"))
	assert.Error(t, err)
}

func TestFormatPhone(t *testing.T) {
	assert.True(t, strings.HasPrefix(FormatPhone("905321234567"), "+90 "))
	assert.Equal(t, "", FormatPhone(""))
}

package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ttacon/libphonenumber"
	"github.com/xuri/excelize/v2"

	"github.com/phenrril/enterprises/internal/domain"
	"github.com/phenrril/enterprises/internal/usecase"
)

const SheetName = "Enterprises"

var exportHeader = []any{"ID", "Title", "Phone", "Email", "Balance", "Verified", "Address", "Tax number", "Province", "District", "Created at", "Disabled"}

// Columnas esperadas al importar: A..H
// title, phone, email, balance, address, tax_number, province, district
const importColumns = 8

var ErrEmptyWorkbook = errors.New("workbook has no sheets")

// WriteEnterprises escribe un xlsx con una fila por registro, en el orden recibido.
func WriteEnterprises(w io.Writer, list []domain.Enterprise) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, "A1", &exportHeader); err != nil {
		return err
	}
	for i, e := range list {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			e.ID,
			e.Title,
			FormatPhone(e.Phone),
			e.Email,
			e.Balance.StringFixed(2),
			e.Verified,
			e.Address,
			e.TaxNumber,
			e.TaxAddress.Province,
			e.TaxAddress.District,
			e.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			e.Disabled,
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}
	_, err := f.WriteTo(w)
	return err
}

// ReadEnterprises lee la primera hoja; la fila 1 es encabezado y las filas
// vacías se ignoran.
func ReadEnterprises(r io.Reader) ([]usecase.ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}

	out := []usecase.ImportRow{}
	for i, row := range rows {
		if i == 0 || blank(row) {
			continue
		}
		cols := make([]string, importColumns)
		copy(cols, row)
		out = append(out, usecase.ImportRow{
			Row: i + 1,
			Input: usecase.CreateEnterpriseInput{
				Title:     cols[0],
				Phone:     strings.TrimSpace(cols[1]),
				Email:     cols[2],
				Balance:   strings.TrimSpace(cols[3]),
				Address:   cols[4],
				TaxNumber: strings.TrimSpace(cols[5]),
				TaxAddress: &usecase.TaxAddressInput{
					Province: cols[6],
					District: cols[7],
				},
			},
		})
	}
	return out, nil
}

// FormatPhone muestra un teléfono 90XXXXXXXXXX en formato internacional;
// si libphonenumber no lo reconoce devuelve el valor crudo.
func FormatPhone(phone string) string {
	num, err := libphonenumber.Parse("+"+phone, "TR")
	if err != nil {
		return phone
	}
	return libphonenumber.Format(num, libphonenumber.INTERNATIONAL)
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

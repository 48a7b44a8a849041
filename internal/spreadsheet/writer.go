package spreadsheet

import (
	"errors"
	"fmt"
	"time"

	"github.com/lanca/lanca-api/internal/models"
	"github.com/xuri/excelize/v2"
)

// SheetName is the single worksheet of an export
const SheetName = "Contas a Pagar"

// ErrNothingToExport is returned for an empty record set
var ErrNothingToExport = errors.New("nenhum registro para exportar")

// Headers is the fixed column order of an export
var Headers = []string{
	"Dia",
	"Vencimento",
	"Fornecedor",
	"Tipo de Documento",
	"Número Documento",
	"Nota Fiscal",
	"Parcela",
	"Razão Social",
	"Banco",
	"Valor Original",
	"Status",
	"Observação",
	"Tags",
}

const amountColumn = "J"

// ExportFilename names an export generated at now
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("Lanca_Export_%s.xlsx", now.Format("20060102_1504"))
}

// ExportRow renders one record in Headers order. The amount stays numeric
// so the sheet can sum it.
func ExportRow(r models.PayableView) []interface{} {
	return []interface{}{
		formatDay(r.AccrualDate),
		formatDay(r.DueDate),
		r.SupplierName,
		r.DocumentType,
		r.DocumentNumber,
		r.InvoiceNumber,
		r.Installment,
		r.CostCenter,
		r.Bank,
		r.Amount.InexactFloat64(),
		r.Status,
		r.Notes,
		r.Tags.Join(),
	}
}

func formatDay(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006")
}

// WriteWorkbook renders records into an .xlsx workbook
func WriteWorkbook(records []models.PayableView) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrNothingToExport
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, err
	}

	headers := make([]interface{}, len(Headers))
	for i, h := range Headers {
		headers[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &headers); err != nil {
		return nil, err
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(Headers), 1)
	_ = f.SetCellStyle(SheetName, "A1", lastHeader, headerStyle)

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := ExportRow(r)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	last := len(records) + 1
	_ = f.SetCellStyle(SheetName, amountColumn+"2", fmt.Sprintf("%s%d", amountColumn, last), amountStyle)
	_ = f.SetColWidth(SheetName, "A", "B", 12)
	_ = f.SetColWidth(SheetName, "C", "I", 22)
	_ = f.SetColWidth(SheetName, "J", "J", 16)
	_ = f.SetColWidth(SheetName, "K", "M", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package ledger

import (
	"time"

	"github.com/lanca/lanca-api/internal/models"
	"github.com/shopspring/decimal"
)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func id(v uint) *uint { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// sampleLedger covers every reference null at least once
func sampleLedger() []models.PayableView {
	return []models.PayableView{
		{ID: 1, DueDate: day(2025, 5, 5), AccrualDate: day(2025, 4, 30), Amount: dec("100.00"), SupplierID: id(1), SupplierName: "Distribuidora Alfa", DocumentTypeID: id(1), DocumentType: "Boleto", BankID: id(1), Bank: "Itaú", CostCenterID: id(1), CostCenter: "Insumos", DocumentNumber: "BOL-001", InvoiceNumber: "NF 123", Status: models.StatusPending},
		{ID: 2, DueDate: day(2025, 5, 5), AccrualDate: day(2025, 5, 1), Amount: dec("250.50"), SupplierID: id(2), SupplierName: "João Embalagens", DocumentTypeID: id(2), DocumentType: "Nota Fiscal", BankID: id(2), Bank: "Bradesco", DocumentNumber: "DOC-77", InvoiceNumber: "NF 456", Status: models.StatusPaid},
		{ID: 3, DueDate: day(2025, 5, 6), Amount: dec("49.50"), SupplierID: id(1), SupplierName: "Distribuidora Alfa", CostCenterID: id(9), Status: models.StatusPending},
		{ID: 4, DueDate: nil, Amount: dec("10.00"), Status: "Em análise"},
		{ID: 5, DueDate: day(2024, 12, 31), Amount: dec("75.25"), SupplierID: id(3), SupplierName: "", Status: models.StatusCancelled},
	}
}

func sum(records []models.PayableView) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}

func ids(records []models.PayableView) []uint {
	out := make([]uint, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

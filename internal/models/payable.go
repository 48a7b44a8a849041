package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Payable status constants
const (
	StatusPending   = "Pendente"
	StatusPaid      = "Pago"
	StatusCancelled = "Cancelado"
)

// KnownStatuses lists the statuses the lifecycle understands
var KnownStatuses = []string{StatusPending, StatusPaid, StatusCancelled}

// NormalizeStatus maps a case-insensitive known status to its canonical
// spelling; free-text values are returned trimmed.
func NormalizeStatus(s string) string {
	s = strings.TrimSpace(s)
	for _, known := range KnownStatuses {
		if strings.EqualFold(s, known) {
			return known
		}
	}
	return s
}

// Payable represents an account payable (conta a pagar)
type Payable struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	SupplierID     *uint           `gorm:"column:id_fornecedor;index" json:"id_fornecedor"`
	DocumentTypeID *uint           `gorm:"column:id_tipo_documento;index" json:"id_tipo_documento"`
	BankID         *uint           `gorm:"column:id_banco;index" json:"id_banco"`
	CostCenterID   *uint           `gorm:"column:id_razao;index" json:"id_razao"`
	InstallmentID  *uint           `gorm:"column:id_parcela" json:"id_parcela"`
	DueDate        *time.Time      `gorm:"column:data_vencimento;type:date;index" json:"data_vencimento"`
	AccrualDate    *time.Time      `gorm:"column:data_competencia;type:date" json:"data_competencia"`
	Amount         decimal.Decimal `gorm:"column:valor_original;type:numeric(14,2);not null;default:0" json:"valor_original"`
	DocumentNumber string          `gorm:"column:numero_documento;size:100" json:"numero_documento"`
	InvoiceNumber  string          `gorm:"column:nota_fiscal;size:100" json:"nota_fiscal"`
	Status         string          `gorm:"column:status;size:50;not null;default:Pendente;index" json:"status"`
	Notes          string          `gorm:"column:observacao;type:text" json:"observacao"`
	Tags           Tags            `gorm:"column:tags;type:text" json:"tags"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	// Associations
	Supplier     *Supplier     `gorm:"foreignKey:SupplierID" json:"-"`
	DocumentType *DocumentType `gorm:"foreignKey:DocumentTypeID" json:"-"`
	Bank         *Bank         `gorm:"foreignKey:BankID" json:"-"`
	CostCenter   *CostCenter   `gorm:"foreignKey:CostCenterID" json:"-"`
	Installment  *Installment  `gorm:"foreignKey:InstallmentID" json:"-"`
}

// TableName specifies the table name for Payable
func (Payable) TableName() string {
	return "tb_contas_pagar"
}

// PayableView is the joined read model: the flat record plus the labels of
// every reference it points to. An unresolved reference has an empty label.
type PayableView struct {
	ID             uint            `json:"id"`
	DueDate        *time.Time      `json:"data_vencimento"`
	AccrualDate    *time.Time      `json:"data_competencia"`
	Amount         decimal.Decimal `json:"valor_original"`
	SupplierID     *uint           `json:"id_fornecedor"`
	DocumentTypeID *uint           `json:"id_tipo_documento"`
	BankID         *uint           `json:"id_banco"`
	CostCenterID   *uint           `json:"id_razao"`
	InstallmentID  *uint           `json:"id_parcela"`
	SupplierName   string          `json:"nome_fornecedor"`
	DocumentType   string          `json:"tipo_documento"`
	Bank           string          `json:"banco"`
	CostCenter     string          `json:"razao"`
	Installment    string          `json:"parcela"`
	DocumentNumber string          `json:"numero_documento"`
	InvoiceNumber  string          `json:"nota_fiscal"`
	Status         string          `json:"status"`
	Notes          string          `json:"observacao"`
	Tags           Tags            `json:"tags"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ToView flattens a payable with its preloaded associations
func (p *Payable) ToView() PayableView {
	v := PayableView{
		ID:             p.ID,
		DueDate:        p.DueDate,
		AccrualDate:    p.AccrualDate,
		Amount:         p.Amount,
		SupplierID:     p.SupplierID,
		DocumentTypeID: p.DocumentTypeID,
		BankID:         p.BankID,
		CostCenterID:   p.CostCenterID,
		InstallmentID:  p.InstallmentID,
		DocumentNumber: p.DocumentNumber,
		InvoiceNumber:  p.InvoiceNumber,
		Status:         p.Status,
		Notes:          p.Notes,
		Tags:           p.Tags,
		CreatedAt:      p.CreatedAt,
	}
	if p.Supplier != nil {
		v.SupplierName = p.Supplier.Label()
	}
	if p.DocumentType != nil {
		v.DocumentType = p.DocumentType.Label()
	}
	if p.Bank != nil {
		v.Bank = p.Bank.Label()
	}
	if p.CostCenter != nil {
		v.CostCenter = p.CostCenter.Label()
	}
	if p.Installment != nil {
		v.Installment = p.Installment.Label()
	}
	return v
}

// PayableInput is the create/update payload sent by the ledger form.
// Dates arrive as yyyy-mm-dd strings; the amount may be a JSON number or a
// localized string such as "1.234,56".
type PayableInput struct {
	SupplierID     *uint    `json:"id_fornecedor"`
	DocumentTypeID *uint    `json:"id_tipo_documento"`
	BankID         *uint    `json:"id_banco"`
	CostCenterID   *uint    `json:"id_razao"`
	InstallmentID  *uint    `json:"id_parcela"`
	DueDate        string   `json:"data_vencimento"`
	AccrualDate    string   `json:"data_competencia"`
	Amount         any      `json:"valor_original"`
	DocumentNumber string   `json:"numero_documento"`
	InvoiceNumber  string   `json:"nota_fiscal"`
	Status         string   `json:"status"`
	Notes          string   `json:"observacao"`
	Tags           []string `json:"tags"`
}

// StatusInput is the payload of the inline status change
type StatusInput struct {
	Status string `json:"status" binding:"required"`
}

package models

import (
	"strings"
	"time"
)

// Reference is implemented by every lookup table the ledger points to
type Reference interface {
	GetID() uint
	Label() string
}

// Supplier represents a fornecedor
type Supplier struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CompanyName string    `gorm:"column:nome_razao;not null" json:"nome_razao" binding:"required"`
	TradeName   string    `gorm:"column:nome_fantasia" json:"nome_fantasia"`
	TaxID       string    `gorm:"column:cpf_cnpj;size:14" json:"cpf_cnpj"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for Supplier
func (Supplier) TableName() string {
	return "tb_fornecedores"
}

func (s Supplier) GetID() uint { return s.ID }

// Label prefers the legal name and falls back to the trade name
func (s Supplier) Label() string {
	if strings.TrimSpace(s.CompanyName) != "" {
		return s.CompanyName
	}
	return s.TradeName
}

// Bank represents a paying bank account
type Bank struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"column:nome_banco;not null" json:"nome_banco" binding:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Bank
func (Bank) TableName() string {
	return "tb_bancos"
}

func (b Bank) GetID() uint { return b.ID }
func (b Bank) Label() string { return b.Name }

// DocumentType represents a tipo de documento (boleto, NF, recibo...)
type DocumentType struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"column:descricao;not null" json:"descricao" binding:"required"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for DocumentType
func (DocumentType) TableName() string {
	return "tb_tipos_documento"
}

func (d DocumentType) GetID() uint { return d.ID }
func (d DocumentType) Label() string { return d.Description }

// CostCenter represents a razão, the accounting category of a payable
type CostCenter struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"column:descricao;not null" json:"descricao" binding:"required"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for CostCenter
func (CostCenter) TableName() string {
	return "tb_razoes"
}

func (c CostCenter) GetID() uint { return c.ID }
func (c CostCenter) Label() string { return c.Description }

// Installment represents a parcela label such as "1/3"
type Installment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"column:descricao;not null" json:"descricao" binding:"required"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for Installment
func (Installment) TableName() string {
	return "tb_parcelas"
}

func (i Installment) GetID() uint { return i.ID }
func (i Installment) Label() string { return i.Description }

// StatusOption is a user-maintained status label
type StatusOption struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"column:descricao;not null" json:"descricao" binding:"required"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for StatusOption
func (StatusOption) TableName() string {
	return "tb_status"
}

func (s StatusOption) GetID() uint { return s.ID }
func (s StatusOption) Label() string { return s.Description }

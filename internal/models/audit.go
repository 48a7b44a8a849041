package models

import (
	"time"
)

// AuditLog represents a ledger audit entry
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Actor     string    `gorm:"size:255;not null;index" json:"actor"`
	Action    string    `gorm:"size:50;not null" json:"action"` // CREATE, UPDATE, STATUS, DELETE, IMPORT, EXPORT
	Entity    string    `gorm:"size:50;not null" json:"entity"` // Payable, Supplier, Bank, etc.
	EntityID  uint      `json:"entity_id"`
	Details   string    `gorm:"type:text" json:"details"`
	IPAddress string    `gorm:"size:45" json:"ip_address"`
	UserAgent string    `gorm:"size:255" json:"user_agent"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}

// Audit actions
const (
	AuditCreate = "CREATE"
	AuditUpdate = "UPDATE"
	AuditStatus = "STATUS"
	AuditDelete = "DELETE"
	AuditImport = "IMPORT"
	AuditExport = "EXPORT"
)

// AllModels lists every table the API migrates
func AllModels() []any {
	return []any{
		&Supplier{},
		&Bank{},
		&DocumentType{},
		&CostCenter{},
		&Installment{},
		&StatusOption{},
		&User{},
		&Payable{},
		&AuditLog{},
	}
}

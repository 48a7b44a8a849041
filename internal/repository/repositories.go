package repository

import (
	"github.com/lanca/lanca-api/internal/models"
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	Supplier     ReferenceRepository[models.Supplier]
	Bank         ReferenceRepository[models.Bank]
	DocumentType ReferenceRepository[models.DocumentType]
	CostCenter   ReferenceRepository[models.CostCenter]
	Installment  ReferenceRepository[models.Installment]
	Status       ReferenceRepository[models.StatusOption]
	Payable      PayableRepository
	User         UserRepository
	Audit        AuditRepository
}

// NewRepositories creates all repository instances
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Supplier:     NewReferenceRepository[models.Supplier](db, "nome_razao", "nome_fantasia", "cpf_cnpj"),
		Bank:         NewReferenceRepository[models.Bank](db, "nome_banco"),
		DocumentType: NewReferenceRepository[models.DocumentType](db, "descricao"),
		CostCenter:   NewReferenceRepository[models.CostCenter](db, "descricao"),
		Installment:  NewReferenceRepository[models.Installment](db, "descricao"),
		Status:       NewReferenceRepository[models.StatusOption](db, "descricao"),
		Payable:      NewPayableRepository(db),
		User:         NewUserRepository(db),
		Audit:        NewAuditRepository(db),
	}
}

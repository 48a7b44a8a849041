package repository

import (
	"context"

	"github.com/lanca/lanca-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PayableRepository defines data access for the ledger. Reads return the
// joined view so callers never see raw foreign keys without labels.
type PayableRepository interface {
	List(ctx context.Context, query *ListQuery) ([]models.PayableView, error)
	FindByID(ctx context.Context, id uint) (*models.Payable, error)
	Create(ctx context.Context, payable *models.Payable) error
	Update(ctx context.Context, payable *models.Payable) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
}

var payableSortable = columnSet(
	"id", "data_vencimento", "data_competencia", "valor_original", "status",
	"numero_documento", "nota_fiscal", "created_at", "updated_at",
)

type payableRepository struct {
	db *gorm.DB
}

// NewPayableRepository creates a new payable repository
func NewPayableRepository(db *gorm.DB) PayableRepository {
	return &payableRepository{db: db}
}

func (r *payableRepository) withLabels(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("DocumentType").
		Preload("Bank").
		Preload("CostCenter").
		Preload("Installment")
}

func (r *payableRepository) List(ctx context.Context, query *ListQuery) ([]models.PayableView, error) {
	db, err := query.apply(
		r.withLabels(ctx).Model(&models.Payable{}),
		payableSortable,
		clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true},
	)
	if err != nil {
		return nil, err
	}

	var payables []models.Payable
	if err := db.Find(&payables).Error; err != nil {
		return nil, err
	}

	views := make([]models.PayableView, len(payables))
	for i := range payables {
		views[i] = payables[i].ToView()
	}
	return views, nil
}

func (r *payableRepository) FindByID(ctx context.Context, id uint) (*models.Payable, error) {
	var payable models.Payable
	if err := r.withLabels(ctx).First(&payable, id).Error; err != nil {
		return nil, err
	}
	return &payable, nil
}

func (r *payableRepository) Create(ctx context.Context, payable *models.Payable) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(payable).Error
}

func (r *payableRepository) Update(ctx context.Context, payable *models.Payable) error {
	res := r.db.WithContext(ctx).
		Model(payable).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(payable)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *payableRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Payable{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *payableRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Payable{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package repository

import (
	"context"

	"github.com/lanca/lanca-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReferenceRepository defines data access for the flat lookup tables
// (suppliers, banks, document types, cost centers, installments, statuses)
type ReferenceRepository[T models.Reference] interface {
	List(ctx context.Context, query *ListQuery) ([]T, error)
	FindByID(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, id uint, item *T) error
	Delete(ctx context.Context, id uint) error
}

type referenceRepository[T models.Reference] struct {
	db          *gorm.DB
	sortable    map[string]bool
	labelColumn string
}

// NewReferenceRepository creates a repository for one lookup table.
// labelColumn is the default sort; extra lists other sortable columns.
func NewReferenceRepository[T models.Reference](db *gorm.DB, labelColumn string, extra ...string) ReferenceRepository[T] {
	columns := append([]string{"id", "created_at", "updated_at", labelColumn}, extra...)
	return &referenceRepository[T]{
		db:          db,
		sortable:    columnSet(columns...),
		labelColumn: labelColumn,
	}
}

func (r *referenceRepository[T]) List(ctx context.Context, query *ListQuery) ([]T, error) {
	db, err := query.apply(
		r.db.WithContext(ctx).Model(new(T)),
		r.sortable,
		clause.OrderByColumn{Column: clause.Column{Name: r.labelColumn}},
	)
	if err != nil {
		return nil, err
	}

	items := []T{}
	if err := db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *referenceRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	item := new(T)
	if err := r.db.WithContext(ctx).First(item, id).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *referenceRepository[T]) Create(ctx context.Context, item *T) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Update overwrites every editable column of row id with item
func (r *referenceRepository[T]) Update(ctx context.Context, id uint, item *T) error {
	res := r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Select("*").
		Omit("id", "created_at").
		Updates(item)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *referenceRepository[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/lanca/lanca-api/internal/models"
	"github.com/lanca/lanca-api/internal/repository"
)

// ReferenceService handles CRUD of one lookup table. onChange runs after
// every successful write since the joined ledger list embeds the labels.
type ReferenceService[T models.Reference] struct {
	repo       repository.ReferenceRepository[T]
	auditSvc   *AuditService
	entity     string
	labelField string
	onChange   func(ctx context.Context)
}

func NewReferenceService[T models.Reference](
	repo repository.ReferenceRepository[T],
	auditSvc *AuditService,
	entity, labelField string,
	onChange func(ctx context.Context),
) *ReferenceService[T] {
	return &ReferenceService[T]{
		repo:       repo,
		auditSvc:   auditSvc,
		entity:     entity,
		labelField: labelField,
		onChange:   onChange,
	}
}

// Entity returns the audit entity name
func (s *ReferenceService[T]) Entity() string {
	return s.entity
}

func (s *ReferenceService[T]) List(ctx context.Context, query *repository.ListQuery) ([]T, error) {
	items, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *ReferenceService[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return item, nil
}

func (s *ReferenceService[T]) Create(ctx context.Context, item *T, actor Actor) error {
	if err := s.validate(item); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return err
	}
	s.changed(ctx)
	s.auditSvc.Log(ctx, actor, models.AuditCreate, s.entity, (*item).GetID(), fmt.Sprintf("%s criado: %s", s.entity, (*item).Label()))
	return nil
}

func (s *ReferenceService[T]) Update(ctx context.Context, id uint, item *T, actor Actor) (*T, error) {
	if err := s.validate(item); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, item); err != nil {
		return nil, notFound(err)
	}
	s.changed(ctx)
	s.auditSvc.Log(ctx, actor, models.AuditUpdate, s.entity, id, fmt.Sprintf("%s atualizado: %s", s.entity, (*item).Label()))
	return s.FindByID(ctx, id)
}

func (s *ReferenceService[T]) Delete(ctx context.Context, id uint, actor Actor) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err)
	}
	s.changed(ctx)
	s.auditSvc.Log(ctx, actor, models.AuditDelete, s.entity, id, fmt.Sprintf("%s excluído", s.entity))
	return nil
}

func (s *ReferenceService[T]) validate(item *T) error {
	if item == nil || strings.TrimSpace((*item).Label()) == "" {
		return &ValidationError{Field: s.labelField, Message: "Informe a descrição"}
	}
	return nil
}

func (s *ReferenceService[T]) changed(ctx context.Context) {
	if s.onChange != nil {
		s.onChange(ctx)
	}
}

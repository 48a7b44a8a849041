package services

import (
	"context"
	"errors"
	"testing"

	"github.com/lanca/lanca-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestReferenceService_Create(t *testing.T) {
	repo := &mockReferenceRepo[models.Bank]{}
	audits := &mockAuditRepo{}
	changes := 0
	svc := NewReferenceService[models.Bank](repo, NewAuditService(audits, nil), "Bank", "nome_banco",
		func(context.Context) { changes++ })
	ctx := context.Background()

	err := svc.Create(ctx, &models.Bank{Name: "  "}, tester)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "nome_banco", verr.Field)
	assert.Empty(t, repo.created)

	require.NoError(t, svc.Create(ctx, &models.Bank{Name: "Itaú"}, tester))
	assert.Len(t, repo.created, 1)
	assert.Equal(t, 1, changes)
	assert.Equal(t, []string{models.AuditCreate}, audits.actions())
	assert.Equal(t, "Bank", audits.entries[0].Entity)
}

func TestReferenceService_UpdateDelete(t *testing.T) {
	repo := &mockReferenceRepo[models.CostCenter]{items: []models.CostCenter{{ID: 4, Description: "Aluguel"}}}
	audits := &mockAuditRepo{}
	changes := 0
	svc := NewReferenceService[models.CostCenter](repo, NewAuditService(audits, nil), "CostCenter", "descricao",
		func(context.Context) { changes++ })
	ctx := context.Background()

	updated, err := svc.Update(ctx, 4, &models.CostCenter{Description: "Aluguel sede"}, tester)
	require.NoError(t, err)
	assert.Equal(t, uint(4), updated.ID)

	repo.updateErr = gorm.ErrRecordNotFound
	_, err = svc.Update(ctx, 9, &models.CostCenter{Description: "X"}, tester)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete(ctx, 4, tester))
	repo.deleteErr = gorm.ErrRecordNotFound
	assert.ErrorIs(t, svc.Delete(ctx, 4, tester), ErrNotFound)

	_, err = svc.FindByID(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, 2, changes)
	assert.Equal(t, []string{models.AuditUpdate, models.AuditDelete}, audits.actions())
}

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lanca/lanca-api/internal/cache"
	"github.com/lanca/lanca-api/internal/ledger"
	"github.com/lanca/lanca-api/internal/models"
	"github.com/lanca/lanca-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tester = Actor{Email: "ana@lanca.app", IP: "127.0.0.1"}

func newPayableService(repo *mockPayableRepo) (*PayableService, *mockAuditRepo) {
	audits := &mockAuditRepo{}
	svc := NewPayableService(repo, cache.NewListCache(cache.NewMemoryStore(), time.Minute), NewAuditService(audits, nil), nil, 1000)
	svc.now = func() time.Time { return time.Date(2025, 5, 5, 9, 0, 0, 0, time.UTC) }
	return svc, audits
}

func TestPayableService_ListAllIsCached(t *testing.T) {
	repo := newMockPayableRepo(models.Payable{Amount: amount("10"), Status: models.StatusPending})
	svc, _ := newPayableService(repo)
	ctx := context.Background()

	first, err := svc.ListAll(ctx)
	require.NoError(t, err)
	second, err := svc.ListAll(ctx)
	require.NoError(t, err)

	assert.Len(t, second, len(first))
	assert.Equal(t, 1, repo.listCalls)

	svc.Invalidate(ctx)
	_, err = svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
}

func TestPayableService_ExplicitOrderBypassesCache(t *testing.T) {
	repo := newMockPayableRepo(models.Payable{Amount: amount("10")})
	svc, _ := newPayableService(repo)
	ctx := context.Background()

	_, err := svc.List(ctx, &repository.ListQuery{OrderBy: "-data_vencimento"})
	require.NoError(t, err)
	_, err = svc.List(ctx, &repository.ListQuery{OrderBy: "-data_vencimento"})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
}

func TestPayableService_Create(t *testing.T) {
	repo := newMockPayableRepo()
	svc, audits := newPayableService(repo)
	ctx := context.Background()

	// prime the cache, the create must drop it
	_, err := svc.ListAll(ctx)
	require.NoError(t, err)

	view, err := svc.Create(ctx, models.PayableInput{
		SupplierID: uintPtr(3),
		DueDate:    "2025-05-20",
		Amount:     "1.234,56",
		Tags:       []string{"aluguel"},
	}, tester)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, view.Status)
	assert.True(t, view.Amount.Equal(amount("1234.56")))
	assert.Equal(t, "2025-05-05", view.AccrualDate.Format(time.DateOnly))
	assert.Equal(t, []string{models.AuditCreate}, audits.actions())
	assert.Equal(t, "ana@lanca.app", audits.entries[0].Actor)

	list, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestPayableService_CreateValidation(t *testing.T) {
	repo := newMockPayableRepo()
	svc, audits := newPayableService(repo)

	_, err := svc.Create(context.Background(), models.PayableInput{SupplierID: uintPtr(1), Amount: 10.0}, tester)
	assert.ErrorIs(t, err, ErrValidation)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "data_vencimento", verr.Field)
	assert.Empty(t, repo.rows)
	assert.Empty(t, audits.actions())
}

func TestPayableService_StoreErrorKeepsCache(t *testing.T) {
	repo := newMockPayableRepo(models.Payable{Amount: amount("1")})
	svc, _ := newPayableService(repo)
	ctx := context.Background()

	_, err := svc.ListAll(ctx)
	require.NoError(t, err)
	generation := svc.cache.Generation(ctx)

	repo.failWith = errors.New("connection reset")
	_, err = svc.Create(ctx, models.PayableInput{SupplierID: uintPtr(1), DueDate: "2025-05-20", Amount: 10.0}, tester)
	assert.Error(t, err)
	assert.Equal(t, generation, svc.cache.Generation(ctx))
}

func TestPayableService_Update(t *testing.T) {
	repo := newMockPayableRepo(models.Payable{
		SupplierID:  uintPtr(1),
		DueDate:     date(2025, 5, 10),
		AccrualDate: date(2025, 4, 1),
		Amount:      amount("50"),
		Status:      models.StatusPaid,
	})
	svc, audits := newPayableService(repo)
	ctx := context.Background()

	view, err := svc.Update(ctx, 1, models.PayableInput{SupplierID: uintPtr(2), DueDate: "11/05/2025", Amount: 75.5}, tester)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaid, view.Status, "blank status keeps the current one")
	assert.Equal(t, "2025-04-01", view.AccrualDate.Format(time.DateOnly))
	assert.Equal(t, uint(2), *view.SupplierID)
	assert.Equal(t, []string{models.AuditUpdate}, audits.actions())

	_, err = svc.Update(ctx, 1, models.PayableInput{SupplierID: uintPtr(2), DueDate: "2025-05-11", Amount: 75.5, Status: models.StatusCancelled}, tester)
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = svc.Update(ctx, 42, models.PayableInput{SupplierID: uintPtr(2), DueDate: "2025-05-11", Amount: 1.0}, tester)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPayableService_SetStatus(t *testing.T) {
	repo := newMockPayableRepo(models.Payable{Amount: amount("5"), Status: models.StatusPending})
	svc, audits := newPayableService(repo)
	ctx := context.Background()

	view, err := svc.SetStatus(ctx, 1, "pago", tester)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaid, view.Status)
	assert.Equal(t, []string{models.StatusPaid}, repo.statuses)
	assert.Contains(t, audits.entries[0].Details, "Pendente → Pago")

	_, err = svc.SetStatus(ctx, 1, models.StatusCancelled, tester)
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Len(t, repo.statuses, 1, "rejected transition must not reach the store")

	_, err = svc.SetStatus(ctx, 1, " ", tester)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.SetStatus(ctx, 9, models.StatusPaid, tester)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPayableService_Delete(t *testing.T) {
	repo := newMockPayableRepo(models.Payable{Amount: amount("5")})
	svc, audits := newPayableService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, 1, tester))
	assert.ErrorIs(t, svc.Delete(ctx, 1, tester), ErrNotFound)
	assert.Equal(t, []string{models.AuditDelete}, audits.actions())
}

func TestPayableService_Search(t *testing.T) {
	repo := newMockPayableRepo(
		models.Payable{Amount: amount("100"), Status: models.StatusPaid, DueDate: date(2025, 5, 5)},
		models.Payable{Amount: amount("40"), Status: models.StatusPending, DueDate: date(2025, 5, 6)},
		models.Payable{Amount: amount("60"), Status: models.StatusPending, DueDate: date(2025, 6, 1)},
	)
	svc, _ := newPayableService(repo)

	list, err := svc.Search(context.Background(), nil, ledger.Criteria{From: date(2025, 5, 1), To: date(2025, 5, 31)})
	require.NoError(t, err)
	assert.Len(t, list.Payables, 2)
	assert.Equal(t, 2, list.Summary.Count)
	assert.True(t, list.Summary.Total.Equal(amount("140")))
	assert.True(t, list.Summary.Paid.Equal(amount("100")))
	assert.True(t, list.Summary.Pending.Equal(amount("40")))
}

func TestPayableService_Warm(t *testing.T) {
	repo := newMockPayableRepo(models.Payable{Amount: amount("5")})
	svc, _ := newPayableService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Warm(ctx))
	_, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)

	repo.failWith = errors.New("down")
	assert.Error(t, svc.Warm(ctx))
}

package seed

import (
	"context"
	"testing"
	"time"

	"github.com/lanca/lanca-api/internal/config"
	"github.com/lanca/lanca-api/internal/database"
	"github.com/lanca/lanca-api/internal/ledger"
	"github.com/lanca/lanca-api/internal/repository"
	"github.com/lanca/lanca-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var base = time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)

func TestGenerator_Deterministic(t *testing.T) {
	refs := Refs{Suppliers: []uint{1, 2, 3}, DocumentTypes: []uint{4}}

	a := NewGenerator(42)
	b := NewGenerator(42)
	assert.Equal(t, a.Supplier(), b.Supplier())
	assert.Equal(t, a.Payable(refs, base), b.Payable(refs, base))
}

func TestGenerator_PayableIsValid(t *testing.T) {
	g := NewGenerator(7)
	refs := Refs{Suppliers: []uint{1, 2}}

	for i := 0; i < 50; i++ {
		in := g.Payable(refs, base)
		p, err := ledger.ValidateInput(in, base)
		require.NoError(t, err, "payload %d: %+v", i, in)
		assert.True(t, p.Amount.IsPositive())
		assert.WithinDuration(t, base, *p.DueDate, 31*24*time.Hour)
		assert.False(t, p.AccrualDate.After(*p.DueDate))
		assert.Nil(t, p.BankID)
	}
}

func TestGenerator_SupplierTaxID(t *testing.T) {
	s := NewGenerator(1).Supplier()
	assert.Len(t, s.TaxID, 14)
	assert.NotEmpty(t, s.Label())
}

func TestRun(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), database.Config(logger.Silent))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{ListLimit: 1000, ImportConcurrency: 1, WeekStart: time.Sunday}
	svcs := services.NewServices(repository.NewRepositories(db), nil, nil, nil, nil, cfg)

	res, err := Run(context.Background(), svcs, NewGenerator(3), 12, base)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Suppliers)
	assert.Equal(t, 12, res.Payables)

	list, err := svcs.Payable.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 12)
	for _, v := range list {
		assert.NotEmpty(t, v.SupplierName)
		assert.NotEmpty(t, v.DocumentType)
	}

	logs, total, err := svcs.Audit.List(context.Background(), "Payable", 50, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 12, total)
	assert.Equal(t, "system", logs[0].Actor)
}

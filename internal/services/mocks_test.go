package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/lanca/lanca-api/internal/models"
	"github.com/lanca/lanca-api/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Mock PayableRepository backed by a map
type mockPayableRepo struct {
	repository.PayableRepository
	mu        sync.Mutex
	rows      map[uint]*models.Payable
	nextID    uint
	listCalls int
	failWith  error
	statuses  []string
}

func newMockPayableRepo(rows ...models.Payable) *mockPayableRepo {
	m := &mockPayableRepo{rows: map[uint]*models.Payable{}}
	for i := range rows {
		p := rows[i]
		if p.ID == 0 {
			m.nextID++
			p.ID = m.nextID
		} else if p.ID > m.nextID {
			m.nextID = p.ID
		}
		m.rows[p.ID] = &p
	}
	return m
}

func (m *mockPayableRepo) List(ctx context.Context, query *repository.ListQuery) ([]models.PayableView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.failWith != nil {
		return nil, m.failWith
	}
	views := make([]models.PayableView, 0, len(m.rows))
	for _, p := range m.rows {
		views = append(views, p.ToView())
	}
	sort.Slice(views, func(i, j int) bool { return views[i].ID > views[j].ID })
	if query != nil && query.Limit > 0 && len(views) > query.Limit {
		views = views[:query.Limit]
	}
	return views, nil
}

func (m *mockPayableRepo) FindByID(ctx context.Context, id uint) (*models.Payable, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockPayableRepo) Create(ctx context.Context, p *models.Payable) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	m.nextID++
	p.ID = m.nextID
	p.CreatedAt = time.Now()
	cp := *p
	m.rows[p.ID] = &cp
	return nil
}

func (m *mockPayableRepo) Update(ctx context.Context, p *models.Payable) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	if _, ok := m.rows[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *p
	m.rows[p.ID] = &cp
	return nil
}

func (m *mockPayableRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	m.statuses = append(m.statuses, status)
	p.Status = status
	return nil
}

func (m *mockPayableRepo) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.rows, id)
	return nil
}

// Mock ReferenceRepository over a slice
type mockReferenceRepo[T models.Reference] struct {
	repository.ReferenceRepository[T]
	items     []T
	created   []T
	updateErr error
	deleteErr error
}

func (m *mockReferenceRepo[T]) List(ctx context.Context, query *repository.ListQuery) ([]T, error) {
	return m.items, nil
}

func (m *mockReferenceRepo[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	for i := range m.items {
		if m.items[i].GetID() == id {
			return &m.items[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockReferenceRepo[T]) Create(ctx context.Context, item *T) error {
	m.created = append(m.created, *item)
	return nil
}

func (m *mockReferenceRepo[T]) Update(ctx context.Context, id uint, item *T) error {
	return m.updateErr
}

func (m *mockReferenceRepo[T]) Delete(ctx context.Context, id uint) error {
	return m.deleteErr
}

// Mock AuditRepository recording entries
type mockAuditRepo struct {
	repository.AuditRepository
	mu        sync.Mutex
	entries   []models.AuditLog
	lastLimit int
}

func (m *mockAuditRepo) Create(ctx context.Context, log *models.AuditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, *log)
	return nil
}

func (m *mockAuditRepo) List(ctx context.Context, entity string, limit, offset int) ([]models.AuditLog, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastLimit = limit
	out := []models.AuditLog{}
	for _, e := range m.entries {
		if entity == "" || e.Entity == entity {
			out = append(out, e)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockAuditRepo) actions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Action
	}
	return out
}

// Mock UserRepository
type mockUserRepo struct {
	repository.UserRepository
	users []models.User
}

func (m *mockUserRepo) FindByAuthID(ctx context.Context, authID string) (*models.User, error) {
	for i := range m.users {
		if m.users[i].AuthID == authID {
			return &m.users[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for i := range m.users {
		if m.users[i].Email == email {
			return &m.users[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func date(y int, mo time.Month, d int) *time.Time {
	t := time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func uintPtr(v uint) *uint { return &v }

func amount(s string) decimal.Decimal { return decimal.RequireFromString(s) }

package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrInvalidSortField is returned when order_by names a column the
// resource does not expose for sorting
var ErrInvalidSortField = errors.New("campo de ordenação inválido")

// ListQuery represents the list parameters every resource accepts:
// OrderBy is a column name, prefixed with "-" for descending order, and a
// Limit of zero means no limit.
type ListQuery struct {
	OrderBy string
	Limit   int
}

// NewListQuery creates a ListQuery with defaults
func NewListQuery() *ListQuery {
	return &ListQuery{}
}

// ParseOrder splits "-field" into ("field", true)
func ParseOrder(orderBy string) (string, bool) {
	orderBy = strings.TrimSpace(orderBy)
	if strings.HasPrefix(orderBy, "-") {
		return strings.TrimSpace(orderBy[1:]), true
	}
	return orderBy, false
}

// apply adds ordering and limit to db. Unknown sort fields are rejected
// instead of being passed to SQL.
func (q *ListQuery) apply(db *gorm.DB, sortable map[string]bool, fallback clause.OrderByColumn) (*gorm.DB, error) {
	order := fallback
	if q != nil && q.OrderBy != "" {
		field, desc := ParseOrder(q.OrderBy)
		if !sortable[field] {
			return nil, fmt.Errorf("%w: %s", ErrInvalidSortField, field)
		}
		order = clause.OrderByColumn{Column: clause.Column{Name: field}, Desc: desc}
	}

	db = db.Order(order)
	if order.Column.Name != "id" {
		// stable pagination across equal keys
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true})
	}

	if q != nil && q.Limit > 0 {
		db = db.Limit(q.Limit)
	}
	return db, nil
}

func columnSet(columns ...string) map[string]bool {
	set := make(map[string]bool, len(columns))
	for _, c := range columns {
		set[c] = true
	}
	return set
}

package ledger

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lanca/lanca-api/internal/models"
	"github.com/shopspring/decimal"
)

// DateField selects which date a date range applies to
type DateField string

const (
	DueDate     DateField = "due"
	AccrualDate DateField = "accrual"
)

// Criteria is the ledger filter form as a plain value. The zero value
// matches every record.
type Criteria struct {
	From           *time.Time       `json:"from,omitempty"`
	To             *time.Time       `json:"to,omitempty"`
	DateField      DateField        `json:"date_field,omitempty"`
	MinAmount      *decimal.Decimal `json:"min_amount,omitempty"`
	MaxAmount      *decimal.Decimal `json:"max_amount,omitempty"`
	SupplierID     *uint            `json:"supplier_id,omitempty"`
	DocumentTypeID *uint            `json:"document_type_id,omitempty"`
	BankID         *uint            `json:"bank_id,omitempty"`
	CostCenterID   *uint            `json:"cost_center_id,omitempty"`
	Status         string           `json:"status,omitempty"`
	DocumentNumber string           `json:"document_number,omitempty"`
	InvoiceNumber  string           `json:"invoice_number,omitempty"`
	SupplierName   string           `json:"supplier_name,omitempty"`
	Search         string           `json:"search,omitempty"`
}

// IsEmpty reports whether no predicate is active
func (c Criteria) IsEmpty() bool {
	return c.From == nil && c.To == nil &&
		c.MinAmount == nil && c.MaxAmount == nil &&
		c.SupplierID == nil && c.DocumentTypeID == nil &&
		c.BankID == nil && c.CostCenterID == nil &&
		strings.TrimSpace(c.Status) == "" &&
		strings.TrimSpace(c.DocumentNumber) == "" &&
		strings.TrimSpace(c.InvoiceNumber) == "" &&
		strings.TrimSpace(c.SupplierName) == "" &&
		strings.TrimSpace(c.Search) == ""
}

// Filter returns the records matching every active predicate, in input
// order. The input slice is not modified.
func Filter(records []models.PayableView, c Criteria) []models.PayableView {
	out := make([]models.PayableView, 0, len(records))
	for _, r := range records {
		if c.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// Match evaluates the criteria against one record. A record without the
// selected date never satisfies an active date bound.
func (c Criteria) Match(r models.PayableView) bool {
	if c.From != nil || c.To != nil {
		d := r.DueDate
		if c.DateField == AccrualDate {
			d = r.AccrualDate
		}
		if d == nil {
			return false
		}
		day := Day(*d)
		if c.From != nil && day.Before(Day(*c.From)) {
			return false
		}
		if c.To != nil && day.After(Day(*c.To)) {
			return false
		}
	}

	if c.MinAmount != nil && r.Amount.LessThan(*c.MinAmount) {
		return false
	}
	if c.MaxAmount != nil && r.Amount.GreaterThan(*c.MaxAmount) {
		return false
	}

	if !sameID(c.SupplierID, r.SupplierID) ||
		!sameID(c.DocumentTypeID, r.DocumentTypeID) ||
		!sameID(c.BankID, r.BankID) ||
		!sameID(c.CostCenterID, r.CostCenterID) {
		return false
	}

	if status := strings.TrimSpace(c.Status); status != "" && Fold(status) != Fold(r.Status) {
		return false
	}

	if !containsFold(r.DocumentNumber, strings.TrimSpace(c.DocumentNumber)) ||
		!containsFold(r.InvoiceNumber, strings.TrimSpace(c.InvoiceNumber)) ||
		!containsFold(r.SupplierName, strings.TrimSpace(c.SupplierName)) {
		return false
	}

	if q := strings.TrimSpace(c.Search); q != "" {
		if !containsFold(r.SupplierName, q) &&
			!containsFold(r.DocumentNumber, q) &&
			!containsFold(r.InvoiceNumber, q) {
			return false
		}
	}

	return true
}

func sameID(want, got *uint) bool {
	if want == nil {
		return true
	}
	return got != nil && *got == *want
}

// ParseCriteria reads filter query parameters. Unknown parameters are
// ignored; malformed values are validation errors.
func ParseCriteria(values url.Values) (Criteria, error) {
	var c Criteria

	for _, p := range []struct {
		key string
		dst **time.Time
	}{{"from", &c.From}, {"to", &c.To}} {
		if raw := strings.TrimSpace(values.Get(p.key)); raw != "" {
			t, err := ParseDate(raw)
			if err != nil {
				return Criteria{}, &ValidationError{Field: p.key, Message: "data inválida: " + raw}
			}
			*p.dst = &t
		}
	}

	switch field := strings.ToLower(strings.TrimSpace(values.Get("date_field"))); field {
	case "", string(DueDate), "vencimento":
		c.DateField = DueDate
	case string(AccrualDate), "competencia":
		c.DateField = AccrualDate
	default:
		return Criteria{}, &ValidationError{Field: "date_field", Message: "campo de data inválido: " + field}
	}

	for _, p := range []struct {
		key string
		dst **decimal.Decimal
	}{{"min_amount", &c.MinAmount}, {"max_amount", &c.MaxAmount}} {
		if raw := strings.TrimSpace(values.Get(p.key)); raw != "" {
			d, err := ParseAmount(raw)
			if err != nil {
				return Criteria{}, &ValidationError{Field: p.key, Message: "valor inválido: " + raw}
			}
			*p.dst = &d
		}
	}

	for _, p := range []struct {
		key string
		dst **uint
	}{
		{"supplier_id", &c.SupplierID},
		{"document_type_id", &c.DocumentTypeID},
		{"bank_id", &c.BankID},
		{"cost_center_id", &c.CostCenterID},
	} {
		if raw := strings.TrimSpace(values.Get(p.key)); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return Criteria{}, &ValidationError{Field: p.key, Message: "identificador inválido: " + raw}
			}
			v := uint(id)
			*p.dst = &v
		}
	}

	c.Status = strings.TrimSpace(values.Get("status"))
	c.DocumentNumber = strings.TrimSpace(values.Get("document_number"))
	c.InvoiceNumber = strings.TrimSpace(values.Get("invoice_number"))
	c.SupplierName = strings.TrimSpace(values.Get("supplier_name"))
	c.Search = strings.TrimSpace(values.Get("search"))

	return c, nil
}

package spreadsheet

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lanca/lanca-api/internal/ledger"
	"github.com/lanca/lanca-api/internal/models"
	"github.com/shopspring/decimal"
)

// ErrEmptyRow marks a row with no mapped value at all
var ErrEmptyRow = errors.New("linha sem dados reconhecidos")

// ImportedPayable is a spreadsheet row converted to typed ledger values.
// Reference columns stay as labels until the importer resolves them.
type ImportedPayable struct {
	Line           int
	Amount         decimal.Decimal `validate:"gte=0"`
	DueDate        *time.Time
	AccrualDate    *time.Time
	SupplierName   string `validate:"max=255"`
	DocumentType   string `validate:"max=255"`
	DocumentNumber string `validate:"max=100"`
	InvoiceNumber  string `validate:"max=100"`
	Installment    string `validate:"max=255"`
	CostCenter     string `validate:"max=255"`
	Bank           string `validate:"max=255"`
	Status         string `validate:"max=50"`
	Notes          string `validate:"max=2000"`
	Tags           models.Tags
	Warnings       []string
}

// RowError reports why a row was rejected
type RowError struct {
	Line  int
	Field string
	Err   error
}

func (e *RowError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("linha %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("linha %d, campo %s: %v", e.Line, e.Field, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Mapper converts rows to ImportedPayable using a schema. An absent or
// non-numeric amount becomes zero with a warning; a negative amount
// rejects the row.
type Mapper struct {
	schema   *Schema
	validate *validator.Validate
}

// NewMapper creates a mapper; a nil schema means DefaultSchema
func NewMapper(schema *Schema) *Mapper {
	if schema == nil {
		schema = DefaultSchema()
	}
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return &Mapper{schema: schema, validate: v}
}

// Map converts one row. line is used in warnings and errors.
func (m *Mapper) Map(line int, row Row) (*ImportedPayable, error) {
	values := map[Field]string{}
	type source struct {
		rank   int
		header string
	}
	winners := map[Field]source{}
	for header, value := range row {
		field, rank, ok := m.schema.resolve(header)
		if !ok || value == "" {
			continue
		}
		if w, seen := winners[field]; seen && (w.rank < rank || (w.rank == rank && w.header < header)) {
			continue
		}
		winners[field] = source{rank: rank, header: header}
		values[field] = value
	}
	if len(values) == 0 {
		return nil, &RowError{Line: line, Err: ErrEmptyRow}
	}

	p := &ImportedPayable{
		Line:           line,
		Amount:         decimal.Zero,
		SupplierName:   values[FieldSupplier],
		DocumentType:   values[FieldDocumentType],
		DocumentNumber: values[FieldDocumentNumber],
		InvoiceNumber:  values[FieldInvoiceNumber],
		Installment:    values[FieldInstallment],
		CostCenter:     values[FieldCostCenter],
		Bank:           values[FieldBank],
		Status:         models.NormalizeStatus(values[FieldStatus]),
		Notes:          values[FieldNotes],
		Tags:           models.ParseTags(values[FieldTags]),
	}

	if raw, ok := values[FieldAmount]; !ok {
		p.Warnings = append(p.Warnings, "valor ausente, assumido 0")
	} else if amount, err := ledger.ParseAmount(raw); err != nil {
		p.Warnings = append(p.Warnings, fmt.Sprintf("valor %q não numérico, assumido 0", raw))
	} else {
		p.Amount = amount.Round(2)
		if !p.Amount.Equal(amount) {
			p.Warnings = append(p.Warnings, fmt.Sprintf("valor %q arredondado para %s", raw, p.Amount.StringFixed(2)))
		}
	}

	for _, d := range []struct {
		field Field
		dst   **time.Time
		label string
	}{
		{FieldDueDate, &p.DueDate, "vencimento"},
		{FieldAccrualDate, &p.AccrualDate, "competência"},
	} {
		raw, ok := values[d.field]
		if !ok {
			continue
		}
		t, err := ParseCellDate(raw)
		if err != nil {
			p.Warnings = append(p.Warnings, fmt.Sprintf("data de %s %q inválida, ignorada", d.label, raw))
			continue
		}
		*d.dst = &t
	}

	if err := m.validate.Struct(p); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return nil, &RowError{Line: line, Field: fe.Field(), Err: fmt.Errorf("falhou na regra %s", fe.Tag())}
		}
		return nil, &RowError{Line: line, Err: err}
	}
	return p, nil
}

// excelEpoch is day zero of the 1900 date system, shifted for the
// phantom 29 Feb 1900
var excelEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// ParseCellDate accepts text dates and Excel serial day numbers
func ParseCellDate(raw string) (time.Time, error) {
	if t, err := ledger.ParseDate(raw); err == nil {
		return t, nil
	}
	serial, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || serial < 1 || serial > 2958465 {
		return time.Time{}, ledger.ErrInvalidDate
	}
	return excelEpoch.AddDate(0, 0, int(math.Floor(serial))), nil
}

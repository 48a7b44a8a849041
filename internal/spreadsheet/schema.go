package spreadsheet

import (
	"strings"

	"github.com/lanca/lanca-api/internal/ledger"
)

// Field is a typed ledger column a spreadsheet header can map to
type Field string

const (
	FieldAccrualDate    Field = "accrual_date"
	FieldDueDate        Field = "due_date"
	FieldSupplier       Field = "supplier"
	FieldDocumentType   Field = "document_type"
	FieldDocumentNumber Field = "document_number"
	FieldInvoiceNumber  Field = "invoice_number"
	FieldInstallment    Field = "installment"
	FieldCostCenter     Field = "cost_center"
	FieldBank           Field = "bank"
	FieldAmount         Field = "amount"
	FieldStatus         Field = "status"
	FieldNotes          Field = "notes"
	FieldTags           Field = "tags"
)

// Schema maps header aliases to fields. Matching ignores case, accents,
// underscores and repeated spaces. When a sheet carries several aliases of
// one field, the alias registered first wins.
type Schema struct {
	aliases map[string]alias
	counts  map[Field]int
}

type alias struct {
	field Field
	rank  int
}

// DefaultSchema accepts the export headers plus the usual variants found
// in supplier spreadsheets
func DefaultSchema() *Schema {
	s := NewSchema()
	s.Alias(FieldAccrualDate, "Dia", "Competência", "Data Competência", "Data de Competência")
	s.Alias(FieldDueDate, "Vencimento", "Data Vencimento", "Data de Vencimento", "Venc")
	s.Alias(FieldSupplier, "Fornecedor", "Nome Fornecedor", "Razão Fornecedor")
	s.Alias(FieldDocumentType, "Tipo de Documento", "Tipo Documento", "Tipo")
	s.Alias(FieldDocumentNumber, "Número Documento", "Número do Documento", "Nº Documento", "Nº Doc", "Documento")
	s.Alias(FieldInvoiceNumber, "Nota Fiscal", "NF", "Nº NF")
	s.Alias(FieldInstallment, "Parcela")
	s.Alias(FieldCostCenter, "Razão Social", "Razão")
	s.Alias(FieldBank, "Banco")
	s.Alias(FieldAmount, "Valor", "Valor Original", "Valor (R$)", "Valor R$")
	s.Alias(FieldStatus, "Status", "Situação")
	s.Alias(FieldNotes, "Observação", "Observações", "Obs")
	s.Alias(FieldTags, "Tags", "Etiquetas")
	return s
}

// NewSchema creates a schema without aliases
func NewSchema() *Schema {
	return &Schema{aliases: map[string]alias{}, counts: map[Field]int{}}
}

// Alias registers header names for field, in decreasing priority
func (s *Schema) Alias(field Field, headers ...string) {
	for _, h := range headers {
		key := NormalizeHeader(h)
		if _, taken := s.aliases[key]; taken {
			continue
		}
		s.aliases[key] = alias{field: field, rank: s.counts[field]}
		s.counts[field]++
	}
}

// FieldFor resolves a header to its field
func (s *Schema) FieldFor(header string) (Field, bool) {
	a, ok := s.aliases[NormalizeHeader(header)]
	return a.field, ok
}

// resolve returns the field of header and its priority; lower wins
func (s *Schema) resolve(header string) (Field, int, bool) {
	a, ok := s.aliases[NormalizeHeader(header)]
	return a.field, a.rank, ok
}

// NormalizeHeader is the comparison key for header text
func NormalizeHeader(h string) string {
	h = strings.ReplaceAll(h, "_", " ")
	return strings.Join(strings.Fields(ledger.Fold(h)), " ")
}

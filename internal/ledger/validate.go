package ledger

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/lanca/lanca-api/internal/models"
	"github.com/shopspring/decimal"
)

// ErrInvalid is the sentinel every ValidationError unwraps to
var ErrInvalid = errors.New("dados inválidos")

// ValidationError reports the first field that failed validation
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}

// ValidateInput checks the ledger form and builds the record to persist.
// Accrual date defaults to today and status to Pendente.
func ValidateInput(in models.PayableInput, today time.Time) (*models.Payable, error) {
	if in.SupplierID == nil || *in.SupplierID == 0 {
		return nil, &ValidationError{Field: "id_fornecedor", Message: "Selecione um fornecedor"}
	}

	if strings.TrimSpace(in.DueDate) == "" {
		return nil, &ValidationError{Field: "data_vencimento", Message: "Informe a data de vencimento"}
	}
	due, err := ParseDate(in.DueDate)
	if err != nil {
		return nil, &ValidationError{Field: "data_vencimento", Message: "Data de vencimento inválida"}
	}

	accrual := Day(today)
	if strings.TrimSpace(in.AccrualDate) != "" {
		accrual, err = ParseDate(in.AccrualDate)
		if err != nil {
			return nil, &ValidationError{Field: "data_competencia", Message: "Data de competência inválida"}
		}
	}

	amount, err := amountFrom(in.Amount)
	if err != nil {
		return nil, &ValidationError{Field: "valor_original", Message: "Informe um valor numérico"}
	}
	if !amount.IsPositive() {
		return nil, &ValidationError{Field: "valor_original", Message: "O valor deve ser maior que zero"}
	}

	status := models.NormalizeStatus(in.Status)
	if status == "" {
		status = models.StatusPending
	}

	return &models.Payable{
		SupplierID:     in.SupplierID,
		DocumentTypeID: nonZero(in.DocumentTypeID),
		BankID:         nonZero(in.BankID),
		CostCenterID:   nonZero(in.CostCenterID),
		InstallmentID:  nonZero(in.InstallmentID),
		DueDate:        &due,
		AccrualDate:    &accrual,
		Amount:         amount.Round(2),
		DocumentNumber: strings.TrimSpace(in.DocumentNumber),
		InvoiceNumber:  strings.TrimSpace(in.InvoiceNumber),
		Status:         status,
		Notes:          strings.TrimSpace(in.Notes),
		Tags:           models.ParseTags(strings.Join(in.Tags, ",")),
	}, nil
}

func amountFrom(v any) (decimal.Decimal, error) {
	switch a := v.(type) {
	case float64:
		return decimal.NewFromFloat(a), nil
	case json.Number:
		return decimal.NewFromString(a.String())
	case string:
		return ParseAmount(a)
	default:
		return decimal.Zero, ErrInvalidAmount
	}
}

// the form sends 0 for "not selected"
func nonZero(id *uint) *uint {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}

package services

import (
	"errors"

	"github.com/lanca/lanca-api/internal/ledger"
	"github.com/lanca/lanca-api/internal/spreadsheet"
	"github.com/lanca/lanca-api/internal/statemachine"
	"gorm.io/gorm"
)

// Common service errors
var (
	ErrNotFound        = errors.New("registro não encontrado")
	ErrValidation      = ledger.ErrInvalid
	ErrInvalidState    = statemachine.ErrInvalidState
	ErrNothingToExport = spreadsheet.ErrNothingToExport
	ErrUnsupportedFile = spreadsheet.ErrUnsupportedFormat
	ErrUnauthorized    = errors.New("não autorizado")
)

// ValidationError carries the offending field of a rejected request
type ValidationError = ledger.ValidationError

// notFound maps gorm's missing-row error to ErrNotFound
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Package datecalc holds the date and arithmetic helpers behind the
// utility screens: add days, count days, payment term schedule and the
// desk calculator.
package datecalc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lanca/lanca-api/internal/ledger"
	"github.com/shopspring/decimal"
)

// MaxTerms is the number of term slots of the schedule form
const MaxTerms = 12

const secondsPerDay = 24 * 60 * 60

var (
	ErrDivisionByZero = errors.New("divisão por zero")
	ErrUnknownOp      = errors.New("operação desconhecida")
	ErrTooManyTerms   = fmt.Errorf("no máximo %d prazos", MaxTerms)
)

// AddDays moves base by n calendar days; n may be negative
func AddDays(base time.Time, n int) time.Time {
	return ledger.Day(base).AddDate(0, 0, n)
}

// DayCount is the distance between two dates
type DayCount struct {
	Days     int  `json:"days"`
	Absolute int  `json:"absolute"`
	Reversed bool `json:"reversed"`
}

// CountDays returns end minus start in whole calendar days. Works on Unix
// seconds since time.Duration overflows past about 292 years.
func CountDays(start, end time.Time) DayCount {
	days := int((ledger.Day(end).Unix() - ledger.Day(start).Unix()) / secondsPerDay)
	c := DayCount{Days: days, Absolute: days, Reversed: days < 0}
	if days < 0 {
		c.Absolute = -days
	}
	return c
}

// Term is one resolved slot of a term schedule
type Term struct {
	Slot    int       `json:"slot"`
	Days    int       `json:"days"`
	Date    time.Time `json:"date"`
	Weekday string    `json:"weekday"`
}

// TermSchedule resolves up to MaxTerms day offsets from base. Blank or
// non-integer slots are skipped but keep their slot number.
func TermSchedule(base time.Time, terms []string) ([]Term, error) {
	if len(terms) > MaxTerms {
		return nil, ErrTooManyTerms
	}
	out := []Term{}
	for i, raw := range terms {
		days, ok := parseTerm(raw)
		if !ok {
			continue
		}
		date := AddDays(base, days)
		out = append(out, Term{Slot: i + 1, Days: days, Date: date, Weekday: WeekdayShort(date)})
	}
	return out, nil
}

// TermString joins the valid terms with "/", e.g. "30/60/90"
func TermString(terms []string) string {
	parts := []string{}
	for _, raw := range terms {
		if days, ok := parseTerm(raw); ok {
			parts = append(parts, strconv.Itoa(days))
		}
	}
	return strings.Join(parts, "/")
}

// QuickFill returns step, 2*step ... MaxTerms*step
func QuickFill(step int) []string {
	terms := make([]string, MaxTerms)
	for i := range terms {
		terms[i] = strconv.Itoa(step * (i + 1))
	}
	return terms
}

func parseTerm(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	days, err := strconv.Atoi(raw)
	return days, err == nil
}

// Calculate applies op to a and b. Both "*" and "×", "/" and "÷" are
// accepted.
func Calculate(a decimal.Decimal, op string, b decimal.Decimal) (decimal.Decimal, error) {
	switch strings.TrimSpace(op) {
	case "+":
		return a.Add(b), nil
	case "-", "−":
		return a.Sub(b), nil
	case "*", "×", "x":
		return a.Mul(b), nil
	case "/", "÷":
		if b.IsZero() {
			return decimal.Zero, ErrDivisionByZero
		}
		return a.Div(b), nil
	case "%":
		if b.IsZero() {
			return decimal.Zero, ErrDivisionByZero
		}
		return a.Mod(b), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownOp, op)
	}
}

package ledger

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/lanca/lanca-api/internal/models"
	"github.com/shopspring/decimal"
)

// Key names a grouping dimension
type Key string

const (
	ByDocumentType Key = "document_type"
	ByCostCenter   Key = "cost_center"
	ByBank         Key = "bank"
	BySupplierKey  Key = "supplier"
	ByStatus       Key = "status"
)

// UnspecifiedKey is the group key of records without a resolvable value
const UnspecifiedKey = "unspecified"

var unspecifiedLabels = map[Key]string{
	ByDocumentType: "Sem Tipo",
	ByCostCenter:   "Sem Razão",
	ByBank:         "Sem Banco",
	BySupplierKey:  "Sem Fornecedor",
	ByStatus:       "Sem Status",
}

// ParseKey validates a grouping dimension name
func ParseKey(s string) (Key, error) {
	k := Key(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := unspecifiedLabels[k]; !ok {
		return "", &ValidationError{Field: "by", Message: fmt.Sprintf("agrupamento inválido: %s", s)}
	}
	return k, nil
}

// Group is one bucket of a grouping
type Group struct {
	Key         string          `json:"key"`
	Label       string          `json:"label"`
	Unspecified bool            `json:"unspecified"`
	Count       int             `json:"count"`
	Total       decimal.Decimal `json:"total"`
}

// keyOf resolves the bucket of a record. A null or dangling reference
// (key set, label empty) goes to the unspecified bucket.
func keyOf(r models.PayableView, key Key) (string, string, bool) {
	var id *uint
	var label string
	switch key {
	case ByDocumentType:
		id, label = r.DocumentTypeID, r.DocumentType
	case ByCostCenter:
		id, label = r.CostCenterID, r.CostCenter
	case ByBank:
		id, label = r.BankID, r.Bank
	case BySupplierKey:
		id, label = r.SupplierID, r.SupplierName
	case ByStatus:
		status := models.NormalizeStatus(r.Status)
		return status, status, status != ""
	}
	if id == nil || strings.TrimSpace(label) == "" {
		return "", "", false
	}
	return strconv.FormatUint(uint64(*id), 10), label, true
}

// GroupBy buckets records by key. Buckets are ordered by label with the
// unspecified bucket last. Totals and counts add up to the input.
func GroupBy(records []models.PayableView, key Key) []Group {
	index := map[string]int{}
	groups := []Group{}

	for _, r := range records {
		k, label, ok := keyOf(r, key)
		if !ok {
			k, label = UnspecifiedKey, unspecifiedLabels[key]
		}
		i, seen := index[k]
		if !seen {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k, Label: label, Unspecified: !ok, Total: decimal.Zero})
		}
		groups[i].Count++
		groups[i].Total = groups[i].Total.Add(r.Amount)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Unspecified != groups[j].Unspecified {
			return !groups[i].Unspecified
		}
		li, lj := Fold(groups[i].Label), Fold(groups[j].Label)
		if li != lj {
			return li < lj
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}

// Totals are the dashboard figures of a record set
type Totals struct {
	Count        int             `json:"count"`
	Total        decimal.Decimal `json:"total"`
	PendingCount int             `json:"pending_count"`
	Pending      decimal.Decimal `json:"pending"`
	PaidCount    int             `json:"paid_count"`
	Paid         decimal.Decimal `json:"paid"`
}

// Summarize computes count and totals by lifecycle status
func Summarize(records []models.PayableView) Totals {
	t := Totals{Total: decimal.Zero, Pending: decimal.Zero, Paid: decimal.Zero}
	for _, r := range records {
		t.Count++
		t.Total = t.Total.Add(r.Amount)
		switch models.NormalizeStatus(r.Status) {
		case models.StatusPending:
			t.PendingCount++
			t.Pending = t.Pending.Add(r.Amount)
		case models.StatusPaid:
			t.PaidCount++
			t.Paid = t.Paid.Add(r.Amount)
		}
	}
	return t
}

// DailyReport lists what falls due on one day
type DailyReport struct {
	Date           time.Time            `json:"date"`
	Count          int                  `json:"count"`
	Total          decimal.Decimal      `json:"total"`
	Records        []models.PayableView `json:"records"`
	ByDocumentType []Group              `json:"by_document_type"`
	ByCostCenter   []Group              `json:"by_cost_center"`
	ByBank         []Group              `json:"by_bank"`
}

// Daily selects the records due on day and groups them
func Daily(records []models.PayableView, day time.Time) DailyReport {
	day = Day(day)
	due := make([]models.PayableView, 0)
	for _, r := range records {
		if r.DueDate != nil && Day(*r.DueDate).Equal(day) {
			due = append(due, r)
		}
	}

	totals := Summarize(due)
	return DailyReport{
		Date:           day,
		Count:          totals.Count,
		Total:          totals.Total,
		Records:        due,
		ByDocumentType: GroupBy(due, ByDocumentType),
		ByCostCenter:   GroupBy(due, ByCostCenter),
		ByBank:         GroupBy(due, ByBank),
	}
}

// WeekGroup is one week of the weekly report. WeekYear differs from the
// report year only for ISO weeks that straddle a year boundary.
type WeekGroup struct {
	WeekYear int                  `json:"week_year"`
	Week     int                  `json:"week"`
	StartsOn time.Time            `json:"starts_on"`
	EndsOn   time.Time            `json:"ends_on"`
	Count    int                  `json:"count"`
	Total    decimal.Decimal      `json:"total"`
	Records  []models.PayableView `json:"records"`
}

// WeeklyReport groups one calendar year by week
type WeeklyReport struct {
	Year      int             `json:"year"`
	WeekStart string          `json:"week_start"`
	Count     int             `json:"count"`
	Total     decimal.Decimal `json:"total"`
	Weeks     []WeekGroup     `json:"weeks"`
}

// StartOfWeek returns the first day of the week containing t
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	t = Day(t)
	offset := (int(t.Weekday()) - int(weekStart) + 7) % 7
	return t.AddDate(0, 0, -offset)
}

// WeekOf returns the week-numbering year and week of t. Monday-start weeks
// follow ISO 8601; any other start counts weeks from the one containing
// January 1 of t's own year, so late December never wraps to week 1.
func WeekOf(t time.Time, weekStart time.Weekday) (int, int) {
	t = Day(t)
	if weekStart == time.Monday {
		return t.ISOWeek()
	}
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	days := StartOfWeek(t, weekStart).Sub(StartOfWeek(jan1, weekStart)).Hours() / 24
	return t.Year(), int(days)/7 + 1
}

// Weekly keeps the records due in year and groups them by week
func Weekly(records []models.PayableView, year int, weekStart time.Weekday) WeeklyReport {
	type weekKey struct{ year, week int }
	index := map[weekKey]int{}
	report := WeeklyReport{Year: year, WeekStart: weekStart.String(), Total: decimal.Zero, Weeks: []WeekGroup{}}

	for _, r := range records {
		if r.DueDate == nil || r.DueDate.Year() != year {
			continue
		}
		wy, w := WeekOf(*r.DueDate, weekStart)
		k := weekKey{wy, w}
		i, ok := index[k]
		if !ok {
			start := StartOfWeek(*r.DueDate, weekStart)
			i = len(report.Weeks)
			index[k] = i
			report.Weeks = append(report.Weeks, WeekGroup{
				WeekYear: wy,
				Week:     w,
				StartsOn: start,
				EndsOn:   start.AddDate(0, 0, 6),
				Total:    decimal.Zero,
			})
		}
		g := &report.Weeks[i]
		g.Count++
		g.Total = g.Total.Add(r.Amount)
		g.Records = append(g.Records, r)
		report.Count++
		report.Total = report.Total.Add(r.Amount)
	}

	sort.Slice(report.Weeks, func(i, j int) bool {
		if report.Weeks[i].WeekYear != report.Weeks[j].WeekYear {
			return report.Weeks[i].WeekYear < report.Weeks[j].WeekYear
		}
		return report.Weeks[i].Week < report.Weeks[j].Week
	})
	for i := range report.Weeks {
		recs := report.Weeks[i].Records
		sort.SliceStable(recs, func(a, b int) bool {
			return recs[a].DueDate.Before(*recs[b].DueDate)
		})
	}
	return report
}

// SupplierTotal is one row of the supplier report
type SupplierTotal struct {
	SupplierID *uint           `json:"supplier_id"`
	Name       string          `json:"name"`
	Count      int             `json:"count"`
	Total      decimal.Decimal `json:"total"`
	Paid       decimal.Decimal `json:"paid"`
	Pending    decimal.Decimal `json:"pending"`
	Share      float64         `json:"share"`
}

// SupplierReport ranks suppliers by amount owed
type SupplierReport struct {
	Suppliers []SupplierTotal `json:"suppliers"`
	Total     decimal.Decimal `json:"total"`
	Paid      decimal.Decimal `json:"paid"`
	Pending   decimal.Decimal `json:"pending"`
}

var hundred = decimal.NewFromInt(100)

// BySupplier groups records per supplier, keeps the groups whose name
// contains search and computes each group's share of the visible total
func BySupplier(records []models.PayableView, search string) SupplierReport {
	index := map[string]int{}
	rows := []SupplierTotal{}

	for _, r := range records {
		k, name, ok := keyOf(r, BySupplierKey)
		var id *uint
		if ok {
			id = r.SupplierID
		} else {
			k, name = UnspecifiedKey, unspecifiedLabels[BySupplierKey]
		}
		i, seen := index[k]
		if !seen {
			i = len(rows)
			index[k] = i
			rows = append(rows, SupplierTotal{SupplierID: id, Name: name, Total: decimal.Zero, Paid: decimal.Zero, Pending: decimal.Zero})
		}
		row := &rows[i]
		row.Count++
		row.Total = row.Total.Add(r.Amount)
		switch models.NormalizeStatus(r.Status) {
		case models.StatusPaid:
			row.Paid = row.Paid.Add(r.Amount)
		case models.StatusPending:
			row.Pending = row.Pending.Add(r.Amount)
		}
	}

	report := SupplierReport{Suppliers: []SupplierTotal{}, Total: decimal.Zero, Paid: decimal.Zero, Pending: decimal.Zero}
	for _, row := range rows {
		if containsFold(row.Name, strings.TrimSpace(search)) {
			report.Suppliers = append(report.Suppliers, row)
			report.Total = report.Total.Add(row.Total)
			report.Paid = report.Paid.Add(row.Paid)
			report.Pending = report.Pending.Add(row.Pending)
		}
	}

	for i := range report.Suppliers {
		if report.Total.IsPositive() {
			report.Suppliers[i].Share = report.Suppliers[i].Total.Mul(hundred).Div(report.Total).Round(1).InexactFloat64()
		}
	}

	sort.SliceStable(report.Suppliers, func(i, j int) bool {
		a, b := report.Suppliers[i], report.Suppliers[j]
		if !a.Total.Equal(b.Total) {
			return a.Total.GreaterThan(b.Total)
		}
		return Fold(a.Name) < Fold(b.Name)
	})
	return report
}

package ledger

import (
	"testing"
	"time"

	"github.com/lanca/lanca-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []Key{ByDocumentType, ByCostCenter, ByBank, BySupplierKey, ByStatus}

func TestGroupBy_SumsAndCountsAreConserved(t *testing.T) {
	records := sampleLedger()
	for _, key := range allKeys {
		groups := GroupBy(records, key)

		total := decimal.Zero
		count := 0
		for _, g := range groups {
			total = total.Add(g.Total)
			count += g.Count
		}
		assert.True(t, total.Equal(sum(records)), "key %s", key)
		assert.Equal(t, len(records), count, "key %s", key)
	}
}

func TestGroupBy_NullAndDanglingReferencesGoUnspecified(t *testing.T) {
	records := sampleLedger()

	groups := GroupBy(records, ByCostCenter)
	require.Len(t, groups, 2)
	assert.Equal(t, "Insumos", groups[0].Label)
	last := groups[len(groups)-1]
	assert.True(t, last.Unspecified)
	assert.Equal(t, UnspecifiedKey, last.Key)
	assert.Equal(t, "Sem Razão", last.Label)
	// id 9 has no label, so it joins the nulls
	assert.Equal(t, 4, last.Count)

	bySupplier := GroupBy(records, BySupplierKey)
	assert.Equal(t, "Distribuidora Alfa", bySupplier[0].Label)
	assert.Equal(t, "João Embalagens", bySupplier[1].Label)
	assert.Equal(t, "Sem Fornecedor", bySupplier[2].Label)
}

func TestGroupBy_AllNullRecords(t *testing.T) {
	records := []models.PayableView{{ID: 1, Amount: dec("1")}, {ID: 2, Amount: dec("2")}}
	for _, key := range allKeys {
		groups := GroupBy(records, key)
		require.Len(t, groups, 1, "key %s", key)
		assert.True(t, groups[0].Unspecified)
		assert.True(t, groups[0].Total.Equal(dec("3")))
	}
	assert.Empty(t, GroupBy(nil, ByBank))
}

func TestGroupBy_StatusNormalized(t *testing.T) {
	records := []models.PayableView{
		{ID: 1, Amount: dec("1"), Status: "pago"},
		{ID: 2, Amount: dec("2"), Status: "Pago"},
		{ID: 3, Amount: dec("4"), Status: "Pendente"},
	}
	groups := GroupBy(records, ByStatus)
	require.Len(t, groups, 2)
	assert.Equal(t, "Pago", groups[0].Label)
	assert.Equal(t, 2, groups[0].Count)
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("Bank")
	require.NoError(t, err)
	assert.Equal(t, ByBank, k)

	_, err = ParseKey("color")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestSummarize(t *testing.T) {
	totals := Summarize(sampleLedger())
	assert.Equal(t, 5, totals.Count)
	assert.True(t, totals.Total.Equal(dec("485.25")))
	assert.Equal(t, 2, totals.PendingCount)
	assert.True(t, totals.Pending.Equal(dec("149.50")))
	assert.Equal(t, 1, totals.PaidCount)
	assert.True(t, totals.Paid.Equal(dec("250.50")))
}

func TestDaily_SameDateSharesBucketAndUndatedExcluded(t *testing.T) {
	records := sampleLedger()

	report := Daily(records, time.Date(2025, 5, 5, 15, 30, 0, 0, time.UTC))
	assert.Equal(t, 2, report.Count)
	assert.Equal(t, []uint{1, 2}, ids(report.Records))
	assert.True(t, report.Total.Equal(dec("350.50")))
	require.Len(t, report.ByDocumentType, 2)
	assert.Equal(t, "Boleto", report.ByDocumentType[0].Label)
	assert.Equal(t, "Sem Razão", report.ByCostCenter[len(report.ByCostCenter)-1].Label)

	// the null due date never lands in any day
	for d := 0; d < 400; d++ {
		r := Daily(records, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d))
		assert.NotContains(t, ids(r.Records), uint(4))
	}

	empty := Daily(records, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Zero(t, empty.Count)
	assert.NotNil(t, empty.Records)
}

func TestWeekOf(t *testing.T) {
	y, w := WeekOf(*day(2025, 5, 5), time.Sunday)
	assert.Equal(t, 2025, y)
	assert.Equal(t, 19, w)

	y, w = WeekOf(*day(2025, 1, 1), time.Sunday)
	assert.Equal(t, 1, w)
	assert.Equal(t, 2025, y)

	// late December stays in its own year
	y, w = WeekOf(*day(2024, 12, 31), time.Sunday)
	assert.Equal(t, 2024, y)
	assert.Equal(t, 53, w)

	y, w = WeekOf(*day(2024, 12, 31), time.Monday)
	assert.Equal(t, 2025, y)
	assert.Equal(t, 1, w)
}

func TestWeekly(t *testing.T) {
	report := Weekly(sampleLedger(), 2025, time.Sunday)
	require.Len(t, report.Weeks, 1)
	week := report.Weeks[0]
	assert.Equal(t, 19, week.Week)
	assert.Equal(t, "2025-05-04", week.StartsOn.Format("2006-01-02"))
	assert.Equal(t, "2025-05-10", week.EndsOn.Format("2006-01-02"))
	assert.Equal(t, 3, week.Count)
	assert.True(t, week.Total.Equal(dec("400.00")))
	assert.Equal(t, 3, report.Count)
	assert.Equal(t, "Sunday", report.WeekStart)
}

func TestWeekly_YearBoundaryNeverMerges(t *testing.T) {
	records := []models.PayableView{
		{ID: 1, DueDate: day(2024, 1, 2), Amount: dec("10")},
		{ID: 2, DueDate: day(2024, 12, 31), Amount: dec("20")},
		{ID: 3, DueDate: day(2025, 1, 2), Amount: dec("40")},
	}

	sunday := Weekly(records, 2024, time.Sunday)
	require.Len(t, sunday.Weeks, 2)
	assert.Equal(t, 1, sunday.Weeks[0].Week)
	assert.Equal(t, 53, sunday.Weeks[1].Week)
	assert.True(t, sunday.Total.Equal(dec("30")))

	iso := Weekly(records, 2024, time.Monday)
	require.Len(t, iso.Weeks, 2)
	assert.Equal(t, 2024, iso.Weeks[0].WeekYear)
	assert.Equal(t, 1, iso.Weeks[0].Week)
	assert.Equal(t, 2025, iso.Weeks[1].WeekYear)
	assert.Equal(t, 1, iso.Weeks[1].Week)
	assert.Equal(t, []uint{2}, ids(iso.Weeks[1].Records))
}

func TestBySupplier_SharesOfGrandTotal(t *testing.T) {
	records := []models.PayableView{
		{ID: 1, DueDate: day(2025, 1, 10), Amount: dec("400"), SupplierID: id(1), SupplierName: "A", Status: models.StatusPaid},
		{ID: 2, DueDate: day(2025, 2, 10), Amount: dec("200"), SupplierID: id(1), SupplierName: "A", Status: models.StatusPending},
		{ID: 3, DueDate: day(2025, 3, 10), Amount: dec("400"), SupplierID: id(2), SupplierName: "B", Status: models.StatusPending},
	}

	report := BySupplier(records, "")
	require.Len(t, report.Suppliers, 2)
	a, b := report.Suppliers[0], report.Suppliers[1]
	assert.Equal(t, "A", a.Name)
	assert.InDelta(t, 60.0, a.Share, 0.0001)
	assert.True(t, a.Paid.Equal(dec("400")))
	assert.True(t, a.Pending.Equal(dec("200")))
	assert.Equal(t, "B", b.Name)
	assert.InDelta(t, 40.0, b.Share, 0.0001)
	assert.True(t, report.Total.Equal(dec("1000")))
}

func TestBySupplier_SearchAndUnspecified(t *testing.T) {
	report := BySupplier(sampleLedger(), "")
	names := make([]string, len(report.Suppliers))
	for i, s := range report.Suppliers {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"João Embalagens", "Distribuidora Alfa", "Sem Fornecedor"}, names)
	assert.Nil(t, report.Suppliers[2].SupplierID)

	filtered := BySupplier(sampleLedger(), "alfa")
	require.Len(t, filtered.Suppliers, 1)
	assert.InDelta(t, 100.0, filtered.Suppliers[0].Share, 0.0001)
	assert.True(t, filtered.Total.Equal(dec("149.50")))
}

func TestBySupplier_ShareRoundsToOneDecimal(t *testing.T) {
	records := []models.PayableView{
		{ID: 1, Amount: dec("1"), SupplierID: id(1), SupplierName: "X"},
		{ID: 2, Amount: dec("2"), SupplierID: id(2), SupplierName: "Y"},
	}
	report := BySupplier(records, "")
	assert.InDelta(t, 66.7, report.Suppliers[0].Share, 0.0001)
	assert.InDelta(t, 33.3, report.Suppliers[1].Share, 0.0001)
}

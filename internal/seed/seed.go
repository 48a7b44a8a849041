// Package seed fills an empty ledger with plausible demo data
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/lanca/lanca-api/internal/models"
	"github.com/lanca/lanca-api/internal/services"
	"github.com/shopspring/decimal"
)

var (
	documentTypes = []string{"Boleto", "Nota Fiscal", "Recibo", "Fatura", "Transferência"}
	banks         = []string{"Banco do Brasil", "Itaú", "Bradesco", "Caixa", "Santander"}
	costCenters   = []string{"Administrativo", "Comercial", "Operacional", "Tecnologia"}
	installments  = []string{"1/1", "1/2", "2/2", "1/3", "2/3", "3/3"}
)

// Generator builds random ledger inputs. The same seed yields the same data.
type Generator struct {
	faker *gofakeit.Faker
}

func NewGenerator(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Supplier returns a supplier with a company name and a 14 digit CNPJ
func (g *Generator) Supplier() models.Supplier {
	company := g.faker.Company()
	return models.Supplier{
		CompanyName: company + " " + g.faker.RandomString([]string{"Ltda", "S.A.", "ME", "EIRELI"}),
		TradeName:   company,
		TaxID:       g.faker.Numerify("##############"),
	}
}

// Refs holds the ids a generated payable may point to
type Refs struct {
	Suppliers     []uint
	DocumentTypes []uint
	Banks         []uint
	CostCenters   []uint
	Installments  []uint
}

// Payable returns a form payload due within 60 days around base
func (g *Generator) Payable(refs Refs, base time.Time) models.PayableInput {
	due := base.AddDate(0, 0, g.faker.Number(-30, 30))
	accrual := due.AddDate(0, 0, -g.faker.Number(0, 30))
	amount := decimal.NewFromFloat(g.faker.Float64Range(10, 25000)).Round(2)

	status := models.StatusPending
	switch n := g.faker.Number(1, 10); {
	case n <= 3:
		status = models.StatusPaid
	case n == 4:
		status = models.StatusCancelled
	}

	in := models.PayableInput{
		SupplierID:     g.pick(refs.Suppliers),
		DocumentTypeID: g.pick(refs.DocumentTypes),
		BankID:         g.pick(refs.Banks),
		CostCenterID:   g.pick(refs.CostCenters),
		InstallmentID:  g.pick(refs.Installments),
		DueDate:        due.Format("2006-01-02"),
		AccrualDate:    accrual.Format("2006-01-02"),
		Amount:         amount.String(),
		DocumentNumber: g.faker.Numerify("######"),
		Status:         status,
	}
	if g.faker.Bool() {
		in.InvoiceNumber = g.faker.Numerify("NF-#####")
	}
	if g.faker.Number(1, 4) == 1 {
		in.Notes = g.faker.Sentence(5)
	}
	if g.faker.Number(1, 3) == 1 {
		in.Tags = []string{g.faker.BuzzWord()}
	}
	return in
}

func (g *Generator) pick(ids []uint) *uint {
	if len(ids) == 0 {
		return nil
	}
	id := ids[g.faker.Number(0, len(ids)-1)]
	return &id
}

// Result counts what Run created
type Result struct {
	Suppliers int
	Payables  int
}

// Run creates the lookup tables and count payables through the services,
// so every row is validated and audited like a form entry
func Run(ctx context.Context, svcs *services.Services, g *Generator, count int, base time.Time) (*Result, error) {
	actor := services.SystemActor
	refs := Refs{}
	res := &Result{}

	suppliers := count/5 + 1
	for i := 0; i < suppliers; i++ {
		s := g.Supplier()
		if err := svcs.Supplier.Create(ctx, &s, actor); err != nil {
			return res, fmt.Errorf("seed supplier: %w", err)
		}
		refs.Suppliers = append(refs.Suppliers, s.ID)
		res.Suppliers++
	}

	var err error
	if refs.DocumentTypes, err = createLabels(ctx, svcs.DocumentType, documentTypes, func(l string) models.DocumentType {
		return models.DocumentType{Description: l}
	}); err != nil {
		return res, err
	}
	if refs.Banks, err = createLabels(ctx, svcs.Bank, banks, func(l string) models.Bank {
		return models.Bank{Name: l}
	}); err != nil {
		return res, err
	}
	if refs.CostCenters, err = createLabels(ctx, svcs.CostCenter, costCenters, func(l string) models.CostCenter {
		return models.CostCenter{Description: l}
	}); err != nil {
		return res, err
	}
	if refs.Installments, err = createLabels(ctx, svcs.Installment, installments, func(l string) models.Installment {
		return models.Installment{Description: l}
	}); err != nil {
		return res, err
	}

	for i := 0; i < count; i++ {
		if _, err := svcs.Payable.Create(ctx, g.Payable(refs, base), actor); err != nil {
			return res, fmt.Errorf("seed payable %d: %w", i+1, err)
		}
		res.Payables++
	}
	return res, nil
}

func createLabels[T models.Reference](ctx context.Context, svc *services.ReferenceService[T], labels []string, build func(string) T) ([]uint, error) {
	ids := make([]uint, 0, len(labels))
	for _, label := range labels {
		item := build(label)
		if err := svc.Create(ctx, &item, services.SystemActor); err != nil {
			return nil, fmt.Errorf("seed %s %q: %w", svc.Entity(), label, err)
		}
		ids = append(ids, item.GetID())
	}
	return ids, nil
}

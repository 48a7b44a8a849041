package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/lanca/lanca-api/internal/database"
	"github.com/lanca/lanca-api/internal/ledger"
	"github.com/lanca/lanca-api/internal/repository"
	"github.com/lanca/lanca-api/internal/seed"
	"github.com/lanca/lanca-api/internal/services"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the ledger tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := connect()
		if err != nil {
			return err
		}
		if err := database.Migrate(e.db); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Tabelas atualizadas")
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:     "import <file>",
	Short:   "Import payables from an .xlsx, .xls or .csv sheet",
	Example: `  lancactl import contas_maio.xlsx`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := connect()
		if err != nil {
			return err
		}
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		summary, err := e.svcs.Import.Import(cmd.Context(), f, filepath.Base(args[0]), services.SystemActor)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, row := range summary.Rows {
			switch {
			case row.Error != "":
				fmt.Fprintf(out, "linha %d: %s\n", row.Line, row.Error)
			case len(row.Warnings) > 0:
				fmt.Fprintf(out, "linha %d: %v\n", row.Line, row.Warnings)
			}
		}
		fmt.Fprintf(out, "%d linhas: %d criadas, %d ignoradas, %d com erro\n",
			summary.Total, summary.Created, summary.Skipped, summary.Failed)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:     "export",
	Short:   "Export the ledger to an .xlsx workbook",
	Example: `  lancactl export --from 2025-05-01 --to 2025-05-31 -o maio.xlsx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		output, _ := cmd.Flags().GetString("output")

		criteria := ledger.Criteria{}
		for _, d := range []struct {
			raw string
			dst **time.Time
		}{{from, &criteria.From}, {to, &criteria.To}} {
			if d.raw == "" {
				continue
			}
			t, err := ledger.ParseDate(d.raw)
			if err != nil {
				return fmt.Errorf("data inválida %q: %w", d.raw, err)
			}
			*d.dst = &t
		}

		e, err := connect()
		if err != nil {
			return err
		}
		data, filename, err := e.svcs.Export.ExportXLSX(cmd.Context(), repository.NewListQuery(), criteria, services.SystemActor)
		if err != nil {
			return err
		}
		if output == "" {
			output = filename
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), output)
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the ledger with demo data",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		seedValue, _ := cmd.Flags().GetUint64("seed")
		if count < 1 {
			return fmt.Errorf("--count must be positive")
		}

		e, err := connect()
		if err != nil {
			return err
		}
		if err := database.Migrate(e.db); err != nil {
			return err
		}
		res, err := seed.Run(cmd.Context(), e.svcs, seed.NewGenerator(seedValue), count, time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d fornecedores, %d contas\n", res.Suppliers, res.Payables)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd, importCmd, exportCmd, seedCmd)

	exportCmd.Flags().String("from", "", "First due date (yyyy-mm-dd or dd/mm/yyyy)")
	exportCmd.Flags().String("to", "", "Last due date")
	exportCmd.Flags().StringP("output", "o", "", "Output file (default Lanca_Export_yyyymmdd_hhmm.xlsx)")

	seedCmd.Flags().Int("count", 50, "Number of payables to create")
	seedCmd.Flags().Uint64("seed", 0, "Random seed; 0 picks one")
}

package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"recyclehub/internal/core/types"
	"recyclehub/internal/domain/documents/collection"
	"recyclehub/internal/domain/reports"
	"recyclehub/internal/infrastructure/archive"
	"recyclehub/internal/seed"
	"recyclehub/internal/store"
)

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Load everything and print the dashboard totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.load(cmd.Context(), cmd.ErrOrStderr())

			d := reports.NewService(a.store).Dashboard()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Total coletado\t%s kg\n", d.Summary.TotalCollected)
			fmt.Fprintf(w, "Total vendido\t%s kg\n", d.Summary.TotalSold)
			fmt.Fprintf(w, "Saldo em estoque\t%s kg\n", d.Summary.StockBalance)
			fmt.Fprintf(w, "Receita total\t%s\n", types.FormatBRL(d.Summary.TotalRevenue))
			fmt.Fprintf(w, "Coletas\t%d\n", d.Summary.CollectionCount)
			fmt.Fprintf(w, "Vendas\t%d\n", d.Summary.SalesMetadata.TotalSales)
			for _, p := range d.CollectionsBySupplier {
				fmt.Fprintf(w, "  %s\t%s kg\n", p.Name, p.Value)
			}
			return w.Flush()
		},
	}
}

func newByDateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "by-date <YYYY-MM-DD>",
		Short: "List the collections scheduled on a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			// Supplier categories come from the supplier cache.
			a.store.RefreshSuppliers(ctx)

			day, err := a.store.CollectionsByDate(ctx, args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s: %d coletas, %s kg, %s\n", day.Date,
				day.Summary.TotalCollections, day.Summary.TotalWeight, types.FormatBRL(day.Summary.TotalValue))
			for _, c := range day.Collections {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s kg\t%s\n",
					c.ID, c.Time, c.SupplierName, c.Location, c.Weight, c.Status)
			}
			return w.Flush()
		},
	}
}

func newStatusCmd(a *app) *cobra.Command {
	statuses := make([]string, 0, 3)
	for _, s := range collection.Statuses() {
		statuses = append(statuses, string(s))
	}

	return &cobra.Command{
		Use:       "status <collection-id> <" + strings.Join(statuses, "|") + ">",
		Short:     "Change the status of a collection",
		Args:      cobra.ExactArgs(2),
		ValidArgs: statuses,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a.store.RefreshSuppliers(ctx)

			updated, err := a.store.UpdateCollectionStatus(ctx, args[0], collection.Status(args[1]))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", store.SuccessMessage(store.EntityCollections, store.ActionUpdateStatus))
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n", updated.ID, updated.Date, updated.SupplierName, updated.Status)
			return nil
		},
	}
}

func newSeedCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the records of a YAML fixtures file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fx, err := seed.Load(file)
			if err != nil {
				return err
			}

			res, err := seed.New(a.store, a.log).Apply(cmd.Context(), fx)
			printCounts(cmd, res)
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "fixtures.yaml", "fixtures file")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Load everything and write a snapshot (zstd when large)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.load(cmd.Context(), cmd.ErrOrStderr())

			arch, err := archive.New(0)
			if err != nil {
				return err
			}
			defer arch.Close()

			w := cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			compressed, err := arch.Write(w, a.store.Snapshot())
			if err != nil {
				return err
			}
			if out != "" && out != "-" {
				fmt.Fprintf(cmd.ErrOrStderr(), "snapshot written to %s (compressed: %t)\n", out, compressed)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file, - for stdout")
	return cmd
}

func printCounts(cmd *cobra.Command, res seed.Result) {
	entities := make([]string, 0, len(res))
	for e := range res {
		entities = append(entities, string(e))
	}
	sort.Strings(entities)
	for _, e := range entities {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", e, res[store.Entity(e)])
	}
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zaibi326/crm-success-hub-sub000/internal/export"
	"github.com/zaibi326/crm-success-hub-sub000/internal/filter"
	"github.com/zaibi326/crm-success-hub-sub000/internal/leads"
	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
	"github.com/zaibi326/crm-success-hub-sub000/internal/savedview"
	"github.com/zaibi326/crm-success-hub-sub000/internal/view"
)

var (
	exportView    string
	exportQuery   string
	exportSort    string
	exportOut     string
	exportColumns []string

	// exportState holds the per-field filter flags
	exportState filter.FilterState
)

// exportCmd writes the leads a view would show to CSV
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the leads matching a saved view, search and sort to CSV",
	Long: `Runs the same search, filter and sort pipeline as the interactive view
and writes the visible leads as CSV.

Field flags such as --status and --min-arrears add conditions on top of
the saved view's.

Example:
  crmview export --view "Hot leads" --query oak --sort currentArrears --out hot.csv
  crmview export --status HOT --min-arrears 10000 --tag probate`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportView, "view", "", "saved view whose conditions to apply")
	exportCmd.Flags().StringVar(&exportQuery, "query", "", "free-text search query")
	exportCmd.Flags().StringVar(&exportSort, "sort", "", "field to sort by (default from config)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "-", "output file, - for stdout")
	exportCmd.Flags().StringSliceVar(&exportColumns, "columns", nil, "field keys to export (default all)")

	exportCmd.Flags().StringVar(&exportState.LeadStatus, "status", "", "only leads with this status")
	exportCmd.Flags().StringVar(&exportState.County, "county", "", "only leads in this county")
	exportCmd.Flags().StringVar(&exportState.CreatedBy, "created-by", "", "only leads created by this user")
	exportCmd.Flags().StringVar(&exportState.SellerContact, "seller-contact", "", "seller contact contains text")
	exportCmd.Flags().StringVar(&exportState.CreatedOnStart, "created-from", "", "created on or after date")
	exportCmd.Flags().StringVar(&exportState.CreatedOnEnd, "created-to", "", "created on or before date")
	exportCmd.Flags().StringVar(&exportState.MinArrears, "min-arrears", "", "current arrears at least")
	exportCmd.Flags().StringVar(&exportState.MaxArrears, "max-arrears", "", "current arrears at most")
	exportCmd.Flags().StringSliceVar(&exportState.Tags, "tag", nil, "tag the lead must carry (repeatable)")
}

func runExport(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	var conds []models.FilterCondition
	if exportView != "" {
		saved, err := findView(store, exportView)
		if err != nil {
			return err
		}
		conds = store.Apply(saved)
	}
	if !exportState.IsEmpty() {
		conds = append(conds, filter.NewBuilder(leads.Schema()).Build(exportState)...)
	}

	loader, closeLoader, err := newLoader(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer closeLoader()

	all, err := loader(cmd.Context())
	if err != nil {
		return err
	}

	engine, err := newEngine(cfg, logger)
	if err != nil {
		return err
	}

	sortField := exportSort
	if sortField == "" {
		sortField = cfg.Data.DefaultSort
	}
	visible := engine.Compute(all, view.Inputs{
		Query:      exportQuery,
		Conditions: conds,
		SortField:  sortField,
	})

	logger.Info("Exporting leads",
		zap.Int("total", len(all)),
		zap.Int("visible", len(visible)),
		zap.String("view", exportView),
		zap.Int("conditions", filter.ActiveCount(conds)),
		zap.String("out", exportOut))

	if exportOut == "-" {
		return export.WriteCSV(cmd.OutOrStdout(), leads.Schema(), visible, exportColumns)
	}
	if err := export.ExportToCSV(leads.Schema(), visible, exportColumns, exportOut); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d of %d leads to %s\n", len(visible), len(all), exportOut)
	return nil
}

// findView resolves a saved view by id or case-insensitive name.
func findView(store *savedview.Store, ref string) (models.SavedFilter, error) {
	if v, err := store.Get(ref); err == nil {
		return v, nil
	}
	for _, v := range store.List() {
		if strings.EqualFold(v.Name, strings.TrimSpace(ref)) {
			return v, nil
		}
	}
	return models.SavedFilter{}, fmt.Errorf("%w: %s", savedview.ErrNotFound, ref)
}


package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zaibi326/crm-success-hub-sub000/internal/export"
	"github.com/zaibi326/crm-success-hub-sub000/internal/savedview"
)

// viewsCmd manages saved views
var viewsCmd = &cobra.Command{
	Use:   "views",
	Short: "Manage saved filter views",
}

var viewsListCmd = &cobra.Command{
	Use:   "list [search]",
	Short: "List saved views, optionally only those whose name contains search",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore(cfg, logger)
		if err != nil {
			return err
		}
		defer closeStore()

		views := store.List()
		if len(args) == 1 {
			views = store.Search(args[0])
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCONDITIONS\tCREATED")
		for _, v := range views {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", v.ID, v.Name, len(v.Filters), v.CreatedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}

var viewsShowCmd = &cobra.Command{
	Use:   "show ID|NAME",
	Short: "Show the conditions of a saved view",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore(cfg, logger)
		if err != nil {
			return err
		}
		defer closeStore()

		v, err := findView(store, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", v.Name, v.ID)
		for _, c := range v.Filters {
			label := c.Label
			if label == "" {
				label = fmt.Sprintf("%s %s %s", c.Field, c.Operator, c.Value)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", label)
		}
		return nil
	},
}

var viewsDeleteCmd = &cobra.Command{
	Use:   "delete ID|NAME",
	Short: "Delete a saved view",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore(cfg, logger)
		if err != nil {
			return err
		}
		defer closeStore()

		v, err := findView(store, args[0])
		if err != nil {
			return err
		}
		ok, err := store.Delete(v.ID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", savedview.ErrNotFound, args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", v.Name)
		return nil
	},
}

var viewsExportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Write all saved views to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore(cfg, logger)
		if err != nil {
			return err
		}
		defer closeStore()

		views := store.List()
		if err := export.ExportViewsToJSON(views, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d saved views to %s\n", len(views), args[0])
		return nil
	},
}

func init() {
	viewsCmd.AddCommand(viewsListCmd, viewsShowCmd, viewsDeleteCmd, viewsExportCmd)
}

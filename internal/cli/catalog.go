package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"upgrade-editor/internal/app"
	"upgrade-editor/internal/types"
)

func newCatalogCommand() *cobra.Command {
	opts := partOptions{}
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the upgrades available on a part and whether each is enabled",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCatalog(cmd, opts)
		},
	}
	addPartFlag(cmd, &opts)
	return cmd
}

func runCatalog(cmd *cobra.Command, opts partOptions) error {
	service := newAppService(cmd)
	result, err := service.Catalog(cmd.Context(), app.CatalogRequest{
		SessionRequest: sessionRequest(cmd, opts),
	})
	if err != nil {
		return err
	}
	printCatalog(cmd.OutOrStdout(), result)
	return nil
}

func printCatalog(out io.Writer, result app.CatalogResult) {
	fmt.Fprintf(out, "part: %s (%s)\n", result.PartID, result.PartName)
	fmt.Fprintf(out, "always enable: %t\n", result.Overrides.AlwaysEnable)
	printEntries(out, result.Entries)
}

func printEntries(out io.Writer, entries []types.CatalogEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "no upgrades")
		return
	}
	for _, entry := range entries {
		mark := " "
		if entry.CurrentlyEnabled {
			mark = "x"
		}
		fmt.Fprintf(out, "[%s] %s - %s\n", mark, entry.Name, entry.Title)
		if entry.Description != "" {
			fmt.Fprintf(out, "    %s\n", entry.Description)
		}
		if len(entry.AffectedModules) > 0 {
			fmt.Fprintf(out, "    %s\n", strings.Join(entry.AffectedModules, "; "))
		}
	}
}

package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"upgrade-editor/internal/app"
)

func newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print every part's catalog whenever the craft file changes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			ctx = log.Logger.WithContext(ctx)

			service := newAppService(cmd)
			out := cmd.OutOrStdout()
			return service.Watch(ctx, app.WatchRequest{
				CraftPath:    resolveString(cmd, "", "craft", "craft"),
				TechTreePath: resolveString(cmd, "", "tech_tree", "tech-tree"),
			}, func(event app.WatchEvent) {
				if event.Err != nil {
					fmt.Fprintf(out, "part: %s error: %s\n", event.Catalog.PartID, errorMessage(event.Err))
					return
				}
				printCatalog(out, event.Catalog)
			})
		},
	}
}

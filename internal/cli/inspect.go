package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"upgrade-editor/internal/app"
)

func newInspectCommand() *cobra.Command {
	opts := partOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show a part's live module fields and stats with upgrades applied",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	addPartFlag(cmd, &opts)
	return cmd
}

func runInspect(cmd *cobra.Command, opts partOptions) error {
	service := newAppService(cmd)
	result, err := service.Inspect(cmd.Context(), app.InspectRequest{
		SessionRequest: sessionRequest(cmd, opts),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "part: %s (%s)\n", result.PartID, result.PartName)
	fmt.Fprintf(out, "mass: %g cost: %g\n", result.Stats.Mass, result.Stats.Cost)
	if len(result.Disabled) > 0 {
		fmt.Fprintf(out, "disabled: %s\n", strings.Join(result.Disabled, ", "))
	}
	for _, module := range result.Modules {
		fmt.Fprintf(out, "- %s (%s)\n", module.DisplayName, module.Name)
		if len(module.AppliedUpgrades) > 0 {
			fmt.Fprintf(out, "  applied: %s\n", strings.Join(module.AppliedUpgrades, ", "))
		}
		keys := make([]string, 0, len(module.Fields))
		for key := range module.Fields {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(out, "  %s = %s\n", key, module.Fields[key])
		}
	}
	return nil
}

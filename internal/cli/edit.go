package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"upgrade-editor/internal/app"
)

type toggleOptions struct {
	partOptions
	Upgrade string
	Enabled bool
}

func newToggleCommand() *cobra.Command {
	opts := toggleOptions{}
	cmd := &cobra.Command{
		Use:   "toggle",
		Short: "Enable or disable a single upgrade on a part",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service := newAppService(cmd)
			result, err := service.Toggle(cmd.Context(), app.ToggleRequest{
				SessionRequest: sessionRequest(cmd, opts.partOptions),
				Upgrade:        opts.Upgrade,
				Enabled:        opts.Enabled,
			})
			if err != nil {
				return err
			}
			printEdit(cmd.OutOrStdout(), result)
			return nil
		},
	}
	addPartFlag(cmd, &opts.partOptions)
	cmd.Flags().StringVar(&opts.Upgrade, "upgrade", "", "Upgrade name")
	cmd.Flags().BoolVar(&opts.Enabled, "enabled", true, "Whether the upgrade should be enabled")
	return cmd
}

type overrideOptions struct {
	partOptions
	Value bool
}

func newEnableAllCommand() *cobra.Command {
	opts := overrideOptions{}
	cmd := &cobra.Command{
		Use:   "enable-all",
		Short: "Enable or disable every upgrade on a part",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service := newAppService(cmd)
			result, err := service.EnableAll(cmd.Context(), app.OverrideRequest{
				SessionRequest: sessionRequest(cmd, opts.partOptions),
				Value:          opts.Value,
			})
			if err != nil {
				return err
			}
			printEdit(cmd.OutOrStdout(), result)
			return nil
		},
	}
	addPartFlag(cmd, &opts.partOptions)
	cmd.Flags().BoolVar(&opts.Value, "value", true, "Target enabled state")
	return cmd
}

func newAlwaysEnableCommand() *cobra.Command {
	opts := overrideOptions{}
	cmd := &cobra.Command{
		Use:   "always-enable",
		Short: "Force every upgrade on, clearing per-part overrides",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service := newAppService(cmd)
			result, err := service.AlwaysEnable(cmd.Context(), app.OverrideRequest{
				SessionRequest: sessionRequest(cmd, opts.partOptions),
				Value:          opts.Value,
			})
			if err != nil {
				return err
			}
			printEdit(cmd.OutOrStdout(), result)
			return nil
		},
	}
	addPartFlag(cmd, &opts.partOptions)
	cmd.Flags().BoolVar(&opts.Value, "value", true, "Whether always enable is active")
	return cmd
}

func newResetCommand() *cobra.Command {
	opts := partOptions{}
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Re-enable every disabled upgrade on a part and clear its overrides",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service := newAppService(cmd)
			result, err := service.Reset(cmd.Context(), app.ResetRequest{
				SessionRequest: sessionRequest(cmd, opts),
			})
			if err != nil {
				return err
			}
			printEdit(cmd.OutOrStdout(), result)
			return nil
		},
	}
	addPartFlag(cmd, &opts)
	return cmd
}

func printEdit(out io.Writer, result app.EditResult) {
	fmt.Fprintf(out, "part: %s\n", result.PartID)
	fmt.Fprintf(out, "disabled upgrades: %s\n", result.DisabledUpgrades)
	fmt.Fprintf(out, "always enable: %t\n", result.Overrides.AlwaysEnable)
	printEntries(out, result.Entries)
}

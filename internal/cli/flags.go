package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"upgrade-editor/internal/app"
)

type partOptions struct {
	Part string
}

func addPartFlag(cmd *cobra.Command, opts *partOptions) {
	cmd.Flags().StringVar(&opts.Part, "part", "", "Part instance id on the craft")
	_ = viper.BindPFlag("part", cmd.Flags().Lookup("part"))
}

func sessionRequest(cmd *cobra.Command, opts partOptions) app.SessionRequest {
	return app.SessionRequest{
		CraftPath:    resolveString(cmd, "", "craft", "craft"),
		TechTreePath: resolveString(cmd, "", "tech_tree", "tech-tree"),
		PartID:       resolveString(cmd, opts.Part, "part", "part"),
	}
}

func newAppService(cmd *cobra.Command) app.Service {
	service := app.NewService()
	if passes := resolveInt(cmd, 0, "max_verify_passes", "max-verify-passes"); passes > 0 {
		service.MaxVerifyPasses = passes
	}
	return service
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) && value != "" {
		return value
	}
	return viper.GetString(key)
}

func resolveInt(cmd *cobra.Command, value int, key string, flagName string) int {
	if cmd == nil {
		if value != 0 {
			return value
		}
		return viper.GetInt(key)
	}
	if flagChanged(cmd, flagName) && value != 0 {
		return value
	}
	return viper.GetInt(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.InheritedFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}

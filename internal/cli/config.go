package cli

import (
	"github.com/spf13/cobra"

	"github.com/openstfoundation/abibin/internal/cli/render"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved artifact configuration",
		Long: `Show where abibin looks for local artifacts.

Settings come from, in order of precedence: --abi-dir/--bin-dir/--on-duplicate
flags, ABIBIN_* environment variables, the [artifacts] section of abibin.toml,
and the defaults contracts/abi and contracts/bin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			renderer := render.NewConfigRenderer(cmd.OutOrStdout())
			return renderer.RenderConfig(app.Config)
		},
	}
}

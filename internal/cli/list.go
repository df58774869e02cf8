package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/openstfoundation/abibin/internal/cli/render"
	"github.com/openstfoundation/abibin/internal/usecase"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List resolvable artifacts",
		Long: `List every artifact name that resolves, with the tier that serves its ABI
and BIN. Local artifacts shadow bundled ones of the same name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListArtifacts.Run(cmd.Context(), usecase.ListArtifactsParams{Source: source})
			if err != nil {
				return err
			}

			renderer := render.NewArtifactsRenderer(cmd.OutOrStdout(), !color.NoColor)
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Only list one tier: local or bundled")

	return cmd
}

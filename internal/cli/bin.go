package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/openstfoundation/abibin/internal/cli/render"
	"github.com/openstfoundation/abibin/internal/domain"
	"github.com/openstfoundation/abibin/internal/domain/models"
)

// NewBINCmd creates the bin command
func NewBINCmd() *cobra.Command {
	var hash bool

	cmd := &cobra.Command{
		Use:   "bin [name]",
		Short: "Print the bytecode of a contract",
		Long: `Print the bytecode registered under a contract name, exactly as stored.
Without a name, pick one interactively.

Examples:
  abibin bin Token
  abibin bin Token --hash`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			name, err := artifactName(cmd, app, args, domain.KindBIN)
			if err != nil {
				return err
			}

			blob, err := app.Registry.GetBytecodeBlob(cmd.Context(), models.ArtifactName(name))
			if err != nil {
				return withSuggestions(cmd, app, name, err)
			}

			renderer := render.NewArtifactRenderer(cmd.OutOrStdout(), !color.NoColor)
			if hash {
				return renderer.RenderCodeHash(blob)
			}
			return renderer.RenderBIN(blob)
		},
	}

	cmd.Flags().BoolVar(&hash, "hash", false, "Print the keccak256 hash of the bytecode instead")

	return cmd
}

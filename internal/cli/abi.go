package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/openstfoundation/abibin/internal/cli/render"
	"github.com/openstfoundation/abibin/internal/domain"
	"github.com/openstfoundation/abibin/internal/domain/models"
)

// NewABICmd creates the abi command
func NewABICmd() *cobra.Command {
	var method string
	var output string

	cmd := &cobra.Command{
		Use:   "abi [name]",
		Short: "Print the ABI of a contract",
		Long: `Print the ABI registered under a contract name.

The name is the ABI file's base name without extension. Local ABIs take
precedence; names missing locally are resolved from the bundled artifacts.
Without a name, pick one interactively.

Examples:
  abibin abi Token
  abibin abi Token --output yaml
  abibin abi ERC20 --method transfer`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			arg, err := artifactName(cmd, app, args, domain.KindABI)
			if err != nil {
				return err
			}
			name := models.ArtifactName(arg)

			desc, err := app.Registry.GetInterfaceDescriptor(cmd.Context(), name)
			if err != nil {
				return withSuggestions(cmd, app, arg, err)
			}

			renderer := render.NewArtifactRenderer(cmd.OutOrStdout(), !color.NoColor)
			if method == "" {
				return renderer.RenderABI(desc, output)
			}

			parsed, err := desc.ParseABI()
			if err != nil {
				return fmt.Errorf("ABI for %q is not a contract ABI: %w", name, err)
			}
			m, ok := parsed.Methods[method]
			if !ok {
				return fmt.Errorf("method %q not found in ABI for %q", method, name)
			}
			return renderer.RenderMethod(m)
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", "", "Print the signature and selector of one method")
	cmd.Flags().StringVarP(&output, "output", "o", render.FormatJSON, "Output format: json or yaml")

	return cmd
}

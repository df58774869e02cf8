package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/openstfoundation/abibin/internal/app"
	"github.com/openstfoundation/abibin/internal/cli/render"
	"github.com/openstfoundation/abibin/internal/config"
	"github.com/openstfoundation/abibin/internal/domain"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "abibin",
		Short: "Look up contract ABIs and bytecode by name",
		Long: `abibin indexes the ABI and BIN files of a project's artifact directories
and resolves contract names against them, falling back to the artifacts
bundled with abibin when a name is not found locally.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot)
			bindGlobalFlags(v, cmd)

			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			cmd.SetContext(withApp(cmd.Context(), appInstance))
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("abi-dir", "", "Directory of ABI files (default contracts/abi)")
	rootCmd.PersistentFlags().String("bin-dir", "", "Directory of BIN files (default contracts/bin)")
	rootCmd.PersistentFlags().String("on-duplicate", "", "Duplicate artifact names: 'error' or 'last-wins'")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Never prompt; a missing artifact name is an error")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "lookup",
		Title: "Lookup Commands",
	})

	abiCmd := NewABICmd()
	abiCmd.GroupID = "lookup"
	rootCmd.AddCommand(abiCmd)

	binCmd := NewBINCmd()
	binCmd.GroupID = "lookup"
	rootCmd.AddCommand(binCmd)

	listCmd := NewListCmd()
	listCmd.GroupID = "lookup"
	rootCmd.AddCommand(listCmd)

	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// bindGlobalFlags binds command flags to viper
func bindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	// Only bind flags that have been changed so env and abibin.toml still apply
	keys := map[string]string{
		"abi-dir":         "abi_dir",
		"bin-dir":         "bin_dir",
		"on-duplicate":    "on_duplicate",
		"debug":           "debug",
		"non-interactive": "non_interactive",
	}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if key, ok := keys[f.Name]; ok {
			v.Set(key, f.Value.String())
		}
	})
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	a, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return a, nil
}

// artifactName returns the name argument, or prompts for one of the names of kind
func artifactName(cmd *cobra.Command, a *app.App, args []string, kind domain.ArtifactKind) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	if a.Config.NonInteractive {
		return "", fmt.Errorf("artifact name required in non-interactive mode")
	}

	names := a.ListArtifacts.NamesOf(cmd.Context(), kind)
	return a.Selector.SelectArtifact(cmd.Context(), names, fmt.Sprintf("Select %s artifact", strings.ToUpper(string(kind))))
}

// withSuggestions appends "did you mean" hints to artifact-not-found errors
func withSuggestions(cmd *cobra.Command, a *app.App, name string, err error) error {
	if !errors.Is(err, domain.ErrArtifactNotFound) {
		return err
	}
	hint := render.FormatSuggestions(a.SuggestArtifacts.Run(cmd.Context(), name))
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w\n%s", err, hint)
}

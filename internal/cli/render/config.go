package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/openstfoundation/abibin/internal/domain/config"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

// RenderConfig renders the resolved runtime configuration
func (r *ConfigRenderer) RenderConfig(cfg *config.RuntimeConfig) error {
	fmt.Fprintln(r.out, "📋 Current config:")
	fmt.Fprintf(r.out, "ABI dir:      %s\n", getRelativePath(cfg.ABIDir))
	fmt.Fprintf(r.out, "BIN dir:      %s\n", getRelativePath(cfg.BINDir))
	fmt.Fprintf(r.out, "On duplicate: %s\n", cfg.OnDuplicate)

	fmt.Fprintf(r.out, "\n📦 Config source: %s\n", cfg.ConfigSource)
	fmt.Fprintf(r.out, "📁 Project root: %s\n", cfg.ProjectRoot)
	return nil
}

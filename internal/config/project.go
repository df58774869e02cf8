package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/openstfoundation/abibin/internal/domain/config"
)

// ProjectFileName marks a project root and holds its artifact settings
const ProjectFileName = "abibin.toml"

// loadProjectFile loads .env files and then abibin.toml from projectRoot.
// It returns nil without error when abibin.toml does not exist.
func loadProjectFile(projectRoot string) (*config.ProjectFile, error) {
	// Load .env files first for variable expansion
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
			}
		}
	}

	path := filepath.Join(projectRoot, ProjectFileName)
	var pf config.ProjectFile
	if _, err := toml.DecodeFile(path, &pf); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse %s: %w", ProjectFileName, err)
	}

	pf.Artifacts.ABIDir = os.ExpandEnv(pf.Artifacts.ABIDir)
	pf.Artifacts.BINDir = os.ExpandEnv(pf.Artifacts.BINDir)

	return &pf, nil
}

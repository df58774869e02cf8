package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/openstfoundation/abibin/internal/domain/config"
)

// Default artifact locations, relative to the project root
const (
	DefaultABIDir = "contracts/abi"
	DefaultBINDir = "contracts/bin"
)

// Provider creates RuntimeConfig for Wire dependency injection.
// Precedence for each setting: flag/env (viper), then abibin.toml, then defaults.
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}
	projectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	projectFile, err := loadProjectFile(projectRoot)
	if err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		ConfigSource:   "defaults",
		ProjectFile:    projectFile,
	}

	abiDir, binDir, duplicates := DefaultABIDir, DefaultBINDir, ""
	if projectFile != nil {
		cfg.ConfigSource = ProjectFileName
		abiDir = firstNonEmpty(projectFile.Artifacts.ABIDir, abiDir)
		binDir = firstNonEmpty(projectFile.Artifacts.BINDir, binDir)
		duplicates = projectFile.Artifacts.OnDuplicate
	}

	// Flags and env are relative to the working directory, the rest to the project root
	if dir := v.GetString("abi_dir"); dir != "" {
		abiDir = absFromCwd(dir)
	}
	if dir := v.GetString("bin_dir"); dir != "" {
		binDir = absFromCwd(dir)
	}
	duplicates = firstNonEmpty(v.GetString("on_duplicate"), duplicates)

	cfg.ABIDir = resolvePath(projectRoot, abiDir)
	cfg.BINDir = resolvePath(projectRoot, binDir)

	cfg.OnDuplicate, err = config.ParseDuplicatePolicy(duplicates)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindProjectRoot walks up from the current directory to find abibin.toml.
// Without one, the current directory is the project root.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, ProjectFileName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("ABIBIN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Directory keys have no viper default so abibin.toml can fill them
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	return v
}

func resolvePath(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}

func absFromCwd(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

package config

import (
	"fmt"
	"strings"
)

// DuplicatePolicy decides what happens when two files in one directory map to the same artifact name
type DuplicatePolicy string

const (
	// DuplicateError fails construction
	DuplicateError DuplicatePolicy = "error"
	// DuplicateLastWins keeps the file that sorts last
	DuplicateLastWins DuplicatePolicy = "last-wins"
)

// ParseDuplicatePolicy accepts the policy names used in flags, env and abibin.toml
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(DuplicateError):
		return DuplicateError, nil
	case string(DuplicateLastWins), "last_wins", "lastwins":
		return DuplicateLastWins, nil
	default:
		return "", fmt.Errorf("unknown duplicate policy %q (want %q or %q)", s, DuplicateError, DuplicateLastWins)
	}
}

// RuntimeConfig represents the complete runtime configuration
// All paths are resolved to absolute paths by the config provider
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string

	// Artifact directories
	ABIDir string
	BINDir string

	OnDuplicate DuplicatePolicy

	// Execution settings
	Debug          bool
	NonInteractive bool

	// Config source tracking
	ConfigSource string // "abibin.toml" or "defaults"

	ProjectFile *ProjectFile
}

// ProjectFile is the decoded abibin.toml
type ProjectFile struct {
	Artifacts ArtifactsSection `toml:"artifacts"`
}

// ArtifactsSection is the [artifacts] table of abibin.toml
type ArtifactsSection struct {
	ABIDir      string `toml:"abi_dir"`
	BINDir      string `toml:"bin_dir"`
	OnDuplicate string `toml:"on_duplicate"`
}

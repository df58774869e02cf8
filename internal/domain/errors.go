package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrArtifactNotFound is returned when no tier holds the requested artifact
	ErrArtifactNotFound = fmt.Errorf("artifact %w", ErrNotFound)

	// ErrEmptyArtifact marks a local artifact whose content is empty or a JSON falsy
	// value. The registry treats it as a miss.
	ErrEmptyArtifact = errors.New("empty artifact")
)

// ArtifactKind distinguishes interface descriptors from bytecode blobs
type ArtifactKind string

const (
	KindABI ArtifactKind = "abi"
	KindBIN ArtifactKind = "bin"
)

// ArtifactNotFoundErr carries the name and kind of a failed lookup
type ArtifactNotFoundErr struct {
	Name   string
	Kind   ArtifactKind
	Source string
}

func (e ArtifactNotFoundErr) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("%s for %q not found", strings.ToUpper(string(e.Kind)), e.Name)
	}
	return fmt.Sprintf("%s for %q not found in %s artifacts", strings.ToUpper(string(e.Kind)), e.Name, e.Source)
}

func (e ArtifactNotFoundErr) Unwrap() error {
	return ErrArtifactNotFound
}

// ParseError is returned when an interface descriptor file is not valid JSON
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DuplicateArtifactErr is returned when two files in one directory share a base name
type DuplicateArtifactErr struct {
	Name  string
	Kind  ArtifactKind
	Files []string
}

func (e DuplicateArtifactErr) Error() string {
	files := make([]string, len(e.Files))
	copy(files, e.Files)
	sort.Strings(files)

	var suggestions []string
	for _, f := range files {
		suggestions = append(suggestions, fmt.Sprintf("  - %s", f))
	}

	return fmt.Sprintf("multiple %s files resolve to artifact %q - rename or remove all but one:\n%s",
		strings.ToUpper(string(e.Kind)), e.Name, strings.Join(suggestions, "\n"))
}

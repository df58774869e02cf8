package fs

import (
	"fmt"
	iofs "io/fs"
	"log/slog"
	"path"

	"github.com/openstfoundation/abibin/internal/domain"
	"github.com/openstfoundation/abibin/internal/domain/config"
	"github.com/openstfoundation/abibin/internal/domain/models"
)

// ArtifactLoader reads one directory of artifact files into a name-keyed map
type ArtifactLoader struct {
	fsys   iofs.FS
	policy config.DuplicatePolicy
	log    *slog.Logger
}

// NewArtifactLoader creates a loader over fsys
func NewArtifactLoader(fsys iofs.FS, policy config.DuplicatePolicy, log *slog.Logger) *ArtifactLoader {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if policy == "" {
		policy = config.DuplicateError
	}
	return &ArtifactLoader{fsys: fsys, policy: policy, log: log}
}

// LoadInterfaceDescriptors parses every file in dir as JSON
func (l *ArtifactLoader) LoadInterfaceDescriptors(dir string) (map[models.ArtifactName]models.InterfaceDescriptor, error) {
	return loadDir(l, dir, domain.KindABI, func(file string, data []byte) (models.InterfaceDescriptor, error) {
		desc, err := models.ParseInterfaceDescriptor(data)
		if err != nil {
			return nil, &domain.ParseError{Path: file, Err: err}
		}
		return desc, nil
	})
}

// LoadBytecodeBlobs reads every file in dir as raw text
func (l *ArtifactLoader) LoadBytecodeBlobs(dir string) (map[models.ArtifactName]models.BytecodeBlob, error) {
	return loadDir(l, dir, domain.KindBIN, func(file string, data []byte) (models.BytecodeBlob, error) {
		return models.BytecodeBlob(data), nil
	})
}

// loadDir reads every direct child of dir in lexical order. A subdirectory or any
// unreadable entry, dot-files included, fails the whole load.
func loadDir[T any](
	l *ArtifactLoader,
	dir string,
	kind domain.ArtifactKind,
	parse func(file string, data []byte) (T, error),
) (map[models.ArtifactName]T, error) {
	entries, err := iofs.ReadDir(l.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s directory: %w", kind, err)
	}

	result := make(map[models.ArtifactName]T, len(entries))
	sources := make(map[models.ArtifactName]string, len(entries))

	for _, entry := range entries {
		file := path.Join(dir, entry.Name())
		if entry.IsDir() {
			return nil, fmt.Errorf("failed to read %s: is a directory", file)
		}

		name := models.NameFromFile(entry.Name())

		if prev, exists := sources[name]; exists {
			if l.policy == config.DuplicateError {
				return nil, domain.DuplicateArtifactErr{Name: string(name), Kind: kind, Files: []string{prev, file}}
			}
			l.log.Warn("duplicate artifact name, keeping later file", "kind", kind, "name", name, "replaced", prev, "file", file)
		}

		data, err := iofs.ReadFile(l.fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}

		value, err := parse(file, data)
		if err != nil {
			return nil, err
		}

		l.log.Debug("loaded artifact", "kind", kind, "name", name, "file", file)
		result[name] = value
		sources[name] = file
	}

	return result, nil
}

package artifacts

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/samber/lo"

	"github.com/openstfoundation/abibin/internal/adapters/fs"
	"github.com/openstfoundation/abibin/internal/domain"
	"github.com/openstfoundation/abibin/internal/domain/config"
	"github.com/openstfoundation/abibin/internal/domain/models"
	"github.com/openstfoundation/abibin/internal/usecase"
)

// Repository indexes the ABI and BIN files of two local directories.
// Both maps are filled once by NewRepository and only read afterwards.
type Repository struct {
	abiDir string
	binDir string
	abis   map[models.ArtifactName]models.InterfaceDescriptor
	bins   map[models.ArtifactName]models.BytecodeBlob
	log    *slog.Logger
}

// NewRepository reads both directories. Any unreadable directory or malformed
// ABI file fails the whole construction.
func NewRepository(abiDir, binDir string, policy config.DuplicatePolicy, log *slog.Logger) (*Repository, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	abis, err := fs.NewArtifactLoader(os.DirFS(abiDir), policy, log).LoadInterfaceDescriptors(".")
	if err != nil {
		return nil, fmt.Errorf("failed to index ABIs in %s: %w", abiDir, err)
	}

	bins, err := fs.NewArtifactLoader(os.DirFS(binDir), policy, log).LoadBytecodeBlobs(".")
	if err != nil {
		return nil, fmt.Errorf("failed to index BINs in %s: %w", binDir, err)
	}

	log.Debug("indexed local artifacts", "abiDir", abiDir, "abis", len(abis), "binDir", binDir, "bins", len(bins))

	return &Repository{
		abiDir: abiDir,
		binDir: binDir,
		abis:   abis,
		bins:   bins,
		log:    log,
	}, nil
}

// ProvideRepository builds the repository from runtime configuration
func ProvideRepository(cfg *config.RuntimeConfig, log *slog.Logger) (*Repository, error) {
	return NewRepository(cfg.ABIDir, cfg.BINDir, cfg.OnDuplicate, log)
}

// GetInterfaceDescriptor retrieves a locally indexed ABI
func (r *Repository) GetInterfaceDescriptor(ctx context.Context, name models.ArtifactName) (models.InterfaceDescriptor, error) {
	if abi, exists := r.abis[name]; exists {
		return abi, nil
	}
	return nil, domain.ArtifactNotFoundErr{Name: string(name), Kind: domain.KindABI, Source: r.SourceName()}
}

// GetBytecodeBlob retrieves a locally indexed BIN
func (r *Repository) GetBytecodeBlob(ctx context.Context, name models.ArtifactName) (models.BytecodeBlob, error) {
	if bin, exists := r.bins[name]; exists {
		return bin, nil
	}
	return "", domain.ArtifactNotFoundErr{Name: string(name), Kind: domain.KindBIN, Source: r.SourceName()}
}

// ArtifactNames returns the indexed names of one kind, sorted
func (r *Repository) ArtifactNames(ctx context.Context, kind domain.ArtifactKind) []models.ArtifactName {
	var names []models.ArtifactName
	switch kind {
	case domain.KindABI:
		names = lo.Keys(r.abis)
	case domain.KindBIN:
		names = lo.Keys(r.bins)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// SourceName labels this tier in listings and errors
func (r *Repository) SourceName() string {
	return usecase.SourceLocal
}

// Ensure the repository implements the ports
var (
	_ usecase.LocalProvider  = (*Repository)(nil)
	_ usecase.ArtifactLister = (*Repository)(nil)
	_ usecase.SourceNamer    = (*Repository)(nil)
)

// Package bundled serves the artifacts compiled into the binary. It is the
// default fallback tier behind the local directories.
package bundled

import (
	"context"
	"embed"
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/openstfoundation/abibin/internal/adapters/fs"
	"github.com/openstfoundation/abibin/internal/domain"
	"github.com/openstfoundation/abibin/internal/domain/config"
	"github.com/openstfoundation/abibin/internal/domain/models"
	"github.com/openstfoundation/abibin/internal/usecase"
)

//go:embed abi/*.abi bin/*.bin
var artifacts embed.FS

// Provider is a read-only artifact tier over the embedded abi/ and bin/ trees
type Provider struct {
	abis map[models.ArtifactName]models.InterfaceDescriptor
	bins map[models.ArtifactName]models.BytecodeBlob
}

// NewProvider loads the bundled artifacts
func NewProvider() (*Provider, error) {
	loader := fs.NewArtifactLoader(artifacts, config.DuplicateError, nil)

	abis, err := loader.LoadInterfaceDescriptors("abi")
	if err != nil {
		return nil, fmt.Errorf("failed to load bundled ABIs: %w", err)
	}
	bins, err := loader.LoadBytecodeBlobs("bin")
	if err != nil {
		return nil, fmt.Errorf("failed to load bundled BINs: %w", err)
	}

	return &Provider{abis: abis, bins: bins}, nil
}

// GetInterfaceDescriptor returns a bundled ABI
func (p *Provider) GetInterfaceDescriptor(ctx context.Context, name models.ArtifactName) (models.InterfaceDescriptor, error) {
	if abi, ok := p.abis[name]; ok {
		return abi, nil
	}
	return nil, domain.ArtifactNotFoundErr{Name: string(name), Kind: domain.KindABI, Source: p.SourceName()}
}

// GetBytecodeBlob returns a bundled BIN
func (p *Provider) GetBytecodeBlob(ctx context.Context, name models.ArtifactName) (models.BytecodeBlob, error) {
	if bin, ok := p.bins[name]; ok {
		return bin, nil
	}
	return "", domain.ArtifactNotFoundErr{Name: string(name), Kind: domain.KindBIN, Source: p.SourceName()}
}

func (p *Provider) ArtifactNames(ctx context.Context, kind domain.ArtifactKind) []models.ArtifactName {
	var names []models.ArtifactName
	switch kind {
	case domain.KindABI:
		names = lo.Keys(p.abis)
	case domain.KindBIN:
		names = lo.Keys(p.bins)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

func (p *Provider) SourceName() string {
	return usecase.SourceBundled
}

var (
	_ usecase.FallbackProvider = (*Provider)(nil)
	_ usecase.ArtifactLister   = (*Provider)(nil)
	_ usecase.SourceNamer      = (*Provider)(nil)
)

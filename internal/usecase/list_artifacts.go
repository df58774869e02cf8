package usecase

import (
	"context"
	"sort"

	"github.com/samber/lo"

	"github.com/openstfoundation/abibin/internal/domain"
	"github.com/openstfoundation/abibin/internal/domain/models"
)

const (
	SourceLocal   = "local"
	SourceBundled = "bundled"
)

// ListArtifactsParams contains parameters for listing artifacts
type ListArtifactsParams struct {
	// Source restricts the listing to one tier ("local" or the fallback's source name)
	Source string
}

// ArtifactEntry describes where a name resolves for each artifact kind
type ArtifactEntry struct {
	Name      models.ArtifactName
	ABISource string // empty when no tier has an ABI
	BINSource string // empty when no tier has a BIN
}

// ListArtifactsResult contains the result of listing artifacts
type ListArtifactsResult struct {
	Artifacts []ArtifactEntry
}

// ListArtifacts is a use case for listing every name the registry can resolve
type ListArtifacts struct {
	local    LocalProvider
	fallback FallbackProvider
}

// NewListArtifacts creates a new ListArtifacts use case
func NewListArtifacts(local LocalProvider, fallback FallbackProvider) *ListArtifacts {
	return &ListArtifacts{
		local:    local,
		fallback: fallback,
	}
}

// Run executes the use case. Local entries shadow fallback entries of the same kind.
func (uc *ListArtifacts) Run(ctx context.Context, params ListArtifactsParams) (*ListArtifactsResult, error) {
	entries := make(map[models.ArtifactName]*ArtifactEntry)
	entry := func(name models.ArtifactName) *ArtifactEntry {
		e, ok := entries[name]
		if !ok {
			e = &ArtifactEntry{Name: name}
			entries[name] = e
		}
		return e
	}

	// fallback first so local overwrites it. Empty local values are skipped
	// because the registry resolves them from the fallback.
	tiers := []struct {
		provider  ArtifactProvider
		source    string
		skipEmpty bool
	}{
		{uc.fallback, sourceName(uc.fallback, SourceBundled), false},
		{uc.local, sourceName(uc.local, SourceLocal), true},
	}

	for _, tier := range tiers {
		if params.Source != "" && params.Source != tier.source {
			continue
		}
		lister, ok := tier.provider.(ArtifactLister)
		if !ok {
			continue
		}
		for _, name := range lister.ArtifactNames(ctx, domain.KindABI) {
			if tier.skipEmpty && !resolvesLocally(ctx, tier.provider, domain.KindABI, name) {
				continue
			}
			entry(name).ABISource = tier.source
		}
		for _, name := range lister.ArtifactNames(ctx, domain.KindBIN) {
			if tier.skipEmpty && !resolvesLocally(ctx, tier.provider, domain.KindBIN, name) {
				continue
			}
			entry(name).BINSource = tier.source
		}
	}

	names := lo.Keys(entries)
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	result := &ListArtifactsResult{
		Artifacts: lo.Map(names, func(n models.ArtifactName, _ int) ArtifactEntry {
			return *entries[n]
		}),
	}
	return result, nil
}

// KnownNames returns every name any tier can enumerate, sorted and deduplicated
func (uc *ListArtifacts) KnownNames(ctx context.Context) []string {
	result, _ := uc.Run(ctx, ListArtifactsParams{})
	return lo.Map(result.Artifacts, func(e ArtifactEntry, _ int) string {
		return string(e.Name)
	})
}

// NamesOf returns the names that resolve for one artifact kind, sorted
func (uc *ListArtifacts) NamesOf(ctx context.Context, kind domain.ArtifactKind) []string {
	result, _ := uc.Run(ctx, ListArtifactsParams{})
	return lo.FilterMap(result.Artifacts, func(e ArtifactEntry, _ int) (string, bool) {
		if kind == domain.KindBIN {
			return string(e.Name), e.BINSource != ""
		}
		return string(e.Name), e.ABISource != ""
	})
}

// resolvesLocally applies the registry's local hit rule: no error and a non-empty value
func resolvesLocally(ctx context.Context, p ArtifactProvider, kind domain.ArtifactKind, name models.ArtifactName) bool {
	if kind == domain.KindBIN {
		v, err := p.GetBytecodeBlob(ctx, name)
		return err == nil && !v.IsEmpty()
	}
	v, err := p.GetInterfaceDescriptor(ctx, name)
	return err == nil && !v.IsEmpty()
}

func sourceName(p ArtifactProvider, def string) string {
	if n, ok := p.(SourceNamer); ok {
		return n.SourceName()
	}
	return def
}

package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/openstfoundation/abibin/internal/domain"
	"github.com/openstfoundation/abibin/internal/domain/models"
)

// LocalProvider is the first resolution tier, backed by the configured directories
type LocalProvider interface {
	ArtifactProvider
}

// FallbackProvider is consulted whenever the local tier cannot answer
type FallbackProvider interface {
	ArtifactProvider
}

// ArtifactRegistry resolves artifacts local-first and delegates to the fallback
// on a miss or on any local error. Local errors never reach the caller; fallback
// results, errors included, are returned unmodified.
type ArtifactRegistry struct {
	local    LocalProvider
	fallback FallbackProvider
	log      *slog.Logger
}

// NewArtifactRegistry composes the two tiers
func NewArtifactRegistry(local LocalProvider, fallback FallbackProvider, log *slog.Logger) *ArtifactRegistry {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &ArtifactRegistry{
		local:    local,
		fallback: fallback,
		log:      log,
	}
}

// GetInterfaceDescriptor returns the ABI for name
func (r *ArtifactRegistry) GetInterfaceDescriptor(ctx context.Context, name models.ArtifactName) (models.InterfaceDescriptor, error) {
	return resolve(r, domain.KindABI, name,
		func(p ArtifactProvider) (models.InterfaceDescriptor, error) {
			return p.GetInterfaceDescriptor(ctx, name)
		},
	)
}

// GetBytecodeBlob returns the BIN for name
func (r *ArtifactRegistry) GetBytecodeBlob(ctx context.Context, name models.ArtifactName) (models.BytecodeBlob, error) {
	return resolve(r, domain.KindBIN, name,
		func(p ArtifactProvider) (models.BytecodeBlob, error) {
			return p.GetBytecodeBlob(ctx, name)
		},
	)
}

type artifactValue interface {
	IsEmpty() bool
}

func resolve[T artifactValue](
	r *ArtifactRegistry,
	kind domain.ArtifactKind,
	name models.ArtifactName,
	get func(ArtifactProvider) (T, error),
) (T, error) {
	if r.local != nil {
		v, err := get(r.local)
		if err == nil && !v.IsEmpty() {
			return v, nil
		}
		r.logLocalMiss(kind, name, err)
	}

	if r.fallback == nil {
		var zero T
		return zero, domain.ArtifactNotFoundErr{Name: string(name), Kind: kind}
	}
	return get(r.fallback)
}

func (r *ArtifactRegistry) logLocalMiss(kind domain.ArtifactKind, name models.ArtifactName, err error) {
	switch {
	case err == nil:
		r.log.Debug("local artifact is empty, using fallback", "kind", kind, "name", name, "error", domain.ErrEmptyArtifact)
	case errors.Is(err, domain.ErrNotFound):
		r.log.Debug("artifact not found locally, using fallback", "kind", kind, "name", name)
	default:
		r.log.Debug("local lookup failed, using fallback", "kind", kind, "name", name, "error", err)
	}
}

// Ensure the registry satisfies the same capability as its tiers
var _ ArtifactProvider = (*ArtifactRegistry)(nil)

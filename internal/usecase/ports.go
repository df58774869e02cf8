package usecase

import (
	"context"

	"github.com/openstfoundation/abibin/internal/domain"
	"github.com/openstfoundation/abibin/internal/domain/models"
)

// ArtifactProvider is the capability shared by every artifact tier.
// A miss is reported as an error wrapping domain.ErrArtifactNotFound.
type ArtifactProvider interface {
	GetInterfaceDescriptor(ctx context.Context, name models.ArtifactName) (models.InterfaceDescriptor, error)
	GetBytecodeBlob(ctx context.Context, name models.ArtifactName) (models.BytecodeBlob, error)
}

// ArtifactLister is implemented by providers that can enumerate their artifacts
type ArtifactLister interface {
	ArtifactNames(ctx context.Context, kind domain.ArtifactKind) []models.ArtifactName
}

// ArtifactSelector lets the user pick one artifact name interactively
type ArtifactSelector interface {
	SelectArtifact(ctx context.Context, names []string, prompt string) (string, error)
}

// SourceNamer is implemented by providers that report a human readable source label
type SourceNamer interface {
	SourceName() string
}

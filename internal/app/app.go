package app

import (
	"log/slog"

	"github.com/openstfoundation/abibin/internal/domain/config"
	"github.com/openstfoundation/abibin/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Two-tier artifact lookup
	Registry *usecase.ArtifactRegistry

	// Use cases
	ListArtifacts    *usecase.ListArtifacts
	SuggestArtifacts *usecase.SuggestArtifacts

	Selector usecase.ArtifactSelector
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	registry *usecase.ArtifactRegistry,
	listArtifacts *usecase.ListArtifacts,
	suggestArtifacts *usecase.SuggestArtifacts,
	selector usecase.ArtifactSelector,
) (*App, error) {
	return &App{
		Config:           cfg,
		Log:              log,
		Registry:         registry,
		ListArtifacts:    listArtifacts,
		SuggestArtifacts: suggestArtifacts,
		Selector:         selector,
	}, nil
}

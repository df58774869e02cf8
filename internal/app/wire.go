//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/openstfoundation/abibin/internal/adapters"
	"github.com/openstfoundation/abibin/internal/config"
	"github.com/openstfoundation/abibin/internal/logging"
	"github.com/openstfoundation/abibin/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewArtifactRegistry,
		usecase.NewListArtifacts,
		usecase.NewSuggestArtifacts,

		// App
		NewApp,
	)
	return nil, nil
}

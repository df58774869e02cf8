package adapters

import (
	"github.com/google/wire"

	"github.com/openstfoundation/abibin/internal/adapters/bundled"
	"github.com/openstfoundation/abibin/internal/adapters/interactive"
	"github.com/openstfoundation/abibin/internal/adapters/repository/artifacts"
	"github.com/openstfoundation/abibin/internal/usecase"
)

// RepositorySet provides the local, directory-backed tier
var RepositorySet = wire.NewSet(
	artifacts.ProvideRepository,
	wire.Bind(new(usecase.LocalProvider), new(*artifacts.Repository)),
)

// BundledSet provides the embedded fallback tier
var BundledSet = wire.NewSet(
	bundled.NewProvider,
	wire.Bind(new(usecase.FallbackProvider), new(*bundled.Provider)),
)

// InteractiveSet provides the artifact picker
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.ArtifactSelector), new(*interactive.SelectorAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	RepositorySet,
	BundledSet,
	InteractiveSet,
)

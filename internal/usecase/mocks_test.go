package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/openstfoundation/abibin/internal/domain"
	"github.com/openstfoundation/abibin/internal/domain/models"
)

// MockArtifactProvider is a mock implementation of ArtifactProvider
type MockArtifactProvider struct {
	mock.Mock
}

func (m *MockArtifactProvider) GetInterfaceDescriptor(ctx context.Context, name models.ArtifactName) (models.InterfaceDescriptor, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.InterfaceDescriptor), args.Error(1)
}

func (m *MockArtifactProvider) GetBytecodeBlob(ctx context.Context, name models.ArtifactName) (models.BytecodeBlob, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(models.BytecodeBlob), args.Error(1)
}

// MapProvider is an in-memory provider that can also enumerate its names
type MapProvider struct {
	Source string
	ABIs   map[models.ArtifactName]models.InterfaceDescriptor
	BINs   map[models.ArtifactName]models.BytecodeBlob
}

func (p *MapProvider) GetInterfaceDescriptor(ctx context.Context, name models.ArtifactName) (models.InterfaceDescriptor, error) {
	if abi, ok := p.ABIs[name]; ok {
		return abi, nil
	}
	return nil, domain.ArtifactNotFoundErr{Name: string(name), Kind: domain.KindABI, Source: p.Source}
}

func (p *MapProvider) GetBytecodeBlob(ctx context.Context, name models.ArtifactName) (models.BytecodeBlob, error) {
	if bin, ok := p.BINs[name]; ok {
		return bin, nil
	}
	return "", domain.ArtifactNotFoundErr{Name: string(name), Kind: domain.KindBIN, Source: p.Source}
}

func (p *MapProvider) ArtifactNames(ctx context.Context, kind domain.ArtifactKind) []models.ArtifactName {
	var names []models.ArtifactName
	switch kind {
	case domain.KindABI:
		for n := range p.ABIs {
			names = append(names, n)
		}
	case domain.KindBIN:
		for n := range p.BINs {
			names = append(names, n)
		}
	}
	return names
}

func (p *MapProvider) SourceName() string {
	return p.Source
}

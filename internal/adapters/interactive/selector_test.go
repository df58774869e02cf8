package interactive

import (
	"context"
	"errors"
	"testing"

	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstfoundation/abibin/internal/domain/config"
)

func TestSelectArtifact(t *testing.T) {
	ctx := context.Background()
	names := []string{"Answer", "CreateX", "ERC20"}

	t.Run("non-interactive", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{NonInteractive: true})

		_, err := s.SelectArtifact(ctx, names, "Select artifact")
		assert.ErrorIs(t, err, ErrNonInteractive)
	})

	t.Run("no names", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{})

		_, err := s.SelectArtifact(ctx, nil, "Select artifact")
		assert.Error(t, err)
	})

	t.Run("single name skips the prompt", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{})
		s.run = func(promptui.Select) (int, error) {
			t.Fatal("prompt should not run")
			return 0, nil
		}

		name, err := s.SelectArtifact(ctx, []string{"ERC20"}, "Select artifact")
		require.NoError(t, err)
		assert.Equal(t, "ERC20", name)
	})

	t.Run("prompt selection", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{})
		var got promptui.Select
		s.run = func(p promptui.Select) (int, error) {
			got = p
			return 1, nil
		}

		name, err := s.SelectArtifact(ctx, names, "Select artifact")
		require.NoError(t, err)
		assert.Equal(t, "CreateX", name)
		assert.Equal(t, "Select artifact", got.Label)
		assert.Equal(t, names, got.Items)
		assert.True(t, got.StartInSearchMode)
	})

	t.Run("cancelled", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{})
		s.run = func(promptui.Select) (int, error) {
			return -1, promptui.ErrInterrupt
		}

		_, err := s.SelectArtifact(ctx, names, "Select artifact")
		require.Error(t, err)
		assert.True(t, errors.Is(err, promptui.ErrInterrupt))
	})
}

func TestFuzzySearch(t *testing.T) {
	items := []string{"Answer", "CreateX", "ERC20"}
	search := createFuzzySearchFunc(items)

	tests := []struct {
		input string
		index int
		want  bool
	}{
		{"", 0, true},
		{"ans", 0, true},
		{"ANS", 0, true},
		{"crx", 1, true},
		{"erc", 1, false},
		{"e20", 2, true},
		{"zzz", 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, search(tt.input, tt.index))
		})
	}
}

package usecase

import (
	"context"
	"strings"

	"github.com/sahilm/fuzzy"
)

const maxSuggestions = 5

// SuggestArtifacts finds known artifact names close to a name that failed to resolve
type SuggestArtifacts struct {
	list *ListArtifacts
}

// NewSuggestArtifacts creates a new SuggestArtifacts use case
func NewSuggestArtifacts(list *ListArtifacts) *SuggestArtifacts {
	return &SuggestArtifacts{list: list}
}

// Run returns up to five candidates, best match first
func (uc *SuggestArtifacts) Run(ctx context.Context, name string) []string {
	if name == "" {
		return nil
	}
	known := uc.list.KnownNames(ctx)

	var suggestions []string
	seen := make(map[string]bool)
	add := func(s string) {
		if !seen[s] && s != name && len(suggestions) < maxSuggestions {
			seen[s] = true
			suggestions = append(suggestions, s)
		}
	}

	// case-insensitive exact matches are the most likely typo
	for _, k := range known {
		if strings.EqualFold(k, name) {
			add(k)
		}
	}
	for _, m := range fuzzy.Find(name, known) {
		add(m.Str)
	}
	return suggestions
}

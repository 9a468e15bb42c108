package usecase

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/football-data-proxy/internal/domain/competition"
)

// ResolveCompetition maps a league slug to its catalog entry.
func ResolveCompetition(slug string) (competition.Competition, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return competition.Competition{}, fmt.Errorf("%w: league slug is required", ErrInvalidInput)
	}
	comp, ok := competition.BySlug(slug)
	if !ok {
		return competition.Competition{}, fmt.Errorf("%w: league=%s", ErrNotFound, slug)
	}
	return comp, nil
}

package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-data-proxy/internal/domain/competition"
	"github.com/riskibarqy/football-data-proxy/internal/domain/scorer"
	"github.com/riskibarqy/football-data-proxy/internal/domain/standing"
	"github.com/riskibarqy/football-data-proxy/internal/platform/cache"
	"github.com/riskibarqy/football-data-proxy/internal/platform/logging"
)

type ScorerService struct {
	provider FootballDataProvider
	cache    *cache.Store
	logger   *logging.Logger
}

func NewScorerService(provider FootballDataProvider, store *cache.Store, logger *logging.Logger) *ScorerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ScorerService{
		provider: provider,
		cache:    store,
		logger:   logger,
	}
}

func (s *ScorerService) ListByCompetition(ctx context.Context, comp competition.Competition, limit int) (scorer.Ranking, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScorerService.ListByCompetition")
	defer span.End()

	if err := comp.Validate(); err != nil {
		return scorer.Ranking{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	limit = scorer.NormalizeLimit(limit)

	return cache.Load(ctx, s.cache, scorersCacheKey(comp.Code, limit), func(ctx context.Context) (scorer.Ranking, error) {
		payload, err := s.provider.FetchScorers(ctx, comp.Code, limit)
		if err != nil {
			return scorer.Ranking{}, fmt.Errorf("fetch scorers competition=%s: %w", comp.Code, err)
		}

		items := make([]scorer.Scorer, 0, len(payload.Scorers))
		for _, item := range payload.Scorers {
			items = append(items, scorer.Scorer{
				PlayerID:          item.PlayerID,
				PlayerName:        item.PlayerName,
				PlayerNationality: item.PlayerNationality,
				PlayerPosition:    item.PlayerPosition,
				TeamID:            item.Team.ID,
				TeamName:          item.Team.Name,
				TeamShortName:     item.Team.ShortName,
				TeamCrest:         item.Team.Crest,
				Goals:             item.Goals,
				Assists:           item.Assists,
				Penalties:         item.Penalties,
			})
		}

		return scorer.Ranking{
			Competition: payload.Competition.Name,
			Season:      standing.SeasonFromStartDate(payload.Season.StartDate),
			Scorers:     items,
		}, nil
	})
}

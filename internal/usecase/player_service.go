package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-data-proxy/internal/domain/competition"
	"github.com/riskibarqy/football-data-proxy/internal/domain/player"
	"github.com/riskibarqy/football-data-proxy/internal/platform/cache"
	"github.com/riskibarqy/football-data-proxy/internal/platform/logging"
)

type PlayerServiceConfig struct {
	Season            string
	LeagueParallelism int
	Fanout            SquadFanoutConfig
}

type PlayerService struct {
	standings   *StandingsService
	fanout      *squadFanout
	cache       *cache.Store
	logger      *logging.Logger
	season      string
	parallelism int
}

func NewPlayerService(
	provider FootballDataProvider,
	standings *StandingsService,
	store *cache.Store,
	cfg PlayerServiceConfig,
	logger *logging.Logger,
) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerService{
		standings:   standings,
		fanout:      newSquadFanout(provider, cfg.Fanout, logger),
		cache:       store,
		logger:      logger,
		season:      cfg.Season,
		parallelism: cfg.LeagueParallelism,
	}
}

// ListByCompetition returns every squad player of the competition's teams.
// The team list comes from the standings table.
func (s *PlayerService) ListByCompetition(ctx context.Context, comp competition.Competition) (player.Roster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListByCompetition")
	defer span.End()

	if err := comp.Validate(); err != nil {
		return player.Roster{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return cache.Load(ctx, s.cache, playersCacheKey(comp.Code), func(ctx context.Context) (player.Roster, error) {
		table, err := s.standings.GetByCompetition(ctx, comp)
		if err != nil {
			return player.Roster{}, fmt.Errorf("load teams competition=%s: %w", comp.Code, err)
		}

		players, err := s.fanout.Collect(ctx, table.Teams())
		if err != nil {
			return player.Roster{}, fmt.Errorf("collect squads competition=%s: %w", comp.Code, err)
		}

		return player.Roster{
			Competition: table.Competition,
			Season:      table.Season,
			Players:     players,
		}, nil
	})
}

// ListByLeague is ListByCompetition labelled with the catalog display name
// and the configured season.
func (s *PlayerService) ListByLeague(ctx context.Context, comp competition.Competition) (player.Roster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListByLeague")
	defer span.End()

	return cache.Load(ctx, s.cache, playersLeagueCacheKey(comp.Slug), func(ctx context.Context) (player.Roster, error) {
		roster, err := s.ListByCompetition(ctx, comp)
		if err != nil {
			return player.Roster{}, err
		}
		return player.Roster{
			Competition: comp.Name,
			Season:      s.season,
			Players:     roster.Players,
		}, nil
	})
}

// ListAll merges the rosters of every catalog competition. Competitions that
// fail are skipped.
func (s *PlayerService) ListAll(ctx context.Context) (player.Roster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListAll")
	defer span.End()

	return cache.Load(ctx, s.cache, allPlayersCacheKey, func(ctx context.Context) (player.Roster, error) {
		results := collectLeagues(ctx, s.logger, s.parallelism, "players", s.ListByCompetition)

		merged := make([]player.Player, 0, len(results)*500)
		for _, result := range results {
			merged = append(merged, result.value.Players...)
		}
		return player.Roster{
			Competition: competition.AllLeaguesLabel,
			Season:      s.season,
			Players:     merged,
		}, nil
	})
}

// ListCached merges whatever per-competition rosters are fresh in cache
// without calling the provider.
func (s *PlayerService) ListCached(ctx context.Context) player.Roster {
	_, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListCached")
	defer span.End()

	merged := make([]player.Player, 0)
	for _, comp := range competition.All() {
		roster, ok := cache.Lookup[player.Roster](ctx, s.cache, playersCacheKey(comp.Code))
		if !ok || len(roster.Players) == 0 {
			s.logger.DebugContext(ctx, "no cached roster", "competition", comp.Code)
			continue
		}
		merged = append(merged, roster.Players...)
	}

	return player.Roster{
		Competition: competition.AllLeaguesLabel,
		Season:      s.season,
		Players:     merged,
	}
}

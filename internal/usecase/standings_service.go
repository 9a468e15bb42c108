package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-data-proxy/internal/domain/competition"
	"github.com/riskibarqy/football-data-proxy/internal/domain/standing"
	"github.com/riskibarqy/football-data-proxy/internal/platform/cache"
	"github.com/riskibarqy/football-data-proxy/internal/platform/logging"
)

type StandingsService struct {
	provider FootballDataProvider
	cache    *cache.Store
	logger   *logging.Logger
}

func NewStandingsService(provider FootballDataProvider, store *cache.Store, logger *logging.Logger) *StandingsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StandingsService{
		provider: provider,
		cache:    store,
		logger:   logger,
	}
}

// GetByCompetition returns the first standings table of the competition,
// served from cache while fresh.
func (s *StandingsService) GetByCompetition(ctx context.Context, comp competition.Competition) (standing.Table, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.GetByCompetition")
	defer span.End()

	if err := comp.Validate(); err != nil {
		return standing.Table{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return cache.Load(ctx, s.cache, standingsCacheKey(comp.Code), func(ctx context.Context) (standing.Table, error) {
		payload, err := s.provider.FetchStandings(ctx, comp.Code)
		if err != nil {
			return standing.Table{}, fmt.Errorf("fetch standings competition=%s: %w", comp.Code, err)
		}

		table, err := buildStandingsTable(comp.Code, payload)
		if err != nil {
			return standing.Table{}, err
		}
		s.logger.InfoContext(ctx, "standings loaded", "competition", comp.Code, "rows", len(table.Rows))
		return table, nil
	})
}

func buildStandingsTable(code string, payload ExternalStandings) (standing.Table, error) {
	if len(payload.Tables) == 0 {
		return standing.Table{}, fmt.Errorf("%w: competition=%s returned no standings table", ErrUpstream, code)
	}

	first := payload.Tables[0]
	rows := make([]standing.Row, 0, len(first.Rows))
	for _, item := range first.Rows {
		rows = append(rows, standing.Row{
			TeamID:         item.Team.ID,
			Position:       item.Position,
			Name:           item.Team.Name,
			ShortName:      item.Team.ShortName,
			Crest:          item.Team.Crest,
			Points:         item.Points,
			GoalsFor:       item.GoalsFor,
			GoalsAgainst:   item.GoalsAgainst,
			GoalDifference: item.GoalDifference,
			Played:         item.PlayedGames,
			Won:            item.Won,
			Drawn:          item.Draw,
			Lost:           item.Lost,
		})
	}

	return standing.Table{
		CompetitionCode: code,
		Competition:     payload.Competition.Name,
		Season:          standing.SeasonFromStartDate(payload.Season.StartDate),
		Rows:            rows,
	}, nil
}

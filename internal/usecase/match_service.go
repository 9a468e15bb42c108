package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/football-data-proxy/internal/domain/competition"
	"github.com/riskibarqy/football-data-proxy/internal/domain/match"
	"github.com/riskibarqy/football-data-proxy/internal/platform/cache"
	"github.com/riskibarqy/football-data-proxy/internal/platform/logging"
)

const (
	scheduleDaysBack  = 30
	scheduleDaysAhead = 90
	roundsDaysBack    = 7
	roundsDaysAhead   = 90
	maxMatchdayFilter = 50
)

type MatchServiceConfig struct {
	Season            string
	LeagueParallelism int
	Now               func() time.Time
}

type MatchService struct {
	provider    FootballDataProvider
	cache       *cache.Store
	logger      *logging.Logger
	season      string
	parallelism int
	now         func() time.Time
}

func NewMatchService(provider FootballDataProvider, store *cache.Store, cfg MatchServiceConfig, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &MatchService{
		provider:    provider,
		cache:       store,
		logger:      logger,
		season:      cfg.Season,
		parallelism: cfg.LeagueParallelism,
		now:         now,
	}
}

// ListByCompetition returns the matches from 30 days ago to 90 days ahead.
// It is never cached and makes a single upstream attempt.
func (s *MatchService) ListByCompetition(ctx context.Context, comp competition.Competition) (match.Schedule, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListByCompetition")
	defer span.End()

	if err := comp.Validate(); err != nil {
		return match.Schedule{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	today := s.now()
	payload, err := s.provider.FetchMatches(ctx, ExternalMatchQuery{
		CompetitionCode: comp.Code,
		DateFrom:        today.AddDate(0, 0, -scheduleDaysBack),
		DateTo:          today.AddDate(0, 0, scheduleDaysAhead),
		SingleAttempt:   true,
	})
	if err != nil {
		return match.Schedule{}, fmt.Errorf("fetch matches competition=%s: %w", comp.Code, err)
	}

	s.logger.InfoContext(ctx, "matches loaded", "competition", comp.Code, "matches", len(payload.Matches))
	return match.Schedule{
		Competition: payload.Competition.Name,
		Season:      s.season,
		Matches:     mapExternalMatches(payload.Matches),
	}, nil
}

// ListRounds groups the matches from 7 days ago to 90 days ahead by matchday.
// A positive matchday narrows the upstream query to that round.
func (s *MatchService) ListRounds(ctx context.Context, comp competition.Competition, matchday int) (match.Rounds, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListRounds")
	defer span.End()

	if err := comp.Validate(); err != nil {
		return match.Rounds{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if matchday < 0 || matchday > maxMatchdayFilter {
		return match.Rounds{}, fmt.Errorf("%w: matchday must be between 0 and %d", ErrInvalidInput, maxMatchdayFilter)
	}

	return cache.Load(ctx, s.cache, roundsCacheKey(comp.Code, matchday), func(ctx context.Context) (match.Rounds, error) {
		today := s.now()
		payload, err := s.provider.FetchMatches(ctx, ExternalMatchQuery{
			CompetitionCode: comp.Code,
			DateFrom:        today.AddDate(0, 0, -roundsDaysBack),
			DateTo:          today.AddDate(0, 0, roundsDaysAhead),
			Matchday:        matchday,
		})
		if err != nil {
			return match.Rounds{}, fmt.Errorf("fetch rounds competition=%s: %w", comp.Code, err)
		}

		return match.Rounds{
			Competition: payload.Competition.Name,
			Season:      s.season,
			Rounds:      match.GroupByMatchday(mapExternalMatches(payload.Matches)),
		}, nil
	})
}

// ListAll concatenates every catalog competition's schedule. Competitions
// that fail are skipped.
func (s *MatchService) ListAll(ctx context.Context) (match.Schedule, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListAll")
	defer span.End()

	results := collectLeagues(ctx, s.logger, s.parallelism, "matches", s.ListByCompetition)
	merged := make([]match.Match, 0, len(results)*100)
	for _, result := range results {
		merged = append(merged, result.value.Matches...)
	}

	return match.Schedule{
		Competition: competition.AllLeaguesLabel,
		Season:      s.season,
		Matches:     merged,
	}, nil
}

// ListAllRounds returns each catalog competition's rounds keyed by the
// catalog display name, not the upstream one ("La Liga", not "Primera
// Division").
func (s *MatchService) ListAllRounds(ctx context.Context) (match.MergedRounds, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListAllRounds")
	defer span.End()

	results := collectLeagues(ctx, s.logger, s.parallelism, "rounds", func(ctx context.Context, comp competition.Competition) (match.Rounds, error) {
		return s.ListRounds(ctx, comp, 0)
	})

	leagues := make([]match.LeagueRounds, 0, len(results))
	for _, result := range results {
		leagues = append(leagues, match.LeagueRounds{
			Competition: result.competition.Name,
			Rounds:      result.value.Rounds,
		})
	}

	return match.MergedRounds{
		Competition: competition.AllLeaguesLabel,
		Season:      s.season,
		Leagues:     leagues,
	}, nil
}

func mapExternalMatches(items []ExternalMatch) []match.Match {
	out := make([]match.Match, 0, len(items))
	for _, item := range items {
		out = append(out, match.Match{
			ID:          item.ID,
			HomeTeam:    mapExternalTeam(item.HomeTeam),
			AwayTeam:    mapExternalTeam(item.AwayTeam),
			UTCDate:     item.UTCDate,
			Status:      item.Status,
			Stage:       match.NormalizeStage(item.Stage),
			Group:       item.Group,
			LastUpdated: item.LastUpdated,
			Matchday:    match.NormalizeMatchday(item.Matchday),
			Score:       item.Score,
			Competition: match.CompetitionRef{
				ID:   item.Competition.ID,
				Name: item.Competition.Name,
				Code: item.Competition.Code,
			},
		})
	}
	return out
}

func mapExternalTeam(team ExternalTeam) match.Team {
	return match.Team{
		ID:        team.ID,
		Name:      team.Name,
		ShortName: team.ShortName,
		Crest:     team.Crest,
	}
}

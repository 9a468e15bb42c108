package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/riskibarqy/football-data-proxy/internal/domain/competition"
	"github.com/riskibarqy/football-data-proxy/internal/platform/logging"
)

const (
	warmStatusSuccess = "success"
	warmStatusFailed  = "failed"

	warmTaskStandings = "standings"
	warmTaskPlayers   = "players"
	warmTaskRounds    = "rounds"
)

type CacheWarmResult struct {
	TaskCount    int
	SuccessCount int
	FailedCount  int
	Tasks        []CacheWarmTaskResult
}

type CacheWarmTaskResult struct {
	Competition string
	Task        string
	Status      string
	DurationMs  int64
	Message     string
}

// CacheWarmService loads per-competition cache entries that are missing or
// stale so cache-only readers such as PlayerService.ListCached have data.
type CacheWarmService struct {
	standings *StandingsService
	players   *PlayerService
	matches   *MatchService
	logger    *logging.Logger
	running   atomic.Bool
}

func NewCacheWarmService(
	standings *StandingsService,
	players *PlayerService,
	matches *MatchService,
	logger *logging.Logger,
) *CacheWarmService {
	if logger == nil {
		logger = logging.Default()
	}
	return &CacheWarmService{
		standings: standings,
		players:   players,
		matches:   matches,
		logger:    logger,
	}
}

// Warm runs one refresh pass over the catalog. Competitions are processed one
// at a time to stay inside the provider's rate limit. A pass already in
// progress makes Warm return immediately with an empty result.
func (s *CacheWarmService) Warm(ctx context.Context) CacheWarmResult {
	ctx, span := startUsecaseSpan(ctx, "usecase.CacheWarmService.Warm")
	defer span.End()

	if !s.running.CompareAndSwap(false, true) {
		s.logger.WarnContext(ctx, "cache warm already running, skipping")
		return CacheWarmResult{}
	}
	defer s.running.Store(false)

	comps := competition.All()
	result := CacheWarmResult{Tasks: make([]CacheWarmTaskResult, 0, len(comps)*3)}
	for _, comp := range comps {
		if ctx.Err() != nil {
			break
		}
		result.Tasks = append(result.Tasks,
			s.runTask(ctx, comp, warmTaskStandings, func(ctx context.Context) error {
				_, err := s.standings.GetByCompetition(ctx, comp)
				return err
			}),
			s.runTask(ctx, comp, warmTaskPlayers, func(ctx context.Context) error {
				_, err := s.players.ListByCompetition(ctx, comp)
				return err
			}),
			s.runTask(ctx, comp, warmTaskRounds, func(ctx context.Context) error {
				_, err := s.matches.ListRounds(ctx, comp, 0)
				return err
			}),
		)
	}

	for _, task := range result.Tasks {
		if task.Status == warmStatusSuccess {
			result.SuccessCount++
		} else {
			result.FailedCount++
		}
	}
	result.TaskCount = len(result.Tasks)

	s.logger.InfoContext(ctx, "cache warm finished",
		"tasks", result.TaskCount,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
	)
	return result
}

func (s *CacheWarmService) runTask(
	ctx context.Context,
	comp competition.Competition,
	task string,
	load func(ctx context.Context) error,
) CacheWarmTaskResult {
	start := time.Now()
	row := CacheWarmTaskResult{Competition: comp.Code, Task: task}

	if err := load(ctx); err != nil {
		row.Status = warmStatusFailed
		row.Message = err.Error()
		s.logger.WarnContext(ctx, "cache warm task failed",
			"competition", comp.Code,
			"task", task,
			"error", err,
		)
	} else {
		row.Status = warmStatusSuccess
	}
	row.DurationMs = time.Since(start).Milliseconds()
	return row
}

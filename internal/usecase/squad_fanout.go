package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/football-data-proxy/internal/domain/player"
	"github.com/riskibarqy/football-data-proxy/internal/domain/standing"
	"github.com/riskibarqy/football-data-proxy/internal/platform/logging"
	"github.com/riskibarqy/football-data-proxy/internal/platform/resilience"
)

const (
	defaultSquadStagger       = time.Second
	defaultSquadWorkers       = 32
	defaultTeamRateLimitWait  = 60 * time.Second
	maxSquadFanoutWorkerCount = 64
)

type SquadFanoutConfig struct {
	// Stagger starts task i no earlier than i*Stagger after Collect begins.
	// Zero disables staggering.
	Stagger time.Duration
	// MaxWorkers bounds concurrent team requests.
	MaxWorkers int
	// RateLimitWait is slept once before the single retry of a 429'd team.
	RateLimitWait time.Duration
	Sleep         resilience.SleepFunc
	Now           func() time.Time
}

func DefaultSquadFanoutConfig() SquadFanoutConfig {
	return SquadFanoutConfig{
		Stagger:       defaultSquadStagger,
		MaxWorkers:    defaultSquadWorkers,
		RateLimitWait: defaultTeamRateLimitWait,
		Sleep:         resilience.ContextSleep,
		Now:           time.Now,
	}
}

func normalizeSquadFanoutConfig(cfg SquadFanoutConfig) SquadFanoutConfig {
	if cfg.Stagger < 0 {
		cfg.Stagger = 0
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = defaultSquadWorkers
	}
	if cfg.MaxWorkers > maxSquadFanoutWorkerCount {
		cfg.MaxWorkers = maxSquadFanoutWorkerCount
	}
	if cfg.RateLimitWait < 0 {
		cfg.RateLimitWait = 0
	}
	if cfg.Sleep == nil {
		cfg.Sleep = resilience.ContextSleep
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return cfg
}

// squadResult is the outcome of one team task. A failed team keeps its slot
// with err set and no players.
type squadResult struct {
	team    standing.TeamRef
	players []player.Player
	err     error
}

type squadFanout struct {
	provider FootballDataProvider
	cfg      SquadFanoutConfig
	logger   *logging.Logger
}

func newSquadFanout(provider FootballDataProvider, cfg SquadFanoutConfig, logger *logging.Logger) *squadFanout {
	if logger == nil {
		logger = logging.Default()
	}
	return &squadFanout{
		provider: provider,
		cfg:      normalizeSquadFanoutConfig(cfg),
		logger:   logger,
	}
}

// Collect fetches every team's squad concurrently and merges the players in
// team order. Failed teams are logged and contribute nothing.
func (f *squadFanout) Collect(ctx context.Context, teams []standing.TeamRef) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.squadFanout.Collect")
	defer span.End()

	if len(teams) == 0 {
		return []player.Player{}, nil
	}

	workerCount := f.cfg.MaxWorkers
	if workerCount > len(teams) {
		workerCount = len(teams)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create squad worker pool: %w", err)
	}
	defer pool.Release()

	// Task i starts no earlier than start+i*Stagger, however long it queued
	// for a worker.
	start := f.cfg.Now()
	results := make([]squadResult, len(teams))
	var workers sync.WaitGroup
	for i, team := range teams {
		i, team := i, team
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			delay := start.Add(time.Duration(i) * f.cfg.Stagger).Sub(f.cfg.Now())
			players, err := f.fetchTeam(ctx, team, delay)
			results[i] = squadResult{team: team, players: players, err: err}
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit squad task to worker pool: %w", err)
		}
	}
	workers.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged := make([]player.Player, 0, len(teams)*30)
	failed := 0
	for _, result := range results {
		if result.err != nil {
			failed++
			f.logger.WarnContext(ctx, "team squad fetch failed, skipping team",
				"team_id", result.team.ID,
				"team", result.team.Name,
				"error", result.err,
			)
			continue
		}
		merged = append(merged, result.players...)
	}

	f.logger.InfoContext(ctx, "squad fan-out finished",
		"teams", len(teams),
		"failed_teams", failed,
		"players", len(merged),
	)
	return merged, nil
}

func (f *squadFanout) fetchTeam(ctx context.Context, team standing.TeamRef, delay time.Duration) ([]player.Player, error) {
	if delay > 0 {
		if err := f.cfg.Sleep(ctx, delay); err != nil {
			return nil, err
		}
	}

	squad, err := f.provider.FetchTeamSquad(ctx, team.ID)
	if crerr.Is(err, resilience.ErrRateLimited) {
		f.logger.WarnContext(ctx, "team squad rate limited, retrying once",
			"team_id", team.ID,
			"wait", f.cfg.RateLimitWait,
		)
		if sleepErr := f.cfg.Sleep(ctx, f.cfg.RateLimitWait); sleepErr != nil {
			return nil, sleepErr
		}
		squad, err = f.provider.FetchTeamSquad(ctx, team.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch squad team=%d: %w", team.ID, err)
	}

	players := make([]player.Player, 0, len(squad.Squad))
	for _, member := range squad.Squad {
		players = append(players, player.FromSquadMember(member, team.ID, team.Name))
	}
	return players, nil
}

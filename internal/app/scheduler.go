package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/football-data-proxy/internal/platform/logging"
	"github.com/riskibarqy/football-data-proxy/internal/usecase"
	"github.com/robfig/cron/v3"
)

type cacheWarmer interface {
	Warm(ctx context.Context) usecase.CacheWarmResult
}

// CacheWarmScheduler runs cache warm passes on a cron schedule, plus one
// pass right after Start.
type CacheWarmScheduler struct {
	cron   *cron.Cron
	warmer cacheWarmer
	logger *logging.Logger

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewCacheWarmScheduler(schedule string, warmer cacheWarmer, logger *logging.Logger) (*CacheWarmScheduler, error) {
	if warmer == nil {
		return nil, fmt.Errorf("cache warmer is required")
	}
	if logger == nil {
		logger = logging.Default()
	}

	cronLogger := cronLogAdapter{logger: logger}
	s := &CacheWarmScheduler{
		cron: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		warmer: warmer,
		logger: logger,
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())

	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		return nil, fmt.Errorf("schedule cache warm %q: %w", schedule, err)
	}
	return s, nil
}

func (s *CacheWarmScheduler) Start() {
	s.logger.Info("cache warm scheduler starting", "entries", len(s.cron.Entries()))
	s.cron.Start()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run()
	}()
}

// Stop cancels an in-flight pass and waits for running jobs to return or ctx
// to expire.
func (s *CacheWarmScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	s.cancel()
	s.mu.Unlock()

	cronDone := s.cron.Stop()
	initialDone := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(initialDone)
	}()

	for _, done := range []<-chan struct{}{cronDone.Done(), initialDone} {
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	s.logger.Info("cache warm scheduler stopped")
	return nil
}

func (s *CacheWarmScheduler) run() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()
	if ctx.Err() != nil {
		return
	}

	result := s.warmer.Warm(ctx)
	if result.FailedCount > 0 {
		s.logger.Warn("cache warm pass had failures", "failed", result.FailedCount, "tasks", result.TaskCount)
	}
}

// cronLogAdapter satisfies cron.Logger.
type cronLogAdapter struct {
	logger *logging.Logger
}

func (a cronLogAdapter) Info(msg string, keysAndValues ...any) {
	a.logger.Debug("cron: "+msg, keysAndValues...)
}

func (a cronLogAdapter) Error(err error, msg string, keysAndValues ...any) {
	a.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}

package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/football-data-proxy/external/footballdata"
	"github.com/riskibarqy/football-data-proxy/internal/config"
	"github.com/riskibarqy/football-data-proxy/internal/interfaces/httpapi"
	"github.com/riskibarqy/football-data-proxy/internal/platform/cache"
	"github.com/riskibarqy/football-data-proxy/internal/platform/logging"
	"github.com/riskibarqy/football-data-proxy/internal/platform/resilience"
	"github.com/riskibarqy/football-data-proxy/internal/usecase"
)

// NewHTTPServer wires the proxy. The returned scheduler is nil when cache
// warming is disabled.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, *CacheWarmScheduler, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	store := cache.NewStore(cfg.CacheTTL, logger.Named("cache"))

	retry := resilience.DefaultRetryPolicy()
	retry.MaxAttempts = cfg.FootballDataMaxAttempts
	retry.RateLimitBackoff = resilience.LinearBackoff(cfg.FootballDataRateLimitBackoff)
	retry.TransientBackoff = resilience.LinearBackoff(cfg.FootballDataTransientBackoff)

	provider := footballdata.NewClient(footballdata.ClientConfig{
		BaseURL:           cfg.FootballDataBaseURL,
		Token:             cfg.FootballDataAPIKey,
		Timeout:           cfg.FootballDataTimeout,
		TeamTimeout:       cfg.FootballDataTeamTimeout,
		RequestsPerMinute: cfg.FootballDataRequestsPerMinute,
		Retry:             retry,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FootballDataCircuitEnabled,
			FailureThreshold: cfg.FootballDataCircuitFailureCount,
			OpenTimeout:      cfg.FootballDataCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FootballDataCircuitHalfOpenMaxReq,
		},
		Logger: logger.Named("football-data"),
	})
	if cfg.FootballDataAPIKey == "" {
		logger.Warn("football-data api key is empty, upstream will reject requests")
	}

	fanout := usecase.DefaultSquadFanoutConfig()
	fanout.Stagger = cfg.SquadFanoutStagger
	fanout.MaxWorkers = cfg.SquadFanoutWorkers
	fanout.RateLimitWait = cfg.FootballDataTeamRateLimitWait

	serviceLogger := logger.Named("usecase")
	standingsSvc := usecase.NewStandingsService(provider, store, serviceLogger)
	playerSvc := usecase.NewPlayerService(provider, standingsSvc, store, usecase.PlayerServiceConfig{
		Season:            cfg.SeasonLabel,
		LeagueParallelism: cfg.AllLeaguesParallelism,
		Fanout:            fanout,
	}, serviceLogger)
	matchSvc := usecase.NewMatchService(provider, store, usecase.MatchServiceConfig{
		Season:            cfg.SeasonLabel,
		LeagueParallelism: cfg.AllLeaguesParallelism,
	}, serviceLogger)
	scorerSvc := usecase.NewScorerService(provider, store, serviceLogger)

	var scheduler *CacheWarmScheduler
	if cfg.CacheWarmEnabled {
		warmSvc := usecase.NewCacheWarmService(standingsSvc, playerSvc, matchSvc, serviceLogger)
		var err error
		scheduler, err = NewCacheWarmScheduler(cfg.CacheWarmSchedule, warmSvc, logger.Named("cache-warm"))
		if err != nil {
			return nil, nil, err
		}
	}

	handler := httpapi.NewHandler(standingsSvc, playerSvc, matchSvc, scorerSvc, logger.Named("http"))
	router := httpapi.NewRouter(handler, logger.Named("http"), cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, scheduler, nil
}

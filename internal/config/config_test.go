package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/football-data-proxy/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8000" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.CacheTTL != 300*time.Second {
		t.Fatalf("unexpected CacheTTL: %s", cfg.CacheTTL)
	}
	if cfg.SeasonLabel != "2024-25" {
		t.Fatalf("unexpected SeasonLabel: %q", cfg.SeasonLabel)
	}
	if cfg.FootballDataBaseURL != "https://api.football-data.org/v4" {
		t.Fatalf("unexpected FootballDataBaseURL: %q", cfg.FootballDataBaseURL)
	}
	if cfg.FootballDataMaxAttempts != 3 {
		t.Fatalf("unexpected FootballDataMaxAttempts: %d", cfg.FootballDataMaxAttempts)
	}
	if cfg.FootballDataRateLimitBackoff != 15*time.Second || cfg.FootballDataTransientBackoff != 5*time.Second {
		t.Fatalf("unexpected backoff steps: %s %s", cfg.FootballDataRateLimitBackoff, cfg.FootballDataTransientBackoff)
	}
	if cfg.FootballDataTeamRateLimitWait != 60*time.Second {
		t.Fatalf("unexpected FootballDataTeamRateLimitWait: %s", cfg.FootballDataTeamRateLimitWait)
	}
	if cfg.SquadFanoutStagger != time.Second || cfg.SquadFanoutWorkers != 32 {
		t.Fatalf("unexpected fan-out config: %s %d", cfg.SquadFanoutStagger, cfg.SquadFanoutWorkers)
	}
	if cfg.AllLeaguesParallelism != 1 {
		t.Fatalf("unexpected AllLeaguesParallelism: %d", cfg.AllLeaguesParallelism)
	}
	if !cfg.FootballDataCircuitEnabled {
		t.Fatalf("expected circuit breaker enabled by default")
	}
	if cfg.CacheWarmEnabled {
		t.Fatalf("expected cache warm disabled by default")
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel)
	}
}

func TestLoad_APIKeyAlias(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FOOTBALL_DATA_API_KEY", "")
	t.Setenv("API_KEY", "legacy-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.FootballDataAPIKey != "legacy-key" {
		t.Fatalf("expected API_KEY fallback, got %q", cfg.FootballDataAPIKey)
	}

	t.Setenv("FOOTBALL_DATA_API_KEY", "primary-key")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.FootballDataAPIKey != "primary-key" {
		t.Fatalf("expected FOOTBALL_DATA_API_KEY to win, got %q", cfg.FootballDataAPIKey)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-other=1, uptrace-dsn=\"https://token@api.uptrace.dev?grpc=4317\"")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_SERVICE_NAME", "football-proxy-stage")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://pyroscope:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "football-proxy-stage" {
		t.Fatalf("unexpected PyroscopeAppName: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.CORSAllowedOrigins[0] != "https://a.example" || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_RejectsOutOfRangeValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "zero cache ttl", key: "CACHE_TTL", value: "0s"},
		{name: "bad duration", key: "FOOTBALL_DATA_TIMEOUT", value: "soon"},
		{name: "zero attempts", key: "FOOTBALL_DATA_MAX_ATTEMPTS", value: "0"},
		{name: "negative rpm", key: "FOOTBALL_DATA_REQUESTS_PER_MINUTE", value: "-1"},
		{name: "too many workers", key: "SQUAD_FANOUT_WORKERS", value: "65"},
		{name: "parallelism above catalog", key: "ALL_LEAGUES_PARALLELISM", value: "6"},
		{name: "bad base url", key: "FOOTBALL_DATA_BASE_URL", value: "not a url"},
		{name: "bad bool", key: "CACHE_WARM_ENABLED", value: "maybe"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(tc.key, tc.value)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tc.key, tc.value)
			}
		})
	}
}

func TestLoad_CacheWarmScheduleValidatedWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CACHE_WARM_SCHEDULE", "every now and then")

	t.Setenv("CACHE_WARM_ENABLED", "false")
	if _, err := Load(); err != nil {
		t.Fatalf("schedule must be ignored while disabled: %v", err)
	}

	t.Setenv("CACHE_WARM_ENABLED", "true")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid CACHE_WARM_SCHEDULE")
	}

	t.Setenv("CACHE_WARM_SCHEDULE", "*/5 * * * *")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.CacheWarmEnabled || cfg.CacheWarmSchedule != "*/5 * * * *" {
		t.Fatalf("unexpected cache warm config: %v %q", cfg.CacheWarmEnabled, cfg.CacheWarmSchedule)
	}
}

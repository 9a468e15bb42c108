package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/riskibarqy/football-data-proxy/internal/platform/logging"
	"github.com/robfig/cron/v3"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string        `validate:"oneof=dev stage prod"`
	ServiceName        string        `validate:"required"`
	ServiceVersion     string        `validate:"required"`
	HTTPAddr           string        `validate:"required"`
	ReadTimeout        time.Duration `validate:"gt=0"`
	WriteTimeout       time.Duration `validate:"gt=0"`
	CORSAllowedOrigins []string      `validate:"min=1,dive,required"`
	CacheTTL           time.Duration `validate:"gt=0"`
	SeasonLabel        string        `validate:"required"`
	LogLevel           logging.Level

	FootballDataBaseURL               string        `validate:"required,url"`
	FootballDataAPIKey                string
	FootballDataTimeout               time.Duration `validate:"gt=0"`
	FootballDataTeamTimeout           time.Duration `validate:"gt=0"`
	FootballDataMaxAttempts           int           `validate:"gte=1,lte=10"`
	FootballDataRateLimitBackoff      time.Duration `validate:"gte=0"`
	FootballDataTransientBackoff      time.Duration `validate:"gte=0"`
	FootballDataTeamRateLimitWait     time.Duration `validate:"gte=0"`
	FootballDataRequestsPerMinute     int           `validate:"gte=0"`
	FootballDataCircuitEnabled        bool
	FootballDataCircuitFailureCount   int           `validate:"gte=1"`
	FootballDataCircuitOpenTimeout    time.Duration `validate:"gt=0"`
	FootballDataCircuitHalfOpenMaxReq int           `validate:"gte=1"`

	SquadFanoutStagger    time.Duration `validate:"gte=0"`
	SquadFanoutWorkers    int           `validate:"gte=1,lte=64"`
	AllLeaguesParallelism int           `validate:"gte=1,lte=5"`

	CacheWarmEnabled  bool
	CacheWarmSchedule string

	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceLogsEnabled         bool
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

// Load reads the environment, after merging an optional .env file from the
// working directory. Variables already set in the process win.
func Load() (Config, error) {
	_ = godotenv.Load()

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:              appEnv,
		ServiceName:         getEnv("APP_SERVICE_NAME", "football-data-proxy"),
		ServiceVersion:      getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:            getEnv("APP_HTTP_ADDR", ":8000"),
		CORSAllowedOrigins:  splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SeasonLabel:         strings.TrimSpace(getEnv("SEASON_LABEL", "2024-25")),
		LogLevel:            logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		FootballDataBaseURL: strings.TrimSpace(getEnv("FOOTBALL_DATA_BASE_URL", "https://api.football-data.org/v4")),
		FootballDataAPIKey:  strings.TrimSpace(getEnv("FOOTBALL_DATA_API_KEY", getEnv("API_KEY", ""))),
		CacheWarmSchedule:   strings.TrimSpace(getEnv("CACHE_WARM_SCHEDULE", "*/10 * * * *")),
		PprofAddr:           strings.TrimSpace(getEnv("PPROF_ADDR", ":6060")),
		PyroscopeAuthToken:  strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
	}

	durations := []struct {
		key      string
		fallback string
		target   *time.Duration
	}{
		{"APP_READ_TIMEOUT", "10s", &cfg.ReadTimeout},
		// All-leagues aggregations walk every squad with a stagger.
		{"APP_WRITE_TIMEOUT", "10m", &cfg.WriteTimeout},
		{"CACHE_TTL", "300s", &cfg.CacheTTL},
		{"FOOTBALL_DATA_TIMEOUT", "15s", &cfg.FootballDataTimeout},
		{"FOOTBALL_DATA_TEAM_TIMEOUT", "30s", &cfg.FootballDataTeamTimeout},
		{"FOOTBALL_DATA_RATE_LIMIT_BACKOFF", "15s", &cfg.FootballDataRateLimitBackoff},
		{"FOOTBALL_DATA_TRANSIENT_BACKOFF", "5s", &cfg.FootballDataTransientBackoff},
		{"FOOTBALL_DATA_TEAM_RATE_LIMIT_WAIT", "60s", &cfg.FootballDataTeamRateLimitWait},
		{"FOOTBALL_DATA_CIRCUIT_OPEN_TIMEOUT", "30s", &cfg.FootballDataCircuitOpenTimeout},
		{"SQUAD_FANOUT_STAGGER", "1s", &cfg.SquadFanoutStagger},
		{"PYROSCOPE_UPLOAD_RATE", "15s", &cfg.PyroscopeUploadRate},
	}
	for _, item := range durations {
		value, err := time.ParseDuration(getEnv(item.key, item.fallback))
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", item.key, err)
		}
		*item.target = value
	}

	ints := []struct {
		key      string
		fallback int
		target   *int
	}{
		{"FOOTBALL_DATA_MAX_ATTEMPTS", 3, &cfg.FootballDataMaxAttempts},
		{"FOOTBALL_DATA_REQUESTS_PER_MINUTE", 0, &cfg.FootballDataRequestsPerMinute},
		{"FOOTBALL_DATA_CIRCUIT_FAILURE_COUNT", 5, &cfg.FootballDataCircuitFailureCount},
		{"FOOTBALL_DATA_CIRCUIT_HALF_OPEN_MAX_REQ", 1, &cfg.FootballDataCircuitHalfOpenMaxReq},
		{"SQUAD_FANOUT_WORKERS", 32, &cfg.SquadFanoutWorkers},
		{"ALL_LEAGUES_PARALLELISM", 1, &cfg.AllLeaguesParallelism},
	}
	for _, item := range ints {
		value, err := getEnvAsInt(item.key, item.fallback)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", item.key, err)
		}
		*item.target = value
	}

	bools := []struct {
		key      string
		fallback string
		target   *bool
	}{
		{"FOOTBALL_DATA_CIRCUIT_ENABLED", "true", &cfg.FootballDataCircuitEnabled},
		{"CACHE_WARM_ENABLED", "false", &cfg.CacheWarmEnabled},
		{"PPROF_ENABLED", "false", &cfg.PprofEnabled},
		{"UPTRACE_ENABLED", "false", &cfg.UptraceEnabled},
		{"UPTRACE_LOGS_ENABLED", "true", &cfg.UptraceLogsEnabled},
		{"PYROSCOPE_ENABLED", "false", &cfg.PyroscopeEnabled},
	}
	for _, item := range bools {
		value, err := strconv.ParseBool(getEnv(item.key, item.fallback))
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", item.key, err)
		}
		*item.target = value
	}

	cfg.UptraceDSN = strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	cfg.PyroscopeServerAddress = strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	cfg.PyroscopeBasicAuthUser = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", ""))
	cfg.PyroscopeBasicAuthPassword = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", ""))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges and the settings that only matter when a
// feature is switched on.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if c.UptraceEnabled && c.UptraceDSN == "" {
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	if c.PyroscopeEnabled {
		if c.PyroscopeServerAddress == "" {
			return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
		}
		if c.PyroscopeAppName == "" {
			return fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
		}
		if c.PyroscopeUploadRate <= 0 {
			return fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
		}
	}
	if c.PprofEnabled && c.PprofAddr == "" {
		return fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}
	if c.CacheWarmEnabled {
		if _, err := cron.ParseStandard(c.CacheWarmSchedule); err != nil {
			return fmt.Errorf("parse CACHE_WARM_SCHEDULE: %w", err)
		}
	}

	return nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

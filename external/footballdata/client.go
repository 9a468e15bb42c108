package footballdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-data-proxy/internal/domain/match"
	"github.com/riskibarqy/football-data-proxy/internal/domain/player"
	"github.com/riskibarqy/football-data-proxy/internal/platform/logging"
	"github.com/riskibarqy/football-data-proxy/internal/platform/resilience"
	"github.com/riskibarqy/football-data-proxy/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL     = "https://api.football-data.org/v4"
	defaultTimeout     = 15 * time.Second
	defaultTeamTimeout = 30 * time.Second
	authHeader         = "X-Auth-Token"
	dateLayout         = "2006-01-02"
	maxResponseBytes   = 6 << 20
)

// errProviderUnavailable marks 5xx answers. They are not retried but count
// against the circuit breaker.
var errProviderUnavailable = crerr.New("football-data unavailable")

type ClientConfig struct {
	HTTPClient  *http.Client
	BaseURL     string
	Token       string
	Timeout     time.Duration
	TeamTimeout time.Duration
	// RequestsPerMinute paces outgoing requests. Zero disables pacing.
	RequestsPerMinute int
	Retry             resilience.RetryPolicy
	CircuitBreaker    resilience.CircuitBreakerConfig
	Logger            *logging.Logger
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	timeout        time.Duration
	teamTimeout    time.Duration
	retry          resilience.RetryPolicy
	limiter        *rate.Limiter
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	logger         *logging.Logger
}

var _ usecase.FootballDataProvider = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	teamTimeout := cfg.TeamTimeout
	if teamTimeout <= 0 {
		teamTimeout = defaultTeamTimeout
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1)
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)
	client := &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		timeout:        timeout,
		teamTimeout:    teamTimeout,
		retry:          resilience.NormalizeRetryPolicy(cfg.Retry),
		limiter:        limiter,
		circuitEnabled: cfg.CircuitBreaker.Enabled,
		logger:         logger,
	}
	client.breaker = resilience.NewCircuitBreaker("football-data", breakerCfg, isCircuitFailure, func(from, to string) {
		logger.Warn("football-data circuit breaker state changed", "from", from, "to", to)
	})
	return client
}

func (c *Client) FetchStandings(ctx context.Context, competitionCode string) (usecase.ExternalStandings, error) {
	code, err := normalizeCode(competitionCode)
	if err != nil {
		return usecase.ExternalStandings{}, err
	}

	var payload standingsEnvelope
	path := "/competitions/" + code + "/standings"
	if err := c.getJSON(ctx, path, nil, c.retry, c.timeout, &payload); err != nil {
		return usecase.ExternalStandings{}, err
	}

	tables := make([]usecase.ExternalStandingTable, 0, len(payload.Standings))
	for _, group := range payload.Standings {
		rows := make([]usecase.ExternalStandingRow, 0, len(group.Table))
		for _, row := range group.Table {
			rows = append(rows, usecase.ExternalStandingRow{
				Position:       row.Position,
				Team:           mapTeam(row.Team),
				PlayedGames:    row.PlayedGames,
				Won:            row.Won,
				Draw:           row.Draw,
				Lost:           row.Lost,
				Points:         row.Points,
				GoalsFor:       row.GoalsFor,
				GoalsAgainst:   row.GoalsAgainst,
				GoalDifference: row.GoalDifference,
			})
		}
		tables = append(tables, usecase.ExternalStandingTable{
			Stage: group.Stage,
			Type:  group.Type,
			Rows:  rows,
		})
	}

	return usecase.ExternalStandings{
		Competition: mapCompetition(payload.Competition),
		Season:      mapSeason(payload.Season),
		Tables:      tables,
	}, nil
}

// FetchTeamSquad makes a single attempt under the team timeout.
func (c *Client) FetchTeamSquad(ctx context.Context, teamID int64) (usecase.ExternalTeamSquad, error) {
	if teamID <= 0 {
		return usecase.ExternalTeamSquad{}, fmt.Errorf("%w: team id must be greater than zero", usecase.ErrInvalidInput)
	}

	var payload teamEnvelope
	path := "/teams/" + strconv.FormatInt(teamID, 10)
	if err := c.getJSON(ctx, path, nil, c.retry.SingleAttempt(), c.teamTimeout, &payload); err != nil {
		return usecase.ExternalTeamSquad{}, err
	}

	squad := make([]player.SquadMember, 0, len(payload.Squad))
	for _, member := range payload.Squad {
		squad = append(squad, player.SquadMember{
			ID:          member.ID,
			Name:        member.Name,
			Position:    member.Position,
			Nationality: member.Nationality,
			DateOfBirth: member.DateOfBirth,
			ShirtNumber: member.ShirtNumber,
			Role:        member.Role,
		})
	}

	return usecase.ExternalTeamSquad{
		Team: usecase.ExternalTeam{
			ID:        payload.ID,
			Name:      payload.Name,
			ShortName: payload.ShortName,
			Crest:     payload.Crest,
		},
		Squad: squad,
	}, nil
}

func (c *Client) FetchMatches(ctx context.Context, query usecase.ExternalMatchQuery) (usecase.ExternalMatches, error) {
	code, err := normalizeCode(query.CompetitionCode)
	if err != nil {
		return usecase.ExternalMatches{}, err
	}

	values := url.Values{}
	if !query.DateFrom.IsZero() {
		values.Set("dateFrom", query.DateFrom.Format(dateLayout))
	}
	if !query.DateTo.IsZero() {
		values.Set("dateTo", query.DateTo.Format(dateLayout))
	}
	if query.Matchday > 0 {
		values.Set("matchday", strconv.Itoa(query.Matchday))
	}

	policy := c.retry
	if query.SingleAttempt {
		policy = c.retry.SingleAttempt()
	}

	var payload matchesEnvelope
	if err := c.getJSON(ctx, "/competitions/"+code+"/matches", values, policy, c.timeout, &payload); err != nil {
		return usecase.ExternalMatches{}, err
	}

	items := make([]usecase.ExternalMatch, 0, len(payload.Matches))
	for _, item := range payload.Matches {
		items = append(items, usecase.ExternalMatch{
			ID:          item.ID,
			HomeTeam:    mapTeam(item.HomeTeam),
			AwayTeam:    mapTeam(item.AwayTeam),
			UTCDate:     item.UTCDate,
			Status:      item.Status,
			Stage:       item.Stage,
			Group:       item.Group,
			LastUpdated: item.LastUpdated,
			Matchday:    item.Matchday,
			Score:       mapScore(item.Score),
			Competition: mapCompetition(item.Competition),
		})
	}

	return usecase.ExternalMatches{
		Competition: mapCompetition(payload.Competition),
		Matches:     items,
	}, nil
}

func (c *Client) FetchScorers(ctx context.Context, competitionCode string, limit int) (usecase.ExternalScorers, error) {
	code, err := normalizeCode(competitionCode)
	if err != nil {
		return usecase.ExternalScorers{}, err
	}

	values := url.Values{}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}

	var payload scorersEnvelope
	if err := c.getJSON(ctx, "/competitions/"+code+"/scorers", values, c.retry, c.timeout, &payload); err != nil {
		return usecase.ExternalScorers{}, err
	}

	items := make([]usecase.ExternalScorer, 0, len(payload.Scorers))
	for _, item := range payload.Scorers {
		goals := 0
		if item.Goals != nil {
			goals = *item.Goals
		}
		items = append(items, usecase.ExternalScorer{
			PlayerID:          item.Player.ID,
			PlayerName:        item.Player.Name,
			PlayerNationality: item.Player.Nationality,
			PlayerPosition:    item.Player.Position,
			Team:              mapTeam(item.Team),
			Goals:             goals,
			Assists:           item.Assists,
			Penalties:         item.Penalties,
		})
	}

	return usecase.ExternalScorers{
		Competition: mapCompetition(payload.Competition),
		Season:      mapSeason(payload.Season),
		Scorers:     items,
	}, nil
}

// getJSON fetches path under policy and decodes the body into target. Every
// returned error is marked usecase.ErrUpstream.
func (c *Client) getJSON(
	ctx context.Context,
	path string,
	query url.Values,
	policy resilience.RetryPolicy,
	timeout time.Duration,
	target any,
) error {
	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	var raw []byte
	err := policy.Do(ctx, func(ctx context.Context, attempt int) error {
		body, reqErr := c.guardedRequest(ctx, fullURL, timeout)
		if reqErr != nil {
			c.logger.WarnContext(ctx, "football-data request attempt failed",
				"path", path,
				"attempt", attempt+1,
				"max_attempts", policy.MaxAttempts,
				"error", reqErr,
			)
			return reqErr
		}
		raw = body
		return nil
	})
	if err != nil {
		return crerr.Mark(err, usecase.ErrUpstream)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Mark(crerr.Wrap(err, "decode provider payload"), usecase.ErrUpstream)
	}
	return nil
}

func (c *Client) guardedRequest(ctx context.Context, fullURL string, timeout time.Duration) ([]byte, error) {
	if !c.circuitEnabled {
		return c.executeRequest(ctx, fullURL, timeout)
	}

	var raw []byte
	err := c.breaker.Execute(func() error {
		body, reqErr := c.executeRequest(ctx, fullURL, timeout)
		raw = body
		return reqErr
	})
	if crerr.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "football-data circuit breaker rejected request", "state", c.breaker.State())
	}
	return raw, err
}

func (c *Client) executeRequest(ctx context.Context, fullURL string, timeout time.Duration) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, crerr.Wrap(err, "wait for request slot")
		}
	}

	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set(authHeader, c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, crerr.Mark(
			crerr.Newf("send request: %s", sanitizeSensitiveText(err.Error(), c.token)),
			resilience.ErrTransient,
		)
	}
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if readErr != nil {
		return nil, crerr.Mark(crerr.Newf("read response body: %v", readErr), resilience.ErrTransient)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return raw, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, crerr.Mark(
			crerr.Newf("provider status=%d body=%s", resp.StatusCode, c.abbreviateBody(raw)),
			resilience.ErrRateLimited,
		)
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, crerr.Mark(
			crerr.Newf("provider status=%d body=%s", resp.StatusCode, c.abbreviateBody(raw)),
			errProviderUnavailable,
		)
	default:
		return nil, crerr.Newf("provider status=%d body=%s", resp.StatusCode, c.abbreviateBody(raw))
	}
}

func (c *Client) abbreviateBody(body []byte) string {
	return sanitizeSensitiveText(abbreviateBody(body), c.token)
}

func normalizeCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", fmt.Errorf("%w: competition code is required", usecase.ErrInvalidInput)
	}
	return url.PathEscape(code), nil
}

func isCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return crerr.Is(err, resilience.ErrTransient) || crerr.Is(err, errProviderUnavailable)
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" || token == "" {
		return value
	}
	return strings.ReplaceAll(value, token, "REDACTED")
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func mapCompetition(item competitionPayload) usecase.ExternalCompetition {
	return usecase.ExternalCompetition{ID: item.ID, Name: item.Name, Code: item.Code}
}

func mapSeason(item seasonPayload) usecase.ExternalSeason {
	return usecase.ExternalSeason{
		StartDate:       item.StartDate,
		EndDate:         item.EndDate,
		CurrentMatchday: item.CurrentMatchday,
	}
}

func mapTeam(item teamPayload) usecase.ExternalTeam {
	return usecase.ExternalTeam{
		ID:        item.ID,
		Name:      item.Name,
		ShortName: item.ShortName,
		Crest:     item.Crest,
	}
}

// mapScore keeps an absent score absent. A present score always carries both
// periods, with null sides where the provider has none.
func mapScore(item *scorePayload) *match.Score {
	if item == nil {
		return nil
	}
	return &match.Score{
		FullTime: mapScoreLine(item.FullTime),
		HalfTime: mapScoreLine(item.HalfTime),
	}
}

func mapScoreLine(item *scoreLinePayload) *match.ScoreLine {
	if item == nil {
		return &match.ScoreLine{}
	}
	return &match.ScoreLine{Home: item.Home, Away: item.Away}
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/football-data-proxy/internal/domain/competition"
	"github.com/riskibarqy/football-data-proxy/internal/domain/match"
	"github.com/riskibarqy/football-data-proxy/internal/platform/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedToday = time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func newTestMatchService(provider *stubProvider) *MatchService {
	return NewMatchService(provider, cache.NewStore(0, nil), MatchServiceConfig{
		Season:            "2024-25",
		LeagueParallelism: 1,
		Now:               func() time.Time { return fixedToday },
	}, nil)
}

func externalMatches(code, name string, matchdays ...*int) ExternalMatches {
	items := make([]ExternalMatch, 0, len(matchdays))
	for i, day := range matchdays {
		items = append(items, ExternalMatch{
			ID:          int64(i + 11),
			HomeTeam:    ExternalTeam{ID: 1, Name: "Home FC", ShortName: "Home"},
			AwayTeam:    ExternalTeam{ID: 2, Name: "Away FC", ShortName: "Away"},
			UTCDate:     "2024-09-14T14:00:00Z",
			Status:      "TIMED",
			Matchday:    day,
			Competition: ExternalCompetition{ID: 2021, Name: name, Code: code},
		})
	}
	return ExternalMatches{Competition: ExternalCompetition{Name: name, Code: code}, Matches: items}
}

func TestMatchService_ListByCompetition_SingleAttemptUncached(t *testing.T) {
	t.Parallel()

	provider := newStubProvider()
	provider.matches["PL"] = externalMatches("PL", "Premier League", intPtr(3))
	service := newTestMatchService(provider)

	got, err := service.ListByCompetition(context.Background(), competition.Default())
	require.NoError(t, err)
	assert.Equal(t, "Premier League", got.Competition)
	assert.Equal(t, "2024-25", got.Season)
	require.Len(t, got.Matches, 1)
	assert.Equal(t, match.DefaultStage, got.Matches[0].Stage)
	assert.Nil(t, got.Matches[0].Score)

	_, err = service.ListByCompetition(context.Background(), competition.Default())
	require.NoError(t, err)

	queries := provider.queries()
	require.Len(t, queries, 2, "schedule must not be cached")
	assert.True(t, queries[0].SingleAttempt)
	assert.Equal(t, fixedToday.AddDate(0, 0, -30), queries[0].DateFrom)
	assert.Equal(t, fixedToday.AddDate(0, 0, 90), queries[0].DateTo)
	assert.Zero(t, queries[0].Matchday)
}

func TestMatchService_ListRounds_GroupsByMatchday(t *testing.T) {
	t.Parallel()

	provider := newStubProvider()
	provider.matches["PL"] = externalMatches("PL", "Premier League", intPtr(3), nil, intPtr(2), intPtr(1))
	service := newTestMatchService(provider)

	got, err := service.ListRounds(context.Background(), competition.Default(), 0)
	require.NoError(t, err)
	assert.Equal(t, "2024-25", got.Season)
	require.Len(t, got.Rounds, 3)

	days := []int{got.Rounds[0].Matchday, got.Rounds[1].Matchday, got.Rounds[2].Matchday}
	assert.Equal(t, []int{1, 2, 3}, days)
	require.Len(t, got.Rounds[0].Matches, 2)
	assert.Equal(t, int64(12), got.Rounds[0].Matches[0].ID, "missing matchday goes to round 1")
	assert.Equal(t, int64(14), got.Rounds[0].Matches[1].ID)

	_, err = service.ListRounds(context.Background(), competition.Default(), 0)
	require.NoError(t, err)

	queries := provider.queries()
	require.Len(t, queries, 1, "rounds must be cached")
	assert.False(t, queries[0].SingleAttempt)
	assert.Equal(t, fixedToday.AddDate(0, 0, -7), queries[0].DateFrom)
	assert.Equal(t, fixedToday.AddDate(0, 0, 90), queries[0].DateTo)
}

func TestMatchService_ListRounds_MatchdayFilterHasOwnCacheKey(t *testing.T) {
	t.Parallel()

	provider := newStubProvider()
	provider.matches["PL"] = externalMatches("PL", "Premier League", intPtr(5))
	service := newTestMatchService(provider)

	_, err := service.ListRounds(context.Background(), competition.Default(), 0)
	require.NoError(t, err)
	_, err = service.ListRounds(context.Background(), competition.Default(), 5)
	require.NoError(t, err)

	queries := provider.queries()
	require.Len(t, queries, 2)
	assert.Equal(t, 5, queries[1].Matchday)

	_, err = service.ListRounds(context.Background(), competition.Default(), -1)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchService_ListAll_SkipsFailedCompetitions(t *testing.T) {
	t.Parallel()

	provider := newStubProvider()
	provider.matches["PL"] = externalMatches("PL", "Premier League", intPtr(1), intPtr(1))
	provider.matches["SA"] = externalMatches("SA", "Serie A", intPtr(2))
	provider.matchErr["PD"] = errors.New("status 500")
	service := newTestMatchService(provider)

	got, err := service.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, competition.AllLeaguesLabel, got.Competition)
	require.Len(t, got.Matches, 3)
	assert.Equal(t, "SA", got.Matches[2].Competition.Code)
}

func TestMatchService_ListAllRounds_KeyedByCatalogNameInCatalogOrder(t *testing.T) {
	t.Parallel()

	provider := newStubProvider()
	provider.matches["PL"] = externalMatches("PL", "Premier League", intPtr(1))
	provider.matches["PD"] = externalMatches("PD", "Primera Division", intPtr(2))
	provider.matchErr["BL1"] = errors.New("status 429")
	provider.matches["SA"] = externalMatches("SA", "Serie A", intPtr(3))
	provider.matches["FL1"] = externalMatches("FL1", "Ligue 1", intPtr(4))
	service := newTestMatchService(provider)

	got, err := service.ListAllRounds(context.Background())
	require.NoError(t, err)
	require.Len(t, got.Leagues, 4)

	names := make([]string, 0, len(got.Leagues))
	for _, league := range got.Leagues {
		names = append(names, league.Competition)
	}
	assert.Equal(t, []string{"Premier League", "La Liga", "Serie A", "Ligue 1"}, names)
	assert.Equal(t, 3, got.Leagues[2].Rounds[0].Matchday)
}

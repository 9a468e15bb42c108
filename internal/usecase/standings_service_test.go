package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/football-data-proxy/internal/domain/competition"
	"github.com/riskibarqy/football-data-proxy/internal/platform/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandingsService_GetByCompetition_FlattensFirstTableAndCaches(t *testing.T) {
	t.Parallel()

	provider := newStubProvider()
	provider.standings[competition.CodePremierLeague] = ExternalStandings{
		Competition: ExternalCompetition{ID: 2021, Name: "Premier League", Code: "PL"},
		Season:      ExternalSeason{StartDate: "2024-08-16"},
		Tables: []ExternalStandingTable{
			{
				Stage: "REGULAR_SEASON",
				Type:  "TOTAL",
				Rows: []ExternalStandingRow{
					{
						Position:       1,
						Team:           ExternalTeam{ID: 64, Name: "Liverpool FC", ShortName: "Liverpool", Crest: "https://crests/64.png"},
						PlayedGames:    38,
						Won:            25,
						Draw:           9,
						Lost:           4,
						Points:         84,
						GoalsFor:       86,
						GoalsAgainst:   41,
						GoalDifference: 45,
					},
				},
			},
			{Type: "HOME"},
		},
	}

	service := NewStandingsService(provider, cache.NewStore(0, nil), nil)
	comp := competition.Default()

	got, err := service.GetByCompetition(context.Background(), comp)
	require.NoError(t, err)
	assert.Equal(t, "Premier League", got.Competition)
	assert.Equal(t, "2024", got.Season)
	require.Len(t, got.Rows, 1)

	row := got.Rows[0]
	assert.Equal(t, int64(64), row.TeamID)
	assert.Equal(t, "Liverpool", row.ShortName)
	assert.Equal(t, 38, row.Played)
	assert.Equal(t, 9, row.Drawn)
	assert.Equal(t, 45, row.GoalDifference)

	_, err = service.GetByCompetition(context.Background(), comp)
	require.NoError(t, err)
	if calls := provider.standingsCallCount("PL"); calls != 1 {
		t.Fatalf("expected one upstream call, got %d", calls)
	}
}

func TestStandingsService_GetByCompetition_NoTableIsUpstreamError(t *testing.T) {
	t.Parallel()

	provider := newStubProvider()
	provider.standings["PL"] = ExternalStandings{Competition: ExternalCompetition{Name: "Premier League"}}

	service := NewStandingsService(provider, cache.NewStore(0, nil), nil)
	_, err := service.GetByCompetition(context.Background(), competition.Default())
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestStandingsService_GetByCompetition_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	provider := newStubProvider()
	provider.standingsErr["PL"] = errors.New("boom")

	service := NewStandingsService(provider, cache.NewStore(0, nil), nil)
	_, err := service.GetByCompetition(context.Background(), competition.Default())
	require.Error(t, err)

	provider.standingsErr["PL"] = nil
	provider.addLeague("PL", "Premier League", 0, 2)
	got, err := service.GetByCompetition(context.Background(), competition.Default())
	require.NoError(t, err)
	assert.Len(t, got.Rows, 2)
	assert.Equal(t, 2, provider.standingsCallCount("PL"))
}

func TestResolveCompetition(t *testing.T) {
	t.Parallel()

	comp, err := ResolveCompetition("serie-a")
	require.NoError(t, err)
	assert.Equal(t, competition.CodeSerieA, comp.Code)

	_, err = ResolveCompetition("unknown-league")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	_, err = ResolveCompetition("  ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

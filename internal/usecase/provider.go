package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/football-data-proxy/internal/domain/match"
	"github.com/riskibarqy/football-data-proxy/internal/domain/player"
)

// FootballDataProvider is the upstream football data source.
type FootballDataProvider interface {
	FetchStandings(ctx context.Context, competitionCode string) (ExternalStandings, error)
	// FetchTeamSquad makes exactly one request. A 429 surfaces as an error
	// marked resilience.ErrRateLimited so the caller decides how to wait.
	FetchTeamSquad(ctx context.Context, teamID int64) (ExternalTeamSquad, error)
	FetchMatches(ctx context.Context, query ExternalMatchQuery) (ExternalMatches, error)
	FetchScorers(ctx context.Context, competitionCode string, limit int) (ExternalScorers, error)
}

type ExternalCompetition struct {
	ID   int64
	Name string
	Code string
}

type ExternalSeason struct {
	StartDate       string
	EndDate         string
	CurrentMatchday *int
}

type ExternalTeam struct {
	ID        int64
	Name      string
	ShortName string
	Crest     string
}

type ExternalStandingRow struct {
	Position       int
	Team           ExternalTeam
	PlayedGames    int
	Won            int
	Draw           int
	Lost           int
	Points         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
}

type ExternalStandingTable struct {
	Stage string
	Type  string
	Rows  []ExternalStandingRow
}

type ExternalStandings struct {
	Competition ExternalCompetition
	Season      ExternalSeason
	Tables      []ExternalStandingTable
}

type ExternalTeamSquad struct {
	Team  ExternalTeam
	Squad []player.SquadMember
}

type ExternalMatch struct {
	ID          int64
	HomeTeam    ExternalTeam
	AwayTeam    ExternalTeam
	UTCDate     string
	Status      string
	Stage       string
	Group       *string
	LastUpdated *string
	Matchday    *int
	Score       *match.Score
	Competition ExternalCompetition
}

type ExternalMatches struct {
	Competition ExternalCompetition
	Matches     []ExternalMatch
}

// ExternalMatchQuery selects matches of one competition in a date window.
// Matchday 0 means every matchday. SingleAttempt disables retries.
type ExternalMatchQuery struct {
	CompetitionCode string
	DateFrom        time.Time
	DateTo          time.Time
	Matchday        int
	SingleAttempt   bool
}

type ExternalScorer struct {
	PlayerID          int64
	PlayerName        string
	PlayerNationality *string
	PlayerPosition    *string
	Team              ExternalTeam
	Goals             int
	Assists           *int
	Penalties         *int
}

type ExternalScorers struct {
	Competition ExternalCompetition
	Season      ExternalSeason
	Scorers     []ExternalScorer
}

package match

import "strings"

const (
	DefaultStage    = "REGULAR_SEASON"
	DefaultMatchday = 1
)

// Team is the short team summary embedded in a match.
type Team struct {
	ID        int64
	Name      string
	ShortName string
	Crest     string
}

// ScoreLine holds one period's goals. Nil sides mean the provider sent none.
type ScoreLine struct {
	Home *int
	Away *int
}

// Score is attached to a match only when the provider reports one.
type Score struct {
	FullTime *ScoreLine
	HalfTime *ScoreLine
}

// CompetitionRef names the competition a match belongs to.
type CompetitionRef struct {
	ID   int64
	Name string
	Code string
}

// Match is one fixture in the provider's date window.
type Match struct {
	ID          int64
	HomeTeam    Team
	AwayTeam    Team
	UTCDate     string
	Status      string
	Stage       string
	Group       *string
	LastUpdated *string
	Matchday    int
	Score       *Score
	Competition CompetitionRef
}

func NormalizeStage(value string) string {
	stage := strings.TrimSpace(value)
	if stage == "" {
		return DefaultStage
	}
	return stage
}

func NormalizeMatchday(value *int) int {
	if value == nil || *value <= 0 {
		return DefaultMatchday
	}
	return *value
}

// Schedule is a flat match listing for a competition.
type Schedule struct {
	Competition string
	Season      string
	Matches     []Match
}

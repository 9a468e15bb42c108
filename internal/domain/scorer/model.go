package scorer

// Scorer is one line of a competition's goal scorer ranking.
type Scorer struct {
	PlayerID          int64
	PlayerName        string
	PlayerNationality *string
	PlayerPosition    *string
	TeamID            int64
	TeamName          string
	TeamShortName     string
	TeamCrest         string
	Goals             int
	Assists           *int
	Penalties         *int
}

// Ranking is the scorer list of a competition season.
type Ranking struct {
	Competition string
	Season      string
	Scorers     []Scorer
}

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// NormalizeLimit clamps a requested ranking size.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

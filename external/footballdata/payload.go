package footballdata

type competitionPayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type seasonPayload struct {
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	CurrentMatchday *int   `json:"currentMatchday"`
}

type teamPayload struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Crest     string `json:"crest"`
}

type standingsEnvelope struct {
	Competition competitionPayload     `json:"competition"`
	Season      seasonPayload          `json:"season"`
	Standings   []standingGroupPayload `json:"standings"`
}

type standingGroupPayload struct {
	Stage string            `json:"stage"`
	Type  string            `json:"type"`
	Table []tableRowPayload `json:"table"`
}

type tableRowPayload struct {
	Position       int         `json:"position"`
	Team           teamPayload `json:"team"`
	PlayedGames    int         `json:"playedGames"`
	Won            int         `json:"won"`
	Draw           int         `json:"draw"`
	Lost           int         `json:"lost"`
	Points         int         `json:"points"`
	GoalsFor       int         `json:"goalsFor"`
	GoalsAgainst   int         `json:"goalsAgainst"`
	GoalDifference int         `json:"goalDifference"`
}

type teamEnvelope struct {
	ID        int64                `json:"id"`
	Name      string               `json:"name"`
	ShortName string               `json:"shortName"`
	Crest     string               `json:"crest"`
	Squad     []squadMemberPayload `json:"squad"`
}

type squadMemberPayload struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Position    *string `json:"position"`
	DateOfBirth *string `json:"dateOfBirth"`
	Nationality *string `json:"nationality"`
	ShirtNumber *int    `json:"shirtNumber"`
	Role        *string `json:"role"`
}

type matchesEnvelope struct {
	Competition competitionPayload `json:"competition"`
	Matches     []matchPayload     `json:"matches"`
}

type matchPayload struct {
	ID          int64              `json:"id"`
	UTCDate     string             `json:"utcDate"`
	Status      string             `json:"status"`
	Matchday    *int               `json:"matchday"`
	Stage       string             `json:"stage"`
	Group       *string            `json:"group"`
	LastUpdated *string            `json:"lastUpdated"`
	HomeTeam    teamPayload        `json:"homeTeam"`
	AwayTeam    teamPayload        `json:"awayTeam"`
	Score       *scorePayload      `json:"score"`
	Competition competitionPayload `json:"competition"`
}

type scorePayload struct {
	Winner   *string           `json:"winner"`
	Duration string            `json:"duration"`
	FullTime *scoreLinePayload `json:"fullTime"`
	HalfTime *scoreLinePayload `json:"halfTime"`
}

type scoreLinePayload struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type scorersEnvelope struct {
	Competition competitionPayload `json:"competition"`
	Season      seasonPayload      `json:"season"`
	Scorers     []scorerPayload    `json:"scorers"`
}

type scorerPayload struct {
	Player    scorerPlayerPayload `json:"player"`
	Team      teamPayload         `json:"team"`
	Goals     *int                `json:"goals"`
	Assists   *int                `json:"assists"`
	Penalties *int                `json:"penalties"`
}

type scorerPlayerPayload struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Nationality *string `json:"nationality"`
	Position    *string `json:"position"`
}

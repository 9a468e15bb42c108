package standing

// Row is one team line of a competition table.
type Row struct {
	TeamID         int64
	Position       int
	Name           string
	ShortName      string
	Crest          string
	Points         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Played         int
	Won            int
	Drawn          int
	Lost           int
}

// Table is the flattened first standings table of a competition.
type Table struct {
	CompetitionCode string
	Competition     string
	Season          string
	Rows            []Row
}

// TeamRef identifies a team taken from a table row.
type TeamRef struct {
	ID   int64
	Name string
}

// Teams lists the table's teams in table order.
func (t Table) Teams() []TeamRef {
	out := make([]TeamRef, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, TeamRef{ID: row.TeamID, Name: row.Name})
	}
	return out
}

// SeasonFromStartDate returns the year part of an upstream start date.
func SeasonFromStartDate(startDate string) string {
	if len(startDate) < 4 {
		return startDate
	}
	return startDate[:4]
}

package httpapi

import (
	"strconv"

	"github.com/riskibarqy/football-data-proxy/internal/domain/match"
	"github.com/riskibarqy/football-data-proxy/internal/domain/player"
	"github.com/riskibarqy/football-data-proxy/internal/domain/scorer"
	"github.com/riskibarqy/football-data-proxy/internal/domain/standing"
)

const cachedSource = "cached"

type healthDTO struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type standingsResponseDTO struct {
	Competition string           `json:"competition"`
	Season      string           `json:"season"`
	Table       []standingRowDTO `json:"table"`
}

type standingRowDTO struct {
	Position       int    `json:"position"`
	Name           string `json:"name"`
	ShortName      string `json:"shortName"`
	Points         int    `json:"points"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Crest          string `json:"crest"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
}

type playersResponseDTO struct {
	Competition string      `json:"competition"`
	Season      string      `json:"season"`
	Players     []playerDTO `json:"players"`
	Source      string      `json:"source,omitempty"`
}

type playerDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Nationality string `json:"nationality"`
	DateOfBirth string `json:"dateOfBirth"`
	Team        string `json:"team"`
	TeamID      int64  `json:"teamId"`
	ShirtNumber *int   `json:"shirtNumber"`
	Role        string `json:"role"`
	Age         int    `json:"age"`
}

type matchesResponseDTO struct {
	Competition string     `json:"competition"`
	Season      string     `json:"season"`
	Matches     []matchDTO `json:"matches"`
}

type roundsResponseDTO struct {
	Competition string        `json:"competition"`
	Season      string        `json:"season"`
	Rounds      orderedObject `json:"rounds"`
}

type matchDTO struct {
	ID          int64               `json:"id"`
	HomeTeam    teamSummaryDTO      `json:"homeTeam"`
	AwayTeam    teamSummaryDTO      `json:"awayTeam"`
	UTCDate     string              `json:"utcDate"`
	Status      string              `json:"status"`
	Stage       string              `json:"stage"`
	Group       *string             `json:"group"`
	LastUpdated *string             `json:"lastUpdated"`
	Score       *scoreDTO           `json:"score"`
	Competition matchCompetitionDTO `json:"competition"`
}

type teamSummaryDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Crest     string `json:"crest"`
}

type scoreDTO struct {
	FullTime scoreLineDTO `json:"fullTime"`
	HalfTime scoreLineDTO `json:"halfTime"`
}

type scoreLineDTO struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type matchCompetitionDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type scorersResponseDTO struct {
	Competition string      `json:"competition"`
	Season      string      `json:"season"`
	Scorers     []scorerDTO `json:"scorers"`
}

type scorerDTO struct {
	Player    scorerPlayerDTO `json:"player"`
	Team      teamSummaryDTO  `json:"team"`
	Goals     int             `json:"goals"`
	Assists   *int            `json:"assists"`
	Penalties *int            `json:"penalties"`
}

type scorerPlayerDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Nationality *string `json:"nationality"`
	Position    *string `json:"position"`
}

func toStandingsResponseDTO(table standing.Table) standingsResponseDTO {
	rows := make([]standingRowDTO, 0, len(table.Rows))
	for _, row := range table.Rows {
		rows = append(rows, standingRowDTO{
			Position:       row.Position,
			Name:           row.Name,
			ShortName:      row.ShortName,
			Points:         row.Points,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: row.GoalDifference,
			Crest:          row.Crest,
			Played:         row.Played,
			Won:            row.Won,
			Drawn:          row.Drawn,
			Lost:           row.Lost,
		})
	}
	return standingsResponseDTO{
		Competition: table.Competition,
		Season:      table.Season,
		Table:       rows,
	}
}

func toPlayersResponseDTO(roster player.Roster) playersResponseDTO {
	items := make([]playerDTO, 0, len(roster.Players))
	for _, p := range roster.Players {
		items = append(items, playerDTO{
			ID:          p.ID,
			Name:        p.Name,
			Position:    p.Position,
			Nationality: p.Nationality,
			DateOfBirth: p.DateOfBirth,
			Team:        p.Team,
			TeamID:      p.TeamID,
			ShirtNumber: p.ShirtNumber,
			Role:        p.Role,
			Age:         p.Age,
		})
	}
	return playersResponseDTO{
		Competition: roster.Competition,
		Season:      roster.Season,
		Players:     items,
	}
}

func toMatchesResponseDTO(schedule match.Schedule) matchesResponseDTO {
	return matchesResponseDTO{
		Competition: schedule.Competition,
		Season:      schedule.Season,
		Matches:     toMatchDTOs(schedule.Matches),
	}
}

func toRoundsResponseDTO(rounds match.Rounds) roundsResponseDTO {
	return roundsResponseDTO{
		Competition: rounds.Competition,
		Season:      rounds.Season,
		Rounds:      toRoundsObject(rounds.Rounds),
	}
}

func toMergedRoundsResponseDTO(merged match.MergedRounds) roundsResponseDTO {
	leagues := make(orderedObject, 0, len(merged.Leagues))
	for _, league := range merged.Leagues {
		leagues = append(leagues, orderedField{Key: league.Competition, Value: toRoundsObject(league.Rounds)})
	}
	return roundsResponseDTO{
		Competition: merged.Competition,
		Season:      merged.Season,
		Rounds:      leagues,
	}
}

// toRoundsObject keys rounds by matchday in ascending order.
func toRoundsObject(rounds []match.Round) orderedObject {
	out := make(orderedObject, 0, len(rounds))
	for _, round := range rounds {
		out = append(out, orderedField{
			Key:   strconv.Itoa(round.Matchday),
			Value: toMatchDTOs(round.Matches),
		})
	}
	return out
}

func toMatchDTOs(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchDTO{
			ID:          item.ID,
			HomeTeam:    toMatchTeamDTO(item.HomeTeam),
			AwayTeam:    toMatchTeamDTO(item.AwayTeam),
			UTCDate:     item.UTCDate,
			Status:      item.Status,
			Stage:       item.Stage,
			Group:       item.Group,
			LastUpdated: item.LastUpdated,
			Score:       toScoreDTO(item.Score),
			Competition: matchCompetitionDTO{
				ID:   item.Competition.ID,
				Name: item.Competition.Name,
				Code: item.Competition.Code,
			},
		})
	}
	return out
}

func toMatchTeamDTO(team match.Team) teamSummaryDTO {
	return teamSummaryDTO{
		ID:        team.ID,
		Name:      team.Name,
		ShortName: team.ShortName,
		Crest:     team.Crest,
	}
}

func toScoreDTO(score *match.Score) *scoreDTO {
	if score == nil {
		return nil
	}
	return &scoreDTO{
		FullTime: toScoreLineDTO(score.FullTime),
		HalfTime: toScoreLineDTO(score.HalfTime),
	}
}

func toScoreLineDTO(line *match.ScoreLine) scoreLineDTO {
	if line == nil {
		return scoreLineDTO{}
	}
	return scoreLineDTO{Home: line.Home, Away: line.Away}
}

func toScorersResponseDTO(ranking scorer.Ranking) scorersResponseDTO {
	items := make([]scorerDTO, 0, len(ranking.Scorers))
	for _, item := range ranking.Scorers {
		items = append(items, scorerDTO{
			Player: scorerPlayerDTO{
				ID:          item.PlayerID,
				Name:        item.PlayerName,
				Nationality: item.PlayerNationality,
				Position:    item.PlayerPosition,
			},
			Team: teamSummaryDTO{
				ID:        item.TeamID,
				Name:      item.TeamName,
				ShortName: item.TeamShortName,
				Crest:     item.TeamCrest,
			},
			Goals:     item.Goals,
			Assists:   item.Assists,
			Penalties: item.Penalties,
		})
	}
	return scorersResponseDTO{
		Competition: ranking.Competition,
		Season:      ranking.Season,
		Scorers:     items,
	}
}

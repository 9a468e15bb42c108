package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/football-data-proxy/internal/domain/player"
)

type stubProvider struct {
	mu sync.Mutex

	standings    map[string]ExternalStandings
	standingsErr map[string]error
	squads       map[int64]ExternalTeamSquad
	// squadErrs is consumed one error per call; nil entries mean success.
	squadErrs map[int64][]error
	matches   map[string]ExternalMatches
	matchErr  map[string]error
	scorers   map[string]ExternalScorers

	standingsCalls map[string]int
	squadCalls     map[int64]int
	matchQueries   []ExternalMatchQuery
	scorerLimits   []int
}

func newStubProvider() *stubProvider {
	return &stubProvider{
		standings:      map[string]ExternalStandings{},
		standingsErr:   map[string]error{},
		squads:         map[int64]ExternalTeamSquad{},
		squadErrs:      map[int64][]error{},
		matches:        map[string]ExternalMatches{},
		matchErr:       map[string]error{},
		scorers:        map[string]ExternalScorers{},
		standingsCalls: map[string]int{},
		squadCalls:     map[int64]int{},
	}
}

func (s *stubProvider) FetchStandings(_ context.Context, code string) (ExternalStandings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.standingsCalls[code]++
	if err := s.standingsErr[code]; err != nil {
		return ExternalStandings{}, err
	}
	item, ok := s.standings[code]
	if !ok {
		return ExternalStandings{}, fmt.Errorf("%w: no standings for %s", ErrUpstream, code)
	}
	return item, nil
}

func (s *stubProvider) FetchTeamSquad(_ context.Context, teamID int64) (ExternalTeamSquad, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.squadCalls[teamID]++
	if queue := s.squadErrs[teamID]; len(queue) > 0 {
		err := queue[0]
		s.squadErrs[teamID] = queue[1:]
		if err != nil {
			return ExternalTeamSquad{}, err
		}
	}
	item, ok := s.squads[teamID]
	if !ok {
		return ExternalTeamSquad{}, fmt.Errorf("%w: no squad for team %d", ErrUpstream, teamID)
	}
	return item, nil
}

func (s *stubProvider) FetchMatches(_ context.Context, query ExternalMatchQuery) (ExternalMatches, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.matchQueries = append(s.matchQueries, query)
	if err := s.matchErr[query.CompetitionCode]; err != nil {
		return ExternalMatches{}, err
	}
	return s.matches[query.CompetitionCode], nil
}

func (s *stubProvider) FetchScorers(_ context.Context, code string, limit int) (ExternalScorers, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scorerLimits = append(s.scorerLimits, limit)
	item, ok := s.scorers[code]
	if !ok {
		return ExternalScorers{}, fmt.Errorf("%w: no scorers for %s", ErrUpstream, code)
	}
	return item, nil
}

func (s *stubProvider) standingsCallCount(code string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.standingsCalls[code]
}

func (s *stubProvider) squadCallCount(teamID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.squadCalls[teamID]
}

func (s *stubProvider) queries() []ExternalMatchQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ExternalMatchQuery, len(s.matchQueries))
	copy(out, s.matchQueries)
	return out
}

// addLeague registers a standings table whose teams each have a squad of
// two players. Team ids are base+1, base+2, ...
func (s *stubProvider) addLeague(code, name string, base int64, teams int) {
	rows := make([]ExternalStandingRow, 0, teams)
	for i := 1; i <= teams; i++ {
		id := base + int64(i)
		team := ExternalTeam{ID: id, Name: fmt.Sprintf("%s Team %d", code, i), ShortName: fmt.Sprintf("T%d", i)}
		rows = append(rows, ExternalStandingRow{Position: i, Team: team, Points: 30 - i})
		s.squads[id] = ExternalTeamSquad{
			Team: team,
			Squad: []player.SquadMember{
				{ID: id*100 + 1, Name: fmt.Sprintf("Player %d-1", id)},
				{ID: id*100 + 2, Name: fmt.Sprintf("Player %d-2", id)},
			},
		}
	}
	s.standings[code] = ExternalStandings{
		Competition: ExternalCompetition{Name: name, Code: code},
		Season:      ExternalSeason{StartDate: "2024-08-16"},
		Tables:      []ExternalStandingTable{{Stage: "REGULAR_SEASON", Type: "TOTAL", Rows: rows}},
	}
}

type recordingSleeper struct {
	mu    sync.Mutex
	waits []time.Duration
}

func (r *recordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	r.mu.Lock()
	r.waits = append(r.waits, d)
	r.mu.Unlock()
	return ctx.Err()
}

func (r *recordingSleeper) recorded() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]time.Duration, len(r.waits))
	copy(out, r.waits)
	return out
}

// steppingClock is a clock that only moves when Sleep is called.
type steppingClock struct {
	mu    sync.Mutex
	now   time.Time
	waits []time.Duration
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *steppingClock) Sleep(ctx context.Context, d time.Duration) error {
	c.mu.Lock()
	c.waits = append(c.waits, d)
	c.now = c.now.Add(d)
	c.mu.Unlock()
	return ctx.Err()
}

func (c *steppingClock) recorded() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]time.Duration, len(c.waits))
	copy(out, c.waits)
	return out
}

package match

import "sort"

// Round groups the matches of one matchday.
type Round struct {
	Matchday int
	Matches  []Match
}

// Rounds is a competition's matches grouped by matchday, ascending.
type Rounds struct {
	Competition string
	Season      string
	Rounds      []Round
}

// GroupByMatchday buckets matches by Matchday. Buckets come out in ascending
// matchday order and keep the input order inside each bucket.
func GroupByMatchday(matches []Match) []Round {
	index := make(map[int]int, 38)
	out := make([]Round, 0, 38)
	for _, m := range matches {
		day := m.Matchday
		if day <= 0 {
			day = DefaultMatchday
		}
		pos, ok := index[day]
		if !ok {
			pos = len(out)
			index[day] = pos
			out = append(out, Round{Matchday: day})
		}
		out[pos].Matches = append(out[pos].Matches, m)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Matchday < out[j].Matchday })
	return out
}

// LeagueRounds is one competition's rounds inside a merged response.
type LeagueRounds struct {
	Competition string
	Rounds      []Round
}

// MergedRounds holds rounds of several competitions, in catalog order.
type MergedRounds struct {
	Competition string
	Season      string
	Leagues     []LeagueRounds
}

package competition

import (
	"fmt"
	"strings"
)

// Competition is one of the leagues the proxy serves.
type Competition struct {
	Code string
	Slug string
	Name string
}

func (c Competition) Validate() error {
	if c.Code == "" {
		return fmt.Errorf("competition code is required")
	}
	if c.Slug == "" {
		return fmt.Errorf("competition slug is required")
	}
	if c.Name == "" {
		return fmt.Errorf("competition name is required")
	}
	return nil
}

const (
	CodePremierLeague = "PL"
	CodeLaLiga        = "PD"
	CodeBundesliga    = "BL1"
	CodeSerieA        = "SA"
	CodeLigue1        = "FL1"
)

// AllLeaguesLabel names responses merged across the whole catalog.
const AllLeaguesLabel = "All Top-5 Leagues"

var catalog = []Competition{
	{Code: CodePremierLeague, Slug: "premier-league", Name: "Premier League"},
	{Code: CodeLaLiga, Slug: "la-liga", Name: "La Liga"},
	{Code: CodeBundesliga, Slug: "bundesliga", Name: "Bundesliga"},
	{Code: CodeSerieA, Slug: "serie-a", Name: "Serie A"},
	{Code: CodeLigue1, Slug: "ligue-1", Name: "Ligue 1"},
}

// All returns the catalog in its fixed order.
func All() []Competition {
	out := make([]Competition, len(catalog))
	copy(out, catalog)
	return out
}

func BySlug(slug string) (Competition, bool) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, c := range catalog {
		if c.Slug == slug {
			return c, true
		}
	}
	return Competition{}, false
}

func Default() Competition {
	return catalog[0]
}

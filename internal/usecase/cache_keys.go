package usecase

import "fmt"

const (
	allPlayersCacheKey = "all_players"

	standingsCachePrefix     = "standings_"
	playersCachePrefix       = "players_"
	playersLeagueCachePrefix = "players_league_"
	roundsCachePrefix        = "matches_rounds_"
	scorersCachePrefix       = "scorers_"
)

func standingsCacheKey(code string) string {
	return standingsCachePrefix + code
}

func playersCacheKey(code string) string {
	return playersCachePrefix + code
}

func playersLeagueCacheKey(slug string) string {
	return playersLeagueCachePrefix + slug
}

func roundsCacheKey(code string, matchday int) string {
	if matchday > 0 {
		return fmt.Sprintf("%s%s_md%d", roundsCachePrefix, code, matchday)
	}
	return roundsCachePrefix + code
}

func scorersCacheKey(code string, limit int) string {
	return fmt.Sprintf("%s%s_%d", scorersCachePrefix, code, limit)
}

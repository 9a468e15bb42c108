package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /health", handler.Health)
}

func registerStandingsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /standings", handler.GetDefaultStandings)
	mux.HandleFunc("GET /standings/{league}", handler.GetStandingsByLeague)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	// Literal segments win over {league}, so "all" and "quick" are never slugs.
	mux.HandleFunc("GET /players/all", handler.ListAllPlayers)
	mux.HandleFunc("GET /players/quick", handler.ListQuickPlayers)
	mux.HandleFunc("GET /players/league/{league}", handler.ListPlayersByLeague)
	mux.HandleFunc("GET /players/{league}", handler.ListPlayersByCompetition)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /matches/all", handler.ListAllMatches)
	mux.HandleFunc("GET /matches/rounds/all", handler.ListAllRounds)
	mux.HandleFunc("GET /matches/rounds/{league}", handler.ListRoundsByCompetition)
	mux.HandleFunc("GET /matches/{league}", handler.ListMatchesByCompetition)
}

func registerScorerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /scorers", handler.ListDefaultScorers)
	mux.HandleFunc("GET /scorers/{league}", handler.ListScorersByLeague)
}

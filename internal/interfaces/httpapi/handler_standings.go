package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-data-proxy/internal/domain/competition"
)

// GetDefaultStandings serves the Premier League table.
func (h *Handler) GetDefaultStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDefaultStandings")
	defer span.End()

	table, err := h.standingsService.GetByCompetition(ctx, competition.Default())
	if err != nil {
		h.logger.ErrorContext(ctx, "get standings failed", "competition", competition.Default().Code, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, toStandingsResponseDTO(table))
}

func (h *Handler) GetStandingsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandingsByLeague")
	defer span.End()

	comp, err := leagueFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.standingsService.GetByCompetition(ctx, comp)
	if err != nil {
		h.logger.ErrorContext(ctx, "get standings failed", "competition", comp.Code, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, toStandingsResponseDTO(table))
}

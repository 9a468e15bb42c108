package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-data-proxy/internal/domain/competition"
)

type scorersQuery struct {
	Limit int `validate:"gte=0"`
}

func (h *Handler) ListDefaultScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDefaultScorers")
	defer span.End()

	h.writeScorers(w, r.WithContext(ctx), competition.Default())
}

func (h *Handler) ListScorersByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListScorersByLeague")
	defer span.End()

	comp, err := leagueFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	h.writeScorers(w, r.WithContext(ctx), comp)
}

func (h *Handler) writeScorers(w http.ResponseWriter, r *http.Request, comp competition.Competition) {
	ctx := r.Context()

	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, scorersQuery{Limit: limit}); err != nil {
		writeError(ctx, w, err)
		return
	}

	ranking, err := h.scorerService.ListByCompetition(ctx, comp, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "list scorers failed", "competition", comp.Code, "limit", limit, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, toScorersResponseDTO(ranking))
}

package httpapi

import "net/http"

type roundsQuery struct {
	Matchday int `validate:"gte=0,lte=50"`
}

func (h *Handler) ListMatchesByCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchesByCompetition")
	defer span.End()

	comp, err := leagueFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	schedule, err := h.matchService.ListByCompetition(ctx, comp)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "competition", comp.Code, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, toMatchesResponseDTO(schedule))
}

func (h *Handler) ListAllMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAllMatches")
	defer span.End()

	schedule, err := h.matchService.ListAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list all matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, toMatchesResponseDTO(schedule))
}

func (h *Handler) ListRoundsByCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRoundsByCompetition")
	defer span.End()

	comp, err := leagueFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matchday, err := queryInt(r, "matchday")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, roundsQuery{Matchday: matchday}); err != nil {
		writeError(ctx, w, err)
		return
	}

	rounds, err := h.matchService.ListRounds(ctx, comp, matchday)
	if err != nil {
		h.logger.ErrorContext(ctx, "list rounds failed", "competition", comp.Code, "matchday", matchday, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, toRoundsResponseDTO(rounds))
}

func (h *Handler) ListAllRounds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAllRounds")
	defer span.End()

	merged, err := h.matchService.ListAllRounds(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list all rounds failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, toMergedRoundsResponseDTO(merged))
}

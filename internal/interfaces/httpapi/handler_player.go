package httpapi

import "net/http"

func (h *Handler) ListPlayersByCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByCompetition")
	defer span.End()

	comp, err := leagueFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	roster, err := h.playerService.ListByCompetition(ctx, comp)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "competition", comp.Code, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, toPlayersResponseDTO(roster))
}

// ListPlayersByLeague is the slug-keyed variant labelled with the catalog name.
func (h *Handler) ListPlayersByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByLeague")
	defer span.End()

	comp, err := leagueFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	roster, err := h.playerService.ListByLeague(ctx, comp)
	if err != nil {
		h.logger.ErrorContext(ctx, "list league players failed", "league", comp.Slug, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, toPlayersResponseDTO(roster))
}

func (h *Handler) ListAllPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAllPlayers")
	defer span.End()

	roster, err := h.playerService.ListAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list all players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, toPlayersResponseDTO(roster))
}

// ListQuickPlayers never calls upstream.
func (h *Handler) ListQuickPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListQuickPlayers")
	defer span.End()

	response := toPlayersResponseDTO(h.playerService.ListCached(ctx))
	response.Source = cachedSource
	writeJSON(ctx, w, http.StatusOK, response)
}

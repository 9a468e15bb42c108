package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-data-proxy/internal/domain/competition"
	"github.com/riskibarqy/football-data-proxy/internal/platform/logging"
	"github.com/riskibarqy/football-data-proxy/internal/usecase"
)

const (
	healthyStatus  = "healthy"
	healthyMessage = "Football API is running"
)

type Handler struct {
	standingsService *usecase.StandingsService
	playerService    *usecase.PlayerService
	matchService     *usecase.MatchService
	scorerService    *usecase.ScorerService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	standingsService *usecase.StandingsService,
	playerService *usecase.PlayerService,
	matchService *usecase.MatchService,
	scorerService *usecase.ScorerService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		standingsService: standingsService,
		playerService:    playerService,
		matchService:     matchService,
		scorerService:    scorerService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Health")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, healthDTO{
		Status:  healthyStatus,
		Message: healthyMessage,
	})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func leagueFromPath(r *http.Request) (competition.Competition, error) {
	return usecase.ResolveCompetition(r.PathValue("league"))
}

// queryInt reads an optional integer query parameter; absent means zero.
func queryInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return value, nil
}

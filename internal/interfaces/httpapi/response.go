package httpapi

import (
	"context"
	"net/http"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-data-proxy/internal/usecase"
)

const (
	leagueNotFoundDetail = "League not found"
	internalErrorDetail  = "internal server error"
	upstreamErrorPrefix  = "Upstream error: "
)

type errorResponseDTO struct {
	Detail string `json:"detail"`
}

type mappedError struct {
	HTTPStatus int
	Detail     string
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err)
	writeJSON(ctx, w, mapped.HTTPStatus, errorResponseDTO{Detail: mapped.Detail})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeJSON(ctx, w, http.StatusInternalServerError, errorResponseDTO{Detail: internalErrorDetail})
}

// mapError collapses every failure that is not a client mistake into a 502.
func mapError(ctx context.Context, err error) mappedError {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	switch {
	case crerr.Is(err, usecase.ErrNotFound):
		return mappedError{
			HTTPStatus: http.StatusNotFound,
			Detail:     leagueNotFoundDetail,
		}
	case crerr.Is(err, usecase.ErrInvalidInput):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Detail:     err.Error(),
		}
	default:
		return mappedError{
			HTTPStatus: http.StatusBadGateway,
			Detail:     upstreamErrorPrefix + err.Error(),
		}
	}
}

package usecase

import (
	"context"

	"github.com/riskibarqy/football-data-proxy/internal/domain/competition"
	"github.com/riskibarqy/football-data-proxy/internal/platform/logging"
	"github.com/sourcegraph/conc/iter"
)

const defaultLeagueParallelism = 1

// leagueResult is one competition's contribution to an all-leagues response.
type leagueResult[T any] struct {
	competition competition.Competition
	value       T
	err         error
}

// collectLeagues runs fetch for every catalog competition with at most
// parallelism calls in flight. Results keep catalog order; failed
// competitions are logged and left out.
func collectLeagues[T any](
	ctx context.Context,
	logger *logging.Logger,
	parallelism int,
	operation string,
	fetch func(ctx context.Context, comp competition.Competition) (T, error),
) []leagueResult[T] {
	if parallelism <= 0 {
		parallelism = defaultLeagueParallelism
	}

	mapper := iter.Mapper[competition.Competition, leagueResult[T]]{MaxGoroutines: parallelism}
	results := mapper.Map(competition.All(), func(comp *competition.Competition) leagueResult[T] {
		value, err := fetch(ctx, *comp)
		return leagueResult[T]{competition: *comp, value: value, err: err}
	})

	out := make([]leagueResult[T], 0, len(results))
	for _, result := range results {
		if result.err != nil {
			logger.WarnContext(ctx, "competition skipped in all-leagues response",
				"operation", operation,
				"competition", result.competition.Code,
				"error", result.err,
			)
			continue
		}
		out = append(out, result)
	}
	return out
}

package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/passtrack-app/passtrack/internal/domain/passing"
	"github.com/passtrack-app/passtrack/internal/domain/session"
	"github.com/passtrack-app/passtrack/internal/export"
	"github.com/passtrack-app/passtrack/internal/platform/logging"
)

const defaultExportWorkers = 4

// ExportService assembles report snapshots for the export writers. The
// single-session report is one aggregate query; the team report fans out
// one query per session through a worker pool and merges the results.
type ExportService struct {
	sessionRepo session.Repository
	passingRepo passing.Repository
	workerCount int
	logger      *logging.Logger
	now         func() time.Time
}

func NewExportService(
	sessionRepo session.Repository,
	passingRepo passing.Repository,
	workerCount int,
	logger *logging.Logger,
) *ExportService {
	if workerCount <= 0 {
		workerCount = defaultExportWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ExportService{
		sessionRepo: sessionRepo,
		passingRepo: passingRepo,
		workerCount: workerCount,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *ExportService) SessionReport(ctx context.Context, sessionID string) (export.Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExportService.SessionReport")
	defer span.End()

	item, exists, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return export.Report{}, storageErr(err, "get session")
	}
	if !exists {
		return export.Report{}, notFound("session=%s", sessionID)
	}

	aggregates, err := s.passingRepo.AggregatesForSession(ctx, sessionID)
	if err != nil {
		return export.Report{}, storageErr(err, "aggregate session stats")
	}

	return export.Report{
		Title:       item.Name,
		GeneratedAt: s.now().UTC(),
		Rows:        aggregatesToRows(aggregates),
	}, nil
}

// TeamReport merges aggregates from several sessions into one table:
// totals are summed and averages reweighted by pass counts. Session order
// in the request does not matter; rows keep registry order.
func (s *ExportService) TeamReport(ctx context.Context, sessionIDs []string) (export.Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExportService.TeamReport")
	defer span.End()

	ids := dedupeIDs(sessionIDs)
	if len(ids) == 0 {
		return export.Report{}, invalidInput("at least one session id is required")
	}

	for _, sessionID := range ids {
		_, exists, err := s.sessionRepo.GetByID(ctx, sessionID)
		if err != nil {
			return export.Report{}, storageErr(err, "get session")
		}
		if !exists {
			return export.Report{}, notFound("session=%s", sessionID)
		}
	}

	pool, err := ants.NewPool(s.workerCount)
	if err != nil {
		return export.Report{}, fmt.Errorf("create export worker pool: %w", err)
	}
	defer pool.Release()

	type taskResult struct {
		sessionID  string
		aggregates []passing.PlayerAggregate
		err        error
	}

	results := make(chan taskResult, len(ids))
	var workers sync.WaitGroup
	for _, sessionID := range ids {
		sessionID := sessionID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			aggregates, err := s.passingRepo.AggregatesForSession(ctx, sessionID)
			results <- taskResult{sessionID: sessionID, aggregates: aggregates, err: err}
		}); err != nil {
			workers.Done()
			return export.Report{}, fmt.Errorf("submit export task: %w", err)
		}
	}
	workers.Wait()
	close(results)

	perSession := make(map[string][]passing.PlayerAggregate, len(ids))
	for res := range results {
		if res.err != nil {
			return export.Report{}, storageErr(res.err, "aggregate session stats for report")
		}
		perSession[res.sessionID] = res.aggregates
	}

	merged := mergeAggregates(ids, perSession)
	s.logger.DebugContext(ctx, "team report assembled", "sessions", len(ids), "players", len(merged))

	return export.Report{
		Title:       fmt.Sprintf("Team Report (%d sessions)", len(ids)),
		GeneratedAt: s.now().UTC(),
		Rows:        aggregatesToRows(merged),
	}, nil
}

// mergeAggregates folds per-session aggregates into one row per player.
// Every session's result lists the full registry in the same order, so the
// first session fixes row ordering.
func mergeAggregates(sessionIDs []string, perSession map[string][]passing.PlayerAggregate) []passing.PlayerAggregate {
	type accumulator struct {
		aggregate passing.PlayerAggregate
		ratingSum float64
	}

	var order []string
	byPlayer := make(map[string]*accumulator)
	for _, sessionID := range sessionIDs {
		for _, agg := range perSession[sessionID] {
			acc, ok := byPlayer[agg.PlayerID]
			if !ok {
				acc = &accumulator{aggregate: passing.PlayerAggregate{
					PlayerID:     agg.PlayerID,
					Name:         agg.Name,
					JerseyNumber: agg.JerseyNumber,
				}}
				byPlayer[agg.PlayerID] = acc
				order = append(order, agg.PlayerID)
			}
			acc.aggregate.TotalPasses += agg.TotalPasses
			acc.ratingSum += agg.AverageRating * float64(agg.TotalPasses)
		}
	}

	out := make([]passing.PlayerAggregate, 0, len(order))
	for _, playerID := range order {
		acc := byPlayer[playerID]
		if acc.aggregate.TotalPasses > 0 {
			acc.aggregate.AverageRating = acc.ratingSum / float64(acc.aggregate.TotalPasses)
		}
		out = append(out, acc.aggregate)
	}
	return out
}

func aggregatesToRows(aggregates []passing.PlayerAggregate) []export.Row {
	rows := make([]export.Row, 0, len(aggregates))
	for _, agg := range aggregates {
		rows = append(rows, export.Row{
			Name:          agg.Name,
			JerseyNumber:  agg.JerseyNumber,
			TotalPasses:   agg.TotalPasses,
			AverageRating: agg.AverageRating,
		})
	}
	return rows
}

func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

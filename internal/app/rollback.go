package app

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/go-batch-service/internal/domain/batch"
	"github.com/jsamuelsen11/go-batch-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-batch-service/internal/ports"
)

// rollback deletes created entities in reverse creation order, so children
// go before their parents. It is best-effort compensation: a failed deletion
// is logged, reported as an orphan, and the remaining deletions continue.
//
// Deletions run on a context detached from the caller's cancellation so an
// aborted request does not leave the rollback half done. Each call still
// has its own timeout.
func (s *BatchService) rollback(ctx context.Context, logger *slog.Logger, created []batch.CreatedEntity) *ports.RollbackReport {
	ctx = context.WithoutCancel(ctx)
	report := &ports.RollbackReport{Attempted: len(created)}

	logger.WarnContext(ctx, "rolling back batch",
		slog.String("operation", "CreateBatch.rollback"),
		slog.Int("entities", len(created)),
	)

	for i := len(created) - 1; i >= 0; i-- {
		e := created[i]

		if err := s.deleteEntity(ctx, e); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("operation", "CreateBatch.rollback"),
				slog.String("temp_id", e.TempID),
				slog.String("real_id", e.RealID),
				slog.String("entity_type", e.Type.String()),
				slog.Any("error", err),
			)
			report.Failed++
			report.Orphans = append(report.Orphans, ports.Orphan{
				TempID: e.TempID,
				RealID: e.RealID,
				Type:   e.Type,
				Error:  err.Error(),
			})
			s.recordRollback(ctx, telemetry.ResultFailure)
			continue
		}

		logger.InfoContext(ctx, "rolled back entity",
			slog.String("temp_id", e.TempID),
			slog.String("real_id", e.RealID),
			slog.String("entity_type", e.Type.String()),
		)
		report.Succeeded++
		s.recordRollback(ctx, telemetry.ResultSuccess)
	}

	return report
}

func (s *BatchService) deleteEntity(ctx context.Context, e batch.CreatedEntity) error {
	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()
	return s.client.DeleteEntity(callCtx, e.Type, e.RealID)
}

func (s *BatchService) recordRollback(ctx context.Context, result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.BatchRollbackTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrResult.String(result)))
}

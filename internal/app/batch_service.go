// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-batch-service/internal/domain"
	"github.com/jsamuelsen11/go-batch-service/internal/domain/batch"
	"github.com/jsamuelsen11/go-batch-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-batch-service/internal/ports"
)

const (
	tracerName = "github.com/jsamuelsen11/go-batch-service/internal/app"

	defaultCallTimeout = 10 * time.Second
	defaultMaxItems    = 500
)

// Compile-time check that BatchService implements ports.BatchService.
var _ ports.BatchService = (*BatchService)(nil)

// BatchService implements ports.BatchService. It validates a batch as a
// whole, creates its items one at a time through the EntityClient port
// threading real ids from parents into children, and compensates failures
// by deleting what it created when the caller asks for atomic behavior.
//
// Items within a batch are never processed concurrently. A BatchService is
// safe for concurrent use by independent batches; each call owns its own
// resolver.
type BatchService struct {
	client      ports.EntityClient
	logger      *slog.Logger
	metrics     *telemetry.Metrics
	callTimeout time.Duration
	maxItems    int
}

// Option configures a BatchService.
type Option func(*BatchService)

// WithCallTimeout bounds every individual create and delete call.
func WithCallTimeout(d time.Duration) Option {
	return func(s *BatchService) {
		if d > 0 {
			s.callTimeout = d
		}
	}
}

// WithMaxItems caps the number of items accepted in one batch.
func WithMaxItems(n int) Option {
	return func(s *BatchService) {
		if n > 0 {
			s.maxItems = n
		}
	}
}

// WithMetrics enables batch metric recording. A nil value disables it.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *BatchService) {
		s.metrics = m
	}
}

// NewBatchService creates a BatchService backed by the given EntityClient.
// A nil logger discards output.
func NewBatchService(client ports.EntityClient, logger *slog.Logger, opts ...Option) *BatchService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &BatchService{
		client:      client,
		logger:      logger,
		callTimeout: defaultCallTimeout,
		maxItems:    defaultMaxItems,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateBatch implements ports.BatchService.
func (s *BatchService) CreateBatch(ctx context.Context, req ports.BatchRequest) (*ports.BatchResult, error) {
	start := time.Now()
	batchID := uuid.NewString()
	logger := s.logger.With(slog.String("batch_id", batchID))

	ctx, span := otel.Tracer(tracerName).Start(ctx, "batch.create",
		trace.WithAttributes(
			telemetry.AttrBatchID.String(batchID),
			telemetry.AttrBatchSize.Int(len(req.Items)),
			attribute.Bool("batch.create_sequentially", req.Options.CreateSequentially),
			attribute.Bool("batch.stop_on_error", req.Options.StopOnError),
			attribute.Bool("batch.atomic_operation", req.Options.AtomicOperation),
		),
	)
	defer span.End()

	graph, err := s.preflight(req.Items)
	if err != nil {
		logger.WarnContext(ctx, "batch rejected",
			slog.String("operation", "CreateBatch"),
			slog.Int("items", len(req.Items)),
			slog.Any("error", err),
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	order, err := executionOrder(graph, req.Items, req.Options.CreateSequentially)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	stats := graph.Stats()
	span.SetAttributes(telemetry.AttrBatchDepth.Int(stats.MaxDepth))
	logger.InfoContext(ctx, "processing batch",
		slog.Int("items", stats.TotalItems),
		slog.Int("roots", stats.RootCount),
		slog.Int("max_depth", stats.MaxDepth),
		slog.Bool("create_sequentially", req.Options.CreateSequentially),
		slog.Bool("stop_on_error", req.Options.StopOnError),
		slog.Bool("atomic_operation", req.Options.AtomicOperation),
	)

	resolver := batch.NewResolver()
	results := make([]ports.ItemResult, 0, len(order))

	for _, item := range order {
		res := s.createItem(ctx, logger, resolver, item)
		results = append(results, res)

		if !res.Success && req.Options.StopOnError {
			logger.WarnContext(ctx, "stopping batch after failed item",
				slog.String("operation", "CreateBatch"),
				slog.String("temp_id", item.TempID),
				slog.Int("skipped", len(order)-len(results)),
			)
			break
		}
	}

	var report *ports.RollbackReport
	if req.Options.AtomicOperation && resolver.FailedCount() > 0 {
		report = s.rollback(ctx, logger, resolver.CreatedIDs())
	}

	result := assembleResult(batchID, len(req.Items), resolver, results, report, req.Options.ReturnMapping)
	result.Stats = stats

	s.recordDuration(ctx, start, result.Success)
	span.SetAttributes(
		attribute.Int("batch.created", result.Created),
		attribute.Int("batch.failed", result.Failed),
		attribute.Bool("batch.rolled_back", result.RolledBack),
	)
	if !result.Success {
		span.SetStatus(codes.Error, fmt.Sprintf("%d of %d items failed", result.Failed, result.TotalItems))
	}

	logger.InfoContext(ctx, "batch complete",
		slog.Bool("success", result.Success),
		slog.Int("created", result.Created),
		slog.Int("failed", result.Failed),
		slog.Bool("rolled_back", result.RolledBack),
		slog.Duration("duration", time.Since(start)),
	)

	return result, nil
}

// preflight rejects a batch that cannot be attempted at all. Nothing has
// been created when it returns an error.
func (s *BatchService) preflight(items []batch.Item) (*batch.Graph, error) {
	if len(items) == 0 {
		return nil, domain.NewFieldError("items", "must contain at least one item")
	}
	if len(items) > s.maxItems {
		return nil, domain.NewFieldError("items", fmt.Sprintf("must contain at most %d items, got %d", s.maxItems, len(items)))
	}

	for i := range items {
		if err := items[i].Validate(); err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				return nil, verr.WithPrefix(fmt.Sprintf("items[%d]", i))
			}
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
	}

	return batch.NewGraph(items)
}

// executionOrder returns parents-first order, or the submission order when
// the caller opted out of dependency ordering.
func executionOrder(graph *batch.Graph, items []batch.Item, sequential bool) ([]batch.Item, error) {
	if !sequential {
		return items, nil
	}
	return graph.CreationOrder()
}

// createItem registers, creates and settles a single item. Failures are
// returned as data, never as errors.
func (s *BatchService) createItem(ctx context.Context, logger *slog.Logger, resolver *batch.Resolver, item batch.Item) ports.ItemResult {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "batch.item.create",
		trace.WithAttributes(
			telemetry.AttrTempID.String(item.TempID),
			telemetry.AttrEntityType.String(item.Type.String()),
		),
	)
	defer span.End()

	result := ports.ItemResult{TempID: item.TempID, Type: item.Type}

	realID, err := s.create(ctx, resolver, item)
	if err == nil {
		err = resolver.Resolve(item.TempID, realID)
	}
	if err != nil {
		// MarkFailed only errors when the item never registered, in which
		// case there is no mapping to settle.
		_ = resolver.MarkFailed(item.TempID, err.Error())

		logger.ErrorContext(ctx, "failed to create item",
			slog.String("operation", "CreateBatch"),
			slog.String("temp_id", item.TempID),
			slog.String("entity_type", item.Type.String()),
			slog.String("parent_temp_id", item.ParentTempID),
			slog.Any("error", err),
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.recordItem(ctx, item.Type, telemetry.ResultFailure)

		result.Error = err.Error()
		return result
	}

	logger.DebugContext(ctx, "created item",
		slog.String("temp_id", item.TempID),
		slog.String("real_id", realID),
		slog.String("entity_type", item.Type.String()),
	)
	s.recordItem(ctx, item.Type, telemetry.ResultSuccess)

	result.RealID = realID
	result.Success = true
	return result
}

// create performs the remote call for item under its own timeout.
func (s *BatchService) create(ctx context.Context, resolver *batch.Resolver, item batch.Item) (string, error) {
	if err := resolver.Register(item.TempID, item.Type); err != nil {
		return "", err
	}

	switch item.Type {
	case batch.TypeContainer:
		callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
		defer cancel()
		return s.client.CreateContainer(callCtx, batch.ContainerRequest{
			Name:    item.Name,
			Payload: item.Payload,
		})

	case batch.TypeLeaf:
		req := batch.LeafRequest{Name: item.Name, Payload: item.Payload}
		if item.HasParent() {
			if err := attachParent(resolver, item.ParentTempID, &req); err != nil {
				return "", err
			}
		}
		callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
		defer cancel()
		return s.client.CreateLeaf(callCtx, req)

	default:
		return "", fmt.Errorf("%w: %q", batch.ErrUnknownEntityType, item.Type)
	}
}

// attachParent fills the parent slot of req that matches the parent's
// recorded type.
func attachParent(resolver *batch.Resolver, parentTempID string, req *batch.LeafRequest) error {
	realID, ok := resolver.RealID(parentTempID)
	if !ok {
		return fmt.Errorf("parent %q: %w", parentTempID, batch.ErrParentNotCreated)
	}

	parentType, _ := resolver.Type(parentTempID)
	switch parentType {
	case batch.TypeContainer:
		req.ParentContainerID = realID
	case batch.TypeLeaf:
		req.ParentLeafID = realID
	default:
		return fmt.Errorf("parent %q: %w: %q", parentTempID, batch.ErrUnknownEntityType, parentType)
	}
	return nil
}

// assembleResult builds the caller-facing result from the per-item records,
// the resolver and the optional rollback report.
func assembleResult(
	batchID string,
	total int,
	resolver *batch.Resolver,
	results []ports.ItemResult,
	report *ports.RollbackReport,
	returnMapping bool,
) *ports.BatchResult {
	result := &ports.BatchResult{
		BatchID:    batchID,
		Created:    resolver.CreatedCount(),
		Failed:     resolver.FailedCount(),
		TotalItems: total,
		Results:    results,
		Rollback:   report,
	}
	result.Success = result.Failed == 0

	mapping := resolver.Mappings()

	if report != nil {
		result.RolledBack = true
		result.Created -= report.Succeeded

		remaining := make(map[string]bool, len(report.Orphans))
		for _, o := range report.Orphans {
			remaining[o.TempID] = true
		}
		for i := range result.Results {
			r := &result.Results[i]
			if r.Success && !remaining[r.TempID] {
				r.RolledBack = true
				delete(mapping, r.TempID)
			}
		}
	}

	if returnMapping {
		result.Mapping = mapping
	}
	return result
}

func (s *BatchService) recordItem(ctx context.Context, typ batch.EntityType, result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.BatchItemTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrEntityType.String(typ.String()),
		telemetry.AttrResult.String(result),
	))
}

func (s *BatchService) recordDuration(ctx context.Context, start time.Time, success bool) {
	if s.metrics == nil {
		return
	}
	result := telemetry.ResultSuccess
	if !success {
		result = telemetry.ResultFailure
	}
	s.metrics.BatchDuration.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(telemetry.AttrResult.String(result)))
}

package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	logMsgAuditEntry     = "catalog audit entry"
	logMsgSinkEmitFailed = "audit sink emit failed"
	logMsgOperation      = "catalog operation: "

	logAttrAuditID   = "audit_id"
	logAttrOperation = "operation"
	logAttrTitle     = "title"
	logAttrAuthor    = "author"
	logAttrYear      = "year"
	logAttrError     = "error"
	logAttrRemoved   = "removed"
	logAttrDuration  = "duration_ms"

	// MetricOperationsTotal counts catalog operations by operation and status.
	MetricOperationsTotal = "catalog_operations_total"


	// MetricOperationDuration tracks catalog operation duration in seconds
	// (OpenTelemetry-compatible histogram metric).
	MetricOperationDuration = "catalog_operation_duration_seconds"

	spanNameAdd    = "catalog.add"
	spanNameRemove = "catalog.remove"
	spanNameList   = "catalog.list"

	statusSuccess = "success"
	statusError   = "error"
)

// AuditDecorator wraps a Store and emits an audit notification around add and
// remove operations before delegating them unchanged. List delegates directly
// with no added behavior.
//
// The decorator is strictly observational: it never alters the wrapped
// store's return values or error behavior, and a failing audit sink is
// reported through the logger instead of failing the operation.
type AuditDecorator struct {
	inner            Store
	sink             AuditSink
	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
}

// AuditOption defines a functional option for configuring AuditDecorator.
type AuditOption func(*AuditDecorator) error

// WithAuditSink sets the sink receiving audit entries.
func WithAuditSink(sink AuditSink) AuditOption {
	return func(d *AuditDecorator) error {
		d.sink = sink
		return nil
	}
}

// WithAuditLogger sets the logger for the AuditDecorator.
// The logger receives sink failures at warn level and operation outcomes at
// debug level.
func WithAuditLogger(logger Logger) AuditOption {
	return func(d *AuditDecorator) error {
		d.logger = logger
		return nil
	}
}

// WithAuditContextualLogger sets the contextual logger for the
// AuditDecorator, enabling automatic trace correlation when tracing is
// configured as well.
func WithAuditContextualLogger(logger ContextualLogger) AuditOption {
	return func(d *AuditDecorator) error {
		d.contextualLogger = logger
		return nil
	}
}

// WithAuditMetrics sets the metrics collector for the AuditDecorator.
// The collector receives operation counters and durations.
func WithAuditMetrics(collector MetricsCollector) AuditOption {
	return func(d *AuditDecorator) error {
		d.metricsCollector = collector
		return nil
	}
}

// WithAuditTracing sets the tracing collector for the AuditDecorator.
// The collector receives one span per add/remove/list call.
func WithAuditTracing(collector TracingCollector) AuditOption {
	return func(d *AuditDecorator) error {
		d.tracingCollector = collector
		return nil
	}
}

// NewAuditDecorator creates an AuditDecorator around the given store with
// optional configuration. Without options it is a silent pass-through.
func NewAuditDecorator(inner Store, options ...AuditOption) (*AuditDecorator, error) {
	if inner == nil {
		return nil, ErrNilStoreSupplied
	}

	decorator := &AuditDecorator{inner: inner}

	for _, option := range options {
		if err := option(decorator); err != nil {
			return nil, err
		}
	}

	return decorator, nil
}

// Add emits an audit entry for the record, then delegates unchanged.
func (d *AuditDecorator) Add(ctx context.Context, record Record) error {
	start := time.Now()
	ctx, span := d.startSpan(ctx, spanNameAdd, map[string]string{
		logAttrOperation: OperationAdd,
		logAttrTitle:     record.Title,
	})

	d.emit(ctx, AuditEntry{
		ID:         uuid.NewString(),
		Operation:  OperationAdd,
		Title:      record.Title,
		Author:     record.Author,
		Year:       record.Year,
		OccurredAt: time.Now(),
	})

	err := d.inner.Add(ctx, record)

	d.recordOutcome(ctx, OperationAdd, err, time.Since(start))
	d.finishSpan(span, err)

	return err
}

// Remove emits an audit entry for the title, then delegates unchanged.
func (d *AuditDecorator) Remove(ctx context.Context, title string) (bool, error) {
	start := time.Now()
	ctx, span := d.startSpan(ctx, spanNameRemove, map[string]string{
		logAttrOperation: OperationRemove,
		logAttrTitle:     title,
	})

	d.emit(ctx, AuditEntry{
		ID:         uuid.NewString(),
		Operation:  OperationRemove,
		Title:      title,
		OccurredAt: time.Now(),
	})

	removed, err := d.inner.Remove(ctx, title)

	d.recordOutcome(ctx, OperationRemove, err, time.Since(start))
	d.finishSpan(span, err)

	return removed, err
}

// List delegates directly; listing is not audited.
func (d *AuditDecorator) List(ctx context.Context) (Records, error) {
	start := time.Now()
	ctx, span := d.startSpan(ctx, spanNameList, map[string]string{
		logAttrOperation: OperationList,
	})

	records, err := d.inner.List(ctx)

	d.recordOutcome(ctx, OperationList, err, time.Since(start))
	d.finishSpan(span, err)

	return records, err
}

// emit forwards the entry to the sink if one is configured. Sink failures are
// logged at warn level and never surfaced to the caller.
func (d *AuditDecorator) emit(ctx context.Context, entry AuditEntry) {
	if d.sink == nil {
		return
	}

	if err := d.sink.Emit(ctx, entry); err != nil {
		if d.contextualLogger != nil {
			d.contextualLogger.WarnContext(ctx, logMsgSinkEmitFailed, logAttrError, err.Error())
		} else if d.logger != nil {
			d.logger.Warn(logMsgSinkEmitFailed, logAttrError, err.Error())
		}
	}
}

// recordOutcome records operation metrics and debug logging if configured.
func (d *AuditDecorator) recordOutcome(ctx context.Context, operation string, err error, duration time.Duration) {
	status := statusSuccess
	if err != nil {
		status = statusError
	}

	if d.metricsCollector != nil {
		labels := map[string]string{
			logAttrOperation: operation,
			"status":         status,
		}
		d.metricsCollector.IncrementCounter(MetricOperationsTotal, labels)
		d.metricsCollector.RecordDuration(MetricOperationDuration, duration, labels)
	}

	if d.contextualLogger != nil {
		d.contextualLogger.DebugContext(ctx, logMsgOperation+operation,
			"status", status, logAttrDuration, toMilliseconds(duration))
	} else if d.logger != nil {
		d.logger.Debug(logMsgOperation+operation,
			"status", status, logAttrDuration, toMilliseconds(duration))
	}
}

// startSpan starts a tracing span if the tracing collector is configured.
func (d *AuditDecorator) startSpan(
	ctx context.Context,
	name string,
	attrs map[string]string,
) (context.Context, SpanContext) {
	if d.tracingCollector == nil {
		return ctx, nil
	}

	return d.tracingCollector.StartSpan(ctx, name, attrs)
}

// finishSpan finishes a tracing span if one was started.
func (d *AuditDecorator) finishSpan(span SpanContext, err error) {
	if d.tracingCollector == nil || span == nil {
		return
	}

	if err != nil {
		d.tracingCollector.FinishSpan(span, statusError, map[string]string{logAttrError: err.Error()})
		return
	}

	d.tracingCollector.FinishSpan(span, statusSuccess, nil)
}

// toMilliseconds converts a time.Duration to float64 milliseconds.
func toMilliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

var _ Store = (*AuditDecorator)(nil)

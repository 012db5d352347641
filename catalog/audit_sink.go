package catalog

import (
	"context"
	"io"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const (
	// OperationAdd identifies an add operation in audit entries, metrics
	// labels, and span attributes.
	OperationAdd = "add"
	// OperationRemove identifies a remove operation.
	OperationRemove = "remove"
	// OperationList identifies a list operation.
	OperationList = "list"
)

// AuditEntry carries enough information to reconstruct an audited operation
// and its argument. It records the attempt, not the outcome: the
// AuditDecorator emits it before delegating to the wrapped store.
type AuditEntry struct {
	ID         string    `json:"id"`
	Operation  string    `json:"operation"`
	Title      string    `json:"title"`
	Author     string    `json:"author,omitempty"`
	Year       int       `json:"year,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// AuditSink receives audit notifications from an AuditDecorator.
// Implementations should be cheap and must not mutate the entry; a failing
// sink never fails the audited operation.
type AuditSink interface {
	Emit(ctx context.Context, entry AuditEntry) error
}

// JSONLinesSink is an AuditSink writing one JSON object per line to the
// configured writer. Suitable for audit log files and pipes.
type JSONLinesSink struct {
	mu     sync.Mutex
	writer io.Writer
}

// NewJSONLinesSink creates a JSONLinesSink writing to the given writer.
func NewJSONLinesSink(writer io.Writer) *JSONLinesSink {
	return &JSONLinesSink{writer: writer}
}

// Emit marshals the entry and writes it followed by a newline.
func (s *JSONLinesSink) Emit(_ context.Context, entry AuditEntry) error {
	serialized, err := jsoniter.ConfigFastest.Marshal(entry)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err = s.writer.Write(append(serialized, '\n')); err != nil {
		return err
	}

	return nil
}

// LoggerSink is an AuditSink forwarding entries to a Logger at Info level.
// It is the lightweight choice when no dedicated audit output is configured.
type LoggerSink struct {
	logger Logger
}

// NewLoggerSink creates a LoggerSink emitting through the given logger.
func NewLoggerSink(logger Logger) *LoggerSink {
	return &LoggerSink{logger: logger}
}

// Emit logs the entry fields as structured attributes.
func (s *LoggerSink) Emit(_ context.Context, entry AuditEntry) error {
	args := []any{
		logAttrAuditID, entry.ID,
		logAttrOperation, entry.Operation,
		logAttrTitle, entry.Title,
	}
	if entry.Operation == OperationAdd {
		args = append(args, logAttrAuthor, entry.Author, logAttrYear, entry.Year)
	}

	s.logger.Info(logMsgAuditEntry, args...)

	return nil
}

var _ AuditSink = (*JSONLinesSink)(nil)
var _ AuditSink = (*LoggerSink)(nil)

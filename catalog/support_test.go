package catalog_test

import (
	"context"
	"errors"
	"sync"

	"github.com/catalogkit/layered-catalog-go/catalog"
)

// recordingSink captures every emitted audit entry.
type recordingSink struct {
	mu      sync.Mutex
	entries []catalog.AuditEntry
}

func (s *recordingSink) Emit(_ context.Context, entry catalog.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)

	return nil
}

func (s *recordingSink) Entries() []catalog.AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]catalog.AuditEntry(nil), s.entries...)
}

// failingSink always fails, for verifying that audit emission never fails
// the audited operation.
type failingSink struct{}

func (failingSink) Emit(context.Context, catalog.AuditEntry) error {
	return errors.New("sink unavailable")
}

// recordingLogger captures log messages per level.
type recordingLogger struct {
	mu       sync.Mutex
	messages map[string][]string
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{messages: make(map[string][]string)}
}

func (l *recordingLogger) log(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages[level] = append(l.messages[level], msg)
}

func (l *recordingLogger) Debug(msg string, _ ...any) { l.log("debug", msg) }
func (l *recordingLogger) Info(msg string, _ ...any)  { l.log("info", msg) }
func (l *recordingLogger) Warn(msg string, _ ...any)  { l.log("warn", msg) }
func (l *recordingLogger) Error(msg string, _ ...any) { l.log("error", msg) }

func (l *recordingLogger) Messages(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.messages[level]...)
}

// failingStore fails every operation, for verifying that decorators
// propagate unexpected errors unmodified.
type failingStore struct {
	err error
}

func (s failingStore) Add(context.Context, catalog.Record) error {
	return s.err
}

func (s failingStore) Remove(context.Context, string) (bool, error) {
	return false, s.err
}

func (s failingStore) List(context.Context) (catalog.Records, error) {
	return nil, s.err
}

// mustBuildRecord builds a record for test arrangement; panics on invalid input.
func mustBuildRecord(title, author string, year int) catalog.Record {
	record, err := catalog.BuildRecord(title, author, year)
	if err != nil {
		panic(err)
	}

	return record
}

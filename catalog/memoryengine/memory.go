package memoryengine

import (
	"context"
	"strings"
	"time"

	"github.com/catalogkit/layered-catalog-go/catalog"
)

const (
	logMsgOperation = "memoryengine operation: "

	logAttrTitle       = "title"
	logAttrRemoved     = "removed"
	logAttrRecordCount = "record_count"
	logAttrDurationMS  = "duration_ms"

	logActionAdd    = "add"
	logActionRemove = "remove"
	logActionList   = "list"
)

// Store is the base in-memory implementation of catalog.Store, backed by an
// ordered sequence preserving insertion order.
type Store struct {
	records catalog.Records
	logger  catalog.Logger
}

// Option defines a functional option for configuring the Store.
type Option func(*Store) error

// WithLogger sets the logger for the Store.
// The logger receives operation timings at debug level (development use);
// the engine emits nothing above debug.
func WithLogger(logger catalog.Logger) Option {
	return func(s *Store) error {
		s.logger = logger
		return nil
	}
}

// NewStore creates an empty Store with optional configuration.
func NewStore(options ...Option) (*Store, error) {
	store := &Store{records: make(catalog.Records, 0)}

	for _, option := range options {
		if err := option(store); err != nil {
			return nil, err
		}
	}

	return store, nil
}

// Add appends the record to the end of the sequence. It never fails.
func (s *Store) Add(_ context.Context, record catalog.Record) error {
	start := time.Now()

	s.records = append(s.records, record)

	s.logOperation(logActionAdd, time.Since(start), logAttrTitle, record.Title)

	return nil
}

// Remove deletes the first record whose title matches case-insensitively,
// reporting whether a removal occurred. Later duplicates are kept.
func (s *Store) Remove(_ context.Context, title string) (bool, error) {
	start := time.Now()

	removed := false
	for idx, record := range s.records {
		if strings.EqualFold(record.Title, title) {
			s.records = append(s.records[:idx], s.records[idx+1:]...)
			removed = true

			break
		}
	}

	s.logOperation(logActionRemove, time.Since(start), logAttrTitle, title, logAttrRemoved, removed)

	return removed, nil
}

// List returns a copy of the sequence in insertion order.
func (s *Store) List(_ context.Context) (catalog.Records, error) {
	start := time.Now()

	snapshot := make(catalog.Records, len(s.records))
	copy(snapshot, s.records)

	s.logOperation(logActionList, time.Since(start), logAttrRecordCount, len(snapshot))

	return snapshot, nil
}

// logOperation logs operation timing at debug level if the logger is configured.
func (s *Store) logOperation(action string, duration time.Duration, args ...any) {
	if s.logger != nil {
		allArgs := []any{logAttrDurationMS, float64(duration.Nanoseconds()) / 1e6}
		allArgs = append(allArgs, args...)
		s.logger.Debug(logMsgOperation+action, allArgs...)
	}
}

var _ catalog.Store = (*Store)(nil)

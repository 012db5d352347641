package catalog

import (
	"context"
	"strconv"
)

const (
	logMsgRecordAdded   = "record added"
	logMsgRecordRemoved = "record removed"
	logMsgYearRejected  = "year input rejected"
)

// Manager orchestrates catalog use cases against a single Store, which may be
// the base engine or the top of any decorator chain. It validates caller
// input, builds records, and translates store outcomes for the caller.
//
// The manager is stateless request/response: it holds no pending state
// between calls beyond the store reference itself.
type Manager struct {
	store  Store
	logger Logger
}

// ManagerOption defines a functional option for configuring Manager.
type ManagerOption func(*Manager) error

// WithManagerLogger sets the logger for the Manager.
// The logger receives rejected input at info level and operation outcomes at
// debug level.
func WithManagerLogger(logger Logger) ManagerOption {
	return func(m *Manager) error {
		m.logger = logger
		return nil
	}
}

// NewManager creates a Manager driving the given store with optional
// configuration.
func NewManager(store Store, options ...ManagerOption) (*Manager, error) {
	if store == nil {
		return nil, ErrNilStoreSupplied
	}

	manager := &Manager{store: store}

	for _, option := range options {
		if err := option(manager); err != nil {
			return nil, err
		}
	}

	return manager, nil
}

// AddRecord parses rawYear, builds a Record, and adds it to the store.
// It returns the added record, or ErrYearNotPositive when rawYear does not
// parse as a positive integer.
func (m *Manager) AddRecord(ctx context.Context, title string, author string, rawYear string) (Record, error) {
	year, parseErr := strconv.Atoi(rawYear)
	if parseErr != nil {
		m.logInfo(logMsgYearRejected, logAttrYear, rawYear)
		return Record{}, ErrYearNotPositive
	}

	record, err := BuildRecord(title, author, year)
	if err != nil {
		m.logInfo(logMsgYearRejected, logAttrYear, rawYear)
		return Record{}, err
	}

	if err = m.store.Add(ctx, record); err != nil {
		return Record{}, err
	}

	m.logDebug(logMsgRecordAdded, logAttrTitle, record.Title)

	return record, nil
}

// RemoveRecord removes the first record matching the title
// case-insensitively. The boolean reports "removed" versus "not found";
// not finding a match is a normal outcome, not an error.
func (m *Manager) RemoveRecord(ctx context.Context, title string) (bool, error) {
	removed, err := m.store.Remove(ctx, title)
	if err != nil {
		return false, err
	}

	m.logDebug(logMsgRecordRemoved, logAttrTitle, title, logAttrRemoved, removed)

	return removed, nil
}

// ListRecords returns the current snapshot for display. An empty slice means
// the catalog is empty.
func (m *Manager) ListRecords(ctx context.Context) (Records, error) {
	records, err := m.store.List(ctx)
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (m *Manager) logInfo(msg string, args ...any) {
	if m.logger != nil {
		m.logger.Info(msg, args...)
	}
}

func (m *Manager) logDebug(msg string, args ...any) {
	if m.logger != nil {
		m.logger.Debug(msg, args...)
	}
}

// Package catalog provides the core abstractions for a layered in-memory
// catalog: the record value type, the store capability contract, the
// composable decorators, and the orchestrating manager.
//
// Every backing implementation satisfies the same Store contract:
//   - Add inserts a record
//   - Remove deletes the first case-insensitive title match
//   - List returns a snapshot of the current records
//
// Decorators wrap any Store (including other decorators) and compose
// bottom-up at construction time:
//
//	base, _ := memoryengine.NewStore()
//	audited, _ := catalog.NewAuditDecorator(base, catalog.WithAuditSink(sink))
//	sorted, _ := catalog.NewSortedView(audited)
//	manager, _ := catalog.NewManager(sorted)
//
// The manager validates caller input and translates store outcomes into
// results the caller can display. Observability collaborators (Logger,
// MetricsCollector, TracingCollector, AuditSink) are dependency-free
// interfaces; adapters for log/slog and OpenTelemetry live in the
// slogadapters and oteladapters packages.
package catalog

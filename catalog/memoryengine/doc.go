// Package memoryengine provides the base in-memory implementation of the
// catalog.Store contract.
//
// The engine keeps records in an ordered sequence: Add appends, Remove
// deletes the first case-insensitive title match, and List returns a copy so
// callers can never mutate engine state through the snapshot. Duplicate
// titles are permitted; only the earliest-inserted match is removed.
//
// The engine holds no durability and no locking: it backs a single logical
// caller for the lifetime of the process, per the catalog's concurrency
// model. Cross-cutting behavior (auditing, sorted views) belongs in the
// decorators of the catalog package, not here.
package memoryengine

package catalog

import (
	"context"
	"sort"
	"strings"
)

// SortedView wraps a Store and returns list results re-ordered by
// (title lower-cased, then year) ascending. Add and Remove delegate
// unchanged, and the wrapped store's insertion order is never mutated:
// sorting is purely a presentation transform applied to the snapshot.
type SortedView struct {
	inner Store
}

// NewSortedView creates a SortedView around the given store.
func NewSortedView(inner Store) (*SortedView, error) {
	if inner == nil {
		return nil, ErrNilStoreSupplied
	}

	return &SortedView{inner: inner}, nil
}

// Add delegates unchanged.
func (v *SortedView) Add(ctx context.Context, record Record) error {
	return v.inner.Add(ctx, record)
}

// Remove delegates unchanged.
func (v *SortedView) Remove(ctx context.Context, title string) (bool, error) {
	return v.inner.Remove(ctx, title)
}

// List retrieves the wrapped store's snapshot and returns it sorted.
func (v *SortedView) List(ctx context.Context) (Records, error) {
	records, err := v.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		left := strings.ToLower(records[i].Title)
		right := strings.ToLower(records[j].Title)
		if left != right {
			return left < right
		}

		return records[i].Year < records[j].Year
	})

	return records, nil
}

var _ Store = (*SortedView)(nil)

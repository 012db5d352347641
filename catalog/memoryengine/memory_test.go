package memoryengine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/catalogkit/layered-catalog-go/catalog"
	"github.com/catalogkit/layered-catalog-go/catalog/memoryengine"
)

func buildRecord(t testing.TB, title, author string, year int) catalog.Record {
	t.Helper()

	record, err := catalog.BuildRecord(title, author, year)
	require.NoError(t, err, "error in arranging test data")

	return record
}

func Test_Store_ListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store, err := memoryengine.NewStore()
	require.NoError(t, err)

	dune := buildRecord(t, "Dune", "Herbert", 1965)
	orwell := buildRecord(t, "1984", "Orwell", 1949)
	foundation := buildRecord(t, "Foundation", "Asimov", 1951)

	require.NoError(t, store.Add(ctx, dune))
	require.NoError(t, store.Add(ctx, orwell))
	require.NoError(t, store.Add(ctx, foundation))

	records, err := store.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, catalog.Records{dune, orwell, foundation}, records,
		"list should return records in exactly insertion order")
}

func Test_Store_RemoveFirstCaseInsensitiveMatch(t *testing.T) {
	ctx := context.Background()
	store, err := memoryengine.NewStore()
	require.NoError(t, err)

	first := buildRecord(t, "Dune", "Herbert", 1965)
	second := buildRecord(t, "DUNE", "Herbert", 1966)

	require.NoError(t, store.Add(ctx, first))
	require.NoError(t, store.Add(ctx, second))

	removed, err := store.Remove(ctx, "dune")
	require.NoError(t, err)
	assert.True(t, removed, "a matching record should be removed")

	records, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog.Records{second}, records,
		"only the earliest-inserted match should be removed")
}

func Test_Store_RemoveNotFoundIsNotAnError(t *testing.T) {
	ctx := context.Background()
	store, err := memoryengine.NewStore()
	require.NoError(t, err)

	removed, err := store.Remove(ctx, "missing")

	require.NoError(t, err, "not finding a match is a normal outcome")
	assert.False(t, removed)
}

func Test_Store_ListReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	store, err := memoryengine.NewStore()
	require.NoError(t, err)

	require.NoError(t, store.Add(ctx, buildRecord(t, "Dune", "Herbert", 1965)))

	records, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)

	// Mutating the snapshot must not affect the store.
	records[0] = buildRecord(t, "Mutated", "Nobody", 1)

	recordsAgain, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Dune", recordsAgain[0].Title,
		"callers mutating the returned slice must not affect the store")
}

func Test_Store_EmptyListIsEmptySlice(t *testing.T) {
	store, err := memoryengine.NewStore()
	require.NoError(t, err)

	records, err := store.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, records)
}

func Test_Property_AddOnlySequencesPreserveOrder(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ctx := context.Background()
		store, err := memoryengine.NewStore()
		require.NoError(rt, err)

		titles := rapid.SliceOfN(rapid.StringMatching(`[A-Za-z0-9 ]{1,12}`), 0, 30).Draw(rt, "titles")

		expected := make(catalog.Records, 0, len(titles))
		for idx, title := range titles {
			record, buildErr := catalog.BuildRecord(title, "Author", idx+1)
			require.NoError(rt, buildErr)
			require.NoError(rt, store.Add(ctx, record))
			expected = append(expected, record)
		}

		records, err := store.List(ctx)
		require.NoError(rt, err)
		require.Equal(rt, expected, records,
			"any add-only sequence must list in insertion order")
	})
}

func Test_Property_RemoveDeletesAtMostOne(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ctx := context.Background()
		store, err := memoryengine.NewStore()
		require.NoError(rt, err)

		title := rapid.StringMatching(`[A-Za-z]{1,8}`).Draw(rt, "title")
		duplicates := rapid.IntRange(0, 5).Draw(rt, "duplicates")

		for i := 0; i < duplicates; i++ {
			record, buildErr := catalog.BuildRecord(title, "Author", i+1)
			require.NoError(rt, buildErr)
			require.NoError(rt, store.Add(ctx, record))
		}

		removed, err := store.Remove(ctx, title)
		require.NoError(rt, err)
		require.Equal(rt, duplicates > 0, removed)

		records, err := store.List(ctx)
		require.NoError(rt, err)
		expectedLen := duplicates
		if duplicates > 0 {
			expectedLen--
		}
		require.Len(rt, records, expectedLen,
			"remove must delete at most one record")
	})
}

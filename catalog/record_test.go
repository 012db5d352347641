package catalog_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalogkit/layered-catalog-go/catalog"
)

func Test_BuildRecord_ValidInput(t *testing.T) {
	record, err := catalog.BuildRecord("Dune", "Herbert", 1965)

	require.NoError(t, err, "valid input should build a record")
	assert.Equal(t, "Dune", record.Title)
	assert.Equal(t, "Herbert", record.Author)
	assert.Equal(t, 1965, record.Year)
}

func Test_BuildRecord_RejectsNonPositiveYears(t *testing.T) {
	for _, year := range []int{0, -3, -1965} {
		_, err := catalog.BuildRecord("Dune", "Herbert", year)

		require.Error(t, err, "year %d should be rejected", year)
		assert.ErrorIs(t, err, catalog.ErrYearNotPositive)

		var validationErr *catalog.ValidationError
		assert.True(t, errors.As(err, &validationErr), "error should be a ValidationError")
	}
}

func Test_Record_String(t *testing.T) {
	record := mustBuildRecord("Dune", "Herbert", 1965)

	assert.Equal(t, `Title: "Dune", Author: Herbert, Year: 1965`, record.String())
}

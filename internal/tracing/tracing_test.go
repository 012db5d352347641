package tracing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalogkit/layered-catalog-go/internal/tracing"
)

func Test_NewProvider_Disabled(t *testing.T) {
	provider, err := tracing.NewProvider(false)
	require.NoError(t, err)

	assert.False(t, provider.Enabled())
	assert.NotNil(t, provider.Tracer(), "disabled provider still hands out a no-op tracer")
	assert.NoError(t, provider.Shutdown(context.Background()))
}

func Test_NewProvider_Enabled(t *testing.T) {
	provider, err := tracing.NewProvider(true)
	require.NoError(t, err)

	assert.True(t, provider.Enabled())
	assert.NotNil(t, provider.Tracer())

	// Spans can be started and ended without error
	_, span := provider.Tracer().Start(context.Background(), "test-span")
	span.End()

	assert.NoError(t, provider.Shutdown(context.Background()))
}

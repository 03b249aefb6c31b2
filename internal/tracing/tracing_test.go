package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Disabled(t *testing.T) {
	shutdown, err := Init(context.Background(), Config{Enabled: false, Endpoint: "localhost:4318"})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NotPanics(t, shutdown)
}

func TestInit_EnabledShutsDownCleanly(t *testing.T) {
	// The exporter connects lazily, so no collector is needed here.
	shutdown, err := Init(context.Background(), Config{Enabled: true, Endpoint: "127.0.0.1:1"})
	require.NoError(t, err)
	assert.NotPanics(t, shutdown)
}

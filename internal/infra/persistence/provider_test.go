package persistence

import (
	"io"
	"log/slog"
	"testing"

	"sosradar/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewRepositories_WithoutPostgresFallsBackToMemory(t *testing.T) {
	t.Parallel()

	result, err := NewRepositories(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	assert.NotNil(t, result.Locations)
	assert.NotNil(t, result.Sessions)
}

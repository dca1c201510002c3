package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusconnect-dev/campusconnect/internal/config"
	"github.com/campusconnect-dev/campusconnect/internal/seed"
)

func TestConnectFallsBackToLocalAndSeeds(t *testing.T) {
	cfg := &config.Config{
		LocalDBPath: filepath.Join(t.TempDir(), "test.db"),
	}
	ctx := context.Background()

	require.NoError(t, Connect(ctx, cfg))
	assert.False(t, IsRemote)
	require.NotNil(t, Active)

	events, err := Active.GetEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, events, len(seed.Catalog()))

	// A second start against the same path must not reseed.
	require.NoError(t, Active.DeleteEvent(ctx, events[0].ID))
	require.NoError(t, Connect(ctx, cfg))

	events, err = Active.GetEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, events, len(seed.Catalog())-1)
}

func TestPlaceholderCredentialsStayLocal(t *testing.T) {
	cfg := &config.Config{
		LocalDBPath: filepath.Join(t.TempDir(), "test.db"),
		RemoteURL:   "db.YOUR_PROJECT_REF.example.co:5432",
		RemoteKey:   "YOUR_ACCESS_KEY",
	}

	require.NoError(t, Connect(context.Background(), cfg))
	assert.False(t, IsRemote)
}

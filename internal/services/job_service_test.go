package services

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/lanca/lanca-api/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobService_PurgeImports(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save(strings.NewReader("a;b"), "contas.csv", storage.ImportsDir)
	require.NoError(t, err)
	old := time.Now().AddDate(0, 0, -40)
	require.NoError(t, os.Chtimes(store.GetFullPath(path), old, old))

	fresh, err := store.Save(strings.NewReader("c;d"), "novas.csv", storage.ImportsDir)
	require.NoError(t, err)

	svc := NewJobService(nil, nil, store, 30)
	require.NoError(t, svc.PurgeImports(context.Background()))

	assert.False(t, store.Exists(path))
	assert.True(t, store.Exists(fresh))
}

func TestJobService_PurgeDisabled(t *testing.T) {
	svc := NewJobService(nil, nil, nil, 30)
	assert.NoError(t, svc.PurgeImports(context.Background()))
}

package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/reshetovitsme/rss-telegram-notifier/internal/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Repository {
	t.Helper()
	dir := t.TempDir()

	fileRepo, err := NewFileStorage(filepath.Join(dir, "state", "last_video_link.txt"))
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	redisRepo, err := NewRedisStorage(context.Background(), RedisOptions{
		Addr: mr.Addr(),
		Key:  "test:last_link",
	})
	require.NoError(t, err)
	t.Cleanup(func() { redisRepo.Close() })

	sqliteRepo, err := NewSQLiteStorage(filepath.Join(dir, "db", "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqliteRepo.Close() })

	return map[string]Repository{
		"file":   fileRepo,
		"memory": NewMemoryStorage(""),
		"redis":  redisRepo,
		"sqlite": sqliteRepo,
	}
}

func TestRepositoryContract(t *testing.T) {
	ctx := context.Background()

	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := repo.GetLastLink(ctx)
			assert.ErrorIs(t, err, errors.ErrStateNotFound)

			require.NoError(t, repo.SaveLastLink(ctx, "http://x/1"))
			link, err := repo.GetLastLink(ctx)
			require.NoError(t, err)
			assert.Equal(t, "http://x/1", link)

			require.NoError(t, repo.SaveLastLink(ctx, "http://x/2"))
			link, err = repo.GetLastLink(ctx)
			require.NoError(t, err)
			assert.Equal(t, "http://x/2", link)
		})
	}
}

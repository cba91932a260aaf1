package feedback_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtrace/feedback"
)

// backends opens one store per backend, each cleaned up with the test.
func backends(t *testing.T) map[string]feedback.Store {
	t.Helper()
	mr := miniredis.RunT(t)
	redisStore := feedback.NewRedisStore(feedback.RedisOptions{Addr: mr.Addr()})
	sqliteStore, err := feedback.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "feedback.db"))
	require.NoError(t, err)

	stores := map[string]feedback.Store{
		"memory": feedback.NewMemoryStore(),
		"redis":  redisStore,
		"sqlite": sqliteStore,
	}
	t.Cleanup(func() {
		for _, s := range stores {
			_ = s.Close()
		}
	})

	return stores
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Load(ctx, "bfs")
			assert.ErrorIs(t, err, feedback.ErrNotFound)

			require.NoError(t, s.Save(ctx, "bfs", "like"))
			v, err := s.Load(ctx, "bfs")
			require.NoError(t, err)
			assert.Equal(t, "like", v)

			require.NoError(t, s.Save(ctx, "bfs", "dislike"))
			v, err = s.Load(ctx, " bfs ")
			require.NoError(t, err)
			assert.Equal(t, "dislike", v)

			assert.ErrorIs(t, s.Save(ctx, " ", "x"), feedback.ErrEmptyKey)
			_, err = s.Load(ctx, "")
			assert.ErrorIs(t, err, feedback.ErrEmptyKey)
		})
	}
}

func TestRedisStore_Prefix(t *testing.T) {
	mr := miniredis.RunT(t)
	s := feedback.NewRedisStore(feedback.RedisOptions{Addr: mr.Addr(), Prefix: "test:"})
	defer s.Close()

	require.NoError(t, s.Save(context.Background(), "k", "v"))
	got, err := mr.Get("test:k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestSQLiteStore_Persists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "persist.db")
	s, err := feedback.OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, "vote:bfs", "like"))
	require.NoError(t, s.Close())

	s, err = feedback.OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer s.Close()
	v, err := s.Load(ctx, "vote:bfs")
	require.NoError(t, err)
	assert.Equal(t, "like", v)

	_, err = feedback.OpenSQLite(ctx, "")
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	s, err := feedback.Open(ctx, feedback.Options{})
	require.NoError(t, err)
	assert.IsType(t, &feedback.MemoryStore{}, s)

	mr := miniredis.RunT(t)
	s, err = feedback.Open(ctx, feedback.Options{Backend: "Redis", RedisAddr: mr.Addr()})
	require.NoError(t, err)
	assert.IsType(t, &feedback.RedisStore{}, s)
	_ = s.Close()

	s, err = feedback.Open(ctx, feedback.Options{Backend: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "x.db")})
	require.NoError(t, err)
	assert.IsType(t, &feedback.SQLiteStore{}, s)
	_ = s.Close()

	_, err = feedback.Open(ctx, feedback.Options{Backend: "etcd"})
	assert.ErrorIs(t, err, feedback.ErrUnknownBackend)

	dead, err := miniredis.Run()
	require.NoError(t, err)
	addr := dead.Addr()
	dead.Close()
	_, err = feedback.Open(ctx, feedback.Options{Backend: "redis", RedisAddr: addr})
	assert.Error(t, err)
}

func TestVotes(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			v, err := feedback.LoadVote(ctx, s, "dijkstra")
			require.NoError(t, err)
			assert.Equal(t, feedback.VoteNone, v)

			require.NoError(t, feedback.SaveVote(ctx, s, "dijkstra", feedback.VoteLike))
			v, err = feedback.LoadVote(ctx, s, "dijkstra")
			require.NoError(t, err)
			assert.Equal(t, feedback.VoteLike, v)

			assert.ErrorIs(t, feedback.SaveVote(ctx, s, "dijkstra", "meh"), feedback.ErrBadVote)
			assert.ErrorIs(t, feedback.SaveVote(ctx, s, "", feedback.VoteLike), feedback.ErrEmptyKey)
		})
	}
}

func TestParseVoteAndToggle(t *testing.T) {
	for in, want := range map[string]feedback.Vote{
		"":         feedback.VoteNone,
		"LIKE":     feedback.VoteLike,
		" dislike": feedback.VoteDislike,
		"none":     feedback.VoteNone,
	} {
		got, err := feedback.ParseVote(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := feedback.ParseVote("love")
	assert.ErrorIs(t, err, feedback.ErrBadVote)

	assert.Equal(t, feedback.VoteLike, feedback.Toggle(feedback.VoteNone, feedback.VoteLike))
	assert.Equal(t, feedback.VoteNone, feedback.Toggle(feedback.VoteLike, feedback.VoteLike))
	assert.Equal(t, feedback.VoteDislike, feedback.Toggle(feedback.VoteLike, feedback.VoteDislike))
}

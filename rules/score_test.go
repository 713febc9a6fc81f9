package rules

import (
	"context"
	"errors"
	"testing"

	"github.com/battlesnakeio/arcade/store"
	"github.com/stretchr/testify/require"
)

type brokenStore struct{}

func (brokenStore) GetHighScore(context.Context) (int, error) { return 0, errors.New("disk on fire") }
func (brokenStore) PutHighScore(context.Context, int) error   { return errors.New("disk on fire") }
func (brokenStore) ClearHighScore(context.Context) error      { return errors.New("disk on fire") }

func TestScoreboardLoadsHighScore(t *testing.T) {
	ctx := context.Background()
	st := store.InMemStore()
	require.NoError(t, st.PutHighScore(ctx, 12))

	sb := NewScoreboard(ctx, st)
	require.Equal(t, 12, sb.HighScore)
	require.Zero(t, sb.Score)

	require.Zero(t, NewScoreboard(ctx, store.InMemStore()).HighScore)
	require.Zero(t, NewScoreboard(ctx, nil).HighScore)
}

func TestScoreboardPersistsOnlyNewHighs(t *testing.T) {
	ctx := context.Background()
	st := store.InMemStore()
	require.NoError(t, st.PutHighScore(ctx, 2))
	sb := NewScoreboard(ctx, st)
	sb.Begin()

	require.False(t, sb.Add(ctx, 1))
	require.False(t, sb.Add(ctx, 1))
	require.False(t, sb.IsNewRecord(), "tying is not a record")
	require.True(t, sb.Add(ctx, 2))
	require.Equal(t, 4, sb.HighScore)
	require.True(t, sb.IsNewRecord())

	high, err := st.GetHighScore(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, high)

	require.False(t, sb.Add(ctx, 0))
	require.False(t, sb.Add(ctx, -3))
	require.Equal(t, 4, sb.Score)
}

func TestScoreboardZeroGameIsNotARecord(t *testing.T) {
	sb := NewScoreboard(context.Background(), store.InMemStore())
	sb.Begin()
	require.False(t, sb.IsNewRecord())
}

func TestScoreboardSurvivesBrokenStore(t *testing.T) {
	ctx := context.Background()
	sb := NewScoreboard(ctx, brokenStore{})
	require.Zero(t, sb.HighScore)

	require.True(t, sb.Add(ctx, 3))
	require.Equal(t, 3, sb.HighScore)

	sb.Reset(ctx)
	require.Zero(t, sb.HighScore)
}

func TestScoreboardRecordAcrossSessions(t *testing.T) {
	ctx := context.Background()
	sb := NewScoreboard(ctx, store.InMemStore())
	sb.Begin()
	sb.Add(ctx, 5)
	require.True(t, sb.IsNewRecord())

	sb.Begin()
	sb.Add(ctx, 3)
	require.False(t, sb.IsNewRecord())
	require.Equal(t, 5, sb.HighScore)
}

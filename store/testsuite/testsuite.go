// Package testsuite is the conformance suite every store backend runs.
package testsuite

import (
	"context"
	"testing"

	"github.com/battlesnakeio/arcade/store"
	"github.com/stretchr/testify/require"
)

func testStoreMissing(t *testing.T, s store.Store) {
	ctx := context.Background()

	score, err := s.GetHighScore(ctx)
	require.Equal(t, store.ErrNotFound, err)
	require.Equal(t, 0, score)

	// Clearing a missing record is fine.
	require.NoError(t, s.ClearHighScore(ctx))
}

func testStorePutGet(t *testing.T, s store.Store) {
	ctx := context.Background()

	require.NoError(t, s.PutHighScore(ctx, 12))
	score, err := s.GetHighScore(ctx)
	require.NoError(t, err)
	require.Equal(t, 12, score)

	// Overwrite.
	require.NoError(t, s.PutHighScore(ctx, 40))
	score, err = s.GetHighScore(ctx)
	require.NoError(t, err)
	require.Equal(t, 40, score)

	// Zero is a valid record and distinct from missing.
	require.NoError(t, s.PutHighScore(ctx, 0))
	score, err = s.GetHighScore(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, score)
}

func testStoreClear(t *testing.T, s store.Store) {
	ctx := context.Background()

	require.NoError(t, s.PutHighScore(ctx, 7))
	require.NoError(t, s.ClearHighScore(ctx))

	_, err := s.GetHighScore(ctx)
	require.Equal(t, store.ErrNotFound, err)
}

func testStoreNegative(t *testing.T, s store.Store) {
	ctx := context.Background()

	err := s.PutHighScore(ctx, -1)
	require.Equal(t, store.ErrNegativeScore, err)
}

// Suite will run the store conformance tests against s. reset is called
// before every test to start from an empty record.
func Suite(t *testing.T, s store.Store, reset func()) {
	tests := []struct {
		name string
		fn   func(*testing.T, store.Store)
	}{
		{"Missing", testStoreMissing},
		{"PutGet", testStorePutGet},
		{"Clear", testStoreClear},
		{"Negative", testStoreNegative},
	}
	for _, test := range tests {
		reset()
		t.Run(test.name, func(t *testing.T) { test.fn(t, s) })
	}
}

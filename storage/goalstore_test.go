package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGoalStore_UnsetGoal(t *testing.T) {
	store := NewGoalStore(t.TempDir())

	_, ok, err := store.Get("alice")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestGoalStore_SetAndGet(t *testing.T) {
	dir := t.TempDir()
	store := NewGoalStore(dir)

	require.NoError(t, store.Set("alice", 1800))
	require.NoError(t, store.Set("bob", 2500))

	goal, ok, err := store.Get("alice")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1800, goal)

	// survives a fresh instance
	goal, ok, err = NewGoalStore(dir).Get("bob")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2500, goal)
}

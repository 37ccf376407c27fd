package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakePurgeStore struct {
	cutoff int64
	purged int64
	err    error
}

func (s *fakePurgeStore) PurgeDeleted(ctx context.Context, cutoff int64) (int64, error) {
	s.cutoff = cutoff
	return s.purged, s.err
}

func TestNotePurgeJobRun(t *testing.T) {
	store := &fakePurgeStore{purged: 2}
	j := NewNotePurgeJob(store, 24*time.Hour)

	require.Equal(t, "note_purge", j.Name())
	require.NoError(t, j.Run(context.Background()))

	expected := time.Now().Add(-24 * time.Hour).Unix()
	require.InDelta(t, expected, store.cutoff, 5)
}

func TestNotePurgeJobDefaultsRetention(t *testing.T) {
	store := &fakePurgeStore{}
	j := NewNotePurgeJob(store, 0)
	require.NoError(t, j.Run(context.Background()))

	expected := time.Now().Add(-720 * time.Hour).Unix()
	require.InDelta(t, expected, store.cutoff, 5)
}

func TestNotePurgeJobPropagatesError(t *testing.T) {
	store := &fakePurgeStore{err: errors.New("boom")}
	j := NewNotePurgeJob(store, time.Hour)
	require.Error(t, j.Run(context.Background()))
}

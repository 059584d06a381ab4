package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dutyhq/roster-api/internal/models"
)

func TestMemoryRunStoreRoundTrip(t *testing.T) {
	store := NewMemoryRunStore()
	run := &models.ScheduleRun{RunID: "run-1", StartDate: "2025-03-10"}

	require.NoError(t, store.Save(context.Background(), run, time.Minute))

	got, err := store.Get(context.Background(), "run-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2025-03-10", got.StartDate)
}

func TestMemoryRunStoreMissReturnsNil(t *testing.T) {
	store := NewMemoryRunStore()
	got, err := store.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryRunStoreExpiry(t *testing.T) {
	store := NewMemoryRunStore()
	run := &models.ScheduleRun{RunID: "run-ttl"}

	require.NoError(t, store.Save(context.Background(), run, time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	got, err := store.Get(context.Background(), "run-ttl")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryRunStoreOverwrite(t *testing.T) {
	store := NewMemoryRunStore()
	require.NoError(t, store.Save(context.Background(), &models.ScheduleRun{RunID: "run-1", Primary: 1}, time.Minute))
	require.NoError(t, store.Save(context.Background(), &models.ScheduleRun{RunID: "run-1", Primary: 2}, time.Minute))

	got, err := store.Get(context.Background(), "run-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Primary)
}

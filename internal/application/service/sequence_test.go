package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infraRepo "github.com/adiwira/kasirpos/internal/infrastructure/repository"
)

func TestSequenceNextPersistsBeforeReturning(t *testing.T) {
	ctx := context.Background()
	store := infraRepo.NewMemoryStore()
	seq, err := NewSequenceService(ctx, infraRepo.NewSequenceRepository(store), 1)
	require.NoError(t, err)

	n, err := seq.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// a reload sees the advanced counter
	reloaded, err := NewSequenceService(ctx, infraRepo.NewSequenceRepository(store), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), reloaded.Peek(ctx))
}

func TestSequenceRollbackStepsBackEvenWhenSaveFails(t *testing.T) {
	ctx := context.Background()
	repo := &failingSeqRepo{inner: infraRepo.NewSequenceRepository(infraRepo.NewMemoryStore())}
	seq, err := NewSequenceService(ctx, repo, 1)
	require.NoError(t, err)

	_, err = seq.Next(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), seq.Peek(ctx))

	buf := captureLog(t)
	repo.fail = true
	seq.rollback(ctx)

	// the in-memory counter never hands out the rolled-back number twice,
	// and the failed persist is visible in the log
	assert.Equal(t, int64(1), seq.Peek(ctx))
	assert.Contains(t, buf.String(), "rollback")
}

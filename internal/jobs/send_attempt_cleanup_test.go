package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/sendsafe/sendsafe-api/internal/jobs"
	"github.com/sendsafe/sendsafe-api/internal/repository"
	"github.com/sendsafe/sendsafe-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingPruner struct{}

func (failingPruner) DeleteOlderThan(context.Context, time.Time) (int64, error) {
	return 0, errors.New("connection reset")
}

func TestSendAttemptCleanupJob_Run(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewSendAttemptRepository(db)

	now := time.Now().UTC()
	for i, age := range []time.Duration{40 * 24 * time.Hour, 31 * 24 * time.Hour, time.Hour} {
		require.NoError(t, db.Create(&domain.SendAttempt{
			UserID:         uuid.New(),
			IdempotencyKey: "key-" + string(rune('a'+i)),
			EmailID:        uuid.New(),
			CreatedAt:      now.Add(-age),
		}).Error)
	}

	job := jobs.NewSendAttemptCleanupJob(repo, 30*24*time.Hour, zap.NewNop())
	require.NoError(t, job.Run(context.Background()))

	var remaining []domain.SendAttempt
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "key-c", remaining[0].IdempotencyKey)
}

func TestSendAttemptCleanupJob_Errors(t *testing.T) {
	t.Run("pruner failure", func(t *testing.T) {
		job := jobs.NewSendAttemptCleanupJob(failingPruner{}, time.Hour, zap.NewNop())
		assert.ErrorContains(t, job.Run(context.Background()), "connection reset")
	})

	t.Run("zero retention", func(t *testing.T) {
		job := jobs.NewSendAttemptCleanupJob(failingPruner{}, 0, zap.NewNop())
		assert.ErrorContains(t, job.Run(context.Background()), "retention")
	})
}

func TestRegisterSendAttemptCleanupJob(t *testing.T) {
	s := jobs.NewScheduler(zap.NewNop())

	require.NoError(t, jobs.RegisterSendAttemptCleanupJob(s, failingPruner{}, time.Hour, "0 0 3 * * *", zap.NewNop()))
	assert.Equal(t, []string{jobs.SendAttemptCleanupJobName}, s.JobNames())

	assert.Error(t, jobs.RegisterSendAttemptCleanupJob(s, failingPruner{}, time.Hour, "0 0 3 * * *", zap.NewNop()))
}

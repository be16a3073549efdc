package jobs

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// SendAttemptCleanupJobName is the scheduler name of the idempotency key pruning job
const SendAttemptCleanupJobName = "send_attempt_cleanup"

// AttemptPruner deletes send attempts created before a cutoff
type AttemptPruner interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// SendAttemptCleanupJob prunes idempotency keys past their retention.
// Once a key is pruned the same email could be delivered again, so the
// retention must exceed any window in which a client retries a send.
type SendAttemptCleanupJob struct {
	pruner    AttemptPruner
	retention time.Duration
	logger    *zap.Logger
	now       func() time.Time
}

func NewSendAttemptCleanupJob(pruner AttemptPruner, retention time.Duration, logger *zap.Logger) *SendAttemptCleanupJob {
	return &SendAttemptCleanupJob{
		pruner:    pruner,
		retention: retention,
		logger:    logger,
		now:       time.Now,
	}
}

// Run deletes every send attempt older than the retention
func (j *SendAttemptCleanupJob) Run(ctx context.Context) error {
	if j.retention <= 0 {
		return fmt.Errorf("invalid send attempt retention: %s", j.retention)
	}

	cutoff := j.now().UTC().Add(-j.retention)
	deleted, err := j.pruner.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("prune send attempts: %w", err)
	}

	j.logger.Info("pruned send attempts",
		zap.Int64("deleted", deleted),
		zap.Time("cutoff", cutoff))
	return nil
}

// RegisterSendAttemptCleanupJob schedules the pruning job
func RegisterSendAttemptCleanupJob(s *Scheduler, pruner AttemptPruner, retention time.Duration, cronExpr string, logger *zap.Logger) error {
	job := NewSendAttemptCleanupJob(pruner, retention, logger)
	return s.AddJob(SendAttemptCleanupJobName, cronExpr, 5*time.Minute, job.Run)
}

package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/autoshorts-api/internal/queue"
	"github.com/maheshrc27/autoshorts-api/internal/repository"
)

// PendingSweepJob re-enqueues pending schedule entries whose time has
// passed. Entries normally publish through the queue's delayed tasks; the
// sweep catches entries whose task was lost, e.g. across a Redis flush.
type PendingSweepJob struct {
	sr          repository.ScheduleRepository
	asynqClient *asynq.Client
}

func NewPendingSweepJob(sr repository.ScheduleRepository, asynqClient *asynq.Client) *PendingSweepJob {
	return &PendingSweepJob{
		sr:          sr,
		asynqClient: asynqClient,
	}
}

func (c *PendingSweepJob) SweepOverdue() {
	ctx := context.Background()

	entries, err := c.sr.ListDue(ctx, time.Now())
	if err != nil {
		slog.Info(err.Error())
		return
	}

	for _, entry := range entries {
		err := queue.EnqueuePublish(c.asynqClient, queue.PublishVideoPayload{EntryID: entry.ID}, 0)
		if err != nil {
			slog.Info("unable to re-enqueue overdue entry", "entry_id", entry.ID, "error", err)
		}
	}
}

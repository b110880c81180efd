package queue

import (
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/autoshorts-api/internal/apperrors"
)

func (j *Queue) HandlePublishVideoTask(ctx context.Context, task *asynq.Task) error {
	var payload PublishVideoPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	err := j.ps.PublishEntry(ctx, payload.EntryID)
	if err == nil {
		return nil
	}

	// A failed upload is already recorded on the entry and video; retrying
	// is the operator's call, so the task is not requeued for it. Store
	// errors are transient and go back to asynq.
	if apperrors.IsKind(err, apperrors.KindPublish) {
		log.Printf("Scheduled publish failed for entry %s: %v", payload.EntryID, err)
		return nil
	}

	return err
}

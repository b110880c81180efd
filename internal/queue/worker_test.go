package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/autoshorts-api/internal/apperrors"
	"github.com/maheshrc27/autoshorts-api/internal/models"
	"github.com/maheshrc27/autoshorts-api/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPublishService implements service.PublishService for worker tests.
type stubPublishService struct {
	err     error
	entries []string
}

func (f *stubPublishService) PublishNow(ctx context.Context, videoID string, metadata transfer.VideoMetadata, autoOptimize bool) (*transfer.PublishResult, error) {
	return nil, nil
}

func (f *stubPublishService) Schedule(ctx context.Context, videoID string, metadata transfer.VideoMetadata, scheduleDate, scheduleTime string, autoOptimize bool) (*models.ScheduleEntry, time.Duration, error) {
	return nil, 0, nil
}

func (f *stubPublishService) PublishEntry(ctx context.Context, entryID string) error {
	f.entries = append(f.entries, entryID)
	return f.err
}

func (f *stubPublishService) ListScheduled(ctx context.Context) ([]*models.ScheduleEntry, error) {
	return nil, nil
}

func newTask(t *testing.T, entryID string) *asynq.Task {
	t.Helper()
	return asynq.NewTask(TaskTypePublishVideo, []byte(`{"entry_id":"`+entryID+`"}`))
}

func TestHandlePublishVideoTask(t *testing.T) {
	ps := &stubPublishService{}
	q := NewQueue(ps)

	err := q.HandlePublishVideoTask(context.Background(), newTask(t, "schedule_1"))
	require.NoError(t, err)
	assert.Equal(t, []string{"schedule_1"}, ps.entries)
}

func TestHandlePublishVideoTaskDoesNotRetryPublishFailures(t *testing.T) {
	ps := &stubPublishService{err: apperrors.Wrap(apperrors.KindPublish, errors.New("quota"))}
	q := NewQueue(ps)

	err := q.HandlePublishVideoTask(context.Background(), newTask(t, "schedule_1"))
	assert.NoError(t, err)
}

func TestHandlePublishVideoTaskRetriesStoreFailures(t *testing.T) {
	ps := &stubPublishService{err: apperrors.Wrap(apperrors.KindStore, errors.New("db down"))}
	q := NewQueue(ps)

	err := q.HandlePublishVideoTask(context.Background(), newTask(t, "schedule_1"))
	assert.Error(t, err)
}

func TestHandlePublishVideoTaskBadPayload(t *testing.T) {
	q := NewQueue(&stubPublishService{})

	err := q.HandlePublishVideoTask(context.Background(), asynq.NewTask(TaskTypePublishVideo, []byte("{")))
	assert.Error(t, err)
}

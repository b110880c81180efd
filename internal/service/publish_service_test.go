package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/maheshrc27/autoshorts-api/internal/apperrors"
	"github.com/maheshrc27/autoshorts-api/internal/models"
	"github.com/maheshrc27/autoshorts-api/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedVideo(t *testing.T, vr *memVideoRepo, id string) {
	t.Helper()
	require.NoError(t, vr.Create(context.Background(), &models.VideoAsset{
		ID:     id,
		Title:  "Seeded",
		Status: models.VideoStatusReady,
		URL:    "/videos/" + id + ".mp4",
	}))
}

func newTestPublishService(vr *memVideoRepo, sr *memScheduleRepo, client PublishClient) PublishService {
	return NewPublishService(vr, sr, NewMetadataService(), client, time.Second)
}

func TestPublishNowSuccess(t *testing.T) {
	vr := newMemVideoRepo()
	seedVideo(t, vr, "vid_x")
	s := newTestPublishService(vr, newMemScheduleRepo(), &fakePublishClient{})

	result, err := s.PublishNow(context.Background(), "vid_x", transfer.VideoMetadata{Title: "T"}, false)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "YTabc123", result.RemoteID)

	video, err := vr.GetByID(context.Background(), "vid_x")
	require.NoError(t, err)
	assert.Equal(t, models.VideoStatusPosted, video.Status)
	assert.Equal(t, "YTabc123", video.RemoteID)
}

func TestPublishNowUploadFailure(t *testing.T) {
	vr := newMemVideoRepo()
	seedVideo(t, vr, "vid_x")
	s := newTestPublishService(vr, newMemScheduleRepo(), &fakePublishClient{err: errors.New("quota exceeded")})

	_, err := s.PublishNow(context.Background(), "vid_x", transfer.VideoMetadata{Title: "T"}, false)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindPublish))

	video, err := vr.GetByID(context.Background(), "vid_x")
	require.NoError(t, err)
	assert.Equal(t, models.VideoStatusFailed, video.Status)
	assert.Empty(t, video.RemoteID)
}

func TestPublishNowValidation(t *testing.T) {
	s := newTestPublishService(newMemVideoRepo(), newMemScheduleRepo(), &fakePublishClient{})

	_, err := s.PublishNow(context.Background(), "", transfer.VideoMetadata{}, false)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	_, err = s.PublishNow(context.Background(), "vid_unknown", transfer.VideoMetadata{}, false)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestPublishNowAutoOptimize(t *testing.T) {
	vr := newMemVideoRepo()
	seedVideo(t, vr, "vid_x")
	client := &fakePublishClient{}
	s := newTestPublishService(vr, newMemScheduleRepo(), client)

	_, err := s.PublishNow(context.Background(), "vid_x", transfer.VideoMetadata{
		Title:       "T",
		Description: "d",
		Tags:        []string{"tech"},
	}, true)
	require.NoError(t, err)
	assert.Equal(t, 1, client.calls)
}

func TestScheduleCreatesPendingEntry(t *testing.T) {
	vr := newMemVideoRepo()
	sr := newMemScheduleRepo()
	seedVideo(t, vr, "vid_x")
	s := newTestPublishService(vr, sr, &fakePublishClient{})

	future := time.Now().Add(48 * time.Hour)
	date := future.Format("2006-01-02")
	clock := future.Format("15:04")

	entry, delay, err := s.Schedule(context.Background(), "vid_x", transfer.VideoMetadata{
		Title:       "My Video",
		Description: "desc",
		Tags:        []string{"tech"},
	}, date, clock, true)
	require.NoError(t, err)

	assert.Equal(t, models.ScheduleStatusPending, entry.Status)
	assert.Equal(t, "vid_x", entry.VideoID)
	assert.Greater(t, delay, time.Duration(0))

	expectedTime, err := time.Parse("2006-01-02T15:04", date+"T"+clock)
	require.NoError(t, err)
	assert.Equal(t, expectedTime, entry.ScheduledTime)

	// autoOptimize ran once over the raw metadata.
	assert.Equal(t, []string{"tech", "shorts", "viral", "trending"}, entry.Tags)
	assert.Contains(t, entry.Description, "#shorts #viral #fyp #trending")
	assert.Contains(t, entry.Description, "🔔 Subscribe for more!")

	video, err := vr.GetByID(context.Background(), "vid_x")
	require.NoError(t, err)
	assert.Equal(t, models.VideoStatusScheduled, video.Status)
}

func TestScheduleRejectsMalformedTime(t *testing.T) {
	vr := newMemVideoRepo()
	seedVideo(t, vr, "vid_x")
	s := newTestPublishService(vr, newMemScheduleRepo(), &fakePublishClient{})

	_, _, err := s.Schedule(context.Background(), "vid_x", transfer.VideoMetadata{}, "not-a-date", "18:00", false)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestScheduleRejectsPastTime(t *testing.T) {
	vr := newMemVideoRepo()
	seedVideo(t, vr, "vid_x")
	s := newTestPublishService(vr, newMemScheduleRepo(), &fakePublishClient{})

	_, _, err := s.Schedule(context.Background(), "vid_x", transfer.VideoMetadata{}, "2020-01-01", "18:00", false)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestPublishEntrySuccess(t *testing.T) {
	vr := newMemVideoRepo()
	sr := newMemScheduleRepo()
	seedVideo(t, vr, "vid_x")
	s := newTestPublishService(vr, sr, &fakePublishClient{})

	require.NoError(t, sr.Create(context.Background(), &models.ScheduleEntry{
		ID:      "schedule_1",
		VideoID: "vid_x",
		Title:   "T",
		Status:  models.ScheduleStatusPending,
	}))

	require.NoError(t, s.PublishEntry(context.Background(), "schedule_1"))

	entry, err := sr.GetByID(context.Background(), "schedule_1")
	require.NoError(t, err)
	assert.Equal(t, models.ScheduleStatusPosted, entry.Status)

	video, err := vr.GetByID(context.Background(), "vid_x")
	require.NoError(t, err)
	assert.Equal(t, models.VideoStatusPosted, video.Status)
	assert.Equal(t, "YTabc123", video.RemoteID)
}

func TestPublishEntryFailure(t *testing.T) {
	vr := newMemVideoRepo()
	sr := newMemScheduleRepo()
	seedVideo(t, vr, "vid_x")
	s := newTestPublishService(vr, sr, &fakePublishClient{err: errors.New("upload rejected")})

	require.NoError(t, sr.Create(context.Background(), &models.ScheduleEntry{
		ID:      "schedule_1",
		VideoID: "vid_x",
		Status:  models.ScheduleStatusPending,
	}))

	err := s.PublishEntry(context.Background(), "schedule_1")
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindPublish))

	entry, _ := sr.GetByID(context.Background(), "schedule_1")
	assert.Equal(t, models.ScheduleStatusFailed, entry.Status)
}

func TestPublishEntryConcurrentDispatchUploadsOnce(t *testing.T) {
	vr := newMemVideoRepo()
	sr := newMemScheduleRepo()
	seedVideo(t, vr, "vid_x")
	client := &fakePublishClient{delay: 200 * time.Millisecond}
	s := newTestPublishService(vr, sr, client)

	require.NoError(t, sr.Create(context.Background(), &models.ScheduleEntry{
		ID:      "schedule_1",
		VideoID: "vid_x",
		Title:   "T",
		Status:  models.ScheduleStatusPending,
	}))

	// The queue task and the overdue sweep can dispatch the same entry at
	// the same time; only one of them may upload.
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.PublishEntry(context.Background(), "schedule_1"))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, client.uploads())

	entry, err := sr.GetByID(context.Background(), "schedule_1")
	require.NoError(t, err)
	assert.Equal(t, models.ScheduleStatusPosted, entry.Status)
}

func TestPublishEntrySkipsNonPending(t *testing.T) {
	vr := newMemVideoRepo()
	sr := newMemScheduleRepo()
	seedVideo(t, vr, "vid_x")
	client := &fakePublishClient{}
	s := newTestPublishService(vr, sr, client)

	require.NoError(t, sr.Create(context.Background(), &models.ScheduleEntry{
		ID:      "schedule_1",
		VideoID: "vid_x",
		Status:  models.ScheduleStatusCancelled,
	}))

	require.NoError(t, s.PublishEntry(context.Background(), "schedule_1"))
	assert.Equal(t, 0, client.calls)

	// Unknown entries are also a quiet no-op.
	require.NoError(t, s.PublishEntry(context.Background(), "schedule_missing"))
}

func TestPublishEntryCancelsOrphans(t *testing.T) {
	vr := newMemVideoRepo()
	sr := newMemScheduleRepo()
	client := &fakePublishClient{}
	s := newTestPublishService(vr, sr, client)

	require.NoError(t, sr.Create(context.Background(), &models.ScheduleEntry{
		ID:      "schedule_1",
		VideoID: "vid_deleted",
		Status:  models.ScheduleStatusPending,
	}))

	require.NoError(t, s.PublishEntry(context.Background(), "schedule_1"))
	assert.Equal(t, 0, client.calls)

	entry, _ := sr.GetByID(context.Background(), "schedule_1")
	assert.Equal(t, models.ScheduleStatusCancelled, entry.Status)
}

func TestListScheduledReturnsPendingOnly(t *testing.T) {
	vr := newMemVideoRepo()
	sr := newMemScheduleRepo()
	s := newTestPublishService(vr, sr, &fakePublishClient{})

	require.NoError(t, sr.Create(context.Background(), &models.ScheduleEntry{ID: "a", Status: models.ScheduleStatusPending}))
	require.NoError(t, sr.Create(context.Background(), &models.ScheduleEntry{ID: "b", Status: models.ScheduleStatusPosted}))

	entries, err := s.ListScheduled(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].ID)
}

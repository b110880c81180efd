package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/maheshrc27/autoshorts-api/internal/apperrors"
	"github.com/maheshrc27/autoshorts-api/internal/models"
	"github.com/maheshrc27/autoshorts-api/internal/repository"
	"github.com/maheshrc27/autoshorts-api/internal/transfer"
)

const scheduleTimeLayout = "2006-01-02T15:04"

// PublishClient is the upload API of the publishing platform.
type PublishClient interface {
	Upload(ctx context.Context, videoID string, metadata transfer.VideoMetadata) (*transfer.PublishResult, error)
}

type PublishService interface {
	PublishNow(ctx context.Context, videoID string, metadata transfer.VideoMetadata, autoOptimize bool) (*transfer.PublishResult, error)
	Schedule(ctx context.Context, videoID string, metadata transfer.VideoMetadata, scheduleDate, scheduleTime string, autoOptimize bool) (*models.ScheduleEntry, time.Duration, error)
	PublishEntry(ctx context.Context, entryID string) error
	ListScheduled(ctx context.Context) ([]*models.ScheduleEntry, error)
}

type publishService struct {
	vr      repository.VideoRepository
	sr      repository.ScheduleRepository
	md      *MetadataService
	client  PublishClient
	timeout time.Duration
}

func NewPublishService(
	vr repository.VideoRepository,
	sr repository.ScheduleRepository,
	md *MetadataService,
	client PublishClient,
	timeout time.Duration) PublishService {
	return &publishService{
		vr:      vr,
		sr:      sr,
		md:      md,
		client:  client,
		timeout: timeout,
	}
}

// PublishNow uploads immediately. An upload failure transitions the video to
// `failed` and surfaces a publish error; retrying is left to the caller.
func (s *publishService) PublishNow(ctx context.Context, videoID string, metadata transfer.VideoMetadata, autoOptimize bool) (*transfer.PublishResult, error) {
	if videoID == "" {
		return nil, apperrors.New(apperrors.KindValidation, "video id cannot be empty")
	}

	video, err := s.vr.GetByID(ctx, videoID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStore, err)
	}
	if video == nil {
		return nil, apperrors.New(apperrors.KindValidation, "video does not exist")
	}

	if autoOptimize {
		metadata = s.md.Optimize(metadata.Title, metadata.Description, metadata.Tags)
	}

	uploadCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.client.Upload(uploadCtx, videoID, metadata)
	if err != nil {
		slog.Error("upload failed", "video_id", videoID, "error", err)
		if updateErr := s.vr.UpdateStatus(ctx, videoID, models.VideoStatusFailed, ""); updateErr != nil {
			slog.Error("unable to mark video as failed", "video_id", videoID, "error", updateErr)
		}
		return nil, apperrors.Wrap(apperrors.KindPublish, err)
	}

	if err := s.vr.UpdateStatus(ctx, videoID, models.VideoStatusPosted, result.RemoteID); err != nil {
		return nil, apperrors.Wrap(apperrors.KindStore, err)
	}

	return result, nil
}

// Schedule records a future publish intent. Publication at the scheduled
// time happens through the task queue; the returned delay is how far in the
// future the entry should be processed.
func (s *publishService) Schedule(ctx context.Context, videoID string, metadata transfer.VideoMetadata, scheduleDate, scheduleTime string, autoOptimize bool) (*models.ScheduleEntry, time.Duration, error) {
	if videoID == "" {
		return nil, 0, apperrors.New(apperrors.KindValidation, "video id cannot be empty")
	}

	scheduledTime, err := time.Parse(scheduleTimeLayout, scheduleDate+"T"+scheduleTime)
	if err != nil {
		return nil, 0, apperrors.New(apperrors.KindValidation, "invalid schedule time format")
	}

	delay := time.Until(scheduledTime)
	if delay < 0 {
		return nil, 0, apperrors.New(apperrors.KindValidation, "scheduled time must not be in the past")
	}

	video, err := s.vr.GetByID(ctx, videoID)
	if err != nil {
		return nil, 0, apperrors.Wrap(apperrors.KindStore, err)
	}
	if video == nil {
		return nil, 0, apperrors.New(apperrors.KindValidation, "video does not exist")
	}

	if autoOptimize {
		metadata = s.md.Optimize(metadata.Title, metadata.Description, metadata.Tags)
	}

	id, err := newScheduleID()
	if err != nil {
		return nil, 0, apperrors.Wrap(apperrors.KindStore, err)
	}

	entry := &models.ScheduleEntry{
		ID:            id,
		VideoID:       videoID,
		Title:         metadata.Title,
		Description:   metadata.Description,
		Tags:          metadata.Tags,
		ScheduledTime: scheduledTime,
		Status:        models.ScheduleStatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.sr.Create(ctx, entry); err != nil {
		return nil, 0, apperrors.Wrap(apperrors.KindStore, err)
	}

	if err := s.vr.UpdateStatus(ctx, videoID, models.VideoStatusScheduled, ""); err != nil {
		return nil, 0, apperrors.Wrap(apperrors.KindStore, err)
	}

	return entry, delay, nil
}

// PublishEntry is the deferred half of Schedule, invoked by the queue
// worker when the entry comes due. Entries that were cancelled, already
// processed, or orphaned by a deleted video are skipped. The entry is
// claimed with a conditional status transition before the upload starts,
// so an overlapping dispatch of the same entry (the queue task racing the
// overdue sweep) uploads at most once.
func (s *publishService) PublishEntry(ctx context.Context, entryID string) error {
	entry, err := s.sr.GetByID(ctx, entryID)
	if err != nil {
		return apperrors.Wrap(apperrors.KindStore, err)
	}
	if entry == nil {
		return nil
	}

	claimed, err := s.sr.ClaimPending(ctx, entryID)
	if err != nil {
		return apperrors.Wrap(apperrors.KindStore, err)
	}
	if !claimed {
		return nil
	}

	video, err := s.vr.GetByID(ctx, entry.VideoID)
	if err != nil {
		return apperrors.Wrap(apperrors.KindStore, err)
	}
	if video == nil {
		slog.Info("scheduled video no longer exists, cancelling entry", "entry_id", entryID, "video_id", entry.VideoID)
		return s.sr.UpdateStatus(ctx, entryID, models.ScheduleStatusCancelled)
	}

	metadata := transfer.VideoMetadata{
		Title:       entry.Title,
		Description: entry.Description,
		Tags:        entry.Tags,
	}

	uploadCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.client.Upload(uploadCtx, entry.VideoID, metadata)
	if err != nil {
		slog.Error("scheduled upload failed", "entry_id", entryID, "error", err)
		if updateErr := s.sr.UpdateStatus(ctx, entryID, models.ScheduleStatusFailed); updateErr != nil {
			slog.Error("unable to mark entry as failed", "entry_id", entryID, "error", updateErr)
		}
		if updateErr := s.vr.UpdateStatus(ctx, entry.VideoID, models.VideoStatusFailed, ""); updateErr != nil {
			slog.Error("unable to mark video as failed", "video_id", entry.VideoID, "error", updateErr)
		}
		return apperrors.Wrap(apperrors.KindPublish, err)
	}

	if err := s.sr.UpdateStatus(ctx, entryID, models.ScheduleStatusPosted); err != nil {
		return apperrors.Wrap(apperrors.KindStore, err)
	}
	if err := s.vr.UpdateStatus(ctx, entry.VideoID, models.VideoStatusPosted, result.RemoteID); err != nil {
		return apperrors.Wrap(apperrors.KindStore, err)
	}

	return nil
}

func (s *publishService) ListScheduled(ctx context.Context) ([]*models.ScheduleEntry, error) {
	entries, err := s.sr.ListByStatus(ctx, models.ScheduleStatusPending)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStore, err)
	}
	return entries, nil
}

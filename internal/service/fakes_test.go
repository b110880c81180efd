package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/maheshrc27/autoshorts-api/internal/models"
	"github.com/maheshrc27/autoshorts-api/internal/repository"
	"github.com/maheshrc27/autoshorts-api/internal/transfer"
)

type fakeCompleter struct {
	mu       sync.Mutex
	response string
	err      error
	calls    int
}

func (f *fakeCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeRenderer struct {
	err    error
	result *transfer.RenderResult
}

func (f *fakeRenderer) Render(ctx context.Context, videoID string, script models.Script, voiceType, videoStyle string) (*transfer.RenderResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &transfer.RenderResult{
		URL:          "/videos/" + videoID + ".mp4",
		ThumbnailURL: "/thumbnails/" + videoID + ".jpg",
		FileSize:     "12.5 MB",
		Resolution:   "1080x1920",
		Format:       "MP4",
	}, nil
}

type fakePublishClient struct {
	mu     sync.Mutex
	err    error
	result *transfer.PublishResult
	delay  time.Duration
	calls  int
}

func (f *fakePublishClient) Upload(ctx context.Context, videoID string, metadata transfer.VideoMetadata) (*transfer.PublishResult, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &transfer.PublishResult{Success: true, RemoteID: "YTabc123", URL: "https://youtube.com/shorts/YTabc123"}, nil
}

func (f *fakePublishClient) uploads() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type memVideoRepo struct {
	mu     sync.Mutex
	videos map[string]*models.VideoAsset
	order  []string
	err    error
}

func newMemVideoRepo() *memVideoRepo {
	return &memVideoRepo{videos: make(map[string]*models.VideoAsset)}
}

func (r *memVideoRepo) Create(ctx context.Context, video *models.VideoAsset) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *video
	r.videos[video.ID] = &clone
	r.order = append(r.order, video.ID)
	return nil
}

func (r *memVideoRepo) GetByID(ctx context.Context, id string) (*models.VideoAsset, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	video, ok := r.videos[id]
	if !ok {
		return nil, nil
	}
	clone := *video
	return &clone, nil
}

func (r *memVideoRepo) List(ctx context.Context) ([]*models.VideoAsset, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var videos []*models.VideoAsset
	for i := len(r.order) - 1; i >= 0; i-- {
		if video, ok := r.videos[r.order[i]]; ok {
			clone := *video
			videos = append(videos, &clone)
		}
	}
	return videos, nil
}

func (r *memVideoRepo) ListByStatus(ctx context.Context, status string) ([]*models.VideoAsset, error) {
	videos, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var filtered []*models.VideoAsset
	for _, video := range videos {
		if video.Status == status {
			filtered = append(filtered, video)
		}
	}
	return filtered, nil
}

func (r *memVideoRepo) SetRendered(ctx context.Context, id string, duration int, f *repository.RenderedAsset) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	video, ok := r.videos[id]
	if !ok {
		return errors.New("video not found")
	}
	video.Status = models.VideoStatusReady
	video.Duration = duration
	video.URL = f.URL
	video.ThumbnailURL = f.ThumbnailURL
	video.FileSize = f.FileSize
	video.Resolution = f.Resolution
	video.Format = f.Format
	return nil
}

func (r *memVideoRepo) UpdateStatus(ctx context.Context, id, status, remoteID string) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	video, ok := r.videos[id]
	if !ok {
		return nil
	}
	video.Status = status
	if remoteID != "" {
		video.RemoteID = remoteID
	}
	return nil
}

func (r *memVideoRepo) Remove(ctx context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.videos, id)
	return nil
}

type memScheduleRepo struct {
	mu      sync.Mutex
	entries map[string]*models.ScheduleEntry
	order   []string
	err     error
}

func newMemScheduleRepo() *memScheduleRepo {
	return &memScheduleRepo{entries: make(map[string]*models.ScheduleEntry)}
}

func (r *memScheduleRepo) Create(ctx context.Context, entry *models.ScheduleEntry) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *entry
	r.entries[entry.ID] = &clone
	r.order = append(r.order, entry.ID)
	return nil
}

func (r *memScheduleRepo) GetByID(ctx context.Context, id string) (*models.ScheduleEntry, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[id]
	if !ok {
		return nil, nil
	}
	clone := *entry
	return &clone, nil
}

func (r *memScheduleRepo) List(ctx context.Context) ([]*models.ScheduleEntry, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var entries []*models.ScheduleEntry
	for _, id := range r.order {
		if entry, ok := r.entries[id]; ok {
			clone := *entry
			entries = append(entries, &clone)
		}
	}
	return entries, nil
}

func (r *memScheduleRepo) ListByStatus(ctx context.Context, status string) ([]*models.ScheduleEntry, error) {
	entries, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var filtered []*models.ScheduleEntry
	for _, entry := range entries {
		if entry.Status == status {
			filtered = append(filtered, entry)
		}
	}
	return filtered, nil
}

func (r *memScheduleRepo) ListDue(ctx context.Context, before time.Time) ([]*models.ScheduleEntry, error) {
	entries, err := r.ListByStatus(ctx, models.ScheduleStatusPending)
	if err != nil {
		return nil, err
	}
	var due []*models.ScheduleEntry
	for _, entry := range entries {
		if !entry.ScheduledTime.After(before) {
			due = append(due, entry)
		}
	}
	return due, nil
}

func (r *memScheduleRepo) ClaimPending(ctx context.Context, id string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[id]
	if !ok || entry.Status != models.ScheduleStatusPending {
		return false, nil
	}
	entry.Status = models.ScheduleStatusPublishing
	return true, nil
}

func (r *memScheduleRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.entries[id]; ok {
		entry.Status = status
	}
	return nil
}

func (r *memScheduleRepo) CancelByVideoID(ctx context.Context, videoID string) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, entry := range r.entries {
		if entry.VideoID == videoID && entry.Status == models.ScheduleStatusPending {
			entry.Status = models.ScheduleStatusCancelled
		}
	}
	return nil
}

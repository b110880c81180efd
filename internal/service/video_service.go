package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/maheshrc27/autoshorts-api/internal/apperrors"
	"github.com/maheshrc27/autoshorts-api/internal/models"
	"github.com/maheshrc27/autoshorts-api/internal/repository"
	"github.com/maheshrc27/autoshorts-api/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Spoken-word pace used for the duration estimate.
const wordsPerSecond = 2.5

const videoIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Renderer is the render/TTS backend capability. The call blocks until the
// asset is produced or fails; it is never invoked twice for the same id.
type Renderer interface {
	Render(ctx context.Context, videoID string, script models.Script, voiceType, videoStyle string) (*transfer.RenderResult, error)
}

type VideoService interface {
	Synthesize(ctx context.Context, rawScript json.RawMessage, voiceType, videoStyle string) (*models.VideoAsset, error)
	List(ctx context.Context) ([]*models.VideoAsset, error)
	Remove(ctx context.Context, id string) error
}

type videoService struct {
	vr       repository.VideoRepository
	sr       repository.ScheduleRepository
	renderer Renderer
}

func NewVideoService(vr repository.VideoRepository, sr repository.ScheduleRepository, renderer Renderer) VideoService {
	return &videoService{
		vr:       vr,
		sr:       sr,
		renderer: renderer,
	}
}

// Synthesize converts a script into a video asset. The record is persisted
// before rendering starts, so a render failure leaves a `failed` asset
// behind rather than losing the attempt.
func (s *videoService) Synthesize(ctx context.Context, rawScript json.RawMessage, voiceType, videoStyle string) (*models.VideoAsset, error) {
	if len(rawScript) == 0 {
		return nil, apperrors.New(apperrors.KindValidation, "script cannot be empty")
	}

	script, text := decodeScript(rawScript)

	id, err := newVideoID()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStore, err)
	}

	video := &models.VideoAsset{
		ID:         id,
		Title:      script.Title,
		Status:     models.VideoStatusCreated,
		Duration:   estimateDuration(text),
		VoiceType:  voiceType,
		VideoStyle: videoStyle,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.vr.Create(ctx, video); err != nil {
		return nil, apperrors.Wrap(apperrors.KindStore, err)
	}

	if err := s.vr.UpdateStatus(ctx, id, models.VideoStatusRendering, ""); err != nil {
		return nil, apperrors.Wrap(apperrors.KindStore, err)
	}
	video.Status = models.VideoStatusRendering

	rendered, err := s.renderer.Render(ctx, id, script, voiceType, videoStyle)
	if err != nil {
		slog.Error("rendering failed", "video_id", id, "error", err)
		if updateErr := s.vr.UpdateStatus(ctx, id, models.VideoStatusFailed, ""); updateErr != nil {
			slog.Error("unable to mark video as failed", "video_id", id, "error", updateErr)
		}
		return nil, apperrors.Wrap(apperrors.KindUpstream, err)
	}

	fields := &repository.RenderedAsset{
		URL:          rendered.URL,
		ThumbnailURL: rendered.ThumbnailURL,
		FileSize:     rendered.FileSize,
		Resolution:   rendered.Resolution,
		Format:       rendered.Format,
	}
	if err := s.vr.SetRendered(ctx, id, video.Duration, fields); err != nil {
		return nil, apperrors.Wrap(apperrors.KindStore, err)
	}

	video.Status = models.VideoStatusReady
	video.URL = rendered.URL
	video.ThumbnailURL = rendered.ThumbnailURL
	video.FileSize = rendered.FileSize
	video.Resolution = rendered.Resolution
	video.Format = rendered.Format

	return video, nil
}

func (s *videoService) List(ctx context.Context) ([]*models.VideoAsset, error) {
	videos, err := s.vr.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStore, err)
	}
	return videos, nil
}

// Remove hard-deletes the asset and cancels any pending schedule entries for
// it. Removing an id that does not exist is a no-op success.
func (s *videoService) Remove(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.New(apperrors.KindValidation, "video id cannot be empty")
	}

	if err := s.sr.CancelByVideoID(ctx, id); err != nil {
		return apperrors.Wrap(apperrors.KindStore, err)
	}

	if err := s.vr.Remove(ctx, id); err != nil {
		return apperrors.Wrap(apperrors.KindStore, err)
	}

	return nil
}

// decodeScript accepts either the structured script object or the plain
// full-script text and returns both forms.
func decodeScript(raw json.RawMessage) (models.Script, string) {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return models.Script{FullScript: text}, text
	}

	var script models.Script
	if err := json.Unmarshal(raw, &script); err == nil {
		return script, script.FullScript
	}

	return models.Script{}, ""
}

func estimateDuration(text string) int {
	words := len(strings.Fields(text))
	return int(math.Ceil(float64(words) / wordsPerSecond))
}

func newVideoID() (string, error) {
	suffix, err := gonanoid.Generate(videoIDAlphabet, 9)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	return fmt.Sprintf("vid_%d_%s", time.Now().UnixMilli(), suffix), nil
}

func newScheduleID() (string, error) {
	suffix, err := gonanoid.Generate(videoIDAlphabet, 9)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	return fmt.Sprintf("schedule_%d_%s", time.Now().UnixMilli(), suffix), nil
}

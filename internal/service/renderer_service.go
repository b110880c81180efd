package service

import (
	"context"
	"fmt"
	"time"

	"github.com/maheshrc27/autoshorts-api/internal/models"
	"github.com/maheshrc27/autoshorts-api/internal/transfer"
)

// simulatedRenderer stands in for a real render/TTS backend. It blocks for a
// fixed window to model render time and reports a synthetic asset.
type simulatedRenderer struct {
	delay time.Duration
}

func NewSimulatedRenderer(delay time.Duration) Renderer {
	return &simulatedRenderer{delay: delay}
}

func (r *simulatedRenderer) Render(ctx context.Context, videoID string, script models.Script, voiceType, videoStyle string) (*transfer.RenderResult, error) {
	select {
	case <-time.After(r.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return &transfer.RenderResult{
		URL:          fmt.Sprintf("/videos/%s.mp4", videoID),
		ThumbnailURL: fmt.Sprintf("/thumbnails/%s.jpg", videoID),
		FileSize:     "12.5 MB",
		Resolution:   "1080x1920",
		Format:       "MP4",
	}, nil
}

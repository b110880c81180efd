package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	config "github.com/maheshrc27/autoshorts-api/configs"
	"github.com/maheshrc27/autoshorts-api/internal/models"
	"github.com/maheshrc27/autoshorts-api/internal/transfer"
)

// renderClient drives an external render/TTS backend over HTTP and persists
// the produced artifacts in R2, so the asset URLs we hand out survive the
// backend's temp storage.
type renderClient struct {
	cfg        config.Config
	r2         *R2Service
	httpClient *http.Client
}

func NewRenderClient(cfg config.Config, r2 *R2Service) Renderer {
	return &renderClient{
		cfg:        cfg,
		r2:         r2,
		httpClient: &http.Client{Timeout: 10 * time.Minute},
	}
}

type renderRequest struct {
	VideoID    string        `json:"videoId"`
	Script     models.Script `json:"script"`
	VoiceType  string        `json:"voiceType"`
	VideoStyle string        `json:"videoStyle"`
}

type renderResponse struct {
	VideoURL     string `json:"videoUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Resolution   string `json:"resolution"`
	Format       string `json:"format"`
}

var allowedArtifactTypes = map[string]struct{}{
	"mp4": {}, "mov": {}, "jpeg": {}, "png": {}, "jpg": {},
}

func (r *renderClient) Render(ctx context.Context, videoID string, script models.Script, voiceType, videoStyle string) (*transfer.RenderResult, error) {
	body, err := json.Marshal(renderRequest{
		VideoID:    videoID,
		Script:     script,
		VoiceType:  voiceType,
		VideoStyle: videoStyle,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.RenderServiceURL+"/render", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("render service returned status %d", resp.StatusCode)
	}

	var rendered renderResponse
	if err := json.NewDecoder(resp.Body).Decode(&rendered); err != nil {
		return nil, fmt.Errorf("invalid render service response: %w", err)
	}
	if rendered.VideoURL == "" {
		return nil, errors.New("render service returned no video url")
	}

	videoBytes, videoType, err := r.fetchArtifact(ctx, rendered.VideoURL)
	if err != nil {
		return nil, fmt.Errorf("error fetching rendered video: %w", err)
	}

	assetURL, err := r.r2.UploadArtifact(ctx, videoID+"."+videoType.Extension, videoBytes, videoType.MIME.Value)
	if err != nil {
		return nil, fmt.Errorf("error storing rendered video: %w", err)
	}

	thumbnailURL := ""
	if rendered.ThumbnailURL != "" {
		thumbBytes, thumbType, err := r.fetchArtifact(ctx, rendered.ThumbnailURL)
		if err != nil {
			return nil, fmt.Errorf("error fetching thumbnail: %w", err)
		}
		thumbnailURL, err = r.r2.UploadArtifact(ctx, videoID+"_thumb."+thumbType.Extension, thumbBytes, thumbType.MIME.Value)
		if err != nil {
			return nil, fmt.Errorf("error storing thumbnail: %w", err)
		}
	}

	resolution := rendered.Resolution
	if resolution == "" {
		resolution = "1080x1920"
	}
	format := rendered.Format
	if format == "" {
		format = "MP4"
	}

	return &transfer.RenderResult{
		URL:          assetURL,
		ThumbnailURL: thumbnailURL,
		FileSize:     fmt.Sprintf("%.1f MB", float64(len(videoBytes))/(1024*1024)),
		Resolution:   resolution,
		Format:       format,
	}, nil
}

func (r *renderClient) fetchArtifact(ctx context.Context, url string) ([]byte, types.Type, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, types.Unknown, err
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, types.Unknown, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, types.Unknown, fmt.Errorf("unexpected response status: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, types.Unknown, err
	}

	artifactType, err := filetype.Match(data)
	if err != nil || artifactType == types.Unknown {
		return nil, types.Unknown, errors.New("unrecognized artifact type")
	}
	if _, ok := allowedArtifactTypes[artifactType.Extension]; !ok {
		return nil, types.Unknown, fmt.Errorf("artifact type %s is not allowed", artifactType.Extension)
	}

	return data, artifactType, nil
}

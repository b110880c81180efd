package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	config "github.com/maheshrc27/autoshorts-api/configs"
	"github.com/maheshrc27/autoshorts-api/internal/repository"
	"github.com/maheshrc27/autoshorts-api/internal/transfer"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// youtubeClient uploads rendered assets to YouTube through the Data API,
// authenticating with the channel's offline refresh token.
type youtubeClient struct {
	cfg config.Config
	vr  repository.VideoRepository
}

func NewYoutubeClient(cfg config.Config, vr repository.VideoRepository) PublishClient {
	return &youtubeClient{cfg: cfg, vr: vr}
}

func (c *youtubeClient) Upload(ctx context.Context, videoID string, metadata transfer.VideoMetadata) (*transfer.PublishResult, error) {
	video, err := c.vr.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, errors.New("video does not exist")
	}
	if video.URL == "" {
		return nil, errors.New("video has no rendered asset")
	}

	conf := &oauth2.Config{
		ClientID:     c.cfg.GoogleClientID,
		ClientSecret: c.cfg.GoogleClientSecret,
		Scopes:       []string{"https://www.googleapis.com/auth/youtube.upload"},
		Endpoint:     google.Endpoint,
	}

	tokenSource := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: c.cfg.YoutubeRefreshToken})

	service, err := youtube.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		log.Printf("Error creating YouTube service: %v", err)
		return nil, err
	}

	tempFile, err := downloadAsset(ctx, video.URL)
	if err != nil {
		return nil, err
	}
	defer os.Remove(tempFile)

	file, err := os.Open(tempFile)
	if err != nil {
		log.Printf("Error opening video file: %v", err)
		return nil, err
	}
	defer file.Close()

	upload := &youtube.Video{
		Snippet: &youtube.VideoSnippet{
			Title:       metadata.Title,
			Description: metadata.Description,
			Tags:        metadata.Tags,
			CategoryId:  "22",
		},
		Status: &youtube.VideoStatus{
			PrivacyStatus: "public",
		},
	}

	call := service.Videos.Insert([]string{"snippet", "status"}, upload)
	response, err := call.Media(file).Do()
	if err != nil {
		log.Printf("Error uploading video: %v", err)
		return nil, err
	}

	return &transfer.PublishResult{
		Success:  true,
		RemoteID: response.Id,
		URL:      fmt.Sprintf("https://youtube.com/shorts/%s", response.Id),
	}, nil
}

func downloadAsset(ctx context.Context, assetURL string) (string, error) {
	tempFile, err := os.CreateTemp("", "video-*.mp4")
	if err != nil {
		return "", fmt.Errorf("error creating temporary file: %w", err)
	}

	if err := fetchAssetTo(ctx, tempFile, assetURL); err != nil {
		tempFile.Close()
		os.Remove(tempFile.Name())
		return "", err
	}

	if err := tempFile.Close(); err != nil {
		os.Remove(tempFile.Name())
		return "", err
	}

	return tempFile.Name(), nil
}

func fetchAssetTo(ctx context.Context, dst io.Writer, assetURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, assetURL, nil)
	if err != nil {
		return err
	}

	response, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("error downloading video asset: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected response status: %d", response.StatusCode)
	}

	if _, err := io.Copy(dst, response.Body); err != nil {
		return fmt.Errorf("error saving video asset: %w", err)
	}

	return nil
}

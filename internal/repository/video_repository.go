package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/maheshrc27/autoshorts-api/internal/models"
)

type VideoRepository interface {
	Create(ctx context.Context, video *models.VideoAsset) error
	GetByID(ctx context.Context, id string) (*models.VideoAsset, error)
	List(ctx context.Context) ([]*models.VideoAsset, error)
	ListByStatus(ctx context.Context, status string) ([]*models.VideoAsset, error)
	SetRendered(ctx context.Context, id string, duration int, r *RenderedAsset) error
	UpdateStatus(ctx context.Context, id, status, remoteID string) error
	Remove(ctx context.Context, id string) error
}

// RenderedAsset carries the descriptor columns written once rendering succeeds.
type RenderedAsset struct {
	URL          string
	ThumbnailURL string
	FileSize     string
	Resolution   string
	Format       string
}

type videoRepository struct {
	db *sql.DB
}

func NewVideoRepository(db *sql.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(ctx context.Context, video *models.VideoAsset) error {
	query := `
		INSERT INTO videos (id, title, status, duration, resolution, format, file_size, url, thumbnail_url, voice_type, video_style, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.ExecContext(ctx, query,
		video.ID, video.Title, video.Status, video.Duration, video.Resolution,
		video.Format, video.FileSize, video.URL, video.ThumbnailURL,
		video.VoiceType, video.VideoStyle, video.CreatedAt)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	return nil
}

func (r *videoRepository) GetByID(ctx context.Context, id string) (*models.VideoAsset, error) {
	query := `
		SELECT id, title, status, duration, resolution, format, file_size, url, thumbnail_url, voice_type, video_style, remote_id, created_at
		FROM videos WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, query, id)

	var video models.VideoAsset
	err := row.Scan(&video.ID, &video.Title, &video.Status, &video.Duration,
		&video.Resolution, &video.Format, &video.FileSize, &video.URL,
		&video.ThumbnailURL, &video.VoiceType, &video.VideoStyle,
		&video.RemoteID, &video.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return &video, nil
}

func (r *videoRepository) List(ctx context.Context) ([]*models.VideoAsset, error) {
	query := `
		SELECT id, title, status, duration, resolution, format, file_size, url, thumbnail_url, voice_type, video_style, remote_id, created_at
		FROM videos ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	return scanVideos(rows)
}

func (r *videoRepository) ListByStatus(ctx context.Context, status string) ([]*models.VideoAsset, error) {
	query := `
		SELECT id, title, status, duration, resolution, format, file_size, url, thumbnail_url, voice_type, video_style, remote_id, created_at
		FROM videos WHERE status = $1 ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	return scanVideos(rows)
}

func scanVideos(rows *sql.Rows) ([]*models.VideoAsset, error) {
	var videos []*models.VideoAsset
	for rows.Next() {
		var video models.VideoAsset
		err := rows.Scan(&video.ID, &video.Title, &video.Status, &video.Duration,
			&video.Resolution, &video.Format, &video.FileSize, &video.URL,
			&video.ThumbnailURL, &video.VoiceType, &video.VideoStyle,
			&video.RemoteID, &video.CreatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		videos = append(videos, &video)
	}
	return videos, nil
}

func (r *videoRepository) SetRendered(ctx context.Context, id string, duration int, f *RenderedAsset) error {
	query := `
		UPDATE videos
		SET status = $1,
			duration = $2,
			url = $3,
			thumbnail_url = $4,
			file_size = $5,
			resolution = $6,
			format = $7
		WHERE id = $8
	`
	_, err := r.db.ExecContext(ctx, query, models.VideoStatusReady, duration,
		f.URL, f.ThumbnailURL, f.FileSize, f.Resolution, f.Format, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *videoRepository) UpdateStatus(ctx context.Context, id, status, remoteID string) error {
	query := `
		UPDATE videos
		SET status = $1,
			remote_id = CASE WHEN $2 <> '' THEN $2 ELSE remote_id END
		WHERE id = $3
	`
	_, err := r.db.ExecContext(ctx, query, status, remoteID, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *videoRepository) Remove(ctx context.Context, id string) error {
	query := `DELETE FROM videos WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)

	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

package models

import "time"

type VideoAsset struct {
	ID           string    `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Status       string    `db:"status" json:"status"`
	Duration     int       `db:"duration" json:"duration"`
	Resolution   string    `db:"resolution" json:"resolution"`
	Format       string    `db:"format" json:"format"`
	FileSize     string    `db:"file_size" json:"fileSize"`
	URL          string    `db:"url" json:"url"`
	ThumbnailURL string    `db:"thumbnail_url" json:"thumbnailUrl"`
	VoiceType    string    `db:"voice_type" json:"voiceType"`
	VideoStyle   string    `db:"video_style" json:"videoStyle"`
	RemoteID     string    `db:"remote_id" json:"remoteId,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

const (
	VideoStatusCreated   = "created"
	VideoStatusRendering = "rendering"
	VideoStatusReady     = "ready"
	VideoStatusFailed    = "failed"
	VideoStatusScheduled = "scheduled"
	VideoStatusPosted    = "posted"
)

package models

import "time"

// ScheduleEntry is a future publish intent, distinct from the video asset itself.
type ScheduleEntry struct {
	ID            string    `db:"id" json:"id"`
	VideoID       string    `db:"video_id" json:"videoId"`
	Title         string    `db:"title" json:"title"`
	Description   string    `db:"description" json:"description"`
	Tags          []string  `db:"tags" json:"tags"`
	ScheduledTime time.Time `db:"scheduled_time" json:"scheduledTime"`
	Status        string    `db:"status" json:"status"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

const (
	ScheduleStatusPending    = "pending"
	ScheduleStatusPublishing = "publishing"
	ScheduleStatusPosted     = "posted"
	ScheduleStatusFailed     = "failed"
	ScheduleStatusCancelled  = "cancelled"
)

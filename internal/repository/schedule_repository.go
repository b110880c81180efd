package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/lib/pq"
	"github.com/maheshrc27/autoshorts-api/internal/models"
)

type ScheduleRepository interface {
	Create(ctx context.Context, entry *models.ScheduleEntry) error
	GetByID(ctx context.Context, id string) (*models.ScheduleEntry, error)
	List(ctx context.Context) ([]*models.ScheduleEntry, error)
	ListByStatus(ctx context.Context, status string) ([]*models.ScheduleEntry, error)
	ListDue(ctx context.Context, before time.Time) ([]*models.ScheduleEntry, error)
	ClaimPending(ctx context.Context, id string) (bool, error)
	UpdateStatus(ctx context.Context, id, status string) error
	CancelByVideoID(ctx context.Context, videoID string) error
}

type scheduleRepository struct {
	db *sql.DB
}

func NewScheduleRepository(db *sql.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(ctx context.Context, entry *models.ScheduleEntry) error {
	query := `
		INSERT INTO schedule_entries (id, video_id, title, description, tags, scheduled_time, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query, entry.ID, entry.VideoID, entry.Title,
		entry.Description, pq.Array(entry.Tags), entry.ScheduledTime, entry.Status, entry.CreatedAt)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	return nil
}

func (r *scheduleRepository) GetByID(ctx context.Context, id string) (*models.ScheduleEntry, error) {
	query := `
		SELECT id, video_id, title, description, tags, scheduled_time, status, created_at
		FROM schedule_entries WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, query, id)

	var entry models.ScheduleEntry
	err := row.Scan(&entry.ID, &entry.VideoID, &entry.Title, &entry.Description,
		pq.Array(&entry.Tags), &entry.ScheduledTime, &entry.Status, &entry.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return &entry, nil
}

func (r *scheduleRepository) List(ctx context.Context) ([]*models.ScheduleEntry, error) {
	query := `
		SELECT id, video_id, title, description, tags, scheduled_time, status, created_at
		FROM schedule_entries ORDER BY scheduled_time
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (r *scheduleRepository) ListByStatus(ctx context.Context, status string) ([]*models.ScheduleEntry, error) {
	query := `
		SELECT id, video_id, title, description, tags, scheduled_time, status, created_at
		FROM schedule_entries WHERE status = $1 ORDER BY scheduled_time
	`
	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (r *scheduleRepository) ListDue(ctx context.Context, before time.Time) ([]*models.ScheduleEntry, error) {
	query := `
		SELECT id, video_id, title, description, tags, scheduled_time, status, created_at
		FROM schedule_entries WHERE status = $1 AND scheduled_time <= $2 ORDER BY scheduled_time
	`
	rows, err := r.db.QueryContext(ctx, query, models.ScheduleStatusPending, before)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]*models.ScheduleEntry, error) {
	var entries []*models.ScheduleEntry
	for rows.Next() {
		var entry models.ScheduleEntry
		err := rows.Scan(&entry.ID, &entry.VideoID, &entry.Title, &entry.Description,
			pq.Array(&entry.Tags), &entry.ScheduledTime, &entry.Status, &entry.CreatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		entries = append(entries, &entry)
	}
	return entries, nil
}

// ClaimPending transitions a pending entry to publishing. The conditional
// update makes the claim atomic: of any concurrent claimants, exactly one
// sees a row affected.
func (r *scheduleRepository) ClaimPending(ctx context.Context, id string) (bool, error) {
	query := `UPDATE schedule_entries SET status = $1 WHERE id = $2 AND status = $3`
	result, err := r.db.ExecContext(ctx, query, models.ScheduleStatusPublishing, id, models.ScheduleStatusPending)
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}

	return affected > 0, nil
}

func (r *scheduleRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE schedule_entries SET status = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *scheduleRepository) CancelByVideoID(ctx context.Context, videoID string) error {
	query := `UPDATE schedule_entries SET status = $1 WHERE video_id = $2 AND status = $3`
	_, err := r.db.ExecContext(ctx, query, models.ScheduleStatusCancelled, videoID, models.ScheduleStatusPending)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

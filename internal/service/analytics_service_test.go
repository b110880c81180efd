package service

import (
	"context"
	"testing"

	"github.com/maheshrc27/autoshorts-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsSummaryRangeMultiplier(t *testing.T) {
	s := NewAnalyticsService(newMemVideoRepo())

	day, err := s.Summary(context.Background(), "24h")
	require.NoError(t, err)
	week, err := s.Summary(context.Background(), "7d")
	require.NoError(t, err)

	assert.Equal(t, day.TotalViews*7, week.TotalViews)
	assert.NotEmpty(t, week.Insights)
}

func TestAnalyticsTopVideosFromStore(t *testing.T) {
	vr := newMemVideoRepo()
	for _, id := range []string{"vid_a", "vid_b"} {
		require.NoError(t, vr.Create(context.Background(), &models.VideoAsset{
			ID:     id,
			Title:  "Video " + id,
			Status: models.VideoStatusPosted,
		}))
	}
	require.NoError(t, vr.Create(context.Background(), &models.VideoAsset{
		ID:     "vid_c",
		Status: models.VideoStatusReady,
	}))

	s := NewAnalyticsService(vr)
	summary, err := s.Summary(context.Background(), "7d")
	require.NoError(t, err)

	// Only posted videos appear.
	assert.Len(t, summary.TopVideos, 2)
}

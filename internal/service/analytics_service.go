package service

import (
	"context"
	"time"

	"github.com/maheshrc27/autoshorts-api/internal/apperrors"
	"github.com/maheshrc27/autoshorts-api/internal/models"
	"github.com/maheshrc27/autoshorts-api/internal/repository"
	"github.com/maheshrc27/autoshorts-api/internal/transfer"
)

// AnalyticsService reports synthetic channel metrics. Numbers are modeled,
// not fetched; the real analytics data source sits behind a paid API and is
// swapped in by replacing this service.
type AnalyticsService struct {
	vr repository.VideoRepository
}

func NewAnalyticsService(vr repository.VideoRepository) *AnalyticsService {
	return &AnalyticsService{vr: vr}
}

var analyticsInsights = []string{
	"Your videos posted at 6 PM get 45% more views than other times",
	"Videos with emotional hooks perform 67% better in the first hour",
	"Adding trending hashtags increases discoverability by 38%",
	"Your completion rate is 23% above average for your niche",
	"Consider increasing posting frequency to 3x per day for optimal growth",
}

var topVideoBaselines = []struct {
	views    int
	likes    int
	comments int
}{
	{45230, 3421, 234},
	{38940, 2856, 189},
	{32150, 2341, 156},
}

func (s *AnalyticsService) Summary(ctx context.Context, dateRange string) (*transfer.AnalyticsSummary, error) {
	multiplier := 90
	switch dateRange {
	case "24h":
		multiplier = 1
	case "7d":
		multiplier = 7
	case "30d":
		multiplier = 30
	}

	posted, err := s.vr.ListByStatus(ctx, models.VideoStatusPosted)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStore, err)
	}

	topVideos := make([]transfer.TopVideo, 0, len(topVideoBaselines))
	for i, video := range posted {
		if i >= len(topVideoBaselines) {
			break
		}
		baseline := topVideoBaselines[i]
		topVideos = append(topVideos, transfer.TopVideo{
			Title:       video.Title,
			PublishedAt: video.CreatedAt.UTC().Format(time.RFC3339),
			Views:       baseline.views,
			Likes:       baseline.likes,
			Comments:    baseline.comments,
		})
	}

	return &transfer.AnalyticsSummary{
		TotalViews:     125430 * multiplier,
		ViewsGrowth:    23.5,
		TotalLikes:     8234 * multiplier,
		LikesGrowth:    18.2,
		TotalComments:  1523 * multiplier,
		CommentsGrowth: 31.4,
		TotalShares:    2156 * multiplier,
		SharesGrowth:   45.8,
		AvgWatchTime:   42,
		EngagementRate: 8.7,
		CTR:            12.3,
		CompletionRate: 78.5,
		TopVideos:      topVideos,
		Insights:       analyticsInsights,
	}, nil
}

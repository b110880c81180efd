package transfer

import "encoding/json"

type GenerateScriptsRequest struct {
	Niche    string `json:"niche"`
	Duration int    `json:"duration"`
	Tone     string `json:"tone"`
	Count    int    `json:"count"`
}

// Script is kept raw because callers may send either the structured
// script object or the plain full-script text.
type CreateVideoRequest struct {
	Script     json.RawMessage `json:"script"`
	VoiceType  string          `json:"voiceType"`
	VideoStyle string          `json:"videoStyle"`
}

type PublishRequest struct {
	VideoID      string   `json:"videoId"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Tags         []string `json:"tags"`
	AutoOptimize bool     `json:"autoOptimize"`
}

type ScheduleRequest struct {
	VideoID      string   `json:"videoId"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Tags         []string `json:"tags"`
	ScheduleDate string   `json:"scheduleDate"`
	ScheduleTime string   `json:"scheduleTime"`
	AutoOptimize bool     `json:"autoOptimize"`
}

type VideoMetadata struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type PublishResult struct {
	Success  bool   `json:"success"`
	RemoteID string `json:"remoteId"`
	URL      string `json:"url"`
}

type RenderResult struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
	FileSize     string `json:"fileSize"`
	Resolution   string `json:"resolution"`
	Format       string `json:"format"`
}

type TopVideo struct {
	Title       string `json:"title"`
	PublishedAt string `json:"publishedAt"`
	Views       int    `json:"views"`
	Likes       int    `json:"likes"`
	Comments    int    `json:"comments"`
}

type AnalyticsSummary struct {
	TotalViews     int        `json:"totalViews"`
	ViewsGrowth    float64    `json:"viewsGrowth"`
	TotalLikes     int        `json:"totalLikes"`
	LikesGrowth    float64    `json:"likesGrowth"`
	TotalComments  int        `json:"totalComments"`
	CommentsGrowth float64    `json:"commentsGrowth"`
	TotalShares    int        `json:"totalShares"`
	SharesGrowth   float64    `json:"sharesGrowth"`
	AvgWatchTime   int        `json:"avgWatchTime"`
	EngagementRate float64    `json:"engagementRate"`
	CTR            float64    `json:"ctr"`
	CompletionRate float64    `json:"completionRate"`
	TopVideos      []TopVideo `json:"topVideos"`
	Insights       []string   `json:"insights"`
}

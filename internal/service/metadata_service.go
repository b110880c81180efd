package service

import (
	"strings"
	"unicode/utf8"

	"github.com/maheshrc27/autoshorts-api/internal/transfer"
)

const maxTitleLength = 60

var trendingHashtags = []string{"#shorts", "#viral", "#fyp", "#trending"}

var boilerplateTags = []string{"shorts", "viral", "trending"}

const ctaBlock = "🔔 Subscribe for more!\n💬 Comment below\n❤️ Like if you enjoyed!"

// MetadataService rewrites raw title/description/tags with fixed
// discoverability rules.
type MetadataService struct{}

func NewMetadataService() *MetadataService {
	return &MetadataService{}
}

// Optimize is deterministic but not idempotent: re-optimizing an already
// rewritten description appends the hashtag and CTA blocks again. Callers
// invoke it exactly once per raw metadata object.
func (s *MetadataService) Optimize(title, description string, tags []string) transfer.VideoMetadata {
	optimizedTitle := title
	if utf8.RuneCountInString(title) > maxTitleLength {
		optimizedTitle = string([]rune(title)[:maxTitleLength-3]) + "..."
	}

	hashTags := make([]string, 0, len(tags))
	for _, tag := range tags {
		hashTags = append(hashTags, "#"+tag)
	}

	optimizedDescription := description + "\n\n" +
		strings.Join(trendingHashtags, " ") + "\n\n" +
		ctaBlock + "\n\n" +
		strings.Join(hashTags, " ")

	return transfer.VideoMetadata{
		Title:       optimizedTitle,
		Description: optimizedDescription,
		Tags:        mergeTags(tags, boilerplateTags),
	}
}

// mergeTags unions a with b, de-duplicating while preserving first-seen order.
func mergeTags(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	merged := make([]string, 0, len(a)+len(b))
	for _, tag := range append(append([]string{}, a...), b...) {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		merged = append(merged, tag)
	}
	return merged
}

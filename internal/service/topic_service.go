package service

import "strings"

// TopicSource supplies a rotating list of candidate topics per niche.
// Selection is deterministic; production would swap this for a trending
// topics API behind the same methods.
type TopicSource struct{}

func NewTopicSource() *TopicSource {
	return &TopicSource{}
}

var nicheTopics = map[string][]string{
	"tech":       {"AI Revolution", "New iPhone Features", "Productivity Hacks", "Coding Tips", "Tech News"},
	"motivation": {"Morning Routine", "Success Mindset", "Overcome Fear", "Daily Habits", "Goal Setting"},
	"life hacks": {"Kitchen Hacks", "Money Saving Tips", "Phone Tricks", "Organization Ideas", "DIY Solutions"},
}

const defaultNiche = "tech"

// ForNiche never fails; unknown niches fall back to the default sequence.
func (t *TopicSource) ForNiche(niche string) []string {
	key := strings.ToLower(strings.TrimSpace(niche))
	if topics, ok := nicheTopics[key]; ok {
		return topics
	}
	return nicheTopics[defaultNiche]
}

func (t *TopicSource) Pick(niche string, i int) string {
	topics := t.ForNiche(niche)
	return topics[i%len(topics)]
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/maheshrc27/autoshorts-api/internal/apperrors"
	"github.com/maheshrc27/autoshorts-api/internal/models"
)

const scriptSystemPrompt = "You are an expert YouTube Shorts content creator who creates viral, engaging scripts. Always respond with valid JSON only."

type ScriptService interface {
	Generate(ctx context.Context, niche string, duration int, tone string, count int) ([]models.Script, error)
}

type scriptService struct {
	topics    *TopicSource
	completer TextCompleter
	timeout   time.Duration
}

func NewScriptService(topics *TopicSource, completer TextCompleter, timeout time.Duration) ScriptService {
	return &scriptService{
		topics:    topics,
		completer: completer,
		timeout:   timeout,
	}
}

// Generate produces count independent scripts, topics rotating through the
// niche's sequence. Scripts are generated concurrently; the result sequence
// is ordered by request index. A single generation failure degrades that
// script to the template fallback and never aborts the batch.
func (s *scriptService) Generate(ctx context.Context, niche string, duration int, tone string, count int) ([]models.Script, error) {
	if strings.TrimSpace(niche) == "" {
		return nil, apperrors.New(apperrors.KindValidation, "niche cannot be empty")
	}
	if duration <= 0 {
		return nil, apperrors.New(apperrors.KindValidation, "duration must be positive")
	}
	if count < 1 {
		return nil, apperrors.New(apperrors.KindValidation, "count must be at least 1")
	}

	scripts := make([]models.Script, count)

	var wg sync.WaitGroup

	concurrencyLimit := 5
	semaphore := make(chan struct{}, concurrencyLimit)

	for i := 0; i < count; i++ {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(i int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			topic := s.topics.Pick(niche, i)
			scripts[i] = s.generateOne(ctx, niche, duration, tone, topic)
		}(i)
	}

	wg.Wait()
	return scripts, nil
}

func (s *scriptService) generateOne(ctx context.Context, niche string, duration int, tone, topic string) models.Script {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.completer.Complete(ctx, scriptSystemPrompt, buildScriptPrompt(niche, duration, tone, topic))
	if err != nil {
		slog.Info("text generation failed, using fallback script", "topic", topic, "error", err)
		return FallbackScript(niche, duration, topic)
	}

	var script models.Script
	if err := json.Unmarshal([]byte(raw), &script); err != nil {
		slog.Info("malformed script response, using fallback script", "topic", topic, "error", err)
		return FallbackScript(niche, duration, topic)
	}

	normalizeScript(&script)
	return script
}

func buildScriptPrompt(niche string, duration int, tone, topic string) string {
	return fmt.Sprintf(`Create a viral YouTube Short script for a %d-second video.

Niche: %s
Topic: %s
Tone: %s
Duration: %d seconds

Requirements:
1. Start with a POWERFUL hook (first 3 seconds) that stops scrolling
2. Deliver value quickly with concise storytelling
3. Use pattern interrupts and engaging language
4. End with a strong CTA (call-to-action)
5. Keep it under %d seconds when spoken

Provide the script in this exact JSON format:
{
  "hook": "Opening hook (3 seconds)",
  "content": "Main content (engaging and concise)",
  "cta": "Strong call to action",
  "fullScript": "Complete script as one paragraph",
  "visuals": ["Visual suggestion 1", "Visual suggestion 2", "Visual suggestion 3"],
  "textOverlays": ["Text overlay 1", "Text overlay 2", "Text overlay 3"],
  "captions": "Full captions/subtitles",
  "keywords": ["keyword1", "keyword2", "keyword3", "keyword4", "keyword5"],
  "title": "Optimized video title",
  "description": "SEO-optimized description"
}`, duration, niche, topic, tone, duration, duration)
}

// FallbackScript is the deterministic offline generator: identical inputs
// always yield byte-identical output.
func FallbackScript(niche string, duration int, topic string) models.Script {
	fullScript := fmt.Sprintf("Wait... did you know this about %s? Here's a %d-second breakdown: This %s trick will completely change how you think about %s. The secret is simple but powerful. Follow for more tips like this! Drop a 🔥 if this helped!",
		topic, duration, topic, niche)

	return models.Script{
		Hook:       fmt.Sprintf("Wait... did you know this about %s?", topic),
		Content:    fmt.Sprintf("Here's a %d-second breakdown: This %s trick will completely change how you think about %s. The secret is simple but powerful.", duration, topic, niche),
		CTA:        "Follow for more tips like this! Drop a 🔥 if this helped!",
		FullScript: fullScript,
		Visuals: []string{
			"Eye-catching opening graphic",
			"B-roll footage related to topic",
			"Text animations and transitions",
			"Engaging closing screen",
		},
		TextOverlays: []string{
			"🚀 GAME CHANGER",
			"Watch this...",
			"Mind = Blown",
			"Follow for more!",
		},
		Captions:    fmt.Sprintf("Wait... did you know this about %s? This trick will change everything. Follow for more!", topic),
		Keywords:    []string{strings.ToLower(topic), strings.ToLower(niche), "viral", "shorts", "trending"},
		Title:       fmt.Sprintf("%s That Will Blow Your Mind! 🤯 #%s #shorts", topic, niche),
		Description: fmt.Sprintf("Discover this amazing %s in %s! 🔥\n\n#%s #shorts #viral #trending #fyp #%s\n\nFollow for more amazing content!", topic, niche, niche, strings.ReplaceAll(topic, " ", "")),
	}
}

// Model responses are trusted as-is once they parse; absent array fields
// are defaulted rather than left nil.
func normalizeScript(script *models.Script) {
	if script.Visuals == nil {
		script.Visuals = []string{}
	}
	if script.TextOverlays == nil {
		script.TextOverlays = []string{}
	}
	if script.Keywords == nil {
		script.Keywords = []string{}
	}
}

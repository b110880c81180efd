package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopicRotation(t *testing.T) {
	topics := NewTopicSource()

	known := topics.ForNiche("tech")
	assert.Len(t, known, 5)

	// Rotation wraps after the last topic.
	assert.Equal(t, topics.Pick("tech", 0), topics.Pick("tech", 5))
	assert.Equal(t, topics.Pick("tech", 2), topics.Pick("tech", 7))
}

func TestUnknownNicheFallsBackToDefault(t *testing.T) {
	topics := NewTopicSource()

	assert.Equal(t, topics.ForNiche("tech"), topics.ForNiche("underwater basket weaving"))
	assert.Equal(t, topics.ForNiche("tech"), topics.ForNiche(""))
}

func TestNicheLookupIsCaseInsensitive(t *testing.T) {
	topics := NewTopicSource()

	assert.Equal(t, topics.ForNiche("motivation"), topics.ForNiche("  Motivation "))
	assert.Equal(t, topics.ForNiche("life hacks"), topics.ForNiche("Life Hacks"))
}

package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := New(KindValidation, "niche cannot be empty")

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindValidation, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestKindSurvivesWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("during upload: %w", Wrap(KindPublish, cause))

	assert.True(t, IsKind(err, KindPublish))
	assert.False(t, IsKind(err, KindStore))
	assert.True(t, errors.Is(err, cause))
}

func TestErrorMessageIncludesKind(t *testing.T) {
	err := Wrap(KindUpstream, errors.New("render backend down"))
	assert.Equal(t, "upstream: render backend down", err.Error())
}

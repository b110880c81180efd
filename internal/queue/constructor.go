package queue

import (
	"github.com/maheshrc27/autoshorts-api/internal/service"
)

type Queue struct {
	ps service.PublishService
}

func NewQueue(ps service.PublishService) *Queue {
	return &Queue{ps: ps}
}

const TaskTypePublishVideo = "publish:video"

type PublishVideoPayload struct {
	EntryID string `json:"entry_id"`
}

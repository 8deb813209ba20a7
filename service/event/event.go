package event

import (
	"time"

	"github.com/viant/schedly/internal/clock"
)

// Context identifies the origin of a scheduler event.
type Context struct {
	RunID     string `json:"runId,omitempty"`
	ProcessID string `json:"processId,omitempty"`
	EventType string `json:"eventType"`
	Tick      int    `json:"tick"`
}

// Event carries a typed payload together with its origin context.
type Event[T any] struct {
	Context   *Context               `json:"context"`
	CreatedAt time.Time              `json:"createdAt"`
	Metadata  map[string]interface{} `json:"metadata"`
	Data      T                      `json:"data"`
}

func NewEvent[T any](context *Context, data T) *Event[T] {
	return &Event[T]{
		Context:   context,
		CreatedAt: clock.Now(),
		Metadata:  make(map[string]interface{}),
		Data:      data,
	}
}

package formatter

import (
	"encoding/json"

	"github.com/theoremus-urban-solutions/gomi-schedule/schedule"
)

// ScheduleResponse is the success body of /api/schedule
type ScheduleResponse struct {
	Schedule *schedule.Schedule `json:"schedule"`
}

// ErrorResponse is the failure body of every endpoint
type ErrorResponse struct {
	Error string `json:"error"`
}

type responseBuilder struct{}

// NewResponseBuilder creates a new response builder
func NewResponseBuilder() *responseBuilder {
	return &responseBuilder{}
}

// BuildJSON serializes a schedule response
func (rb *responseBuilder) BuildJSON(s *schedule.Schedule) ([]byte, error) {
	return json.Marshal(ScheduleResponse{Schedule: s})
}

// BuildErrorJSON serializes an error message
func (rb *responseBuilder) BuildErrorJSON(message string) []byte {
	b, _ := json.Marshal(ErrorResponse{Error: message})
	return b
}

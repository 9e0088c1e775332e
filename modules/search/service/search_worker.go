package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"timeslotfinder/core/constants"
	"timeslotfinder/core/logger"
)

type searchRunPayload struct {
	SearchID uuid.UUID `json:"search_id"`
}

// NewSearchRunTask builds the queue task that executes a stored search
func NewSearchRunTask(searchID uuid.UUID) (*asynq.Task, error) {
	payload, err := json.Marshal(searchRunPayload{SearchID: searchID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(constants.TaskTypeSearchRun, payload, asynq.MaxRetry(3)), nil
}

// HandleSearchRun is the asynq handler for queued searches
func (s *SearchService) HandleSearchRun(ctx context.Context, t *asynq.Task) error {
	var payload searchRunPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		// Malformed payloads never become valid, so retrying is pointless.
		return fmt.Errorf("unmarshal search run payload: %v: %w", err, asynq.SkipRetry)
	}

	logger.Info("SearchWorker:Run", "search_id", payload.SearchID)
	return s.Run(ctx, payload.SearchID)
}

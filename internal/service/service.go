// Package service runs one categorize request: parse, classify, persist.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"microcat/internal/classifier"
	"microcat/internal/models"
)

var (
	// ErrMalformedRequest means the body was not a JSON object with a string
	// "object" field.
	ErrMalformedRequest = errors.New("malformed request")

	// ErrPersistenceFailure means the record could not be stored. The
	// classification itself succeeded but is not returned.
	ErrPersistenceFailure = errors.New("persistence failure")
)

// Store appends classification records.
type Store interface {
	InsertClassification(ctx context.Context, rec *models.ClassificationRecord) error
}

// Recorder observes request outcomes. It may be nil.
type Recorder interface {
	RecordOutcome(outcome string, category string)
}

// ClassificationService classifies objects and persists the result.
type ClassificationService struct {
	store    Store
	recorder Recorder
	timeout  time.Duration
}

// New creates a ClassificationService. A zero timeout means no per-request
// store deadline beyond the caller's context.
func New(store Store, recorder Recorder, timeout time.Duration) *ClassificationService {
	return &ClassificationService{store: store, recorder: recorder, timeout: timeout}
}

// Handle parses body, classifies the object and appends a record.
func (s *ClassificationService) Handle(ctx context.Context, body []byte) (*models.ClassificationResult, error) {
	object, err := parseRequest(body)
	if err != nil {
		s.record(models.OutcomeMalformed, "")
		return nil, err
	}
	return s.Classify(ctx, object)
}

// Classify classifies object and appends a record for it.
func (s *ClassificationService) Classify(ctx context.Context, object string) (*models.ClassificationResult, error) {
	result := classifier.Result(object)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := s.store.InsertClassification(ctx, models.NewClassificationRecord(result)); err != nil {
		slog.Error("failed to persist classification",
			"category", result.Category.String(),
			"confidence", result.Confidence,
			"error", err,
		)
		s.record(models.OutcomeStoreFail, result.Category.String())
		return nil, fmt.Errorf("%w: %w", ErrPersistenceFailure, err)
	}

	s.record(models.OutcomeStored, result.Category.String())
	return &result, nil
}

func (s *ClassificationService) record(outcome, category string) {
	if s.recorder != nil {
		s.recorder.RecordOutcome(outcome, category)
	}
}

// parseRequest extracts the object field. Missing, null or non-string values
// are rejected; an empty string is accepted.
func parseRequest(body []byte) (string, error) {
	var req struct {
		Object *string `json:"object"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedRequest, err)
	}
	if req.Object == nil {
		return "", fmt.Errorf("%w: object is required", ErrMalformedRequest)
	}
	return *req.Object, nil
}

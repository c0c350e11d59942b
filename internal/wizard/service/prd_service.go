package service

import (
	"context"
	"fmt"
	"time"

	"github.com/devnow-platform/onboarding-backend/internal/activity"
	"github.com/devnow-platform/onboarding-backend/internal/wizard/domain"
	"github.com/devnow-platform/onboarding-backend/internal/wizard/prd"
)

// OutputStore persists generated documents.
type OutputStore interface {
	Insert(ctx context.Context, projectID, outputType, content string, meta domain.Metadata) (*domain.GeneratedOutput, error)
	ListByProject(ctx context.Context, userID, projectID string) ([]domain.GeneratedOutput, error)
}

// PRDService assembles and stores the aggregate requirements document.
type PRDService struct {
	steps    StepStore
	outputs  OutputStore
	recorder *activity.Recorder
	now      func() time.Time
}

func NewPRDService(steps StepStore, outputs OutputStore, recorder *activity.Recorder) *PRDService {
	return &PRDService{steps: steps, outputs: outputs, recorder: recorder, now: time.Now}
}

// Generate reads every stored step of the project, assembles the PRD and
// persists it as a fresh output row. The assembler degrades field-by-field,
// so partially filled projects still produce a document; the review screen
// is responsible for only offering generation once all steps are completed.
func (s *PRDService) Generate(ctx context.Context, userID, projectID string) (string, error) {
	records, err := s.steps.ListByProject(ctx, userID, projectID)
	if err != nil {
		return "", err
	}

	byNumber := make(map[int]domain.FormData, len(records))
	for _, rec := range records {
		byNumber[rec.StepNumber] = rec.FormData
	}

	generatedAt := s.now().UTC()
	content := prd.Assemble(byNumber, generatedAt)

	meta := domain.Metadata{GeneratedAt: generatedAt, Version: prd.Version}
	if _, err := s.outputs.Insert(ctx, projectID, "prd", content, meta); err != nil {
		return "", fmt.Errorf("persist output: %w", err)
	}

	s.recorder.Record(ctx, activity.Event{
		Type:      activity.TypePRDGenerated,
		UserID:    userID,
		ProjectID: projectID,
	})
	return content, nil
}

// Outputs lists the project's generated documents, newest first.
func (s *PRDService) Outputs(ctx context.Context, userID, projectID string) ([]domain.GeneratedOutput, error) {
	return s.outputs.ListByProject(ctx, userID, projectID)
}

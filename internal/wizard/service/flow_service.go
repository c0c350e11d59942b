package service

import (
	"context"

	"github.com/devnow-platform/onboarding-backend/internal/activity"
	projdomain "github.com/devnow-platform/onboarding-backend/internal/projects/domain"
	"github.com/devnow-platform/onboarding-backend/internal/wizard/domain"
	"github.com/devnow-platform/onboarding-backend/internal/wizard/registry"
)

// StepStore is the persistence surface the flow controller needs.
type StepStore interface {
	Get(ctx context.Context, userID, projectID string, stepNumber int) (*domain.StepRecord, error)
	ListByProject(ctx context.Context, userID, projectID string) ([]domain.StepRecord, error)
	Upsert(ctx context.Context, userID, projectID string, stepNumber int, formData domain.FormData, status string) (*domain.StepRecord, error)
	CompleteAndAdvance(ctx context.Context, userID, projectID string, stepNumber int, formData domain.FormData) (*domain.StepRecord, *projdomain.Project, error)
}

// FlowService enforces step ordering and validation for the wizard.
type FlowService struct {
	steps    StepStore
	recorder *activity.Recorder
}

func NewFlowService(steps StepStore, recorder *activity.Recorder) *FlowService {
	return &FlowService{steps: steps, recorder: recorder}
}

// GetStep returns the stored record, or a synthetic not_started record when
// the step has never been saved.
func (s *FlowService) GetStep(ctx context.Context, userID, projectID string, stepNumber int) (*domain.StepRecord, error) {
	def := registry.Step(stepNumber)
	if def == nil {
		return nil, domain.ErrInvalidStep
	}

	rec, err := s.steps.Get(ctx, userID, projectID, stepNumber)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = &domain.StepRecord{
			ProjectID:  projectID,
			StepNumber: stepNumber,
			StepName:   def.Title,
			Status:     domain.StepNotStarted,
			FormData:   domain.FormData{},
		}
	}
	return rec, nil
}

// SaveStep persists a draft or completion without advancing the project.
// Saving a completed step back as in_progress reverts it.
func (s *FlowService) SaveStep(ctx context.Context, userID, projectID string, stepNumber int, formData domain.FormData, status string) (*domain.StepRecord, error) {
	if registry.Step(stepNumber) == nil {
		return nil, domain.ErrInvalidStep
	}
	if formData == nil {
		formData = domain.FormData{}
	}

	switch status {
	case "":
		status = domain.StepInProgress
	case domain.StepNotStarted, domain.StepInProgress, domain.StepCompleted:
	default:
		return nil, domain.ErrInvalidStatus
	}

	return s.steps.Upsert(ctx, userID, projectID, stepNumber, formData, status)
}

// Advance validates the step's required fields and, on success, completes it
// and moves the project pointer forward: current_step is capped at the last
// step, and the project closes as completed only when the last step advances. On
// validation failure nothing is written and an IncompleteFormError is
// returned. formData may be nil to advance with the stored draft.
func (s *FlowService) Advance(ctx context.Context, userID, projectID string, stepNumber int, formData domain.FormData) (*domain.StepRecord, *projdomain.Project, error) {
	if registry.Step(stepNumber) == nil {
		return nil, nil, domain.ErrInvalidStep
	}

	if formData == nil {
		rec, err := s.steps.Get(ctx, userID, projectID, stepNumber)
		if err != nil {
			return nil, nil, err
		}
		if rec != nil {
			formData = rec.FormData
		} else {
			formData = domain.FormData{}
		}
	}

	if missing := registry.Validate(stepNumber, formData); len(missing) > 0 {
		return nil, nil, &domain.IncompleteFormError{StepNumber: stepNumber, MissingFields: missing}
	}

	rec, project, err := s.steps.CompleteAndAdvance(ctx, userID, projectID, stepNumber, formData)
	if err != nil {
		return nil, nil, err
	}

	if project.Status == projdomain.StatusCompleted {
		s.recorder.Record(ctx, activity.Event{
			Type:         activity.TypeProjectCompleted,
			UserID:       userID,
			ProjectID:    project.ID,
			ProjectTitle: project.Title,
		})
	}
	return rec, project, nil
}

// ListSteps returns all stored step records for a project.
func (s *FlowService) ListSteps(ctx context.Context, userID, projectID string) ([]domain.StepRecord, error) {
	return s.steps.ListByProject(ctx, userID, projectID)
}

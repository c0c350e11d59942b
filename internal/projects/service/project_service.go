package service

import (
	"context"

	"github.com/devnow-platform/onboarding-backend/internal/activity"
	"github.com/devnow-platform/onboarding-backend/internal/projects/domain"
	wizdomain "github.com/devnow-platform/onboarding-backend/internal/wizard/domain"
)

// ProjectStore persists projects, owner-scoped throughout.
type ProjectStore interface {
	Create(ctx context.Context, userID, title string, description *string) (*domain.Project, error)
	List(ctx context.Context, userID string) ([]domain.Project, error)
	Get(ctx context.Context, userID, projectID string) (*domain.Project, error)
	Owner(ctx context.Context, projectID string) (*domain.Owner, error)
	Update(ctx context.Context, userID, projectID, title string, description *string) (*domain.Project, error)
	Archive(ctx context.Context, userID, projectID string) (*domain.Project, error)
	Delete(ctx context.Context, userID, projectID string) error
}

// StepLister loads the wizard steps belonging to a project.
type StepLister interface {
	ListByProject(ctx context.Context, userID, projectID string) ([]wizdomain.StepRecord, error)
}

// ProjectService handles project-related business logic.
type ProjectService struct {
	repo     ProjectStore
	steps    StepLister
	recorder *activity.Recorder
}

func NewProjectService(repo ProjectStore, steps StepLister, recorder *activity.Recorder) *ProjectService {
	return &ProjectService{repo: repo, steps: steps, recorder: recorder}
}

// Create creates a project with its first wizard step initialized.
func (s *ProjectService) Create(ctx context.Context, userID, title string, description *string) (*domain.Project, error) {
	p, err := s.repo.Create(ctx, userID, title, description)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, activity.Event{
		Type:         activity.TypeProjectCreated,
		UserID:       userID,
		ProjectID:    p.ID,
		ProjectTitle: p.Title,
	})
	return p, nil
}

// List returns all of the user's projects, newest first.
func (s *ProjectService) List(ctx context.Context, userID string) ([]domain.Project, error) {
	return s.repo.List(ctx, userID)
}

// Detail is a project plus its step records, as the wizard page loads it.
type Detail struct {
	Project *domain.Project        `json:"project"`
	Owner   *domain.Owner          `json:"owner,omitempty"`
	Steps   []wizdomain.StepRecord `json:"steps"`
}

// Get returns a single project with its owner display fields and all of its
// step records.
func (s *ProjectService) Get(ctx context.Context, userID, projectID string) (*Detail, error) {
	p, err := s.repo.Get(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	owner, err := s.repo.Owner(ctx, projectID)
	if err != nil {
		return nil, err
	}

	steps, err := s.steps.ListByProject(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	return &Detail{Project: p, Owner: owner, Steps: steps}, nil
}

// Update changes a project's title and description.
func (s *ProjectService) Update(ctx context.Context, userID, projectID, title string, description *string) (*domain.Project, error) {
	return s.repo.Update(ctx, userID, projectID, title, description)
}

// Archive moves a project to archived status without deleting its data.
func (s *ProjectService) Archive(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	return s.repo.Archive(ctx, userID, projectID)
}

// Delete permanently removes a project and its dependent rows.
func (s *ProjectService) Delete(ctx context.Context, userID, projectID string) error {
	return s.repo.Delete(ctx, userID, projectID)
}

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devnow-platform/onboarding-backend/internal/auth"
	"github.com/devnow-platform/onboarding-backend/internal/projects/domain"
	"github.com/devnow-platform/onboarding-backend/internal/projects/service"
	wizdomain "github.com/devnow-platform/onboarding-backend/internal/wizard/domain"
)

type stubProjectStore struct{}

func (stubProjectStore) Create(ctx context.Context, userID, title string, description *string) (*domain.Project, error) {
	return &domain.Project{ID: "p1", UserID: userID, Title: title, Description: description, Status: domain.StatusDraft, CurrentStep: 1, TotalSteps: 10}, nil
}

func (stubProjectStore) List(ctx context.Context, userID string) ([]domain.Project, error) {
	return []domain.Project{{ID: "p1", UserID: userID, Title: "Site"}}, nil
}

func (stubProjectStore) Get(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	if projectID == "missing" {
		return nil, domain.ErrNotFound
	}
	return &domain.Project{ID: projectID, UserID: userID, Title: "Site", Status: domain.StatusInProgress, CurrentStep: 3, TotalSteps: 10}, nil
}

func (stubProjectStore) Owner(ctx context.Context, projectID string) (*domain.Owner, error) {
	return &domain.Owner{FullName: "Dana Reyes", Email: "dana@example.com"}, nil
}

func (stubProjectStore) Update(ctx context.Context, userID, projectID, title string, description *string) (*domain.Project, error) {
	return &domain.Project{ID: projectID, UserID: userID, Title: title, Description: description}, nil
}

func (stubProjectStore) Archive(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	return &domain.Project{ID: projectID, UserID: userID, Status: domain.StatusArchived}, nil
}

func (stubProjectStore) Delete(ctx context.Context, userID, projectID string) error {
	return nil
}

type stubStepLister struct{}

func (stubStepLister) ListByProject(ctx context.Context, userID, projectID string) ([]wizdomain.StepRecord, error) {
	return []wizdomain.StepRecord{{ProjectID: projectID, StepNumber: 1, Status: wizdomain.StepCompleted}}, nil
}

func projectsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewProjectService(stubProjectStore{}, stubStepLister{}, nil)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(auth.CtxUserDBID, "u1")
		c.Next()
	})
	New(svc).Register(r.Group("/projects"))
	return r
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestProjectCreate(t *testing.T) {
	router := projectsRouter()

	t.Run("blank title is rejected", func(t *testing.T) {
		rr := doJSON(t, router, "POST", "/projects", `{"title":"  "}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("creates with step one initialized", func(t *testing.T) {
		rr := doJSON(t, router, "POST", "/projects", `{"title":"New Site"}`)
		require.Equal(t, http.StatusCreated, rr.Code)

		var body struct {
			Project domain.Project `json:"project"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "New Site", body.Project.Title)
		assert.Equal(t, 1, body.Project.CurrentStep)
	})
}

func TestProjectGet(t *testing.T) {
	router := projectsRouter()

	t.Run("unknown project is a 404", func(t *testing.T) {
		rr := doJSON(t, router, "GET", "/projects/missing", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("detail carries owner fields and steps", func(t *testing.T) {
		rr := doJSON(t, router, "GET", "/projects/p1", "")
		require.Equal(t, http.StatusOK, rr.Code)

		var body struct {
			Project domain.Project         `json:"project"`
			Owner   domain.Owner           `json:"owner"`
			Steps   []wizdomain.StepRecord `json:"steps"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "p1", body.Project.ID)
		assert.Equal(t, "Dana Reyes", body.Owner.FullName)
		assert.Equal(t, "dana@example.com", body.Owner.Email)
		require.Len(t, body.Steps, 1)
		assert.Equal(t, wizdomain.StepCompleted, body.Steps[0].Status)
	})
}

func TestProjectUpdateAndArchive(t *testing.T) {
	router := projectsRouter()

	t.Run("update rewrites the title", func(t *testing.T) {
		rr := doJSON(t, router, "PUT", "/projects/p1", `{"title":"Renamed"}`)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Renamed")
	})

	t.Run("archive flips the status", func(t *testing.T) {
		rr := doJSON(t, router, "POST", "/projects/p1/archive", "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), domain.StatusArchived)
	})
}

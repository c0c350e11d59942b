package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/devnow-platform/onboarding-backend/internal/assistant"
	"github.com/devnow-platform/onboarding-backend/internal/auth"
	"github.com/devnow-platform/onboarding-backend/internal/chat/domain"
	"github.com/devnow-platform/onboarding-backend/internal/chat/service"
)

type stubMessages struct {
	saved []domain.Message
}

func (s *stubMessages) ListByStep(ctx context.Context, userID, projectID string, stepNumber int) ([]domain.Message, error) {
	return s.saved, nil
}

func (s *stubMessages) ReplaceForStep(ctx context.Context, userID, projectID string, stepNumber int, messages []domain.Message) error {
	s.saved = messages
	return nil
}

type stubAgents struct{}

func (stubAgents) GetActiveByStep(ctx context.Context, stepNumber int) (*domain.Agent, error) {
	return nil, nil
}

type stubEngine struct {
	fail bool
}

func (s *stubEngine) Respond(ctx context.Context, req assistant.Request) (*assistant.Result, error) {
	if s.fail {
		return nil, errors.New("engine down")
	}
	return &assistant.Result{Response: "advice", Suggestions: map[string]any{"industry": "Technology"}}, nil
}

func (s *stubEngine) Insights(ctx context.Context, req assistant.InsightRequest) (*assistant.InsightResult, error) {
	if s.fail {
		return nil, errors.New("engine down")
	}
	return &assistant.InsightResult{
		Insights:    "analysis",
		Suggestions: map[string]any{"target_market": "Small businesses"},
	}, nil
}

func chatRouter(engine assistant.Engine, msgs *stubMessages) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewChatService(msgs, stubAgents{}, engine)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(auth.CtxUserDBID, "u1")
		c.Next()
	})
	api := r.Group("")
	New(svc).Register(api.Group("/chat"), api.Group("/agents"))
	return r
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestAIResponse(t *testing.T) {
	t.Run("returns the engine reply with suggestions", func(t *testing.T) {
		router := chatRouter(&stubEngine{}, &stubMessages{})
		rr := postJSON(t, router, "/chat/ai-response", `{"step_number":1,"form_data":{}}`)
		require.Equal(t, http.StatusOK, rr.Code)

		var body struct {
			Response    string         `json:"response"`
			Suggestions map[string]any `json:"suggestions"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "advice", body.Response)
		assert.Equal(t, "Technology", body.Suggestions["industry"])
	})

	t.Run("engine failure still answers 200 with fallback text", func(t *testing.T) {
		router := chatRouter(&stubEngine{fail: true}, &stubMessages{})
		rr := postJSON(t, router, "/chat/ai-response", `{"step_number":1}`)
		require.Equal(t, http.StatusOK, rr.Code)

		var body struct {
			Response string `json:"response"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Response)
	})

	t.Run("rejects step numbers outside the wizard", func(t *testing.T) {
		router := chatRouter(&stubEngine{}, &stubMessages{})
		rr := postJSON(t, router, "/chat/ai-response", `{"step_number":11}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGenerateInsights(t *testing.T) {
	t.Run("returns insights with suggestions", func(t *testing.T) {
		router := chatRouter(&stubEngine{}, &stubMessages{})
		rr := postJSON(t, router, "/chat/generate-insights", `{"step_number":1,"form_data":{}}`)
		require.Equal(t, http.StatusOK, rr.Code)

		var body struct {
			Insights    string         `json:"insights"`
			Suggestions map[string]any `json:"suggestions"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "analysis", body.Insights)
		assert.Equal(t, "Small businesses", body.Suggestions["target_market"])
	})

	t.Run("suggestions for filled fields are dropped", func(t *testing.T) {
		router := chatRouter(&stubEngine{}, &stubMessages{})
		rr := postJSON(t, router, "/chat/generate-insights", `{"step_number":1,"form_data":{"target_market":"Enterprises"}}`)
		require.Equal(t, http.StatusOK, rr.Code)

		var body struct {
			Suggestions map[string]any `json:"suggestions"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.NotContains(t, body.Suggestions, "target_market")
	})

	t.Run("rejects step numbers outside the wizard", func(t *testing.T) {
		router := chatRouter(&stubEngine{}, &stubMessages{})
		rr := postJSON(t, router, "/chat/generate-insights", `{"step_number":0}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestSaveHistory(t *testing.T) {
	t.Run("rejects unknown roles", func(t *testing.T) {
		router := chatRouter(&stubEngine{}, &stubMessages{})
		rr := postJSON(t, router, "/chat/p1/1", `{"messages":[{"role":"system","content":"x"}]}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("replaces the step history", func(t *testing.T) {
		msgs := &stubMessages{}
		router := chatRouter(&stubEngine{}, msgs)
		rr := postJSON(t, router, "/chat/p1/1", `{"messages":[
			{"role":"user","content":"hi"},
			{"role":"assistant","content":"hello!"}
		]}`)
		require.Equal(t, http.StatusOK, rr.Code)
		require.Len(t, msgs.saved, 2)
		assert.Equal(t, domain.RoleAssistant, msgs.saved[1].Role)
	})
}

func TestAgentEndpoint(t *testing.T) {
	router := chatRouter(&stubEngine{}, &stubMessages{})

	req := httptest.NewRequest("GET", "/agents/3", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Agent domain.Agent `json:"agent"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Agent.StepNumber)
	assert.NotEmpty(t, body.Agent.Name)
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(auth.CtxUserDBID, "u1")
		c.Next()
	})
	r.POST("/limited", RateLimit(rate.Limit(1), 2), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rr := postJSON(t, r, "/limited", `{}`)
		codes = append(codes, rr.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusOK, codes[1])
	assert.Equal(t, http.StatusTooManyRequests, codes[2])
}

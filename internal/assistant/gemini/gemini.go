// Package gemini backs the assistant engine with Google's Gemini API. It is
// selected with ASSISTANT_PROVIDER=gemini; the caller falls back to the
// agent's canned text when a call fails.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/devnow-platform/onboarding-backend/internal/assistant"
	"github.com/devnow-platform/onboarding-backend/internal/chat/domain"
	"github.com/devnow-platform/onboarding-backend/internal/wizard/registry"
)

type Engine struct {
	client *genai.Client
	model  string
}

func New(ctx context.Context, apiKey, model string) (*Engine, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Engine{client: client, model: model}, nil
}

var _ assistant.Engine = (*Engine)(nil)

func (e *Engine) Respond(ctx context.Context, req assistant.Request) (*assistant.Result, error) {
	contents := make([]*genai.Content, 0, len(req.History)+1)
	for _, turn := range req.History {
		role := genai.Role(genai.RoleUser)
		if turn.Role == "assistant" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Content, role))
	}
	contents = append(contents, genai.NewContentFromText(stepContext(req.StepNumber, req.FormData), genai.RoleUser))

	result, err := e.client.Models.GenerateContent(ctx, e.model, contents, e.generateConfig(req.Agent))
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	return &assistant.Result{Response: result.Text()}, nil
}

func (e *Engine) Insights(ctx context.Context, req assistant.InsightRequest) (*assistant.InsightResult, error) {
	prompt := "Analyze the following onboarding form answers and give concise, actionable strategic insights.\n\n" +
		stepContext(req.StepNumber, req.FormData)

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	result, err := e.client.Models.GenerateContent(ctx, e.model, contents, e.generateConfig(req.Agent))
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	return &assistant.InsightResult{Insights: result.Text()}, nil
}

func (e *Engine) generateConfig(agent *domain.Agent) *genai.GenerateContentConfig {
	if agent == nil {
		return nil
	}

	cfg := &genai.GenerateContentConfig{}
	if agent.SystemPrompt != "" {
		cfg.SystemInstruction = genai.NewContentFromText(agent.SystemPrompt, genai.RoleUser)
	}
	if agent.Temperature > 0 {
		cfg.Temperature = genai.Ptr(float32(agent.Temperature))
	}
	if agent.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(agent.MaxTokens)
	}
	return cfg
}

// stepContext renders the step schema and current answers as prompt context.
func stepContext(stepNumber int, formData map[string]any) string {
	var b strings.Builder

	if def := registry.Step(stepNumber); def != nil {
		fmt.Fprintf(&b, "Wizard step %d: %s. %s\n", def.StepNumber, def.Title, def.Description)
	}

	if len(formData) > 0 {
		data, err := json.Marshal(formData)
		if err == nil {
			fmt.Fprintf(&b, "Current form answers: %s\n", data)
		}
	}

	return b.String()
}

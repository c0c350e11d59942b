package service

import (
	"context"
	"fmt"
	"log"

	"github.com/devnow-platform/onboarding-backend/internal/assistant"
	"github.com/devnow-platform/onboarding-backend/internal/chat/domain"
	"github.com/devnow-platform/onboarding-backend/internal/wizard/registry"
)

// MessageStore persists per-step chat history.
type MessageStore interface {
	ListByStep(ctx context.Context, userID, projectID string, stepNumber int) ([]domain.Message, error)
	ReplaceForStep(ctx context.Context, userID, projectID string, stepNumber int, messages []domain.Message) error
}

// AgentStore resolves the configured persona for a step.
type AgentStore interface {
	GetActiveByStep(ctx context.Context, stepNumber int) (*domain.Agent, error)
}

// ChatService handles chat history and assistant turns.
type ChatService struct {
	messages MessageStore
	agents   AgentStore
	engine   assistant.Engine
}

func NewChatService(messages MessageStore, agents AgentStore, engine assistant.Engine) *ChatService {
	return &ChatService{messages: messages, agents: agents, engine: engine}
}

// History returns a step's chat log in timestamp order.
func (s *ChatService) History(ctx context.Context, userID, projectID string, stepNumber int) ([]domain.Message, error) {
	return s.messages.ListByStep(ctx, userID, projectID, stepNumber)
}

// SaveHistory replaces a step's chat log wholesale.
func (s *ChatService) SaveHistory(ctx context.Context, userID, projectID string, stepNumber int, messages []domain.Message) error {
	return s.messages.ReplaceForStep(ctx, userID, projectID, stepNumber, messages)
}

// Agent returns the persona for a step, falling back to a built-in default
// when no active record exists.
func (s *ChatService) Agent(ctx context.Context, stepNumber int) (*domain.Agent, error) {
	agent, err := s.agents.GetActiveByStep(ctx, stepNumber)
	if err != nil {
		return nil, fmt.Errorf("load agent: %w", err)
	}
	if agent == nil {
		agent = DefaultAgent(stepNumber)
	}
	return agent, nil
}

// Respond produces an assistant reply for the step. Engine failures degrade
// to the agent's fallback text; the chat panel always gets an answer.
func (s *ChatService) Respond(ctx context.Context, stepNumber int, formData map[string]any, history []assistant.Turn) (*assistant.Result, error) {
	agent, err := s.Agent(ctx, stepNumber)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.Respond(ctx, assistant.Request{
		StepNumber: stepNumber,
		FormData:   formData,
		History:    history,
		Agent:      agent,
	})
	if err != nil {
		log.Printf("assistant respond failed (step %d): %v", stepNumber, err)
		return &assistant.Result{Response: agent.FallbackText()}, nil
	}

	result.Suggestions = assistant.FilterToEmpty(formData, result.Suggestions)
	return result, nil
}

// Insights produces step-level analysis of the current form data, with the
// same degrade-to-fallback behavior as Respond.
func (s *ChatService) Insights(ctx context.Context, stepNumber int, formData map[string]any) (*assistant.InsightResult, error) {
	agent, err := s.Agent(ctx, stepNumber)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.Insights(ctx, assistant.InsightRequest{
		StepNumber: stepNumber,
		FormData:   formData,
		Agent:      agent,
	})
	if err != nil {
		log.Printf("assistant insights failed (step %d): %v", stepNumber, err)
		return &assistant.InsightResult{
			Insights: "I encountered an issue generating insights. Please ensure all required fields are completed and try again.",
		}, nil
	}

	result.Suggestions = assistant.FilterToEmpty(formData, result.Suggestions)
	return result, nil
}

// DefaultAgent is used when no persona row is configured for a step.
func DefaultAgent(stepNumber int) *domain.Agent {
	name := "Onboarding Assistant"
	role := "advisor"
	if def := registry.Step(stepNumber); def != nil {
		role = def.Title + " Advisor"
	}

	intro := "Hi! I can help you work through this step. Ask me anything or request suggestions for the form."
	return &domain.Agent{
		StepNumber:   stepNumber,
		Name:         name,
		Role:         role,
		SystemPrompt: "You are a helpful onboarding consultant guiding a client through a business intake wizard.",
		Personality:  "Professional",
		IntroMessage: &intro,
		FallbackResponses: []string{
			"I'm having trouble responding right now. Please try again.",
		},
		Model:       "rules",
		Temperature: 0.7,
		MaxTokens:   1024,
		IsActive:    true,
	}
}

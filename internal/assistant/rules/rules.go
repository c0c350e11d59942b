// Package rules is the deterministic assistant engine. Replies, insights and
// field suggestions come from fixed per-step templates over the submitted
// form data; identical input always yields identical output.
package rules

import (
	"context"
	"fmt"
	"strings"

	"github.com/devnow-platform/onboarding-backend/internal/assistant"
)

type Engine struct{}

func New() *Engine {
	return &Engine{}
}

var _ assistant.Engine = (*Engine)(nil)

func (e *Engine) Respond(_ context.Context, req assistant.Request) (*assistant.Result, error) {
	response := contextResponse(req.StepNumber, req.FormData)
	if response == "" {
		if req.Agent != nil && req.Agent.IntroMessage != nil {
			response = *req.Agent.IntroMessage
		} else {
			response = "Tell me about this step and I'll help you fill it in."
		}
	}

	suggestions := Suggest(req.StepNumber, req.FormData)
	if len(suggestions) == 0 {
		suggestions = nil
	}

	return &assistant.Result{Response: response, Suggestions: suggestions}, nil
}

func (e *Engine) Insights(_ context.Context, req assistant.InsightRequest) (*assistant.InsightResult, error) {
	insights := stepInsights(req.StepNumber, req.FormData)

	suggestions := SmartSuggest(req.StepNumber, req.FormData)
	if len(suggestions) == 0 {
		suggestions = nil
	}

	return &assistant.InsightResult{Insights: insights, Suggestions: suggestions}, nil
}

// contextResponse builds the step-aware reply. Unknown steps return "".
func contextResponse(step int, data map[string]any) string {
	switch step {
	case 1:
		return fmt.Sprintf(
			"Based on your business %q in the %s industry, I recommend focusing on clearly defining your unique value proposition. Your target market of %q needs to understand what makes you different.",
			str(data, "company_name", "your company"),
			str(data, "industry", "your"),
			str(data, "target_market", "your audience"))
	case 2:
		return fmt.Sprintf(
			"Your goal to %s is achievable with the right strategy. For your 90-day vision, I suggest breaking it down into weekly milestones. This will help you track progress effectively.",
			first(data, "primary_goals", "grow your business"))
	case 3:
		return fmt.Sprintf(
			"For your brand personality of %s, I recommend using %s that resonates with your target audience. Your brand story should emphasize %s.",
			first(data, "brand_personality", "professional"),
			str(data, "brand_colors", "a cohesive color palette"),
			str(data, "unique_value_proposition", "what makes you unique"))
	case 4:
		return fmt.Sprintf(
			"For a %s website, your main CTA %q should be prominently displayed. The key messages you want to communicate align well with your business goals.",
			str(data, "site_purpose", "lead generation"),
			str(data, "main_cta", "Get Started"))
	case 5:
		return fmt.Sprintf(
			"Your %s funnel with %q as the entry point is a solid approach. The pricing structure you've outlined will work well with this funnel design.",
			str(data, "funnel_type", "lead generation"),
			str(data, "lead_magnet", "your offer"))
	case 6:
		return fmt.Sprintf(
			"Your AI agent %q with a %s personality will be perfect for %s. I'll help you create conversation flows that feel natural.",
			str(data, "agent_name", "Assistant"),
			first(data, "agent_personality", "professional"),
			first(data, "agent_tasks", "customer support"))
	case 7:
		return fmt.Sprintf(
			"With a %s budget, focusing on %s is a smart choice. Your target keywords around %q show good search volume.",
			str(data, "advertising_budget", "reasonable"),
			first(data, "ad_platforms", "Google Ads"),
			str(data, "target_keywords", "your services"))
	case 8:
		return fmt.Sprintf(
			"Your automation strategy using %s will help nurture leads effectively. The follow-up sequence you've outlined will keep prospects engaged throughout their journey.",
			str(data, "email_marketing", "email marketing"))
	case 9:
		return fmt.Sprintf(
			"Your client portal focusing on %s will create great value for your customers. The content types you've selected will keep members engaged.",
			first(data, "portal_purpose", "course delivery"))
	case 10:
		return fmt.Sprintf(
			"Excellent work completing all steps! Your project timeline of %s is realistic. The priority features you've identified align perfectly with your business goals from Step 2.",
			str(data, "timeline_preference", "2-4 weeks"))
	}
	return ""
}

// Suggest proposes values for fields that are still empty, keyed by field
// name. Fields with existing values never appear in the result, and only
// fields belonging to the step's schema are ever suggested.
func Suggest(step int, data map[string]any) map[string]any {
	s := map[string]any{}

	switch step {
	case 1:
		if !filled(data, "unique_value_proposition") && filled(data, "company_name") {
			s["unique_value_proposition"] = fmt.Sprintf(
				"%s provides innovative solutions that save time and increase efficiency for %s.",
				str(data, "company_name", ""),
				str(data, "target_market", "businesses"))
		}
	case 2:
		if !filled(data, "success_metrics") && len(values(data, "primary_goals")) > 0 {
			s["success_metrics"] = "Monthly lead generation targets, conversion rate improvements, and customer satisfaction scores."
		}
	case 3:
		if !filled(data, "brand_colors") && contains(values(data, "brand_personality"), "Professional") {
			s["brand_colors"] = "#007BFF (Blue), #333333 (Charcoal), #FFD700 (Gold Accent)"
		}
	case 4:
		if !filled(data, "key_messages") && filled(data, "site_purpose") {
			s["key_messages"] = fmt.Sprintf(
				"Clear value proposition, social proof through testimonials, and a compelling call-to-action that drives %s.",
				str(data, "site_purpose", ""))
		}
	}

	return s
}

// SmartSuggest is the insight flow's variant: same empty-field-only policy,
// conditioned on specific upstream answers.
func SmartSuggest(step int, data map[string]any) map[string]any {
	s := map[string]any{}

	switch step {
	case 1:
		if str(data, "industry", "") == "Technology" && !filled(data, "unique_value_proposition") {
			s["unique_value_proposition"] = "We leverage cutting-edge technology to deliver solutions that are 10x faster and more reliable than traditional alternatives."
		}
	case 2:
		if contains(values(data, "primary_goals"), "Generate more leads") && !filled(data, "success_metrics") {
			s["success_metrics"] = "Number of qualified leads per month, cost per lead, lead-to-customer conversion rate, and average customer lifetime value."
		}
	case 3:
		if contains(values(data, "brand_personality"), "Professional") && !filled(data, "brand_colors") {
			s["brand_colors"] = "#003366 (Navy Blue), #FFFFFF (White), #FFD700 (Gold Accent)"
			s["preferred_fonts"] = "Helvetica Neue for headers, Georgia for body text"
		}
	case 4:
		if str(data, "site_purpose", "") == "Lead Generation" && !filled(data, "main_cta") {
			s["main_cta"] = "Get Your Free Consultation"
			s["secondary_cta"] = "Download Our Guide"
		}
	case 5:
		if strings.Contains(str(data, "funnel_type", ""), "Lead Magnet") && !filled(data, "lead_magnet") {
			s["lead_magnet"] = "Free 10-Point Checklist: How to Double Your Results in 30 Days"
		}
	}

	return s
}

// form data accessors; values arrive as JSON-decoded any

func str(data map[string]any, key, fallback string) string {
	if v, ok := data[key].(string); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func values(data map[string]any, key string) []string {
	switch v := data[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func first(data map[string]any, key, fallback string) string {
	if vs := values(data, key); len(vs) > 0 {
		return vs[0]
	}
	return fallback
}

func filled(data map[string]any, key string) bool {
	switch v := data[key].(type) {
	case string:
		return strings.TrimSpace(v) != ""
	case []any:
		return len(v) > 0
	case []string:
		return len(v) > 0
	case nil:
		return false
	}
	return true
}

func contains(vs []string, want string) bool {
	for _, v := range vs {
		if v == want {
			return true
		}
	}
	return false
}

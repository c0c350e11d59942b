package prd

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devnow-platform/onboarding-backend/internal/wizard/domain"
)

var fixedTime = time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

func TestAssemble(t *testing.T) {
	t.Run("is deterministic for the same input", func(t *testing.T) {
		steps := map[int]domain.FormData{
			1: {"company_name": "Acme Corp", "industry": "Technology"},
		}
		a := Assemble(steps, fixedTime)
		b := Assemble(steps, fixedTime)
		assert.Equal(t, a, b)
	})

	t.Run("renders every numbered section even when empty", func(t *testing.T) {
		doc := Assemble(map[int]domain.FormData{}, fixedTime)

		for _, heading := range []string{
			"## 1. Business Foundation",
			"## 2. Goals & Objectives",
			"## 3. Brand Identity & Design",
			"## 4. Website Requirements",
			"## 5. Sales Funnel Design",
			"## 6. AI Agent Configuration",
			"## 7. Marketing & SEO Strategy",
			"## 8. Automation & Workflows",
			"## 9. Client Portal & Community",
		} {
			assert.Contains(t, doc, heading)
		}
		assert.Contains(t, doc, "# Project Requirements Document (PRD)")
	})

	t.Run("uses placeholders for missing fields", func(t *testing.T) {
		doc := Assemble(map[int]domain.FormData{}, fixedTime)
		assert.Contains(t, doc, "Not specified")
	})

	t.Run("includes provided values", func(t *testing.T) {
		doc := Assemble(map[int]domain.FormData{
			1: {
				"company_name":  "Acme Corp",
				"industry":      "Technology",
				"target_market": "Small businesses",
			},
			2: {
				"primary_goals": []any{"Generate more leads", "Increase sales calls"},
			},
		}, fixedTime)

		assert.Contains(t, doc, "Acme Corp")
		assert.Contains(t, doc, "Technology")
		assert.Contains(t, doc, "Small businesses")
		assert.Contains(t, doc, "Generate more leads")
		assert.Contains(t, doc, "Increase sales calls")
	})

	t.Run("formats the generation date", func(t *testing.T) {
		doc := Assemble(nil, fixedTime)
		assert.Contains(t, doc, "March 15, 2026")
	})

	t.Run("document starts with the title", func(t *testing.T) {
		doc := Assemble(nil, fixedTime)
		require.True(t, strings.HasPrefix(doc, "# Project Requirements Document (PRD)"))
	})
}

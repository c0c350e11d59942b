package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepLookup(t *testing.T) {
	t.Run("returns definitions for steps 1 through 10", func(t *testing.T) {
		for n := 1; n <= TotalSteps; n++ {
			def := Step(n)
			require.NotNil(t, def, "step %d", n)
			assert.Equal(t, n, def.StepNumber)
			assert.NotEmpty(t, def.Title)
			assert.NotEmpty(t, def.Fields)
		}
	})

	t.Run("returns nil out of range", func(t *testing.T) {
		assert.Nil(t, Step(0))
		assert.Nil(t, Step(11))
		assert.Nil(t, Step(-3))
	})

	t.Run("Steps returns all ten in order", func(t *testing.T) {
		all := Steps()
		require.Len(t, all, TotalSteps)
		for i, def := range all {
			assert.Equal(t, i+1, def.StepNumber)
		}
	})
}

func TestValidate(t *testing.T) {
	t.Run("reports all required fields when form is empty", func(t *testing.T) {
		missing := Validate(1, map[string]any{})
		assert.Contains(t, missing, "company_name")
		assert.Contains(t, missing, "industry")
		assert.Contains(t, missing, "contact_email")
		assert.Contains(t, missing, "target_market")
		assert.Contains(t, missing, "unique_value_proposition")
		assert.NotContains(t, missing, "phone")
		assert.NotContains(t, missing, "website_url")
	})

	t.Run("passes a fully filled step", func(t *testing.T) {
		missing := Validate(1, map[string]any{
			"company_name":             "Acme Corp",
			"industry":                 "Technology",
			"contact_email":            "hello@acme.test",
			"target_market":            "Small businesses",
			"unique_value_proposition": "Fastest delivery in the market",
		})
		assert.Empty(t, missing)
	})

	t.Run("blank strings count as missing", func(t *testing.T) {
		missing := Validate(1, map[string]any{
			"company_name": "   ",
			"industry":     "Technology",
		})
		assert.Contains(t, missing, "company_name")
		assert.NotContains(t, missing, "industry")
	})

	t.Run("multiselect requires at least one entry", func(t *testing.T) {
		missing := Validate(2, map[string]any{
			"primary_goals": []any{},
		})
		assert.Contains(t, missing, "primary_goals")

		missing = Validate(2, map[string]any{
			"primary_goals": []any{"Generate more leads"},
		})
		assert.NotContains(t, missing, "primary_goals")
	})

	t.Run("unknown step validates as empty", func(t *testing.T) {
		assert.Nil(t, Validate(99, map[string]any{"anything": "x"}))
	})
}

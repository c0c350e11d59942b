// Package registry holds the static definition of the ten onboarding wizard
// steps. The table is fixed at compile time; nothing mutates it at runtime.
package registry

import "strings"

// FieldType tags how a form field is rendered and validated.
type FieldType string

const (
	FieldText        FieldType = "text"
	FieldEmail       FieldType = "email"
	FieldTel         FieldType = "tel"
	FieldURL         FieldType = "url"
	FieldTextarea    FieldType = "textarea"
	FieldSelect      FieldType = "select"
	FieldMultiSelect FieldType = "multiselect"
	FieldFile        FieldType = "file"
)

type Field struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	Options  []string  `json:"options,omitempty"`
}

type StepDef struct {
	StepNumber  int     `json:"step_number"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Fields      []Field `json:"fields"`
}

// TotalSteps is the fixed number of wizard steps.
const TotalSteps = 10

// Step returns the definition for stepNumber, or nil if out of range.
func Step(stepNumber int) *StepDef {
	if stepNumber < 1 || stepNumber > TotalSteps {
		return nil
	}
	return &steps[stepNumber-1]
}

// Steps returns all step definitions in order.
func Steps() []StepDef {
	return steps
}

// Validate checks formData against the step's schema and returns the names of
// required fields that are missing or empty. A scalar counts as present when
// it is a non-blank string; a multiselect when it has at least one entry.
// An unknown step number returns nil (the caller rejects it separately).
func Validate(stepNumber int, formData map[string]any) []string {
	def := Step(stepNumber)
	if def == nil {
		return nil
	}

	var missing []string
	for _, f := range def.Fields {
		if !f.Required {
			continue
		}
		if !present(formData[f.Name]) {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

func present(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(val) != ""
	case []any:
		return len(val) > 0
	case []string:
		return len(val) > 0
	default:
		// numbers, booleans and objects count as filled
		return true
	}
}

package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidStep   = errors.New("invalid step number")
	ErrInvalidStatus = errors.New("invalid step status")
)

// IncompleteFormError reports which required fields block an advance. The
// step and project are left untouched when it is returned.
type IncompleteFormError struct {
	StepNumber    int
	MissingFields []string
}

func (e *IncompleteFormError) Error() string {
	return fmt.Sprintf("step %d is missing required fields: %s",
		e.StepNumber, strings.Join(e.MissingFields, ", "))
}

// IsIncompleteForm reports whether err is an IncompleteFormError.
func IsIncompleteForm(err error) (*IncompleteFormError, bool) {
	var ife *IncompleteFormError
	if errors.As(err, &ife) {
		return ife, true
	}
	return nil, false
}

package domain

import "errors"

var ErrAgentNotFound = errors.New("agent not found")

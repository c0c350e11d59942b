package domain

import "errors"

// ErrNotFound covers both a missing project and a project owned by someone
// else, so responses never reveal which.
var ErrNotFound = errors.New("project not found")

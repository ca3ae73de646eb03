// Package health implements liveness/readiness checks over service
// dependencies.
package health

import (
	"context"
	"time"
)

// DefaultTimeout bounds a single readiness evaluation.
const DefaultTimeout = 5 * time.Second

// Status of a checked component.
type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// Result of a single check.
type Result struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// Checker verifies one dependency.
type Checker interface {
	Name() string
	Check(ctx context.Context) Result
}

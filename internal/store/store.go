// Package store persists assessment history. All implementations
// satisfy the Store interface so the server can swap backends without
// changing business logic.
package store

import (
	"context"
	"time"
)

// Store is the persistence interface for assessment records.
// Implementations must be safe for concurrent use.
type Store interface {
	SaveAssessment(ctx context.Context, rec *AssessmentRecord) error
	GetAssessment(ctx context.Context, id string) (*AssessmentRecord, error)
	ListAssessments(ctx context.Context, limit int) ([]*AssessmentRecord, error)

	// Close releases database resources.
	Close() error
}

// AssessmentRecord is the persistent record of one assessment run.
type AssessmentRecord struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"` // "primitive" or "certificate"
	Standard    string    `json:"standard"`
	Family      string    `json:"family,omitempty"`
	Primitive   string    `json:"primitive,omitempty"`
	Subject     string    `json:"subject,omitempty"`
	Security    uint16    `json:"security,omitempty"`
	Year        uint16    `json:"year"`
	Compliant   bool      `json:"compliant"`
	Recommended string    `json:"recommended,omitempty"`
	Report      string    `json:"report"` // full report, JSON encoded
	CreatedAt   time.Time `json:"created_at"`
}

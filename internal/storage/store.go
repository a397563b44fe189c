package storage

import (
	"context"
	"time"

	"caseprep/internal/ai"
	"caseprep/internal/casefile"
)

// Case is one client matter being prepared.
type Case struct {
	ID         string
	CaseTypeID string
	Label      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Store defines persistence for cases, their intake forms, classified
// documents, and assembled drafts.
type Store interface {
	// CreateCase inserts a new case and returns it with a fresh ID.
	CreateCase(ctx context.Context, caseTypeID, label string) (*Case, error)

	// GetCase retrieves a case by ID.
	GetCase(ctx context.Context, id string) (*Case, error)

	// ListCases returns all cases, newest first.
	ListCases(ctx context.Context) ([]*Case, error)

	// SaveFormData replaces the stored form snapshot for a case.
	SaveFormData(ctx context.Context, caseID string, form casefile.FormData) error

	// LoadFormData retrieves the stored form snapshot for a case.
	LoadFormData(ctx context.Context, caseID string) (casefile.FormData, error)

	// SaveDocuments replaces the classified document list for a case.
	SaveDocuments(ctx context.Context, caseID string, docs []ai.ClassifiedDocument) error

	// LoadDocuments retrieves the classified document list in saved order.
	LoadDocuments(ctx context.Context, caseID string) ([]ai.ClassifiedDocument, error)

	// SaveDraft stores an assembled draft with its completeness verdict.
	SaveDraft(ctx context.Context, caseID, content string, hasMinimum bool, missing []string) error

	// LoadLatestDraft retrieves the most recent draft for a case.
	LoadLatestDraft(ctx context.Context, caseID string) (string, error)

	Close() error
}

// Package ai holds the contracts for the external reasoning collaborators —
// fact extraction, document classification, narrative drafting, and the
// completeness verdict — plus the Gemini and OpenAI-compatible backends.
// Legal judgment always stays on the collaborator side; callers only shape,
// route, and validate the data around it.
package ai

import (
	"context"

	"caseprep/internal/evidence"
	"caseprep/internal/schema"
)

// CaseContext carries the identity facts collaborators need for grounding.
type CaseContext struct {
	CaseTypeID   string
	CaseTypeName string
	ClientName   string
	ClientDOB    string
}

// ClassifiedDocument is one evidence document routed to a packet tab.
type ClassifiedDocument struct {
	Description string `json:"description"`
	TabLabel    string `json:"tab"`
}

// Extractor converts intake document text into a raw key-value record.
// The response is raw JSON; shape validation happens at the reconciliation
// boundary, never here.
type Extractor interface {
	ExtractRecord(ctx context.Context, documentText string, ct *schema.CaseType) ([]byte, error)
}

// Classifier assigns each evidence document to a filing packet tab.
type Classifier interface {
	ClassifyDocuments(ctx context.Context, files []evidence.FileText, cc CaseContext) ([]ClassifiedDocument, error)
}

// Drafter writes the statement-of-facts narrative from structured case facts.
type Drafter interface {
	DraftNarrative(ctx context.Context, facts map[string]string, cc CaseContext) (string, error)
}

// Verifier judges whether the classified documents meet the minimum required
// set for the case type.
type Verifier interface {
	VerifyCompleteness(ctx context.Context, buckets map[string][]string, cc CaseContext) (hasMinimum bool, missing []string, err error)
}

// Assistant is the full collaborator surface one provider implements.
type Assistant interface {
	Extractor
	Classifier
	Drafter
	Verifier
}

// Package intake reconciles loosely structured extraction output against the
// rigid per-case form schema: dates are canonicalized, select values are
// matched onto declared options, and everything else passes through trimmed.
package intake

import (
	"fmt"

	"caseprep/internal/casefile"
	"caseprep/internal/schema"
)

// SkippedField explains why one extracted value was not applied. The report
// is surfaced to the user; it is never an error.
type SkippedField struct {
	QuestionID string
	Label      string
	Raw        string
	Reason     string
}

// Reconcile applies an extracted record to a snapshot of the form data and
// returns the updated copy, the populated-field count, and the skipped-field
// report. A per-field failure never aborts the remaining fields; the caller
// publishes the returned map atomically.
func Reconcile(current casefile.FormData, rec ExtractedRecord, questions []schema.Question) (casefile.FormData, int, []SkippedField) {
	updated := current.Clone()
	populated := 0
	var skipped []SkippedField

	for _, q := range questions {
		if q.ExtractKey == "" {
			continue
		}
		raw, ok := rec.Value(q.ExtractKey)
		if !ok {
			// Missing keys, JSON null, and blank text are silent absence.
			// A literal "null" string is reported: the field was answered
			// and the answer carries nothing.
			if s, isNull := rec.NullSentinel(q.ExtractKey); isNull {
				skipped = append(skipped, SkippedField{
					QuestionID: q.ID,
					Label:      q.Label,
					Raw:        s,
					Reason:     "extraction returned null",
				})
			}
			continue
		}

		switch q.Type {
		case schema.TypeSelect:
			outcome := MatchOption(raw, q.Options, q.Vocab)
			if !outcome.OK {
				skipped = append(skipped, SkippedField{QuestionID: q.ID, Label: q.Label, Raw: raw, Reason: outcome.Reason})
				continue
			}
			updated[q.ID] = outcome.Value
			populated++

		case schema.TypeDate:
			iso, ok := ParseDate(raw)
			if !ok {
				skipped = append(skipped, SkippedField{
					QuestionID: q.ID,
					Label:      q.Label,
					Raw:        raw,
					Reason:     fmt.Sprintf("%q is not a recognizable date", raw),
				})
				continue
			}
			updated[q.ID] = iso
			populated++

		default:
			// text, textarea, checkbox: passthrough, already trimmed.
			updated[q.ID] = raw
			populated++
		}
	}

	return updated, populated, skipped
}

package workflow

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"caseprep/internal/ai"
	"caseprep/internal/casefile"
	"caseprep/internal/evidence"
	"caseprep/internal/fault"
	"caseprep/internal/intake"
	"caseprep/internal/schema"
)

// Intake runs the evidence-to-form pipeline: extract a record from each
// evidence file and reconcile it into the case form. The form is replaced
// atomically per file, so a failed extraction leaves the previous values
// intact.
type Intake struct {
	reader    *evidence.Reader
	extractor ai.Extractor
	store     *casefile.Store
	caseType  *schema.CaseType
	log       *zap.Logger
}

// IntakeSummary aggregates what an intake run changed and what it skipped.
type IntakeSummary struct {
	FilesProcessed int
	FieldsApplied  int
	Skipped        []intake.SkippedField
}

func NewIntake(reader *evidence.Reader, extractor ai.Extractor, store *casefile.Store, ct *schema.CaseType, log *zap.Logger) *Intake {
	return &Intake{
		reader:    reader,
		extractor: extractor,
		store:     store,
		caseType:  ct,
		log:       log,
	}
}

func (i *Intake) Run(ctx context.Context, evidenceDir string) (*IntakeSummary, error) {
	files, err := i.reader.ReadAll(ctx, evidenceDir)
	if err != nil {
		return nil, err
	}
	fmt.Printf("📄 Extracting intake fields from %d evidence files...\n", len(files))

	summary := &IntakeSummary{}
	for _, file := range files {
		applied, skipped, err := i.reconcileFile(ctx, file)
		if err != nil {
			if fault.IsFatal(err) {
				return nil, fmt.Errorf("intake failed on %s: %w", file.FileName, err)
			}
			i.log.Warn("skipping file after secondary failure",
				zap.String("file", file.FileName), zap.Error(err))
			continue
		}
		summary.FilesProcessed++
		summary.FieldsApplied += applied
		summary.Skipped = append(summary.Skipped, skipped...)
	}

	for _, s := range summary.Skipped {
		i.log.Warn("intake field skipped",
			zap.String("question", s.QuestionID),
			zap.String("raw", s.Raw),
			zap.String("reason", s.Reason))
	}
	fmt.Printf("✅ Applied %d field values (%d skipped).\n", summary.FieldsApplied, len(summary.Skipped))
	return summary, nil
}

func (i *Intake) reconcileFile(ctx context.Context, file evidence.FileText) (int, []intake.SkippedField, error) {
	raw, err := i.extractor.ExtractRecord(ctx, file.Text, i.caseType)
	if err != nil {
		return 0, nil, err
	}
	rec, err := intake.ParseRecord(raw)
	if err != nil {
		return 0, nil, err
	}

	next, applied, skipped := intake.Reconcile(i.store.Snapshot(), rec, i.caseType.Questions)
	i.store.Replace(next)
	return applied, skipped, nil
}

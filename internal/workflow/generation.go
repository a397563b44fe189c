// Package workflow orchestrates the intake and generation pipelines over the
// evidence reader, the AI assistant, and the case file store.
package workflow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"caseprep/internal/ai"
	"caseprep/internal/assemble"
	"caseprep/internal/casefile"
	"caseprep/internal/evidence"
	"caseprep/internal/fault"
	"caseprep/internal/review"
	"caseprep/internal/schema"
)

// Generation runs the evidence-to-draft pipeline for one case. The stages
// run in a fixed order: read evidence, classify, check completeness,
// assemble. There are no retries; the first fatal error fails the run.
type Generation struct {
	reader    *evidence.Reader
	assistant ai.Assistant
	checker   *review.Checker
	store     *casefile.Store
	caseType  *schema.CaseType
	log       *zap.Logger

	mu      sync.Mutex
	running bool
	state   State
}

// Result carries everything a generation run produced.
type Result struct {
	Draft     string
	Verdict   review.Verdict
	Documents []ai.ClassifiedDocument
	Buckets   map[string][]string
}

func NewGeneration(reader *evidence.Reader, assistant ai.Assistant, checker *review.Checker, store *casefile.Store, ct *schema.CaseType, log *zap.Logger) *Generation {
	return &Generation{
		reader:    reader,
		assistant: assistant,
		checker:   checker,
		store:     store,
		caseType:  ct,
		log:       log,
		state:     StateIdle,
	}
}

// State reports the current pipeline state.
func (g *Generation) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Reset returns the pipeline to idle and clears the form. Only valid between
// runs.
func (g *Generation) Reset() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		return fmt.Errorf("cannot reset while a generation run is in progress")
	}
	g.store.Reset()
	g.state = StateIdle
	return nil
}

// Run executes the full pipeline. Only one run may be active at a time; a
// second call while one is in flight returns an error immediately.
func (g *Generation) Run(ctx context.Context, evidenceDir string) (*Result, error) {
	g.mu.Lock()
	if g.running {
		g.mu.Unlock()
		return nil, fmt.Errorf("a generation run is already in progress")
	}
	// Failed is terminal: the user must Reset back to idle before
	// re-triggering. Done may re-run; regenerating a draft is routine.
	if g.state == StateFailed {
		g.mu.Unlock()
		return nil, fmt.Errorf("previous generation run failed; reset before starting a new one")
	}
	g.running = true
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		g.running = false
		g.mu.Unlock()
	}()

	result, err := g.run(ctx, evidenceDir)
	if err != nil {
		g.setState(StateFailed)
		return nil, err
	}
	g.setState(StateDone)
	return result, nil
}

func (g *Generation) run(ctx context.Context, evidenceDir string) (*Result, error) {
	files, err := g.readEvidenceStage(ctx, evidenceDir)
	if err != nil {
		return nil, err
	}

	buckets, docs, err := g.classifyStage(ctx, files)
	if err != nil {
		return nil, err
	}

	verdict := g.completenessStage(ctx, buckets)

	draft, err := g.assembleStage(ctx, buckets)
	if err != nil {
		return nil, err
	}

	return &Result{
		Draft:     draft,
		Verdict:   verdict,
		Documents: docs,
		Buckets:   buckets,
	}, nil
}

func (g *Generation) readEvidenceStage(ctx context.Context, dir string) ([]evidence.FileText, error) {
	g.setState(StateReadingEvidence)
	files, err := g.reader.ReadAll(ctx, dir)
	if err != nil {
		return nil, err
	}
	fmt.Printf("📄 Read %d evidence files.\n", len(files))
	return files, nil
}

func (g *Generation) classifyStage(ctx context.Context, files []evidence.FileText) (map[string][]string, []ai.ClassifiedDocument, error) {
	g.setState(StateClassifying)
	docs, err := g.assistant.ClassifyDocuments(ctx, files, g.caseContext())
	if err != nil {
		return nil, nil, fmt.Errorf("document classification failed: %w", err)
	}
	buckets := review.BucketDocuments(g.caseType, docs)
	fmt.Printf("🗂️ Classified %d documents into %d tabs.\n", len(docs), len(buckets))
	return buckets, docs, nil
}

func (g *Generation) completenessStage(ctx context.Context, buckets map[string][]string) review.Verdict {
	g.setState(StateCheckingCompleteness)
	verdict := g.checker.Check(ctx, buckets, g.caseContext())
	if verdict.HasMinimum {
		fmt.Println("✅ Evidence meets the filing minimum.")
	} else {
		fmt.Printf("⚠️ Evidence may be incomplete: %d items flagged.\n", len(verdict.Missing))
	}
	return verdict
}

func (g *Generation) assembleStage(ctx context.Context, buckets map[string][]string) (string, error) {
	g.setState(StateAssembling)

	form := g.store.Snapshot()
	for _, q := range g.caseType.RequiredQuestions() {
		if form[q.ID] == "" {
			return "", fault.NewMissingRequiredField(q.Label)
		}
	}

	narrative, err := g.assistant.DraftNarrative(ctx, g.facts(form), g.caseContext())
	if err != nil {
		return "", fmt.Errorf("narrative drafting failed: %w", err)
	}

	subs := assemble.BuildSubstitutions(g.caseType, form, narrative, buckets, time.Now())
	draft, err := assemble.Assemble(g.caseType.Template, subs)
	if err != nil {
		return "", err
	}
	fmt.Println("📝 Draft assembled.")
	return draft, nil
}

func (g *Generation) caseContext() ai.CaseContext {
	form := g.store.Snapshot()
	return ai.CaseContext{
		CaseTypeID:   g.caseType.ID,
		CaseTypeName: g.caseType.Name,
		ClientName:   form["client_full_name"],
		ClientDOB:    form["client_dob"],
	}
}

// facts maps question labels to answered values for the narrative prompt.
func (g *Generation) facts(form casefile.FormData) map[string]string {
	facts := make(map[string]string)
	for _, q := range g.caseType.Questions {
		if v := form[q.ID]; v != "" && v != schema.SelectSentinel {
			facts[q.Label] = v
		}
	}
	return facts
}

func (g *Generation) setState(s State) {
	g.mu.Lock()
	g.state = s
	g.mu.Unlock()
	g.log.Debug("pipeline state change", zap.String("state", s.String()))
}

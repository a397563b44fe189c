package workflow

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"caseprep/internal/ai"
	"caseprep/internal/casefile"
	"caseprep/internal/evidence"
	"caseprep/internal/fault"
	"caseprep/internal/review"
	"caseprep/internal/schema"
)

type stubAssistant struct {
	record     []byte
	docs       []ai.ClassifiedDocument
	narrative  string
	hasMinimum bool
	missing    []string
	verifyErr  error
}

func (s *stubAssistant) ExtractRecord(context.Context, string, *schema.CaseType) ([]byte, error) {
	return s.record, nil
}

func (s *stubAssistant) ClassifyDocuments(context.Context, []evidence.FileText, ai.CaseContext) ([]ai.ClassifiedDocument, error) {
	return s.docs, nil
}

func (s *stubAssistant) DraftNarrative(context.Context, map[string]string, ai.CaseContext) (string, error) {
	return s.narrative, nil
}

func (s *stubAssistant) VerifyCompleteness(context.Context, map[string][]string, ai.CaseContext) (bool, []string, error) {
	return s.hasMinimum, s.missing, s.verifyErr
}

func writeEvidence(t *testing.T, dir string, name, text string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(text), 0o644))
}

func newGeneration(t *testing.T, assistant *stubAssistant, store *casefile.Store) *Generation {
	t.Helper()
	ct, err := schema.ByID("vawa")
	require.NoError(t, err)
	reader := evidence.NewReader(evidence.PlainText{})
	checker := review.NewChecker(assistant, zap.NewNop())
	return NewGeneration(reader, assistant, checker, store, ct, zap.NewNop())
}

func TestGeneration_FullRun(t *testing.T) {
	dir := t.TempDir()
	writeEvidence(t, dir, "passport.txt", "passport scan text")
	writeEvidence(t, dir, "report.txt", "police report text")

	assistant := &stubAssistant{
		docs: []ai.ClassifiedDocument{
			{Description: "Passport", TabLabel: "A"},
			{Description: "Police report", TabLabel: "C"},
		},
		narrative:  "The petitioner endured sustained abuse.",
		hasMinimum: true,
	}
	store := casefile.NewStore()
	store.Set("client_full_name", "Maria Lopez")
	store.Set("client_dob", "1990-10-05")
	store.Set("client_gender", "Female")

	g := newGeneration(t, assistant, store)
	result, err := g.Run(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, StateDone, g.State())
	assert.True(t, result.Verdict.HasMinimum)
	assert.Contains(t, result.Draft, "The petitioner endured sustained abuse.")
	assert.Contains(t, result.Draft, "Maria Lopez")
	assert.NotContains(t, result.Draft, "{{")
	assert.Equal(t, []string{"Passport"}, result.Buckets["A"])
}

func TestGeneration_MissingRequiredFieldFailsBeforeAssembly(t *testing.T) {
	dir := t.TempDir()
	writeEvidence(t, dir, "a.txt", "text")

	assistant := &stubAssistant{narrative: "n", hasMinimum: true}
	store := casefile.NewStore()
	store.Set("client_full_name", "Maria Lopez")
	// client_dob intentionally unset

	g := newGeneration(t, assistant, store)
	_, err := g.Run(context.Background(), dir)
	require.Error(t, err)
	assert.Equal(t, fault.CodeMissingRequiredField, fault.CodeOf(err))
	assert.Equal(t, StateFailed, g.State())
}

func TestGeneration_VerifierErrorDegradesButRunSucceeds(t *testing.T) {
	dir := t.TempDir()
	writeEvidence(t, dir, "a.txt", "text")

	assistant := &stubAssistant{
		narrative: "n",
		verifyErr: errors.New("model unavailable"),
	}
	store := casefile.NewStore()
	store.Set("client_full_name", "Maria Lopez")
	store.Set("client_dob", "1990-10-05")

	g := newGeneration(t, assistant, store)
	result, err := g.Run(context.Background(), dir)
	require.NoError(t, err)
	assert.False(t, result.Verdict.HasMinimum)
	assert.Equal(t, []string{"Unable to verify documents"}, result.Verdict.Missing)
}

func TestGeneration_SingleFlight(t *testing.T) {
	store := casefile.NewStore()
	g := newGeneration(t, &stubAssistant{}, store)

	g.mu.Lock()
	g.running = true
	g.mu.Unlock()

	_, err := g.Run(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already in progress")
}

func TestGeneration_FailedIsTerminalUntilReset(t *testing.T) {
	dir := t.TempDir()
	writeEvidence(t, dir, "a.txt", "text")

	assistant := &stubAssistant{narrative: "n", hasMinimum: true}
	store := casefile.NewStore()
	store.Set("client_full_name", "Maria Lopez")
	// client_dob missing: the first run fails at the required-field gate.

	g := newGeneration(t, assistant, store)
	_, err := g.Run(context.Background(), dir)
	require.Error(t, err)
	require.Equal(t, StateFailed, g.State())

	_, err = g.Run(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reset")

	require.NoError(t, g.Reset())
	store.Set("client_full_name", "Maria Lopez")
	store.Set("client_dob", "1990-10-05")
	_, err = g.Run(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, StateDone, g.State())
}

func TestGeneration_ResetClearsForm(t *testing.T) {
	store := casefile.NewStore()
	store.Set("client_full_name", "Maria Lopez")
	g := newGeneration(t, &stubAssistant{}, store)

	require.NoError(t, g.Reset())
	assert.Empty(t, store.Snapshot())
	assert.Equal(t, StateIdle, g.State())
}

func TestIntake_AppliesExtractedFields(t *testing.T) {
	dir := t.TempDir()
	writeEvidence(t, dir, "intake.txt", "handwritten intake form text")

	assistant := &stubAssistant{
		record: []byte(`{
			"full_name": "Maria Lopez",
			"gender": "f",
			"date_of_birth": "10/05/1990",
			"marital_status": "null",
			"country_of_birth": "Honduras"
		}`),
	}
	ct, err := schema.ByID("vawa")
	require.NoError(t, err)
	store := casefile.NewStore()
	in := NewIntake(evidence.NewReader(evidence.PlainText{}), assistant, store, ct, zap.NewNop())

	summary, err := in.Run(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.FilesProcessed)
	form := store.Snapshot()
	assert.Equal(t, "Maria Lopez", form["client_full_name"])
	assert.Equal(t, "Female", form["client_gender"])
	assert.Equal(t, "1990-10-05", form["client_dob"])
	assert.Equal(t, "Honduras", form["client_country"])
	_, hasMarital := form["marital_status"]
	assert.False(t, hasMarital)

	// "null" for a covered field is reported, not silently dropped.
	require.Len(t, summary.Skipped, 1)
	assert.Equal(t, "marital_status", summary.Skipped[0].QuestionID)
}

type flakyExtractor struct {
	calls int
}

func (f *flakyExtractor) ExtractRecord(context.Context, string, *schema.CaseType) ([]byte, error) {
	f.calls++
	if f.calls == 1 {
		return nil, fault.NewSecondaryCheckFailure(errors.New("transient backend failure"))
	}
	return []byte(`{"full_name": "Maria Lopez"}`), nil
}

func TestIntake_SecondaryFailureSkipsFileOnly(t *testing.T) {
	dir := t.TempDir()
	writeEvidence(t, dir, "a_first.txt", "text one")
	writeEvidence(t, dir, "b_second.txt", "text two")

	ct, err := schema.ByID("vawa")
	require.NoError(t, err)
	store := casefile.NewStore()
	in := NewIntake(evidence.NewReader(evidence.PlainText{}), &flakyExtractor{}, store, ct, zap.NewNop())

	summary, err := in.Run(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.FilesProcessed)
	assert.Equal(t, "Maria Lopez", store.Snapshot()["client_full_name"])
}

func TestIntake_FatalExtractionAborts(t *testing.T) {
	dir := t.TempDir()
	writeEvidence(t, dir, "a.txt", "text")

	assistant := &stubAssistant{record: []byte(`[1, 2, 3]`)}
	ct, err := schema.ByID("vawa")
	require.NoError(t, err)
	in := NewIntake(evidence.NewReader(evidence.PlainText{}), assistant, casefile.NewStore(), ct, zap.NewNop())

	_, err = in.Run(context.Background(), dir)
	require.Error(t, err)
	assert.Equal(t, fault.CodeMalformedExtractionResult, fault.CodeOf(err))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "checking completeness", StateCheckingCompleteness.String())
	assert.Equal(t, "failed", StateFailed.String())
}

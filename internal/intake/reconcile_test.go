package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caseprep/internal/casefile"
	"caseprep/internal/fault"
	"caseprep/internal/schema"
)

func strptr(s string) *string { return &s }

func twoQuestions() []schema.Question {
	return []schema.Question{
		{ID: "client_full_name", Label: "Client Full Name", Type: schema.TypeText, ExtractKey: "name"},
		{ID: "client_dob", Label: "Date of Birth", Type: schema.TypeDate, ExtractKey: "dob"},
	}
}

func TestReconcile_NullSentinelReportedNotApplied(t *testing.T) {
	rec := ExtractedRecord{
		"name": strptr("null"),
		"dob":  strptr("1990-01-01"),
	}

	updated, populated, skipped := Reconcile(casefile.FormData{}, rec, twoQuestions())

	assert.Equal(t, 1, populated)
	assert.Equal(t, "1990-01-01", updated["client_dob"])
	_, hasName := updated["client_full_name"]
	assert.False(t, hasName)

	// The field was answered and the answer was "null": never applied, but
	// surfaced in the report so the user knows the document covered it.
	require.Len(t, skipped, 1)
	assert.Equal(t, "client_full_name", skipped[0].QuestionID)
	assert.Equal(t, "Client Full Name", skipped[0].Label)
	assert.Contains(t, skipped[0].Reason, "null")
}

func TestReconcile_NullSpellingsAllReported(t *testing.T) {
	for _, v := range []string{"null", "Null", "NULL", "  null  "} {
		rec := ExtractedRecord{"name": strptr(v)}
		updated, populated, skipped := Reconcile(casefile.FormData{}, rec, twoQuestions())
		assert.Zero(t, populated)
		assert.Empty(t, updated)
		require.Len(t, skipped, 1, "input %q", v)
		assert.Equal(t, "client_full_name", skipped[0].QuestionID)
	}
}

func TestReconcile_SilentAbsenceVariants(t *testing.T) {
	// Missing key, JSON null, and blank text mean the document never
	// covered the field; nothing to apply and nothing to report.
	questions := twoQuestions()
	for _, v := range []*string{nil, strptr(""), strptr("   ")} {
		rec := ExtractedRecord{"name": v}
		updated, populated, skipped := Reconcile(casefile.FormData{}, rec, questions)
		assert.Zero(t, populated)
		assert.Empty(t, updated)
		assert.Empty(t, skipped)
	}
}

func TestReconcile_PerFieldFailureDoesNotAbort(t *testing.T) {
	questions := []schema.Question{
		{ID: "client_gender", Label: "Client Gender", Type: schema.TypeSelect, ExtractKey: "gender",
			Vocab: schema.VocabGender, Options: []string{schema.SelectSentinel, "Male", "Female"}},
		{ID: "client_dob", Label: "Date of Birth", Type: schema.TypeDate, ExtractKey: "dob"},
		{ID: "client_full_name", Label: "Client Full Name", Type: schema.TypeText, ExtractKey: "name"},
	}
	rec := ExtractedRecord{
		"gender": strptr("unknowable"),
		"dob":    strptr("the distant past"),
		"name":   strptr("  Maria Lopez  "),
	}

	updated, populated, skipped := Reconcile(casefile.FormData{}, rec, questions)

	assert.Equal(t, 1, populated)
	assert.Equal(t, "Maria Lopez", updated["client_full_name"])
	require.Len(t, skipped, 2)
	labels := []string{skipped[0].Label, skipped[1].Label}
	assert.Contains(t, labels, "Client Gender")
	assert.Contains(t, labels, "Date of Birth")
	for _, s := range skipped {
		assert.NotEmpty(t, s.Reason)
	}
}

func TestReconcile_DispatchByType(t *testing.T) {
	questions := []schema.Question{
		{ID: "client_gender", Type: schema.TypeSelect, ExtractKey: "gender",
			Vocab: schema.VocabGender, Options: []string{schema.SelectSentinel, "Male", "Female"}},
		{ID: "entry_date", Type: schema.TypeDate, ExtractKey: "entry"},
		{ID: "lives_with_abuser", Type: schema.TypeCheckbox, ExtractKey: "cohabiting"},
	}
	rec := ExtractedRecord{
		"gender":     strptr("f"),
		"entry":      strptr("June 2018"),
		"cohabiting": strptr("true"),
	}

	updated, populated, _ := Reconcile(casefile.FormData{}, rec, questions)

	assert.Equal(t, 3, populated)
	assert.Equal(t, "Female", updated["client_gender"])
	assert.Equal(t, "2018-06-01", updated["entry_date"])
	assert.Equal(t, "true", updated["lives_with_abuser"])
}

func TestReconcile_DoesNotMutateSnapshot(t *testing.T) {
	current := casefile.FormData{"client_full_name": "Old Name"}
	rec := ExtractedRecord{"name": strptr("New Name")}

	updated, _, _ := Reconcile(current, rec, twoQuestions())

	assert.Equal(t, "Old Name", current["client_full_name"])
	assert.Equal(t, "New Name", updated["client_full_name"])
}

func TestParseRecord_MalformedPayloads(t *testing.T) {
	for _, raw := range []string{`[1,2,3]`, `"just text"`, `{"k": {"nested": true}}`, `not json`} {
		_, err := ParseRecord([]byte(raw))
		require.Error(t, err, raw)
		assert.Equal(t, fault.CodeMalformedExtractionResult, fault.CodeOf(err))
	}
}

func TestParseRecord_CoercesScalarsAndNull(t *testing.T) {
	rec, err := ParseRecord([]byte(`{"name": "Ana", "age": 34, "married": true, "gone": null}`))
	require.NoError(t, err)

	v, ok := rec.Value("name")
	assert.True(t, ok)
	assert.Equal(t, "Ana", v)

	v, ok = rec.Value("age")
	assert.True(t, ok)
	assert.Equal(t, "34", v)

	v, ok = rec.Value("married")
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	_, ok = rec.Value("gone")
	assert.False(t, ok)
	_, ok = rec.Value("never_present")
	assert.False(t, ok)
}

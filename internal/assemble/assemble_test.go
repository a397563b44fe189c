package assemble

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caseprep/internal/casefile"
	"caseprep/internal/schema"
)

func TestAssemble_ReplacesEveryOccurrence(t *testing.T) {
	out, err := Assemble("{{NAME}} and {{NAME}} again", map[string]string{"NAME": "Maria"})
	require.NoError(t, err)
	assert.Equal(t, "Maria and Maria again", out)
}

func TestAssemble_ApostropheGlyphsResolveIdentically(t *testing.T) {
	template := "See {{CLIENT'S_STATEMENT}} and also {{CLIENT’S_STATEMENT}}."
	out, err := Assemble(template, map[string]string{"CLIENT'S_STATEMENT": "Exhibit 1"})
	require.NoError(t, err)
	assert.Equal(t, "See Exhibit 1 and also Exhibit 1.", out)
}

func TestAssemble_FailsOnUnresolvedToken(t *testing.T) {
	_, err := Assemble("Hello {{WHO}}", map[string]string{"NAME": "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "{{WHO}}")
}

func TestInferPronouns(t *testing.T) {
	assert.Equal(t, PronounSet{"he", "him", "his"}, InferPronouns("Male"))
	assert.Equal(t, PronounSet{"she", "her", "her"}, InferPronouns("female"))
	assert.Equal(t, PronounSet{"they", "them", "their"}, InferPronouns(""))
	assert.Equal(t, PronounSet{"they", "them", "their"}, InferPronouns("nonbinary"))
	assert.Equal(t, "She", InferPronouns("Female").SubjectCap())
}

func TestFormatTabList(t *testing.T) {
	assert.Equal(t, "  (No documents classified for this tab.)", FormatTabList(nil))
	assert.Equal(t, "  - Passport\n  - Birth certificate", FormatTabList([]string{"Passport", "Birth certificate"}))
}

// Assembling each built-in template from built substitutions must leave no
// token behind, even with a sparse form and empty buckets.
func TestBuildSubstitutions_CoversBothTemplates(t *testing.T) {
	now := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	for _, id := range schema.IDs() {
		ct, err := schema.ByID(id)
		require.NoError(t, err)

		form := casefile.FormData{
			"client_full_name": "Maria Lopez",
			"client_gender":    "Female",
			"client_dob":       "1990-10-05",
		}
		subs := BuildSubstitutions(ct, form, "Narrative text.", nil, now)
		out, err := Assemble(ct.Template, subs)
		require.NoError(t, err, "case type %s", id)

		assert.NotContains(t, out, "{{")
		assert.NotContains(t, out, "}}")
		assert.Contains(t, out, "Maria Lopez")
		assert.Contains(t, out, "10/05/1990")
		assert.Contains(t, out, "03/14/2026")
		assert.Contains(t, out, "the sworn declaration of Maria Lopez")
		assert.Contains(t, out, "(No documents classified for this tab.)")
	}
}

// The substitution map must cover the declared token vocabulary exactly:
// an uncovered token would survive assembly and fail it, and an extra key
// would mean a value with no home in the template.
func TestBuildSubstitutions_CoversDeclaredTokenVocabulary(t *testing.T) {
	for _, id := range schema.IDs() {
		ct, err := schema.ByID(id)
		require.NoError(t, err)

		subs := BuildSubstitutions(ct, casefile.FormData{}, "", nil, time.Now())
		keys := make([]string, 0, len(subs))
		for k := range subs {
			keys = append(keys, k)
		}
		assert.ElementsMatch(t, ct.Tokens, keys, "case type %s", id)
	}
}

func TestBuildSubstitutions_TabListsAndPronouns(t *testing.T) {
	ct, err := schema.ByID("vawa")
	require.NoError(t, err)

	form := casefile.FormData{
		"client_full_name": "Ana Silva",
		"client_gender":    "Female",
		"client_dob":       "1985-01-02",
	}
	buckets := map[string][]string{
		"A": {"Passport"},
		"C": {"Police report", "Medical records"},
	}
	subs := BuildSubstitutions(ct, form, "n", buckets, time.Now())

	assert.Equal(t, "  - Passport", subs["TAB_A_DOCS"])
	assert.Equal(t, "  - Police report\n  - Medical records", subs["TAB_C_DOCS"])
	assert.Equal(t, "  (No documents classified for this tab.)", subs["TAB_B_DOCS"])
	assert.Equal(t, "she", subs["SUBJECT_PRONOUN"])
	assert.Equal(t, "She", subs["SUBJECT_PRONOUN_CAP"])
	assert.Equal(t, "her", subs["OBJECT_PRONOUN"])
	assert.Equal(t, "her", subs["POSSESSIVE_PRONOUN"])
}

func TestBuildSubstitutions_BlanksUnansweredFields(t *testing.T) {
	ct, err := schema.ByID("uvisa")
	require.NoError(t, err)

	subs := BuildSubstitutions(ct, casefile.FormData{}, "", nil, time.Now())
	assert.Equal(t, strings.Repeat("_", 8), subs["CLIENT_NAME"])
	assert.Equal(t, strings.Repeat("_", 8), subs["CRIME_DATE"])
	assert.Equal(t, "the client's sworn declaration", subs["CLIENT'S_STATEMENT"])
}

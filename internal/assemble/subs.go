package assemble

import (
	"fmt"
	"strings"
	"time"

	"caseprep/internal/casefile"
	"caseprep/internal/intake"
	"caseprep/internal/schema"
)

const emptyTabLine = "  (No documents classified for this tab.)"

// blankValue stands in for form fields the intake never filled. Drafts go to
// attorney review, so a visible blank beats silently dropping the sentence.
const blankValue = "________"

// FormatTabList renders the bulleted document list for one tab.
func FormatTabList(docs []string) string {
	if len(docs) == 0 {
		return emptyTabLine
	}
	lines := make([]string, 0, len(docs))
	for _, d := range docs {
		lines = append(lines, "  - "+d)
	}
	return strings.Join(lines, "\n")
}

// BuildSubstitutions produces the full token-to-value map for one case type:
// the form-backed tokens, the pronoun set derived from the client's gender,
// the drafted narrative, and the per-tab document lists.
func BuildSubstitutions(ct *schema.CaseType, form casefile.FormData, narrative string, buckets map[string][]string, now time.Time) map[string]string {
	subs := make(map[string]string, len(ct.Tokens))

	for _, q := range ct.Questions {
		if q.Token == "" {
			continue
		}
		value := strings.TrimSpace(form[q.ID])
		if value != "" && q.Type == schema.TypeDate {
			value = intake.FormatDate(value)
		}
		if value == "" || value == schema.SelectSentinel {
			value = blankValue
		}
		subs[q.Token] = value
	}

	p := InferPronouns(form["client_gender"])
	subs["SUBJECT_PRONOUN"] = p.Subject
	subs["SUBJECT_PRONOUN_CAP"] = p.SubjectCap()
	subs["OBJECT_PRONOUN"] = p.Object
	subs["POSSESSIVE_PRONOUN"] = p.Possessive

	subs["NARRATIVE"] = strings.TrimSpace(narrative)
	subs["CLIENT'S_STATEMENT"] = statementReference(form["client_full_name"])
	subs["TODAY_DATE"] = now.Format("01/02/2006")

	for _, tab := range ct.Tabs {
		subs["TAB_"+tab.Label+"_DOCS"] = FormatTabList(buckets[tab.Label])
	}
	return subs
}

func statementReference(clientName string) string {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return "the client's sworn declaration"
	}
	return fmt.Sprintf("the sworn declaration of %s", clientName)
}

package ai

import (
	"fmt"
	"sort"
	"strings"

	"caseprep/internal/evidence"
	"caseprep/internal/schema"
)

// PromptBuilder constructs standardized prompts for each collaborator call.
type PromptBuilder struct{}

const jsonOnlyInstruction = "Return valid JSON only. No markdown fences, no commentary, no preamble.\n"

func (pb *PromptBuilder) BuildExtractionPrompt(documentText string, ct *schema.CaseType) string {
	var sb strings.Builder
	sb.WriteString("Role: Legal intake assistant. Task: Extract case facts from an intake document.\n")
	sb.WriteString(jsonOnlyInstruction)
	sb.WriteString("\nReturn a single flat JSON object with exactly these keys. ")
	sb.WriteString("Use null when the document does not state a value. Never guess.\n\n")
	for _, q := range ct.Questions {
		if q.ExtractKey == "" {
			continue
		}
		switch q.Type {
		case schema.TypeSelect:
			fmt.Fprintf(&sb, "- %s: %s (one of: %s)\n", q.ExtractKey, q.Label, strings.Join(selectable(q.Options), ", "))
		case schema.TypeDate:
			fmt.Fprintf(&sb, "- %s: %s (a date, as written in the document)\n", q.ExtractKey, q.Label)
		case schema.TypeCheckbox:
			fmt.Fprintf(&sb, "- %s: %s (true or false)\n", q.ExtractKey, q.Label)
		default:
			fmt.Fprintf(&sb, "- %s: %s\n", q.ExtractKey, q.Label)
		}
	}
	sb.WriteString("\n=== DOCUMENT TEXT ===\n")
	sb.WriteString(documentText)
	return sb.String()
}

func (pb *PromptBuilder) BuildClassificationPrompt(files []evidence.FileText, cc CaseContext, tabs []schema.Tab) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Role: Legal assistant organizing a %s filing packet for %s.\n", cc.CaseTypeName, cc.ClientName)
	sb.WriteString(jsonOnlyInstruction)
	sb.WriteString("\nAssign each document below to exactly one tab:\n")
	for _, t := range tabs {
		fmt.Fprintf(&sb, "- %s: %s\n", t.Label, t.Title)
	}
	sb.WriteString("\nReturn a JSON array, one element per document, shaped as\n")
	sb.WriteString(`[{"description": "<one-line description of the document>", "tab": "<tab letter>"}]` + "\n")
	for i, f := range files {
		fmt.Fprintf(&sb, "\n=== DOCUMENT %d: %s ===\n", i+1, f.FileName)
		sb.WriteString(truncate(f.Text, 4000))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (pb *PromptBuilder) BuildNarrativePrompt(facts map[string]string, cc CaseContext) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Role: Immigration attorney. Task: Draft the statement of facts for a %s.\n", cc.CaseTypeName)
	sb.WriteString("Write 2-4 plain-prose paragraphs in the third person. ")
	sb.WriteString("Use only the facts provided; do not invent dates, names, or events. ")
	sb.WriteString("Return the narrative text only, no headings.\n\nCase facts:\n")
	for _, label := range sortedKeys(facts) {
		fmt.Fprintf(&sb, "- %s: %s\n", label, facts[label])
	}
	return sb.String()
}

func (pb *PromptBuilder) BuildCompletenessPrompt(buckets map[string][]string, cc CaseContext) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Role: Senior immigration attorney reviewing a %s packet for %s.\n", cc.CaseTypeName, cc.ClientName)
	sb.WriteString(jsonOnlyInstruction)
	sb.WriteString("\nDecide whether the classified documents below meet the minimum documentary\n")
	sb.WriteString("requirements for this filing type. Return JSON shaped as\n")
	sb.WriteString(`{"has_minimum": true|false, "missing": ["<missing item>", ...]}` + "\n\n")
	for _, tab := range sortedKeys(buckets) {
		fmt.Fprintf(&sb, "Tab %s:\n", tab)
		if len(buckets[tab]) == 0 {
			sb.WriteString("  (no documents)\n")
			continue
		}
		for _, d := range buckets[tab] {
			fmt.Fprintf(&sb, "  - %s\n", d)
		}
	}
	return sb.String()
}

func selectable(options []string) []string {
	out := make([]string, 0, len(options))
	for _, o := range options {
		if o != schema.SelectSentinel {
			out = append(out, o)
		}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "\n[truncated]"
}

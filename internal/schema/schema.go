// Package schema holds the static per-case-type configuration: the form
// question definitions, the filing packet tab labels, and the document
// templates with their token vocabularies. Nothing here is discovered at
// runtime.
package schema

import "fmt"

type QuestionType string

const (
	TypeText     QuestionType = "text"
	TypeDate     QuestionType = "date"
	TypeSelect   QuestionType = "select"
	TypeTextArea QuestionType = "textarea"
	TypeCheckbox QuestionType = "checkbox"
)

// Vocab names the closed vocabulary class a select question draws from.
// The option matcher keys its abbreviation tables on this.
type Vocab string

const (
	VocabNone         Vocab = ""
	VocabGender       Vocab = "gender"
	VocabYesNo        Vocab = "yesno"
	VocabMarital      Vocab = "marital"
	VocabRelationship Vocab = "relationship"
)

// SelectSentinel is the "no selection" option present on every select
// question. It is never a valid match target.
const SelectSentinel = "-- Select --"

// Question is the immutable schema for one form field.
type Question struct {
	ID          string
	Label       string
	Type        QuestionType
	ExtractKey  string
	Options     []string
	Vocab       Vocab
	Placeholder string
	// Token, when set, is the template placeholder this field feeds.
	Token string
	// Required marks case identity fields that must be present at
	// generation time.
	Required bool
}

// Tab is one labeled section of the filing packet.
type Tab struct {
	Label string
	Title string
}

type CaseType struct {
	ID         string
	Name       string
	Questions  []Question
	Tabs       []Tab
	DefaultTab string
	Template   string
	// Tokens is the fixed placeholder vocabulary of Template.
	Tokens []string
}

func (ct *CaseType) Question(id string) (*Question, bool) {
	for i := range ct.Questions {
		if ct.Questions[i].ID == id {
			return &ct.Questions[i], true
		}
	}
	return nil, false
}

func (ct *CaseType) RequiredQuestions() []Question {
	var out []Question
	for _, q := range ct.Questions {
		if q.Required {
			out = append(out, q)
		}
	}
	return out
}

func (ct *CaseType) TabLabels() []string {
	out := make([]string, 0, len(ct.Tabs))
	for _, t := range ct.Tabs {
		out = append(out, t.Label)
	}
	return out
}

func (ct *CaseType) TabTitle(label string) string {
	for _, t := range ct.Tabs {
		if t.Label == label {
			return t.Title
		}
	}
	return label
}

// ByID resolves a case type. Unknown case types are rejected rather than
// treated as a no-op.
func ByID(id string) (*CaseType, error) {
	switch id {
	case VAWA.ID:
		return &VAWA, nil
	case UVisa.ID:
		return &UVisa, nil
	default:
		return nil, fmt.Errorf("unknown case type: %q", id)
	}
}

// IDs lists the supported case type identifiers.
func IDs() []string {
	return []string{VAWA.ID, UVisa.ID}
}

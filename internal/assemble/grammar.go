package assemble

import "strings"

// PronounSet carries the grammar values derived from the client's gender.
type PronounSet struct {
	Subject    string
	Object     string
	Possessive string
}

// InferPronouns maps a gender value to pronouns. Missing or unrecognized
// values degrade to the neutral plural set; this never errors.
func InferPronouns(gender string) PronounSet {
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "male", "m":
		return PronounSet{Subject: "he", Object: "him", Possessive: "his"}
	case "female", "f":
		return PronounSet{Subject: "she", Object: "her", Possessive: "her"}
	default:
		return PronounSet{Subject: "they", Object: "them", Possessive: "their"}
	}
}

// SubjectCap is the sentence-initial form of the subject pronoun.
func (p PronounSet) SubjectCap() string {
	if p.Subject == "" {
		return ""
	}
	return strings.ToUpper(p.Subject[:1]) + p.Subject[1:]
}

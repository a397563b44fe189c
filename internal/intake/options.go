package intake

import (
	"fmt"
	"strings"
	"unicode"

	"caseprep/internal/schema"
)

type MatchStrategy string

const (
	StrategyExact        MatchStrategy = "exact"
	StrategyCapitalized  MatchStrategy = "capitalized"
	StrategyAbbreviation MatchStrategy = "abbreviation"
	StrategyPrefix       MatchStrategy = "prefix"
	StrategyKeyword      MatchStrategy = "keyword"
	StrategyNone         MatchStrategy = "none"
)

// MatchOutcome is the diagnostic result of one option resolution. It feeds
// the skipped-field report and is never persisted.
type MatchOutcome struct {
	Value    string
	Strategy MatchStrategy
	OK       bool
	Reason   string
}

// One abbreviation table per vocabulary class. New closed vocabularies need
// only an entry here; resolution code stays generic.
var abbreviations = map[schema.Vocab]map[string]string{
	schema.VocabGender: {
		"m": "Male",
		"f": "Female",
	},
	schema.VocabYesNo: {
		"y": "Yes",
		"n": "No",
	},
	schema.VocabMarital: {
		"m": "Married",
		"s": "Single",
		"d": "Divorced",
		"w": "Widowed",
	},
	schema.VocabRelationship: {
		"sp": "Spouse",
		"p":  "Parent",
		"c":  "Child",
	},
}

// Keyword containment is the lowest-confidence strategy and only applies to
// small closed vocabularies.
const keywordVocabLimit = 5

// MatchOption resolves free text onto one of the declared options.
// Strategies run in fixed priority order and the first success wins; a value
// satisfying two strategies resolves by that order. On failure the field is
// left unset and reported — never defaulted to a guessed option.
func MatchOption(raw string, options []string, vocab schema.Vocab) MatchOutcome {
	norm := normalizeOptionInput(raw)
	if norm == "" {
		return noMatch("empty value")
	}

	// 1. Exact case-insensitive equality.
	for _, opt := range options {
		if opt == schema.SelectSentinel {
			continue
		}
		if strings.EqualFold(opt, norm) {
			return matched(opt, StrategyExact)
		}
	}

	// 2. Equality against the capitalized form of the input.
	capitalized := capitalizeFirst(norm)
	for _, opt := range options {
		if opt != schema.SelectSentinel && opt == capitalized {
			return matched(opt, StrategyCapitalized)
		}
	}

	// 3. Abbreviation table for the field's vocabulary class.
	if table, ok := abbreviations[vocab]; ok {
		if target, ok := table[norm]; ok {
			for _, opt := range options {
				if strings.EqualFold(opt, target) {
					return matched(opt, StrategyAbbreviation)
				}
			}
		}
	}

	// 4. Prefix containment in either direction.
	for _, opt := range options {
		if opt == schema.SelectSentinel {
			continue
		}
		lower := strings.ToLower(opt)
		if strings.HasPrefix(lower, norm) || strings.HasPrefix(norm, lower) {
			return matched(opt, StrategyPrefix)
		}
	}

	// 5. Keyword containment, small vocabularies only.
	if countSelectable(options) <= keywordVocabLimit {
		for _, opt := range options {
			if opt == schema.SelectSentinel {
				continue
			}
			lower := strings.ToLower(opt)
			if strings.Contains(norm, lower) || strings.Contains(lower, norm) {
				return matched(opt, StrategyKeyword)
			}
		}
	}

	return noMatch(fmt.Sprintf("%q does not match any available option", strings.TrimSpace(raw)))
}

func normalizeOptionInput(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, `"'`+"‘’")
	return strings.ToLower(strings.TrimSpace(s))
}

func capitalizeFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func countSelectable(options []string) int {
	n := 0
	for _, opt := range options {
		if opt != schema.SelectSentinel {
			n++
		}
	}
	return n
}

func matched(value string, strategy MatchStrategy) MatchOutcome {
	return MatchOutcome{Value: value, Strategy: strategy, OK: true}
}

func noMatch(reason string) MatchOutcome {
	return MatchOutcome{Strategy: StrategyNone, Reason: reason}
}

package assemble

import (
	"fmt"
	"regexp"
	"strings"
)

var leftoverTokenRe = regexp.MustCompile(`\{\{[^{}]*\}\}`)

// Assemble substitutes every {{TOKEN}} occurrence in template with its value
// from subs. Tokens containing an apostrophe are matched under both the ASCII
// and typographic glyph, so older template revisions assemble identically.
// Any {{...}} left after substitution means the token vocabulary and the
// template disagree, and assembly fails rather than emitting a draft with
// placeholder text in it.
func Assemble(template string, subs map[string]string) (string, error) {
	out := template
	for token, value := range subs {
		for _, variant := range tokenVariants(token) {
			out = strings.ReplaceAll(out, "{{"+variant+"}}", value)
		}
	}

	if leftover := leftoverTokenRe.FindAllString(out, -1); len(leftover) > 0 {
		seen := make(map[string]bool, len(leftover))
		var uniq []string
		for _, tok := range leftover {
			if !seen[tok] {
				seen[tok] = true
				uniq = append(uniq, tok)
			}
		}
		return "", fmt.Errorf("template contains unresolved tokens: %s", strings.Join(uniq, ", "))
	}
	return out, nil
}

func tokenVariants(token string) []string {
	variants := []string{token}
	if ascii := strings.ReplaceAll(token, "’", "'"); ascii != token {
		variants = append(variants, ascii)
	}
	if curly := strings.ReplaceAll(token, "'", "’"); curly != token {
		variants = append(variants, curly)
	}
	return variants
}

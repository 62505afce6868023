// Package classify assigns a semantic field type to a single line of label
// text using keyword evidence and a small set of structural cues. Keyword
// lists are maintained externally and passed in already filtered to active
// entries; classification itself does no I/O.
package classify

import (
	"regexp"
	"strings"

	"labelmedix/internal/domain"
)

// KeywordList maps a field type to its matching keywords. The list is treated
// as an immutable snapshot for the duration of one classification batch.
type KeywordList map[domain.FieldType][]string

// separators are the characters stripped or split on by the looser matching
// strategies. Label text mixes punctuation styles across languages, so
// matching ignores them where exact and substring matching fail.
const separators = " ()[].,:-_"

// FuzzyMatch reports whether text matches keyword under any of the escalating
// strategies: colon-stripped exact match, substring containment, containment
// after separator stripping, whole-word boundary match, and per-word matching
// for multi-word keywords. It never panics; a keyword that cannot be compiled
// into a word-boundary pattern simply does not match under that strategy.
func FuzzyMatch(text, keyword string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	k := strings.ToLower(strings.TrimSpace(keyword))
	if t == "" || k == "" {
		return false
	}

	tNoColon := strings.TrimRight(t, ":")
	kNoColon := strings.TrimRight(k, ":")

	// Exact match ignoring trailing colons.
	if tNoColon == kNoColon {
		return true
	}

	// Substring containment, with and without trailing colons.
	if strings.Contains(t, k) || strings.Contains(tNoColon, kNoColon) {
		return true
	}

	// Containment after stripping separator characters from both sides.
	tStripped := stripSeparators(tNoColon)
	kStripped := stripSeparators(kNoColon)
	if kStripped != "" && strings.Contains(tStripped, kStripped) {
		return true
	}

	// Whole-word boundary match. Guards against partial-word false positives
	// like "Pharma" matching inside "Pharmaceutical".
	if wordBoundaryMatch(t, k) || wordBoundaryMatch(tNoColon, kNoColon) {
		return true
	}

	// Multi-word keywords: every keyword word must line up with some text word.
	if kWords := splitWords(kNoColon); len(kWords) > 1 {
		tWords := splitWords(tNoColon)
		if matchAllWords(kWords, tWords) {
			return true
		}
	}

	return false
}

func stripSeparators(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !strings.ContainsRune(separators, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func wordBoundaryMatch(text, keyword string) bool {
	if keyword == "" {
		return false
	}
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
	if err != nil {
		// Pathological keywords degrade to a non-match for this strategy.
		return false
	}
	return re.MatchString(text)
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	})
}

func matchAllWords(keywordWords, textWords []string) bool {
	if len(textWords) == 0 {
		return false
	}
	for _, kw := range keywordWords {
		found := false
		for _, tw := range textWords {
			if strings.Contains(tw, kw) || strings.Contains(kw, tw) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// matchesAny reports whether text matches any keyword in the list.
func matchesAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if FuzzyMatch(text, kw) {
			return true
		}
	}
	return false
}

// Classify maps one line of label text to a field type. The rule order is
// load-bearing: ambiguous inputs (a company name ending with a colon, a drug
// name containing "tablets") resolve by evidence strength, strongest first.
// Changing the order changes outcomes, so keep it as is.
func Classify(text string, keywords KeywordList) domain.FieldType {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return domain.FieldTypeDrugDescription
	}
	lower := strings.ToLower(trimmed)

	// Drug names carry the internal "BG"/"BGB" code prefix or match the
	// drug name vocabulary.
	if strings.HasPrefix(lower, "bg") || matchesAny(trimmed, keywords[domain.FieldTypeDrugName]) {
		return domain.FieldTypeDrugName
	}

	// Sheet counts: keyword match, the literal "XX"/"XXX" quantity
	// placeholder (case-sensitive), or a tablet mention.
	if matchesAny(trimmed, keywords[domain.FieldTypeNumberOfSheets]) ||
		strings.Contains(trimmed, "XX") ||
		strings.Contains(lower, "tablets") {
		return domain.FieldTypeNumberOfSheets
	}

	if matchesAny(trimmed, keywords[domain.FieldTypeCompanyName]) {
		return domain.FieldTypeCompanyName
	}

	// Colon-terminated lines are structured fields: either a recognized
	// number field or generic basic info. This branch is terminal.
	if strings.HasSuffix(trimmed, ":") {
		if matchesAny(trimmed, keywords[domain.FieldTypeNumberField]) {
			return domain.FieldTypeNumberField
		}
		return domain.FieldTypeBasicInfo
	}

	return domain.FieldTypeDrugDescription
}

// ClassifyBatch applies Classify element-wise, preserving input order.
func ClassifyBatch(texts []string, keywords KeywordList) []domain.FieldType {
	out := make([]domain.FieldType, len(texts))
	for i, t := range texts {
		out[i] = Classify(t, keywords)
	}
	return out
}

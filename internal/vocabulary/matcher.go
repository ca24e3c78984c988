// matcher.go implements Aho-Corasick keyword detection over the category
// registry, a single O(n+m) pass regardless of vocabulary size.
package vocabulary

import (
	"sort"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// Matcher detects registry categories in free text.
type Matcher struct {
	matcher      *ahocorasick.Matcher
	keywords     []string
	kwToCategory map[string][]int // normalized keyword -> registry positions
}

// NewMatcher builds the automaton from the full category registry.
func NewMatcher() *Matcher {
	m := &Matcher{
		kwToCategory: make(map[string][]int),
	}
	for i, cat := range registry {
		for _, kw := range cat.Keywords {
			normalized := NormalizeName(kw)
			if normalized == "" {
				continue
			}
			m.keywords = append(m.keywords, normalized)
			m.kwToCategory[normalized] = append(m.kwToCategory[normalized], i)
		}
	}
	if len(m.keywords) > 0 {
		m.matcher = ahocorasick.NewStringMatcher(m.keywords)
	}
	return m
}

// Detect returns the canonical categories whose keywords appear in text,
// ordered by hit count descending, then registry order.
func (m *Matcher) Detect(text string) []string {
	if m.matcher == nil || text == "" {
		return nil
	}

	normalized := NormalizeText(text)
	hits := m.matcher.Match([]byte(normalized))

	counts := make(map[int]int)
	for _, hitIndex := range hits {
		if hitIndex >= len(m.keywords) {
			continue
		}
		for _, pos := range m.kwToCategory[m.keywords[hitIndex]] {
			counts[pos]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	positions := make([]int, 0, len(counts))
	for pos := range counts {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool {
		if counts[positions[i]] != counts[positions[j]] {
			return counts[positions[i]] > counts[positions[j]]
		}
		return positions[i] < positions[j]
	})

	names := make([]string, len(positions))
	for i, pos := range positions {
		names[i] = registry[pos].Name
	}
	return names
}

// MatchCount returns how many distinct registry keywords from the given
// keyword list appear in text. Used by the recommendation scorer for
// keyword-overlap scoring.
func MatchCount(text string, keywords []string) int {
	if text == "" || len(keywords) == 0 {
		return 0
	}
	normalized := " " + NormalizeText(text) + " "
	count := 0
	for _, kw := range keywords {
		k := NormalizeName(kw)
		if k == "" {
			continue
		}
		if containsWord(normalized, k) {
			count++
		}
	}
	return count
}

// containsWord checks for kw in text at word boundaries. The text must be
// normalized and padded with spaces by the caller.
func containsWord(paddedText, kw string) bool {
	return strings.Contains(paddedText, " "+kw+" ")
}

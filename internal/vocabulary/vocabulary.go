// Package vocabulary holds the static category registry: canonical
// category names, their detection keywords, and fallback defaults.
// Every other profiling component depends on it; it depends on nothing.
package vocabulary

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Category pairs a canonical category name with its detection keywords.
type Category struct {
	Name     string
	Keywords []string
}

// registry is the curated category vocabulary. Order matters: it is the
// tie-break order for detection and the order of Names().
var registry = []Category{
	{Name: "AI Tools", Keywords: []string{
		"ai", "llm", "gpt", "machine learning", "neural", "agent",
		"prompt", "model", "inference", "copilot",
	}},
	{Name: "Crypto", Keywords: []string{
		"crypto", "blockchain", "token", "wallet", "ethereum", "bitcoin",
		"solana", "onchain", "mint", "nft",
	}},
	{Name: "DeFi", Keywords: []string{
		"defi", "yield", "liquidity", "staking", "lending", "swap",
		"amm", "vault",
	}},
	{Name: "Trading", Keywords: []string{
		"trading", "market", "price", "chart", "signal", "arbitrage",
		"portfolio", "exchange",
	}},
	{Name: "Development", Keywords: []string{
		"code", "programming", "developer", "api", "sdk", "golang",
		"typescript", "rust", "deploy", "backend",
	}},
	{Name: "Data Analysis", Keywords: []string{
		"data", "analytics", "dashboard", "metrics", "query", "sql",
		"visualization", "pipeline",
	}},
	{Name: "Research", Keywords: []string{
		"research", "paper", "study", "experiment", "analysis",
		"academic", "survey",
	}},
	{Name: "Productivity", Keywords: []string{
		"productivity", "workflow", "automation", "schedule", "notes",
		"task", "calendar", "reminder",
	}},
	{Name: "Content Creation", Keywords: []string{
		"content", "writing", "blog", "video", "podcast", "publishing",
		"newsletter", "creator",
	}},
	{Name: "Community", Keywords: []string{
		"community", "discord", "social", "network", "dao", "governance",
		"moderation", "outreach",
	}},
	{Name: "Security", Keywords: []string{
		"security", "audit", "vulnerability", "privacy", "encryption",
		"authentication",
	}},
	{Name: "Gaming", Keywords: []string{
		"game", "gaming", "metaverse", "play", "quest", "esports",
	}},
}

// Defaults are the fallback categories used when no source contributes
// anything detectable.
var Defaults = []string{"AI Tools", "Productivity", "Development"}

// canonicalIndex maps normalized names (and keywords) to registry positions.
var canonicalIndex = buildCanonicalIndex()

func buildCanonicalIndex() map[string]int {
	idx := make(map[string]int, len(registry))
	for i, cat := range registry {
		idx[NormalizeName(cat.Name)] = i
	}
	return idx
}

// All returns the full registry in canonical order.
func All() []Category {
	out := make([]Category, len(registry))
	copy(out, registry)
	return out
}

// Canonical resolves a free-form name to its canonical category name.
// Matching is case- and accent-insensitive.
func Canonical(name string) (string, bool) {
	if i, ok := canonicalIndex[NormalizeName(name)]; ok {
		return registry[i].Name, true
	}
	return "", false
}

// NormalizeName lowercases, trims, and strips accents from a category name
// so lookups tolerate user-supplied spellings.
func NormalizeName(name string) string {
	return removeAccents(strings.ToLower(strings.TrimSpace(name)))
}

// NormalizeText lowercases text and replaces non-alphanumeric runes with
// spaces, preserving word boundaries for keyword matching.
func NormalizeText(text string) string {
	text = removeAccents(strings.ToLower(text))

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

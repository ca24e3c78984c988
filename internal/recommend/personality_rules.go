// personality_rules.go holds the identity-type keyword tables used for the
// personality term of the composite score. Tables are data so the
// vocabulary can grow without touching scoring logic.
package recommend

import "github.com/jonesrussell/profiler/internal/domain"

var personalityKeywords = map[domain.IdentityType][]string{
	domain.IdentityVisionary: {
		"vision", "future", "disruptive", "frontier", "bold", "transform",
	},
	domain.IdentityExplorer: {
		"discover", "explore", "experiment", "novel", "curious", "emerging",
	},
	domain.IdentityOptimizer: {
		"optimize", "efficient", "streamline", "automate", "precise", "reliable",
	},
	domain.IdentityInnovator: {
		"build", "create", "invent", "prototype", "hack", "tinker",
	},
	domain.IdentityCultivator: {
		"community", "collaborate", "mentor", "share", "support", "connect",
	},
}

// PersonalityKeywords returns the keyword table for an identity type.
func PersonalityKeywords(t domain.IdentityType) []string {
	return personalityKeywords[t]
}

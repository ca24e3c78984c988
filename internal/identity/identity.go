// Package identity maps the three behavioral dimensions to one of five
// discrete identity types. Pure, total over [0,100]^3, deterministic.
package identity

import "github.com/jonesrussell/profiler/internal/domain"

// Classification thresholds. Ties at exactly 50 count as "high"; the
// contribution override is strictly greater than 65. Both must hold
// exactly for reproducible classification.
const (
	highThreshold         = 50
	contributionThreshold = 65
)

// Classify resolves the identity type for a dimension triple.
// Contribution above 65 always wins; otherwise the conviction/intuition
// quadrant decides.
func Classify(d domain.Dimensions) domain.IdentityType {
	if d.Contribution > contributionThreshold {
		return domain.IdentityCultivator
	}

	highConviction := d.Conviction >= highThreshold
	highIntuition := d.Intuition >= highThreshold

	switch {
	case highConviction && highIntuition:
		return domain.IdentityVisionary
	case highConviction:
		return domain.IdentityOptimizer
	case highIntuition:
		return domain.IdentityExplorer
	default:
		return domain.IdentityInnovator
	}
}

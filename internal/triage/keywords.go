package triage

import "github.com/parkview/go-grievance-backend/internal/domain"

// Rule data for the classifier. Kept separate from the evaluation logic so
// the sets can be reviewed and tested on their own.
var (
	// EmergencyKeywords escalate a high-risk-category complaint to the
	// emergency tier. Matching is case-insensitive substring search over the
	// description.
	EmergencyKeywords = []string{
		"fire", "leak", "danger", "injury", "collapse",
		"immediate", "life threatening", "emergency",
	}

	// HighKeywords promote any complaint to the high tier regardless of
	// category.
	HighKeywords = []string{
		"urgent", "major break", "no power", "blockage",
		"broken", "hazard", "severe", "critical",
	}

	// highRiskCategories are the categories whose complaints start at the
	// high tier even without a keyword hit.
	highRiskCategories = map[domain.Category]bool{
		domain.CategorySecurity:       true,
		domain.CategoryWaterSupply:    true,
		domain.CategoryElectricity:    true,
		domain.CategoryInfrastructure: true,
	}
)

// HighRisk reports whether the category belongs to the high-risk set.
func HighRisk(c domain.Category) bool { return highRiskCategories[c] }

// Package guidance derives follow-up advice from a recommendation tier and
// the technical readiness score.
package guidance

import (
	"slices"

	"github.com/abhisek/riskready/internal/scoring"
)

var nextSteps = map[scoring.Recommendation][]string{
	scoring.RecommendYes: {
		"Enroll in 'Foundations of Risk Management' course",
		"Develop Excel skills for financial analysis",
		"Study internal audit frameworks (COSO, SOX)",
		"Consider entry-level positions or internships",
	},
	scoring.RecommendMaybe: {
		"Strengthen analytical and numerical skills",
		"Take introductory courses in finance and accounting",
		"Practice with case studies and scenarios",
		"Assess interest through informational interviews",
	},
	scoring.RecommendNo: {
		"Explore related fields like Quality Assurance",
		"Build foundational business and finance knowledge",
		"Consider roles in operations or administration",
		"Reassess career interests and strengths",
	},
}

var careers = map[scoring.Recommendation][]string{
	scoring.RecommendYes: {
		"Risk Analyst",
		"Internal Auditor",
		"Compliance Analyst",
		"Operational Risk Associate",
		"Financial Auditor",
	},
	scoring.RecommendMaybe: {
		"Junior Risk Analyst",
		"Audit Assistant",
		"Compliance Coordinator",
	},
	scoring.RecommendNo: {
		"Business Analyst",
		"Data Entry Specialist",
		"Administrative Assistant",
	},
}

var alternativePaths = []string{
	"Quality Assurance Analyst",
	"Business Process Coordinator",
	"Finance Operations Assistant",
	"Data Entry Specialist",
}

// NextSteps returns the ordered action items for a tier.
func NextSteps(rec scoring.Recommendation) []string {
	return lookup(nextSteps, rec)
}

// CareerSuggestions returns the roles suggested for a tier.
func CareerSuggestions(rec scoring.Recommendation) []string {
	return lookup(careers, rec)
}

// AlternativePaths returns adjacent roles for respondents who are not a fit.
// The result is empty, never nil, for every other tier.
func AlternativePaths(rec scoring.Recommendation) []string {
	if rec != scoring.RecommendNo {
		return []string{}
	}
	return slices.Clone(alternativePaths)
}

// Unknown tiers fall back to the No tables.
func lookup(table map[scoring.Recommendation][]string, rec scoring.Recommendation) []string {
	items, ok := table[rec]
	if !ok {
		items = table[scoring.RecommendNo]
	}
	return slices.Clone(items)
}

// Package triage assigns a priority tier and an SLA due date to a complaint
// from its category and free-text description. Classification happens once at
// submission; tiers are never recomputed afterwards.
//
// The classifier is an ordered rule list evaluated in fixed precedence order,
// first match wins, no scoring:
//
//  1. high-risk category AND an emergency keyword  -> emergency, due in 1 day
//  2. high-risk category OR a high keyword         -> high, due in 3 days
//  3. otherwise                                    -> standard, due in 7 days
//
// Given identical inputs and a frozen submission time the result is
// deterministic and idempotent.
package triage

import (
	"strings"
	"time"

	"github.com/parkview/go-grievance-backend/internal/domain"
)

// SLA windows per tier.
const (
	EmergencySLA = 24 * time.Hour
	HighSLA      = 3 * 24 * time.Hour
	StandardSLA  = 7 * 24 * time.Hour
)

// Classify returns the priority tier and SLA due timestamp for a complaint
// created at now.
func Classify(category domain.Category, description string, now time.Time) (domain.Priority, time.Time) {
	desc := strings.ToLower(description)

	switch {
	case HighRisk(category) && containsAny(desc, EmergencyKeywords):
		return domain.PriorityEmergency, now.Add(EmergencySLA)
	case HighRisk(category) || containsAny(desc, HighKeywords):
		return domain.PriorityHigh, now.Add(HighSLA)
	default:
		return domain.PriorityStandard, now.Add(StandardSLA)
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

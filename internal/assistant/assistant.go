// Package assistant implements the portal's rule-driven digital assistant.
// It matches a message against an ordered set of intent patterns and returns
// a translation key; the transport layer renders the key in the caller's
// language. There is no model behind this, keyword routing is the whole
// feature.
package assistant

import (
	"regexp"
	"strings"
)

// rule pairs one intent pattern with the translation key of its canned
// reply. Patterns include the Kannada keywords citizens actually type, so
// routing works regardless of the interface language.
type rule struct {
	pattern *regexp.Regexp
	key     string
}

// FallbackKey is returned when no intent pattern matches.
const FallbackKey = "assist_fallback"

// rules are evaluated in order; the first match wins, so a message that is
// both a greeting and a question routes to the greeting.
var rules = []rule{
	{regexp.MustCompile(`\b(hello|hi|hey|greetings|start)\b|ನಮಸ್ಕಾರ|ಶುಭಾಶಯ`), "welcome_message"},
	{regexp.MustCompile(`\b(grievance|report|issue|problem|complaint)\b|ಕುಂದುಕೊರತೆ|ಸಮಸ್ಯೆ|ವರದಿ`), "assist_grievance"},
	{regexp.MustCompile(`\b(status|track|pending|resolved|progress)\b|ಸ್ಥಿತಿ|ಟ್ರ್ಯಾಕ್|ಪ್ರಗತಿ`), "assist_status"},
	{regexp.MustCompile(`\b(notice|announcement|news|circular)\b|ಪ್ರಕಟಣೆ|ಸುದ್ದಿ`), "assist_announcement"},
	{regexp.MustCompile(`\b(post|community|talk|discussion|neighbor)\b|ಸಮುದಾಯ|ಚರ್ಚೆ`), "assist_community"},
	{regexp.MustCompile(`\b(admin|contact|official|department)\b|ಆಡಳಿತ|ಸಂಪರ್ಕ`), "assist_admin"},
	{regexp.MustCompile(`emergency|life threatening|ತುರ್ತು|ಜೀವಕ್ಕೆ ಅಪಾಯ`), "assist_emergency"},
	{regexp.MustCompile(`\b(feedback|suggestion|rate|improve|satisfaction)\b|ಪ್ರತಿಕ್ರಿಯೆ|ಸಲಹೆ`), "assist_feedback"},
}

// ReplyKey routes a message to the translation key of its canned reply.
// Matching is case-insensitive on the lowercased message.
func ReplyKey(message string) string {
	text := strings.ToLower(strings.TrimSpace(message))
	for _, r := range rules {
		if r.pattern.MatchString(text) {
			return r.key
		}
	}
	return FallbackKey
}

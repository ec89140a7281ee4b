// Package i18n holds the portal's static string tables (English and Kannada)
// and the Accept-Language negotiation used by the HTTP layer.
//
// Storage keys (status_*, priority_*) are never localized on disk; they are
// translated to display labels at response time, and to canonical English
// labels by the export layer regardless of the requesting user's language.
package i18n

import "golang.org/x/text/language"

// Supported language tags, English first so it wins as the fallback.
var supported = []language.Tag{
	language.English,
	language.Kannada,
}

var matcher = language.NewMatcher(supported)

// MatchLanguage negotiates a table key ("en" or "kn") from an Accept-Language
// header value. Empty or unrecognized input falls back to English.
func MatchLanguage(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return "en"
	}
	_, idx, _ := matcher.Match(tags...)
	if idx == 1 {
		return "kn"
	}
	return "en"
}

// T returns the localized string for key in lang. Missing keys fall back to
// the English table, then to the key itself so a typo is visible instead of
// blank.
func T(lang, key string) string {
	if table, ok := tables[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := tables["en"][key]; ok {
		return s
	}
	return key
}

// EnglishLabel maps a storage key to its canonical English label, used by the
// export/report layer independent of any display language. Unknown keys come
// back unchanged.
func EnglishLabel(key string) string {
	if s, ok := tables["en"][key]; ok {
		return s
	}
	return key
}

var tables = map[string]map[string]string{
	"en": {
		// Storage key labels. These English labels are the canonical export
		// vocabulary; do not reword casually.
		"status_open":        "Open",
		"status_in_progress": "In Progress",
		"status_resolved":    "Resolved",
		"priority_emergency": "Emergency",
		"priority_high":      "High Priority",
		"priority_standard":  "Standard Priority",

		// Authentication.
		"auth_invalid_credentials": "Invalid Username or Password.",
		"auth_area_code_mismatch":  "Access Denied: The provided Area Code is incorrect for this user account.",
		"auth_region_mismatch":     "Access Denied: This portal is exclusively for residents of the service region.",

		// Grievances and feedback.
		"complaint_submitted":  "Grievance formally submitted. Please check 'Grievance Status Tracking' for updates.",
		"complaint_validation": "Action Required: Please complete the Address/Property Identification and the Detailed Description.",
		"feedback_success":     "Feedback submitted successfully. Your input is valued for system improvement.",
		"feedback_duplicate":   "Feedback for this resolution has already been recorded.",

		// Community board.
		"post_success": "The post has been submitted to the Community Board.",
		"post_error":   "Discussion content or an image attachment is required.",
		"vote_counted": "Support registered successfully.",
		"vote_repeat":  "You have already registered support for this discussion in this session.",

		// Digital assistant.
		"welcome_message":     "Welcome. I am the Digital Assistant for this portal. Please state your query regarding services like Grievances, Announcements, or Community Board.",
		"assist_grievance":    "To file a new grievance, please use the grievance submission service. You can monitor the progress of your existing grievances under status tracking.",
		"assist_status":       "You can check the current status and resolution details for all your reported issues under status tracking.",
		"assist_announcement": "Official notifications and circulars from the administration are posted under announcements. Kindly check there for the latest information.",
		"assist_community":    "For community discussions and neighborhood updates, please visit the community board.",
		"assist_admin":        "Direct departmental contact information is not provided here. Please file a grievance, and the relevant department will process it.",
		"assist_emergency":    "If this is a life-threatening emergency, please contact local emergency services immediately (e.g., Police, Fire, Ambulance). Our digital grievance system will automatically assign Emergency priority to your complaint.",
		"assist_feedback":     "We request your valuable feedback on resolved grievances. This can be submitted through status tracking after a case is marked Resolved.",
		"assist_fallback":     "I am unable to process that specific request. Please rephrase your query or refer to the available services.",
	},
	"kn": {
		"status_open":        "ತೆರೆದಿದೆ",
		"status_in_progress": "ಪ್ರಗತಿಯಲ್ಲಿದೆ",
		"status_resolved":    "ಪರಿಹಾರವಾಗಿದೆ",
		"priority_emergency": "ತುರ್ತು",
		"priority_high":      "ಹೆಚ್ಚಿನ ಆದ್ಯತೆ",
		"priority_standard":  "ಪ್ರಮಾಣಿತ ಆದ್ಯತೆ",

		"feedback_success": "ಪ್ರತಿಕ್ರಿಯೆಯನ್ನು ಯಶಸ್ವಿಯಾಗಿ ಸಲ್ಲಿಸಲಾಗಿದೆ. ನಿಮ್ಮ ಇನ್‌ಪುಟ್ ಅನ್ನು ಸಿಸ್ಟಮ್ ಸುಧಾರಣೆಗಾಗಿ ಮೌಲ್ಯಯುತವಾಗಿದೆ.",
		"post_success":     "ಪೋಸ್ಟ್ ಅನ್ನು ಸಮುದಾಯ ಮಂಡಳಿಗೆ ಸಲ್ಲಿಸಲಾಗಿದೆ.",
		"post_error":       "ಚರ್ಚೆಯ ವಿಷಯ ಅಥವಾ ಚಿತ್ರದ ಲಗತ್ತು ಅಗತ್ಯವಿದೆ.",

		"welcome_message": "ಸ್ವಾಗತ. ನಾನು ಈ ಪೋರ್ಟಲ್‌ನ ಡಿಜಿಟಲ್ ಸಹಾಯಕ. ದಯವಿಟ್ಟು ಕುಂದುಕೊರತೆ, ಪ್ರಕಟಣೆಗಳು ಅಥವಾ ಸಮುದಾಯ ಮಂಡಳಿಯಂತಹ ಸೇವೆಗಳ ಕುರಿತು ನಿಮ್ಮ ಪ್ರಶ್ನೆಯನ್ನು ತಿಳಿಸಿ.",
	},
}

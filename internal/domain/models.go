// Package domain defines the record types persisted by the grievance portal:
// users, complaints, community posts, announcements, and resolution feedback.
//
// Status and priority are closed enumerations whose underlying strings are the
// stable storage keys written to the flat-file collections. Display labels are
// a concern of the i18n/export layers; the keys here must never change, or
// previously written collections stop parsing.
package domain

import "time"

// Status is the resolution state of a complaint. The string value is the
// storage key, not a display label.
type Status string

const (
	StatusOpen       Status = "status_open"
	StatusInProgress Status = "status_in_progress"
	StatusResolved   Status = "status_resolved"
)

// ParseStatus maps a storage key to a Status. The boolean is false for
// unknown keys.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusOpen, StatusInProgress, StatusResolved:
		return Status(s), true
	}
	return "", false
}

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	_, ok := ParseStatus(string(s))
	return ok
}

// Priority is the triage tier assigned once at submission. The string value
// is the storage key.
type Priority string

const (
	PriorityEmergency Priority = "priority_emergency"
	PriorityHigh      Priority = "priority_high"
	PriorityStandard  Priority = "priority_standard"
)

// ParsePriority maps a storage key to a Priority. Unknown keys (including
// rows written before the triage column existed) fall back to standard.
func ParsePriority(s string) Priority {
	switch Priority(s) {
	case PriorityEmergency, PriorityHigh, PriorityStandard:
		return Priority(s)
	}
	return PriorityStandard
}

// Rank orders priorities for the admin queue: emergency > high > standard.
func (p Priority) Rank() int {
	switch p {
	case PriorityEmergency:
		return 3
	case PriorityHigh:
		return 2
	default:
		return 1
	}
}

// Category is the fixed grievance category set. Categories are stored as
// their English keys; the UI translates them for display.
type Category string

const (
	CategorySanitation     Category = "Sanitation"
	CategorySecurity       Category = "Security"
	CategoryWaterSupply    Category = "Water Supply"
	CategoryElectricity    Category = "Electricity/Power"
	CategoryInfrastructure Category = "Infrastructure/Roads"
	CategoryGeneralAdmin   Category = "General Administration"
)

// Categories returns the full category set in presentation order.
func Categories() []Category {
	return []Category{
		CategorySanitation,
		CategorySecurity,
		CategoryWaterSupply,
		CategoryElectricity,
		CategoryInfrastructure,
		CategoryGeneralAdmin,
	}
}

// ParseCategory maps a stored key to a Category. The boolean is false for
// unknown keys.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// User is a provisioned portal account. Accounts are created as seed data and
// are immutable thereafter; PasswordHash is an unsalted single-pass SHA-256 of
// the plaintext (a compatibility constraint of the stored format, not a
// recommendation).
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	IsAdmin      bool   `json:"is_admin"`
	Region       string `json:"region"`
	AreaCode     string `json:"area_code"`
}

// Complaint is a filed grievance. Priority and SLADue are computed once at
// submission and never recomputed; Latitude/Longitude are a deterministic
// pseudo-geocode of House, not a real location.
type Complaint struct {
	ID          int       `json:"id"`
	Username    string    `json:"username"`
	Name        string    `json:"name"`
	House       string    `json:"house"`
	Category    Category  `json:"category"`
	Description string    `json:"description"`
	Attachment  string    `json:"attachment,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	Status      Status    `json:"status"`
	Department  string    `json:"department,omitempty"`
	AdminNotes  string    `json:"admin_notes,omitempty"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	SLADue      time.Time `json:"sla_due"`
	Priority    Priority  `json:"priority"`
}

// Post is a community board entry. Votes only ever increases; posts are never
// edited or deleted.
type Post struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Region     string    `json:"region"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	Votes      int       `json:"votes"`
	Attachment string    `json:"attachment,omitempty"`
}

// Announcement is an official circular. Admin-only creation, immutable once
// published.
type Announcement struct {
	ID         string    `json:"id"`
	Author     string    `json:"author"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	Attachment string    `json:"attachment,omitempty"`
}

// Feedback is a citizen satisfaction record for a resolved complaint.
// At most one exists per (complaint, username) pair.
type Feedback struct {
	ComplaintID int       `json:"complaint_id"`
	Username    string    `json:"username"`
	Rating      int       `json:"rating"`
	Suggestion  string    `json:"suggestion,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

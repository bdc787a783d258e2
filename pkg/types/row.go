package types

import "strings"

// Urgency levels. Every persisted row carries one of these values.
const (
	UrgencyNow       = "Now"
	UrgencySoon      = "Soon"
	UrgencyYesterday = "Yesterday!"
)

// Urgencies lists all urgency levels in display order.
var Urgencies = []string{UrgencyNow, UrgencySoon, UrgencyYesterday}

// validUrgencies is the set of recognized urgency values.
var validUrgencies = map[string]bool{
	UrgencyNow:       true,
	UrgencySoon:      true,
	UrgencyYesterday: true,
}

// ValidUrgency reports whether u is a recognized urgency value.
func ValidUrgency(u string) bool {
	return validUrgencies[u]
}

// DateAddedFormat is the timestamp layout stamped on new rows.
const DateAddedFormat = "2006-01-02 15:04"

// Row is one grocery-list entry.
type Row struct {
	DateAdded  string // Set at creation, not touched by AddItem again.
	ItemNeeded string // Required, non-empty for every persisted row.
	Quantity   string
	WhereToGet string
	Urgency    string // One of the Urgency constants.
	Completed  bool
}

// Normalize trims every text field. The struct layout already guarantees
// all canonical columns are present; trimming is the only value-level
// cleanup, so normalizing an already-clean row changes nothing.
func (r *Row) Normalize() {
	r.DateAdded = strings.TrimSpace(r.DateAdded)
	r.ItemNeeded = strings.TrimSpace(r.ItemNeeded)
	r.Quantity = strings.TrimSpace(r.Quantity)
	r.WhereToGet = strings.TrimSpace(r.WhereToGet)
	r.Urgency = strings.TrimSpace(r.Urgency)
}

// Validate checks the row invariants for persistence.
// Returns ErrItemRequired or ErrInvalidUrgency on failure.
func (r Row) Validate() error {
	if strings.TrimSpace(r.ItemNeeded) == "" {
		return ErrItemRequired
	}
	if !validUrgencies[r.Urgency] {
		return ErrInvalidUrgency
	}
	return nil
}

// Matches reports whether the row matches a case-insensitive substring
// search over ItemNeeded and WhereToGet. An empty needle matches.
func (r Row) Matches(needle string) bool {
	s := strings.ToLower(strings.TrimSpace(needle))
	if s == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.ItemNeeded), s) ||
		strings.Contains(strings.ToLower(r.WhereToGet), s)
}

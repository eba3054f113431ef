package portal

import (
	"strings"
	"time"

	"github.com/Soumo04/TalentNest/pkg/models"
)

// AppliedOnLayout renders timestamps as e.g. "October 19, 2026 at 02:05 PM"
const AppliedOnLayout = "January 2, 2006 at 03:04 PM"

// NotAvailable is shown for absent optional fields
const NotAvailable = "N/A"

var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
}

var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// FormatAppliedOn converts a service timestamp to the long display form in
// loc. Values that do not parse are returned unchanged.
func FormatAppliedOn(raw string, loc *time.Location) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return NotAvailable
	}
	if loc == nil {
		loc = time.Local
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.In(loc).Format(AppliedOnLayout)
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t.Format(AppliedOnLayout)
		}
	}
	// date-only values are UTC midnight
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.In(loc).Format(AppliedOnLayout)
	}
	return raw
}

// NewBadge builds the status badge; the label keeps the service's casing and
// the class is its lower-cased form.
func NewBadge(status string) Badge {
	return Badge{Label: status, Class: strings.ToLower(status)}
}

// NewStatusDetails prepares a record for display
func NewStatusDetails(r *models.ApplicationRecord, loc *time.Location) *StatusDetails {
	jobTitle := r.JobTitle
	if jobTitle == "" {
		jobTitle = NotAvailable
	}
	return &StatusDetails{
		ApplicationID: r.ID,
		CandidateName: r.CandidateName,
		Email:         r.Email,
		JobTitle:      jobTitle,
		AppliedOn:     FormatAppliedOn(r.AppliedAt, loc),
		Badge:         NewBadge(r.Status),
		ResumeLink:    r.ResumeLink,
	}
}

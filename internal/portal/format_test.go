package portal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Soumo04/TalentNest/pkg/models"
)

func TestFormatAppliedOn(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	tests := []struct {
		name     string
		raw      string
		loc      *time.Location
		expected string
	}{
		{"RFC3339 UTC", "2026-10-19T14:05:00Z", time.UTC, "October 19, 2026 at 02:05 PM"},
		{"fractional seconds", "2026-10-19T09:30:12.345Z", time.UTC, "October 19, 2026 at 09:30 AM"},
		{"converted to zone", "2026-10-19T14:05:00Z", newYork, "October 19, 2026 at 10:05 AM"},
		{"offset", "2026-01-02T23:15:00+02:00", time.UTC, "January 2, 2026 at 09:15 PM"},
		{"no zone is local", "2026-10-19 08:00:00", newYork, "October 19, 2026 at 08:00 AM"},
		{"date only is UTC", "2026-10-19", time.UTC, "October 19, 2026 at 12:00 AM"},
		{"unparseable", "yesterday", time.UTC, "yesterday"},
		{"empty", "", time.UTC, "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatAppliedOn(tt.raw, tt.loc))
		})
	}
}

func TestNewBadge(t *testing.T) {
	tests := []struct {
		status string
		class  string
	}{
		{"Pending", "pending"},
		{"Reviewed", "reviewed"},
		{"ACCEPTED", "accepted"},
		{"In Review", "in review"},
	}

	for _, tt := range tests {
		badge := NewBadge(tt.status)
		assert.Equal(t, tt.status, badge.Label)
		assert.Equal(t, tt.class, badge.Class)
	}
}

func TestNewStatusDetails(t *testing.T) {
	details := NewStatusDetails(&models.ApplicationRecord{
		ID:            "A1",
		CandidateName: "Ada",
		Email:         "ada@example.com",
		JobTitle:      "UI/UX Designer",
		AppliedAt:     "2026-10-19T14:05:00Z",
		Status:        "Rejected",
		ResumeLink:    "https://cv.example.com/ada.pdf",
	}, time.UTC)

	assert.Equal(t, "UI/UX Designer", details.JobTitle)
	assert.Equal(t, "https://cv.example.com/ada.pdf", details.ResumeLink)
	assert.Equal(t, "rejected", details.Badge.Class)
}

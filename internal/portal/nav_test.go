package portal

import "testing"

func TestActiveSectionAt(t *testing.T) {
	bounds := []SectionBounds{
		{Section: SectionJobs, Top: 400},
		{Section: SectionApply, Top: 1200},
		{Section: SectionStatus, Top: 2000},
		{Section: SectionAdmin, Top: 2800},
	}

	tests := []struct {
		offset   int
		expected Section
	}{
		{0, ""},
		{199, ""},
		{200, SectionJobs},
		{999, SectionJobs},
		{1000, SectionApply},
		{1800, SectionStatus},
		{5000, SectionAdmin},
	}

	for _, tt := range tests {
		if got := ActiveSectionAt(tt.offset, bounds); got != tt.expected {
			t.Errorf("ActiveSectionAt(%d) = %q, expected %q", tt.offset, got, tt.expected)
		}
	}
}

func TestSectionValid(t *testing.T) {
	for _, s := range Sections() {
		if !s.Valid() {
			t.Errorf("Section(%s).Valid() = false, expected true", s)
		}
	}
	if Section("home").Valid() {
		t.Error("Section(home).Valid() = true, expected false")
	}
}

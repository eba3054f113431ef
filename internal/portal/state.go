package portal

import "github.com/Soumo04/TalentNest/pkg/models"

// Section identifies one of the page's navigable sections
type Section string

const (
	SectionJobs   Section = "jobs"
	SectionApply  Section = "apply"
	SectionStatus Section = "status"
	SectionAdmin  Section = "admin"
)

// Sections lists the page sections in display order
func Sections() []Section {
	return []Section{SectionJobs, SectionApply, SectionStatus, SectionAdmin}
}

// Valid reports whether s is a known section
func (s Section) Valid() bool {
	for _, known := range Sections() {
		if s == known {
			return true
		}
	}
	return false
}

// JobsPhase is the display state of the job list
type JobsPhase int

const (
	JobsLoading JobsPhase = iota
	JobsLoaded
	JobsEmpty
	JobsFailed
)

func (p JobsPhase) String() string {
	switch p {
	case JobsLoading:
		return "loading"
	case JobsLoaded:
		return "loaded"
	case JobsEmpty:
		return "empty"
	case JobsFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Option is one entry of the job selector
type Option struct {
	Value string
	Label string
}

// JobsPanel holds the job cards and the selector options derived from them
type JobsPanel struct {
	Phase    JobsPhase
	Postings []models.JobPosting
	Options  []Option
	Message  string // placeholder text for the empty and failed phases
	Hint     string // diagnostic line naming the API endpoint when failed
	InFlight bool
}

// ApplicationForm is the application form and its confirmation panel
type ApplicationForm struct {
	Input          models.ApplicationInput
	Hidden         bool
	ConfirmationID string // set while the confirmation panel is shown
	Submitting     bool
}

// StatusPhase is the display state of the status lookup result area
type StatusPhase int

const (
	StatusHidden StatusPhase = iota
	StatusLoading
	StatusFound
	StatusNotFound
)

func (p StatusPhase) String() string {
	switch p {
	case StatusHidden:
		return "hidden"
	case StatusLoading:
		return "loading"
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

// Badge is a status label plus the style class derived from it
type Badge struct {
	Label string
	Class string
}

// StatusDetails is a rendered application record
type StatusDetails struct {
	ApplicationID string
	CandidateName string
	Email         string
	JobTitle      string
	AppliedOn     string
	Badge         Badge
	ResumeLink    string // empty means no resume row
}

// StatusPanel is the status lookup form's result area
type StatusPanel struct {
	Phase    StatusPhase
	Query    string
	Message  string
	Details  *StatusDetails
	InFlight bool
}

// AdminResult is the inline panel shown after a status update attempt
type AdminResult struct {
	Success bool
	Title   string
	Message string
}

// AdminPanel is the administrative status update form
type AdminPanel struct {
	ApplicationID string
	NewStatus     string
	Result        *AdminResult
	Updating      bool
}

// State is the complete UI state handed to a View on every render
type State struct {
	Jobs   JobsPanel
	Form   ApplicationForm
	Status StatusPanel
	Admin  AdminPanel
	Toast  *Toast
	Active Section
}

// clone returns a copy that shares no memory with s
func (s State) clone() State {
	out := s
	if s.Jobs.Postings != nil {
		out.Jobs.Postings = append([]models.JobPosting(nil), s.Jobs.Postings...)
	}
	if s.Jobs.Options != nil {
		out.Jobs.Options = append([]Option(nil), s.Jobs.Options...)
	}
	if s.Status.Details != nil {
		d := *s.Status.Details
		out.Status.Details = &d
	}
	if s.Admin.Result != nil {
		r := *s.Admin.Result
		out.Admin.Result = &r
	}
	if s.Toast != nil {
		t := *s.Toast
		out.Toast = &t
	}
	return out
}

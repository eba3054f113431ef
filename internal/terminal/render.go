package terminal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Soumo04/TalentNest/internal/portal"
)

var sectionHeadings = map[portal.Section]string{
	portal.SectionJobs:   "Open Positions",
	portal.SectionApply:  "Apply for a Position",
	portal.SectionStatus: "Check Application Status",
	portal.SectionAdmin:  "Update Application Status",
}

// SectionTitle is the nav label for a section
func SectionTitle(s portal.Section) string {
	return cases.Title(language.English).String(string(s))
}

// RenderNav draws the nav bar with the active section highlighted
func RenderNav(active portal.Section) string {
	items := make([]string, 0, len(portal.Sections()))
	for i, s := range portal.Sections() {
		label := fmt.Sprintf("%d %s", i+1, SectionTitle(s))
		if s == active {
			items = append(items, activeNavStyle.Render(label))
		} else {
			items = append(items, navStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

// RenderSection draws one page section from state
func RenderSection(section portal.Section, s portal.State) string {
	var body string
	switch section {
	case portal.SectionJobs:
		body = renderJobs(s.Jobs)
	case portal.SectionApply:
		body = renderApply(s.Form, s.Jobs.Options)
	case portal.SectionStatus:
		body = renderStatus(s.Status)
	case portal.SectionAdmin:
		body = renderAdmin(s.Admin)
	}
	return titleStyle.Render(sectionHeadings[section]) + "\n" + body
}

// RenderToast draws the notification line, or "" when there is none
func RenderToast(t *portal.Toast) string {
	if t == nil {
		return ""
	}
	line := t.Icon() + " " + t.Message
	if t.Kind == portal.ToastSuccess {
		return successStyle.Render(line)
	}
	return dangerStyle.Render(line)
}

func renderJobs(p portal.JobsPanel) string {
	switch p.Phase {
	case portal.JobsLoading, portal.JobsEmpty:
		return mutedStyle.Render(p.Message)
	case portal.JobsFailed:
		return dangerStyle.Render("⚠️ "+p.Message) + "\n" + mutedStyle.Render(p.Hint)
	}

	cards := make([]string, 0, len(p.Postings))
	for i, job := range p.Postings {
		var b strings.Builder
		b.WriteString(activeBadgeStyle.Render("Active"))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(job.Title))
		b.WriteString("\n")
		b.WriteString(valueStyle.Render(job.Description))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("📍 " + job.Location))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("[a %d] Apply Now →", i+1))
		cards = append(cards, cardStyle.Render(b.String()))
	}
	return strings.Join(cards, "\n")
}

func renderApply(f portal.ApplicationForm, options []portal.Option) string {
	if f.Hidden {
		lines := []string{
			successStyle.Render("✓ Application Submitted!"),
			fmt.Sprintf("%s %s", labelStyle.Render("Your Application ID:"), f.ConfirmationID),
			mutedStyle.Render("Save this ID to check your application status."),
		}
		return successPanelStyle.Render(strings.Join(lines, "\n"))
	}

	lines := []string{
		field("Position:", selectedLabel(f.Input.JobID, options)),
		field("Full Name:", f.Input.Name),
		field("Email:", f.Input.Email),
		field("Resume Link:", f.Input.ResumeLink),
	}
	if f.Submitting {
		lines = append(lines, mutedStyle.Render("Submitting..."))
	}
	return strings.Join(lines, "\n")
}

func renderStatus(p portal.StatusPanel) string {
	switch p.Phase {
	case portal.StatusHidden:
		return mutedStyle.Render("Enter your application ID to see where it stands.")
	case portal.StatusLoading:
		return mutedStyle.Render("⏳ " + p.Message)
	case portal.StatusNotFound:
		return dangerStyle.Render("⚠️ " + p.Message)
	}

	d := p.Details
	if d == nil {
		return ""
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		labelStyle.Render("Application Status")+"  ",
		badgeStyle(d.Badge.Class).Render(d.Badge.Label),
	)
	lines := []string{
		header,
		mutedStyle.Render("ID: " + d.ApplicationID),
		field("Candidate Name:", d.CandidateName),
		field("Email:", d.Email),
		field("Job Title:", d.JobTitle),
		field("Applied On:", d.AppliedOn),
	}
	if d.ResumeLink != "" {
		lines = append(lines, field("Resume:", "View Resume ("+d.ResumeLink+")"))
	}
	return strings.Join(lines, "\n")
}

func renderAdmin(p portal.AdminPanel) string {
	lines := []string{
		field("Application ID:", p.ApplicationID),
		field("New Status:", p.NewStatus),
	}
	if p.Updating {
		lines = append(lines, mutedStyle.Render("Updating..."))
	}
	if r := p.Result; r != nil {
		if r.Success {
			lines = append(lines, successPanelStyle.Render("✓ "+r.Title+"\n"+r.Message))
		} else {
			lines = append(lines, errorPanelStyle.Render("✕ "+r.Title+"\n"+r.Message))
		}
	}
	return strings.Join(lines, "\n")
}

func field(label, value string) string {
	if value == "" {
		value = mutedStyle.Render("—")
	}
	return fmt.Sprintf("%s %s", labelStyle.Render(label), valueStyle.Render(value))
}

func selectedLabel(jobID string, options []portal.Option) string {
	for _, o := range options {
		if o.Value == jobID {
			return o.Label
		}
	}
	return jobID
}

package models

import "encoding/json"

// JobPosting represents an open position as returned by GET /jobs
type JobPosting struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// ApplicationInput is the body of POST /applications
type ApplicationInput struct {
	JobID      string `json:"jobId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ResumeLink string `json:"resumeLink"`
}

// ApplicationRecord is the read view of a submitted application.
// Status is an opaque label owned by the service (Pending, Reviewed, ...).
type ApplicationRecord struct {
	ID            string `json:"id"`
	CandidateName string `json:"candidateName"`
	Email         string `json:"email"`
	JobTitle      string `json:"jobTitle,omitempty"`
	AppliedAt     string `json:"appliedAt"`
	Status        string `json:"status"`
	ResumeLink    string `json:"resumeLink,omitempty"`
}

// UnmarshalJSON accepts the alternate field names the service may use:
// applicationId for id, name for candidateName and createdAt for appliedAt.
func (r *ApplicationRecord) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID            string `json:"id"`
		ApplicationID string `json:"applicationId"`
		CandidateName string `json:"candidateName"`
		Name          string `json:"name"`
		Email         string `json:"email"`
		JobTitle      string `json:"jobTitle"`
		AppliedAt     string `json:"appliedAt"`
		CreatedAt     string `json:"createdAt"`
		Status        string `json:"status"`
		ResumeLink    string `json:"resumeLink"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = ApplicationRecord{
		ID:            firstNonEmpty(raw.ID, raw.ApplicationID),
		CandidateName: firstNonEmpty(raw.CandidateName, raw.Name),
		Email:         raw.Email,
		JobTitle:      raw.JobTitle,
		AppliedAt:     firstNonEmpty(raw.AppliedAt, raw.CreatedAt),
		Status:        raw.Status,
		ResumeLink:    raw.ResumeLink,
	}
	return nil
}

// SubmissionReceipt is the body returned by POST /applications
type SubmissionReceipt struct {
	ApplicationID string `json:"applicationId"`
	ID            string `json:"id"`
	Message       string `json:"message"`
}

// Identifier returns applicationId, falling back to id
func (s SubmissionReceipt) Identifier() string {
	return firstNonEmpty(s.ApplicationID, s.ID)
}

// StatusUpdate is the body of PATCH /applications/{id}/status
type StatusUpdate struct {
	Status string `json:"status"`
}

// Ack is the message-only body the service returns for writes and errors
type Ack struct {
	Message string `json:"message"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

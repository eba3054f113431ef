package portal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/Soumo04/TalentNest/internal/api"
	"github.com/Soumo04/TalentNest/pkg/models"
)

const (
	// FormResetDelay is how long the confirmation panel stays up
	FormResetDelay = 5 * time.Second
	// AdminResetDelay is how long a successful update panel stays up
	AdminResetDelay = 3 * time.Second
)

// User-facing copy
const (
	msgLoadingJobs      = "Loading open positions..."
	msgNoJobs           = "No active positions available at the moment."
	msgJobsFailed       = "Unable to load jobs. Please check your API connection."
	msgBackendHint      = "Make sure your backend is running at: %s"
	msgChoosePosition   = "Choose a position..."
	msgReadyToApply     = "Ready to apply for %s!"
	msgSelectPosition   = "Please select a position"
	msgSubmitted        = "Application submitted successfully!"
	msgSubmitFailed     = "Failed to submit application. Please try again."
	msgEnterID          = "Please enter an application ID"
	msgFetchingStatus   = "Fetching your application status..."
	msgStatusRetrieved  = "Status retrieved successfully!"
	msgNotFoundPanel    = "Application not found. Please check your Application ID."
	msgNotFound         = "Application not found"
	msgFillAllFields    = "Please fill in all fields"
	msgUpdatedTitle     = "Status Updated Successfully!"
	msgUpdatedBody      = "Application %s has been updated to %s"
	msgUpdatedToast     = "Status updated successfully!"
	msgUpdateFailed     = "Update Failed"
	msgUpdateFailedBody = "Failed to update status"
)

var errMissingStatus = errors.New("response has no status")

// Backend is the remote API the controller drives
type Backend interface {
	ListJobs(ctx context.Context) ([]models.JobPosting, error)
	SubmitApplication(ctx context.Context, in models.ApplicationInput) (string, error)
	GetApplication(ctx context.Context, id string) (*models.ApplicationRecord, error)
	UpdateStatus(ctx context.Context, id, status string) (string, error)
}

// Options configures a Controller
type Options struct {
	// Endpoint is named in the connectivity error placeholder
	Endpoint  string
	Scheduler Scheduler
	Location  *time.Location
	Logger    *log.Logger
}

// Controller maps user actions and request outcomes onto State and pushes
// every change to its View.
type Controller struct {
	backend   Backend
	view      View
	endpoint  string
	scheduler Scheduler
	location  *time.Location
	logger    *log.Logger
	toasts    *Notifier

	mu       sync.Mutex
	state    State
	formGen  uint64
	adminGen uint64
}

// NewController wires a controller to its backend and view and registers
// its handlers on the view.
func NewController(backend Backend, view View, opts Options) *Controller {
	if opts.Scheduler == nil {
		opts.Scheduler = RealScheduler{}
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}

	c := &Controller{
		backend:   backend,
		view:      view,
		endpoint:  opts.Endpoint,
		scheduler: opts.Scheduler,
		location:  opts.Location,
		logger:    opts.Logger,
		state: State{
			Jobs:   JobsPanel{Phase: JobsLoading, Message: msgLoadingJobs, Options: placeholderOptions()},
			Active: SectionJobs,
		},
	}
	c.toasts = NewNotifier(opts.Scheduler, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.renderLocked()
	})
	view.Bind(c.Handlers())
	return c
}

// Handlers returns the controller's actions as view callbacks
func (c *Controller) Handlers() Handlers {
	return Handlers{
		LoadJobs:          c.LoadJobs,
		ChooseJob:         c.ChooseJob,
		SubmitApplication: c.SubmitApplication,
		CheckStatus:       c.CheckStatus,
		UpdateStatus:      c.UpdateStatus,
		Navigate:          c.Navigate,
		Scrolled:          c.Scrolled,
	}
}

// State returns a snapshot of the current UI state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Render pushes the current state to the view
func (c *Controller) Render() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.renderLocked()
}

// LoadJobs fetches the postings and rebuilds the cards and selector
func (c *Controller) LoadJobs(ctx context.Context) error {
	c.mu.Lock()
	if c.state.Jobs.InFlight {
		c.mu.Unlock()
		c.logger.Printf("load jobs: ignored, request in flight")
		return ErrBusy
	}
	c.state.Jobs.InFlight = true
	c.state.Jobs.Phase = JobsLoading
	c.state.Jobs.Message = msgLoadingJobs
	c.state.Jobs.Hint = ""
	c.renderLocked()
	c.mu.Unlock()

	jobs, err := c.backend.ListJobs(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Jobs.InFlight = false

	if err != nil {
		c.logger.Printf("Error loading jobs: %v", err)
		c.state.Jobs.Phase = JobsFailed
		c.state.Jobs.Postings = nil
		c.state.Jobs.Message = msgJobsFailed
		c.state.Jobs.Hint = fmt.Sprintf(msgBackendHint, c.endpoint)
		c.renderLocked()
		return err
	}

	c.state.Jobs.Options = placeholderOptions()
	if len(jobs) == 0 {
		c.state.Jobs.Phase = JobsEmpty
		c.state.Jobs.Postings = nil
		c.state.Jobs.Message = msgNoJobs
		c.renderLocked()
		return nil
	}

	c.state.Jobs.Phase = JobsLoaded
	c.state.Jobs.Message = ""
	c.state.Jobs.Postings = append([]models.JobPosting(nil), jobs...)
	for _, job := range jobs {
		c.state.Jobs.Options = append(c.state.Jobs.Options, Option{Value: job.ID, Label: job.Title})
	}
	c.renderLocked()
	return nil
}

// ChooseJob is the apply action on a job card: it pre-selects the posting in
// the application form and moves the viewport to the form.
func (c *Controller) ChooseJob(jobID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	job, ok := c.findJobLocked(jobID)
	if !ok {
		return &ValidationError{Field: "jobId", Message: fmt.Sprintf("unknown job %q", jobID)}
	}

	c.state.Form.Input.JobID = job.ID
	c.state.Active = SectionApply
	c.view.ScrollTo(SectionApply)
	c.toasts.Show(ToastSuccess, fmt.Sprintf(msgReadyToApply, job.Title))
	c.renderLocked()
	return nil
}

// SubmitApplication sends the application form. Only the job selection is
// checked locally; the service validates everything else.
func (c *Controller) SubmitApplication(ctx context.Context, in models.ApplicationInput) error {
	c.mu.Lock()
	if c.state.Form.Submitting {
		c.mu.Unlock()
		c.logger.Printf("submit application: ignored, request in flight")
		return ErrBusy
	}
	// a new attempt replaces any confirmation and its pending reset
	c.formGen++
	c.state.Form.Hidden = false
	c.state.Form.ConfirmationID = ""
	c.state.Form.Input = in
	if in.JobID == "" {
		c.toasts.Show(ToastError, msgSelectPosition)
		c.renderLocked()
		c.mu.Unlock()
		return &ValidationError{Field: "jobId", Message: msgSelectPosition}
	}
	c.state.Form.Submitting = true
	c.renderLocked()
	c.mu.Unlock()

	id, err := c.backend.SubmitApplication(ctx, in)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Form.Submitting = false

	if err != nil {
		c.logger.Printf("Error submitting application: %v", err)
		c.toasts.Show(ToastError, messageOr(err, msgSubmitFailed))
		c.renderLocked()
		return err
	}

	c.state.Form.Hidden = true
	c.state.Form.ConfirmationID = id
	c.toasts.Show(ToastSuccess, msgSubmitted)
	c.formGen++
	gen := c.formGen
	c.renderLocked()

	c.scheduler.AfterFunc(FormResetDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.formGen != gen {
			return
		}
		c.state.Form = ApplicationForm{}
		c.renderLocked()
	})
	return nil
}

// CheckStatus looks up an application by ID. Every failure, whatever its
// cause, is shown as not found.
func (c *Controller) CheckStatus(ctx context.Context, applicationID string) error {
	applicationID = strings.TrimSpace(applicationID)

	c.mu.Lock()
	if applicationID == "" {
		c.toasts.Show(ToastError, msgEnterID)
		c.renderLocked()
		c.mu.Unlock()
		return &ValidationError{Field: "applicationId", Message: msgEnterID}
	}
	if c.state.Status.InFlight {
		c.mu.Unlock()
		c.logger.Printf("check status: ignored, request in flight")
		return ErrBusy
	}
	c.state.Status = StatusPanel{
		Phase:    StatusLoading,
		Query:    applicationID,
		Message:  msgFetchingStatus,
		InFlight: true,
	}
	c.renderLocked()
	c.mu.Unlock()

	record, err := c.backend.GetApplication(ctx, applicationID)
	if err == nil && record.Status == "" {
		err = &api.RequestError{Op: "get application", Err: errMissingStatus}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		if api.IsNotFound(err) {
			c.logger.Printf("Application %s not found", applicationID)
		} else {
			c.logger.Printf("Error fetching status: %v", err)
		}
		c.state.Status = StatusPanel{Phase: StatusNotFound, Query: applicationID, Message: msgNotFoundPanel}
		c.toasts.Show(ToastError, msgNotFound)
		c.renderLocked()
		return err
	}

	c.state.Status = StatusPanel{
		Phase:   StatusFound,
		Query:   applicationID,
		Details: NewStatusDetails(record, c.location),
	}
	c.toasts.Show(ToastSuccess, msgStatusRetrieved)
	c.renderLocked()
	return nil
}

// UpdateStatus sets a new status on an application. Authorization is left
// entirely to the service.
func (c *Controller) UpdateStatus(ctx context.Context, applicationID, status string) error {
	applicationID = strings.TrimSpace(applicationID)

	c.mu.Lock()
	if c.state.Admin.Updating {
		c.mu.Unlock()
		c.logger.Printf("update status: ignored, request in flight")
		return ErrBusy
	}
	c.state.Admin.ApplicationID = applicationID
	c.state.Admin.NewStatus = status
	if applicationID == "" || status == "" {
		c.toasts.Show(ToastError, msgFillAllFields)
		c.renderLocked()
		c.mu.Unlock()
		return &ValidationError{Field: "applicationId", Message: msgFillAllFields}
	}
	c.state.Admin.Updating = true
	c.renderLocked()
	c.mu.Unlock()

	_, err := c.backend.UpdateStatus(ctx, applicationID, status)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Admin.Updating = false
	// a pending success reset must not clear whatever is shown next
	c.adminGen++
	gen := c.adminGen

	if err != nil {
		c.logger.Printf("Error updating status: %v", err)
		msg := messageOr(err, msgUpdateFailedBody)
		c.state.Admin.Result = &AdminResult{Title: msgUpdateFailed, Message: msg}
		c.toasts.Show(ToastError, msg)
		c.renderLocked()
		return err
	}

	c.state.Admin.Result = &AdminResult{
		Success: true,
		Title:   msgUpdatedTitle,
		Message: fmt.Sprintf(msgUpdatedBody, applicationID, status),
	}
	c.toasts.Show(ToastSuccess, msgUpdatedToast)
	c.renderLocked()

	c.scheduler.AfterFunc(AdminResetDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.adminGen != gen {
			return
		}
		c.state.Admin = AdminPanel{}
		c.renderLocked()
	})
	return nil
}

// Navigate marks section active and scrolls to it
func (c *Controller) Navigate(section Section) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Active = section
	if section.Valid() {
		c.view.ScrollTo(section)
	}
	c.renderLocked()
}

// Scrolled recomputes the active section from the page offset. It does not
// reconcile with a scroll started by Navigate.
func (c *Controller) Scrolled(offset int, bounds []SectionBounds) {
	c.mu.Lock()
	defer c.mu.Unlock()

	active := ActiveSectionAt(offset, bounds)
	if active == c.state.Active {
		return
	}
	c.state.Active = active
	c.renderLocked()
}

func (c *Controller) findJobLocked(jobID string) (models.JobPosting, bool) {
	for _, job := range c.state.Jobs.Postings {
		if job.ID == jobID {
			return job, true
		}
	}
	return models.JobPosting{}, false
}

func (c *Controller) snapshotLocked() State {
	s := c.state.clone()
	s.Toast = c.toasts.Current()
	return s
}

func (c *Controller) renderLocked() {
	c.view.Render(c.snapshotLocked())
}

func placeholderOptions() []Option {
	return []Option{{Value: "", Label: msgChoosePosition}}
}

func messageOr(err error, fallback string) string {
	if msg := api.ServiceMessage(err); msg != "" {
		return msg
	}
	return fallback
}

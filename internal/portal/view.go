package portal

import (
	"context"

	"github.com/Soumo04/TalentNest/pkg/models"
)

// Handlers are the user actions a View can trigger
type Handlers struct {
	LoadJobs          func(ctx context.Context) error
	ChooseJob         func(jobID string) error
	SubmitApplication func(ctx context.Context, in models.ApplicationInput) error
	CheckStatus       func(ctx context.Context, applicationID string) error
	UpdateStatus      func(ctx context.Context, applicationID, status string) error
	Navigate          func(section Section)
	Scrolled          func(offset int, bounds []SectionBounds)
}

// View renders portal state. Render and ScrollTo are never called
// concurrently with each other, but Render may run on a timer goroutine
// (toast dismissal, form and admin resets). A view that shares its output
// with other writers, such as input prompts, must hold its redraws while
// they write. Neither method may call back into Handlers synchronously.
type View interface {
	Bind(h Handlers)
	Render(s State)
	ScrollTo(section Section)
}

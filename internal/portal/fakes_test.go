package portal

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Soumo04/TalentNest/pkg/models"
)

// MockBackend is a mock implementation of the Backend interface
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) ListJobs(ctx context.Context) ([]models.JobPosting, error) {
	args := m.Called(ctx)
	jobs, _ := args.Get(0).([]models.JobPosting)
	return jobs, args.Error(1)
}

func (m *MockBackend) SubmitApplication(ctx context.Context, in models.ApplicationInput) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}

func (m *MockBackend) GetApplication(ctx context.Context, id string) (*models.ApplicationRecord, error) {
	args := m.Called(ctx, id)
	record, _ := args.Get(0).(*models.ApplicationRecord)
	return record, args.Error(1)
}

func (m *MockBackend) UpdateStatus(ctx context.Context, id, status string) (string, error) {
	args := m.Called(ctx, id, status)
	return args.String(0), args.Error(1)
}

// recordingView keeps every rendered state and scroll target
type recordingView struct {
	mu       sync.Mutex
	handlers Handlers
	renders  []State
	scrolls  []Section
}

func (v *recordingView) Bind(h Handlers) {
	v.handlers = h
}

func (v *recordingView) Render(s State) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.renders = append(v.renders, s)
}

func (v *recordingView) ScrollTo(section Section) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.scrolls = append(v.scrolls, section)
}

func (v *recordingView) last() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.renders) == 0 {
		return State{}
	}
	return v.renders[len(v.renders)-1]
}

func (v *recordingView) renderCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.renders)
}

// manualScheduler holds timers until the test fires them
type manualScheduler struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	delay time.Duration
	fn    func()
	fired bool
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timers = append(s.timers, &manualTimer{delay: d, fn: f})
}

// fire runs every pending timer scheduled with delay d and returns how many ran
func (s *manualScheduler) fire(d time.Duration) int {
	s.mu.Lock()
	var due []*manualTimer
	for _, t := range s.timers {
		if !t.fired && t.delay == d {
			t.fired = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
	return len(due)
}

func (s *manualScheduler) pending(d time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.fired && t.delay == d {
			n++
		}
	}
	return n
}

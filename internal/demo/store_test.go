package demo

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soumo04/TalentNest/pkg/models"
)

// createTestStore opens a seeded store in a temporary directory
func createTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenSeedsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.db")

	s, err := Open(path)
	require.NoError(t, err)
	jobs, err := s.ActiveJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Senior Full Stack Developer", jobs[0].Title)
	assert.Equal(t, "UI/UX Designer", jobs[1].Title)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	jobs, err = s.ActiveJobs(context.Background())
	require.NoError(t, err)
	assert.Len(t, jobs, 2, "reopening must not seed again")
}

func TestActiveJobsSkipsInactive(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddJob(ctx, models.JobPosting{ID: "closed", Title: "Closed"}, false))
	require.NoError(t, s.AddJob(ctx, models.JobPosting{Title: "Fresh"}, true))

	jobs, err := s.ActiveJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "Fresh", jobs[2].Title)
	assert.NotEmpty(t, jobs[2].ID)
}

func TestCreateAndGetApplication(t *testing.T) {
	s := createTestStore(t)
	s.now = func() time.Time { return time.Date(2026, 10, 19, 14, 5, 0, 0, time.UTC) }
	ctx := context.Background()

	id, err := s.CreateApplication(ctx, models.ApplicationInput{
		JobID: "2", Name: " Ada ", Email: "ada@example.com", ResumeLink: "https://cv.example.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	rec, err := s.GetApplication(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "Ada", rec.CandidateName)
	assert.Equal(t, "UI/UX Designer", rec.JobTitle)
	assert.Equal(t, "2026-10-19T14:05:00Z", rec.AppliedAt)
	assert.Equal(t, DefaultStatus, rec.Status)
	assert.Equal(t, "https://cv.example.com", rec.ResumeLink)
}

func TestCreateApplicationRejects(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.AddJob(ctx, models.JobPosting{ID: "old", Title: "Old"}, false))

	tests := []struct {
		name string
		in   models.ApplicationInput
		want error
	}{
		{"missing name", models.ApplicationInput{JobID: "1", Email: "a@b.c"}, ErrInvalidRequest},
		{"bad email", models.ApplicationInput{JobID: "1", Name: "A", Email: "nope"}, ErrInvalidRequest},
		{"unknown job", models.ApplicationInput{JobID: "404", Name: "A", Email: "a@b.c"}, ErrJobNotFound},
		{"inactive job", models.ApplicationInput{JobID: "old", Name: "A", Email: "a@b.c"}, ErrJobNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateApplication(ctx, tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	id, err := s.CreateApplication(ctx, models.ApplicationInput{JobID: "1", Name: "A", Email: "a@b.c"})
	require.NoError(t, err)

	require.NoError(t, s.UpdateStatus(ctx, id, "Accepted"))
	rec, err := s.GetApplication(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Accepted", rec.Status)

	assert.ErrorIs(t, s.UpdateStatus(ctx, id, "accepted"), ErrInvalidStatus)
	assert.ErrorIs(t, s.UpdateStatus(ctx, "missing", "Reviewed"), ErrNotFound)

	_, err = s.GetApplication(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestForeignKeyConstraint(t *testing.T) {
	s := createTestStore(t)

	_, err := s.db.Exec(`INSERT INTO applications (id, job_id, name, email, applied_at) VALUES ('x', '99999', 'n', 'e@x', '')`)
	assert.Error(t, err, "foreign keys must be enforced")
}

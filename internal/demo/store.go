package demo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Soumo04/TalentNest/pkg/models"
)

// Statuses are the labels an application may be moved to
var Statuses = []string{"Pending", "Reviewed", "Rejected", "Accepted"}

// DefaultStatus is assigned to every new application
const DefaultStatus = "Pending"

// seedJobs are loaded into an empty database so the portal has something to show
var seedJobs = []models.JobPosting{
	{
		ID:          "1",
		Title:       "Senior Full Stack Developer",
		Description: "We are looking for an experienced Full Stack Developer to join our innovative team. You will work on cutting-edge web applications using modern technologies.",
		Location:    "San Francisco, CA (Remote)",
	},
	{
		ID:          "2",
		Title:       "UI/UX Designer",
		Description: "Join our design team to create beautiful and intuitive user experiences. Experience with Figma and user research is preferred.",
		Location:    "New York, NY (Hybrid)",
	},
}

// Store is the SQLite backing store of the demo API
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates and opens the SQLite database at path, seeding it when empty
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.seed(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}
	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// runMigrations creates all necessary tables
func runMigrations(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS jobs (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		location TEXT,
		is_active BOOLEAN DEFAULT 1,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS applications (
		id TEXT PRIMARY KEY,
		job_id TEXT NOT NULL,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		resume_link TEXT,
		status TEXT DEFAULT 'Pending',
		applied_at TEXT NOT NULL,
		FOREIGN KEY (job_id) REFERENCES jobs(id) ON DELETE CASCADE,
		CHECK(status IN ('Pending', 'Reviewed', 'Rejected', 'Accepted'))
	);

	CREATE INDEX IF NOT EXISTS idx_applications_job_id ON applications(job_id);
	`

	_, err := db.Exec(schema)
	return err
}

func (s *Store) seed(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, job := range seedJobs {
		if err := s.AddJob(ctx, job, true); err != nil {
			return err
		}
	}
	return nil
}

// Job operations

// AddJob inserts a posting; an empty ID gets a generated one
func (s *Store) AddJob(ctx context.Context, job models.JobPosting, active bool) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	query := `INSERT INTO jobs (id, title, description, location, is_active) VALUES (?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query, job.ID, job.Title, job.Description, job.Location, active)
	return err
}

// ActiveJobs lists the active postings in insertion order
func (s *Store) ActiveJobs(ctx context.Context) ([]models.JobPosting, error) {
	query := `SELECT id, title, description, location FROM jobs WHERE is_active=1 ORDER BY rowid`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []models.JobPosting{}
	for rows.Next() {
		var job models.JobPosting
		var description, location sql.NullString
		if err := rows.Scan(&job.ID, &job.Title, &description, &location); err != nil {
			return nil, err
		}
		job.Description = description.String
		job.Location = location.String
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// Application operations

// CreateApplication validates and stores a submission, returning its ID
func (s *Store) CreateApplication(ctx context.Context, in models.ApplicationInput) (string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	switch {
	case in.Name == "":
		return "", fmt.Errorf("%w: name is required", ErrInvalidRequest)
	case !strings.Contains(in.Email, "@"):
		return "", fmt.Errorf("%w: a valid email is required", ErrInvalidRequest)
	}

	var active bool
	err := s.db.QueryRowContext(ctx, `SELECT is_active FROM jobs WHERE id=?`, in.JobID).Scan(&active)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !active) {
		return "", ErrJobNotFound
	}
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	query := `INSERT INTO applications (id, job_id, name, email, resume_link, status, applied_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = s.db.ExecContext(ctx, query, id, in.JobID, in.Name, in.Email,
		strings.TrimSpace(in.ResumeLink), DefaultStatus, s.now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", err
	}
	return id, nil
}

// GetApplication returns the read view of an application
func (s *Store) GetApplication(ctx context.Context, id string) (*models.ApplicationRecord, error) {
	query := `SELECT a.id, a.name, a.email, j.title, a.applied_at, a.status, a.resume_link
			  FROM applications a LEFT JOIN jobs j ON j.id = a.job_id WHERE a.id=?`
	rec := &models.ApplicationRecord{}
	var title, resume sql.NullString
	err := s.db.QueryRowContext(ctx, query, id).Scan(&rec.ID, &rec.CandidateName, &rec.Email,
		&title, &rec.AppliedAt, &rec.Status, &resume)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	rec.JobTitle = title.String
	rec.ResumeLink = resume.String
	return rec, nil
}

// UpdateStatus moves an application to one of Statuses
func (s *Store) UpdateStatus(ctx context.Context, id, status string) error {
	if !slices.Contains(Statuses, status) {
		return fmt.Errorf("%w: must be one of %s", ErrInvalidStatus, strings.Join(Statuses, ", "))
	}
	result, err := s.db.ExecContext(ctx, `UPDATE applications SET status=? WHERE id=?`, status, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

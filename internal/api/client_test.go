package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soumo04/TalentNest/pkg/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL+"/api/", server.Client(), nil)
}

func TestListJobs(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/jobs", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":"2","title":"Designer","description":"UI","location":"NYC"},
			{"id":"1","title":"Engineer","description":"Go","location":"Remote"}]`)
	})

	jobs, err := client.ListJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "2", jobs[0].ID)
	assert.Equal(t, "Engineer", jobs[1].Title)
}

func TestListJobsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[]`)
	})

	jobs, err := client.ListJobs(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
}

func TestListJobsServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.ListJobs(context.Background())
	var re *RequestError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, http.StatusInternalServerError, re.StatusCode)
	assert.Equal(t, "list jobs: HTTP 500", err.Error())
}

func TestTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client := NewClient(baseURL, nil, nil)
	_, err := client.ListJobs(context.Background())

	var re *RequestError
	require.ErrorAs(t, err, &re)
	assert.Zero(t, re.StatusCode)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestSubmitApplication(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expected string
	}{
		{"applicationId field", `{"applicationId":"A1"}`, "A1"},
		{"id fallback", `{"id":"B2"}`, "B2"},
		{"applicationId wins", `{"applicationId":"A1","id":"B2"}`, "A1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/applications", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.Empty(t, r.Header.Get("Authorization"))

				var in models.ApplicationInput
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
				assert.Equal(t, models.ApplicationInput{
					JobID: "1", Name: "Ada", Email: "ada@example.com", ResumeLink: "https://cv.example.com",
				}, in)

				w.WriteHeader(http.StatusCreated)
				io.WriteString(w, tt.response)
			})

			id, err := client.SubmitApplication(context.Background(), models.ApplicationInput{
				JobID: "1", Name: "Ada", Email: "ada@example.com", ResumeLink: "https://cv.example.com",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestSubmitApplicationServiceMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"message":"Invalid email address"}`)
	})

	_, err := client.SubmitApplication(context.Background(), models.ApplicationInput{JobID: "1"})
	require.Error(t, err)
	assert.Equal(t, "Invalid email address", err.Error())
	assert.Equal(t, "Invalid email address", ServiceMessage(err))
}

func TestGetApplicationAlternateFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/applications/A%2F1", r.URL.EscapedPath())
		io.WriteString(w, `{"applicationId":"A/1","name":"Ada","email":"ada@example.com",
			"createdAt":"2026-10-19T14:05:00Z","status":"Reviewed"}`)
	})

	record, err := client.GetApplication(context.Background(), "A/1")
	require.NoError(t, err)
	assert.Equal(t, "A/1", record.ID)
	assert.Equal(t, "Ada", record.CandidateName)
	assert.Equal(t, "2026-10-19T14:05:00Z", record.AppliedAt)
	assert.Equal(t, "Reviewed", record.Status)
	assert.Empty(t, record.JobTitle)
	assert.Empty(t, record.ResumeLink)
}

func TestGetApplicationNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"message":"Application not found"}`)
	})

	_, err := client.GetApplication(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestGetApplicationMalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<html>oops</html>`)
	})

	_, err := client.GetApplication(context.Background(), "A1")
	var re *RequestError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, http.StatusOK, re.StatusCode)
	assert.False(t, IsNotFound(err))
}

func TestUpdateStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/applications/A1/status", r.URL.Path)

		var body models.StatusUpdate
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Accepted", body.Status)
		io.WriteString(w, `{"message":"Status updated"}`)
	})

	msg, err := client.UpdateStatus(context.Background(), "A1", "Accepted")
	require.NoError(t, err)
	assert.Equal(t, "Status updated", msg)
}

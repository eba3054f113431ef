package demo

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Soumo04/TalentNest/pkg/models"
)

// Server exposes a Store over the jobs/applications REST API
type Server struct {
	store  *Store
	logger *log.Logger
	router *gin.Engine
}

// NewServer builds the router. Request logs go to logOut when it is non-nil.
func NewServer(store *Store, logger *log.Logger, logOut io.Writer) *Server {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	r := gin.New()
	if logOut != nil {
		r.Use(gin.LoggerWithWriter(logOut))
	}
	r.Use(gin.Recovery())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PATCH", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept"}
	r.Use(cors.New(config))

	s := &Server{store: store, logger: logger, router: r}

	api := r.Group("/api")
	{
		api.GET("/jobs", s.listJobs)
		api.POST("/applications", s.createApplication)
		api.GET("/applications/:id", s.getApplication)
		api.PATCH("/applications/:id/status", s.updateStatus)
	}
	return s
}

// Handler returns the HTTP handler of the API
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) listJobs(c *gin.Context) {
	jobs, err := s.store.ActiveJobs(c.Request.Context())
	if err != nil {
		s.fail(c, "list jobs", err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (s *Server) createApplication(c *gin.Context) {
	var in models.ApplicationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, models.Ack{Message: "Invalid JSON format: " + err.Error()})
		return
	}

	id, err := s.store.CreateApplication(c.Request.Context(), in)
	switch {
	case errors.Is(err, ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, models.Ack{Message: err.Error()})
		return
	case errors.Is(err, ErrJobNotFound):
		c.JSON(http.StatusNotFound, models.Ack{Message: "Job not found or no longer active"})
		return
	case err != nil:
		s.fail(c, "create application", err)
		return
	}

	c.JSON(http.StatusCreated, models.SubmissionReceipt{
		ApplicationID: id,
		Message:       "Application submitted successfully",
	})
}

func (s *Server) getApplication(c *gin.Context) {
	rec, err := s.store.GetApplication(c.Request.Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, models.Ack{Message: "Application not found"})
		return
	}
	if err != nil {
		s.fail(c, "get application", err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) updateStatus(c *gin.Context) {
	var body models.StatusUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, models.Ack{Message: "Invalid JSON format: " + err.Error()})
		return
	}

	err := s.store.UpdateStatus(c.Request.Context(), c.Param("id"), body.Status)
	switch {
	case errors.Is(err, ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, models.Ack{Message: err.Error()})
		return
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, models.Ack{Message: "Application not found"})
		return
	case err != nil:
		s.fail(c, "update status", err)
		return
	}

	c.JSON(http.StatusOK, models.Ack{Message: "Status updated successfully"})
}

func (s *Server) fail(c *gin.Context, op string, err error) {
	s.logger.Printf("%s: %v", op, err)
	c.JSON(http.StatusInternalServerError, models.Ack{Message: "Internal server error"})
}

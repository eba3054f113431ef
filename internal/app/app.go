package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Soumo04/TalentNest/internal/api"
	"github.com/Soumo04/TalentNest/internal/config"
	"github.com/Soumo04/TalentNest/internal/portal"
)

// App is the dependency container for the CLI application
type App struct {
	Config     *config.Config
	HTTPClient *http.Client
	API        *api.Client
	Location   *time.Location
	Logger     *log.Logger
}

// NewApp initializes and returns a new App instance. A non-empty baseURL
// overrides the configured API base URL.
func NewApp(ctx context.Context, baseURL string) (*App, error) {
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	return New(config.AppConfig, baseURL)
}

// New builds an App from an already loaded configuration
func New(cfg *config.Config, baseURL string) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config: %w", ErrNotInitialized)
	}

	if baseURL == "" {
		baseURL = cfg.APIBaseURL
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("api base url is empty: %w", ErrInvalidArgument)
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	logger := log.New(os.Stderr, "careerportal: ", log.LstdFlags)

	// request_timeout of zero leaves cancellation to the caller's context
	httpClient := &http.Client{
		Timeout: cfg.RequestTimeout,
	}

	return &App{
		Config:     cfg,
		HTTPClient: httpClient,
		API:        api.NewClient(baseURL, httpClient, logger),
		Location:   loc,
		Logger:     logger,
	}, nil
}

// Portal creates a controller bound to the app's API client and view
func (a *App) Portal(view portal.View) *portal.Controller {
	return portal.NewController(a.API, view, portal.Options{
		Endpoint:  a.API.BaseURL(),
		Scheduler: portal.RealScheduler{},
		Location:  a.Location,
		Logger:    a.Logger,
	})
}

// Close releases app resources
func (a *App) Close() error {
	if a.HTTPClient != nil {
		a.HTTPClient.CloseIdleConnections()
	}
	return nil
}

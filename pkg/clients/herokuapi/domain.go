package herokuapi

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUnauthorized is returned when the platform rejects the access token
	ErrUnauthorized = errors.New("platform api rejected the access token")

	// ErrNotFound is returned when the requested app doesn't exist or isn't visible to the token
	ErrNotFound = errors.New("platform api resource not found")

	// ErrTimeout is returned when the platform api doesn't answer within the configured bound
	ErrTimeout = errors.New("platform api request timed out")
)

// StatusError carries an unexpected status code and the start of the response body
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("platform api responded with status code %v: %v", e.StatusCode, e.Body)
}

// Token is an oauth access and refresh token pair
type Token struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
}

type App struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	WebURL string `json:"web_url"`
}

// AppSetupRequest creates an app from a source tarball in a single call
type AppSetupRequest struct {
	App        AppSetupApp       `json:"app"`
	SourceBlob AppSetupSource    `json:"source_blob"`
	Overrides  AppSetupOverrides `json:"overrides"`
}

type AppSetupApp struct {
	Region string `json:"region,omitempty"`
	Stack  string `json:"stack,omitempty"`
}

type AppSetupSource struct {
	URL string `json:"url"`
}

type AppSetupOverrides struct {
	Env map[string]string `json:"env,omitempty"`
}

type appSetupResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	App    App    `json:"app"`
}

type Dyno struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	State string `json:"state"`
}

// IsUp returns true once the dyno is running
func (d Dyno) IsUp() bool {
	return d.State == "up"
}

type formationRequest struct {
	Updates []formationUpdate `json:"updates"`
}

type formationUpdate struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

package heroku

import (
	"context"
	"time"

	"github.com/albumlist/albumlist-relay/pkg/api"
	"github.com/albumlist/albumlist-relay/pkg/clients/database"
	"github.com/albumlist/albumlist-relay/pkg/clients/herokuapi"
	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	ErrMissingPlatformToken = errors.New("The team hasn't authorized platform access")
	ErrNotManaged           = errors.New("The albumlist is not a platform managed app")
	ErrInvalidState         = errors.New("The oauth state is invalid or expired")
)

// Readiness is the outcome of checking a managed albumlist
type Readiness int

const (
	// ReadinessFailed means the platform couldn't be asked or refused; the admin retries manually
	ReadinessFailed Readiness = iota
	// ReadinessInProgress means the app exists but not all dynos are up yet
	ReadinessInProgress
	// ReadinessReady means all dynos are up and the mapping points at the app's url
	ReadinessReady
)

func (r Readiness) String() string {
	switch r {
	case ReadinessReady:
		return "ready"
	case ReadinessInProgress:
		return "in progress"
	}
	return "failed"
}

const workerProcessType = "worker"

// Service manages the lifecycle of platform hosted albumlists
//
//go:generate mockgen -package=heroku -destination ./mock.go -source=service.go
type Service interface {
	AuthCodeURL(ctx context.Context, teamID string) (authURL string, err error)
	CompleteAuthorization(ctx context.Context, code, state string) (teamID string, err error)
	IsManaged(ctx context.Context, mapping *database.TeamMapping) (isManaged bool, err error)
	CreateApp(ctx context.Context, mapping *database.TeamMapping) (appName string, err error)
	CheckReadiness(ctx context.Context, mapping *database.TeamMapping) (readiness Readiness, err error)
	GetConfigVar(ctx context.Context, mapping *database.TeamMapping, key string) (value string, err error)
	SetConfigVars(ctx context.Context, mapping *database.TeamMapping, configVars map[string]string) (err error)
	Scale(ctx context.Context, mapping *database.TeamMapping, quantity int) (err error)
}

// NewService returns a heroku.Service
func NewService(config *api.APIConfig, herokuapiClient herokuapi.Client, databaseClient database.Client) Service {
	return &service{
		config:          config,
		herokuapiClient: herokuapiClient,
		databaseClient:  databaseClient,
	}
}

type service struct {
	config          *api.APIConfig
	herokuapiClient herokuapi.Client
	databaseClient  database.Client
}

type stateClaims struct {
	TeamID string `json:"team"`
	jwt.RegisteredClaims
}

// AuthCodeURL returns the platform authorization url with a signed, expiring state naming the team
func (s *service) AuthCodeURL(ctx context.Context, teamID string) (authURL string, err error) {
	now := time.Now().UTC()
	claims := stateClaims{
		TeamID: teamID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Integrations.Heroku.StateTTL())),
		},
	}

	state, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.APIServer.CSRFSeed))
	if err != nil {
		return "", err
	}

	return s.config.Integrations.Heroku.GetOAuthConfig().AuthCodeURL(state), nil
}

// CompleteAuthorization verifies the state, exchanges the code and stores the token pair for the team
func (s *service) CompleteAuthorization(ctx context.Context, code, state string) (teamID string, err error) {
	teamID, err = s.parseState(state)
	if err != nil {
		return "", err
	}

	log.Info().Str("team", teamID).Msg("Retrieving platform token...")

	token, err := s.herokuapiClient.ExchangeCode(ctx, code)
	if err != nil {
		return teamID, err
	}

	err = s.databaseClient.UpdatePlatformTokens(ctx, teamID, token.AccessToken, token.RefreshToken)
	if err != nil {
		return teamID, err
	}

	log.Info().Str("team", teamID).Msg("Stored platform token")

	return teamID, nil
}

// IsManaged returns true if the team's target is an app the team's platform token can see
func (s *service) IsManaged(ctx context.Context, mapping *database.TeamMapping) (isManaged bool, err error) {
	if !mapping.HasPlatformToken() || !mapping.HasTarget() {
		return false, nil
	}

	appName := api.AppName(mapping.Target)
	if appName == "" {
		return false, nil
	}

	log.Debug().Str("team", mapping.TeamID).Str("app", appName).Msg("Checking if albumlist is managed...")

	err = s.withToken(ctx, mapping, func(accessToken string) (err error) {
		_, err = s.herokuapiClient.GetApp(ctx, accessToken, appName)
		return
	})
	if errors.Is(err, herokuapi.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// CreateApp sets up a new albumlist app and maps the team to it by name until it's ready
func (s *service) CreateApp(ctx context.Context, mapping *database.TeamMapping) (appName string, err error) {
	if !mapping.HasPlatformToken() {
		return "", ErrMissingPlatformToken
	}

	log.Info().Str("team", mapping.TeamID).Msg("Creating a new albumlist...")

	herokuConfig := s.config.Integrations.Heroku
	setup := herokuapi.AppSetupRequest{
		App: herokuapi.AppSetupApp{
			Region: herokuConfig.Region,
			Stack:  herokuConfig.Stack,
		},
		SourceBlob: herokuapi.AppSetupSource{
			URL: herokuConfig.SourceTarballURL(),
		},
		Overrides: herokuapi.AppSetupOverrides{
			Env: s.appEnv(mapping),
		},
	}

	var app *herokuapi.App
	err = s.withToken(ctx, mapping, func(accessToken string) (err error) {
		app, err = s.herokuapiClient.CreateAppSetup(ctx, accessToken, setup)
		return
	})
	if err != nil {
		return "", err
	}

	err = s.databaseClient.UpdateTarget(ctx, mapping.TeamID, api.ManagedTarget(app.Name))
	if err != nil {
		return app.Name, err
	}
	mapping.Target = api.ManagedTarget(app.Name)

	log.Info().Str("team", mapping.TeamID).Str("app", app.Name).Msg("Created albumlist")

	return app.Name, nil
}

// CheckReadiness switches the mapping to the app's url once every dyno is up
func (s *service) CheckReadiness(ctx context.Context, mapping *database.TeamMapping) (readiness Readiness, err error) {
	managedTarget, ok := mapping.Target.(api.ManagedTarget)
	if !ok {
		return ReadinessFailed, ErrNotManaged
	}
	if !mapping.HasPlatformToken() {
		return ReadinessFailed, ErrMissingPlatformToken
	}

	isManaged, err := s.IsManaged(ctx, mapping)
	if err != nil {
		return ReadinessFailed, err
	}
	if !isManaged {
		return ReadinessFailed, ErrNotManaged
	}

	appName := string(managedTarget)

	var dynos []herokuapi.Dyno
	err = s.withToken(ctx, mapping, func(accessToken string) (err error) {
		dynos, err = s.herokuapiClient.GetDynos(ctx, accessToken, appName)
		return
	})
	if err != nil {
		return ReadinessFailed, err
	}

	if !allUp(dynos) {
		log.Info().Str("team", mapping.TeamID).Str("app", appName).Int("dynos", len(dynos)).Msg("Albumlist is not up yet")
		return ReadinessInProgress, nil
	}

	appURL := managedTarget.URL()
	err = s.databaseClient.UpdateTarget(ctx, mapping.TeamID, appURL)
	if err != nil {
		return ReadinessFailed, err
	}
	mapping.Target = appURL

	log.Info().Str("team", mapping.TeamID).Str("target", appURL.String()).Msg("Albumlist is ready")

	return ReadinessReady, nil
}

func (s *service) GetConfigVar(ctx context.Context, mapping *database.TeamMapping, key string) (value string, err error) {
	appName, err := s.managedAppName(ctx, mapping)
	if err != nil {
		return "", err
	}

	var configVars map[string]string
	err = s.withToken(ctx, mapping, func(accessToken string) (err error) {
		configVars, err = s.herokuapiClient.GetConfigVars(ctx, accessToken, appName)
		return
	})
	if err != nil {
		return "", err
	}

	return configVars[key], nil
}

func (s *service) SetConfigVars(ctx context.Context, mapping *database.TeamMapping, configVars map[string]string) (err error) {
	appName, err := s.managedAppName(ctx, mapping)
	if err != nil {
		return err
	}

	return s.withToken(ctx, mapping, func(accessToken string) error {
		return s.herokuapiClient.UpdateConfigVars(ctx, accessToken, appName, configVars)
	})
}

func (s *service) Scale(ctx context.Context, mapping *database.TeamMapping, quantity int) (err error) {
	appName, err := s.managedAppName(ctx, mapping)
	if err != nil {
		return err
	}

	return s.withToken(ctx, mapping, func(accessToken string) error {
		return s.herokuapiClient.ScaleFormation(ctx, accessToken, appName, workerProcessType, quantity)
	})
}

// withToken runs call with the team's platform token; a rejected token is refreshed, persisted and retried exactly once
func (s *service) withToken(ctx context.Context, mapping *database.TeamMapping, call func(accessToken string) error) error {
	err := call(mapping.PlatformToken)
	if !errors.Is(err, herokuapi.ErrUnauthorized) {
		return err
	}

	log.Info().Str("team", mapping.TeamID).Msg("Platform token rejected, refreshing it")

	token, err := s.herokuapiClient.RefreshToken(ctx, mapping.PlatformRefreshToken)
	if err != nil {
		return errors.Wrapf(err, "Refreshing platform token for team %v failed", mapping.TeamID)
	}

	refreshToken := token.RefreshToken
	if refreshToken == "" {
		refreshToken = mapping.PlatformRefreshToken
	}

	err = s.databaseClient.UpdatePlatformTokens(ctx, mapping.TeamID, token.AccessToken, refreshToken)
	if err != nil {
		return err
	}
	mapping.PlatformToken = token.AccessToken
	mapping.PlatformRefreshToken = refreshToken

	return call(mapping.PlatformToken)
}

func (s *service) managedAppName(ctx context.Context, mapping *database.TeamMapping) (string, error) {
	if !mapping.HasPlatformToken() {
		return "", ErrMissingPlatformToken
	}

	isManaged, err := s.IsManaged(ctx, mapping)
	if err != nil {
		return "", err
	}
	if !isManaged {
		return "", ErrNotManaged
	}

	return api.AppName(mapping.Target), nil
}

// appEnv is the environment a managed albumlist needs to talk to Slack and back to the relay
func (s *service) appEnv(mapping *database.TeamMapping) map[string]string {
	return map[string]string{
		"APP_TOKEN_BOT":     s.config.APIServer.PrimaryAppToken(),
		"SLACK_OAUTH_TOKEN": mapping.BotToken,
		"ALBUMLISTBOT_URL":  s.config.APIServer.BaseURL,
	}
}

func (s *service) parseState(state string) (teamID string, err error) {
	if state == "" {
		return "", ErrInvalidState
	}

	claims := &stateClaims{}
	_, err = jwt.ParseWithClaims(state, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidState
		}
		return []byte(s.config.APIServer.CSRFSeed), nil
	})
	if err != nil {
		return "", errors.Wrap(ErrInvalidState, err.Error())
	}

	if claims.TeamID == "" {
		return "", ErrInvalidState
	}

	return claims.TeamID, nil
}

func allUp(dynos []herokuapi.Dyno) bool {
	if len(dynos) == 0 {
		return false
	}
	for _, d := range dynos {
		if !d.IsUp() {
			return false
		}
	}
	return true
}

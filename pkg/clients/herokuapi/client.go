package herokuapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/albumlist/albumlist-relay/pkg/api"
	"github.com/google/uuid"
	"github.com/opentracing-contrib/go-stdlib/nethttp"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sethgrid/pester"
	"golang.org/x/oauth2"
)

const acceptHeader = "application/vnd.heroku+json; version=3"

// Client is the interface for communicating with the Heroku platform api
//
//go:generate mockgen -package=herokuapi -destination ./mock.go -source=client.go
type Client interface {
	ExchangeCode(ctx context.Context, code string) (token *Token, err error)
	RefreshToken(ctx context.Context, refreshToken string) (token *Token, err error)
	GetApp(ctx context.Context, accessToken, appName string) (app *App, err error)
	CreateAppSetup(ctx context.Context, accessToken string, setup AppSetupRequest) (app *App, err error)
	GetConfigVars(ctx context.Context, accessToken, appName string) (configVars map[string]string, err error)
	UpdateConfigVars(ctx context.Context, accessToken, appName string, configVars map[string]string) (err error)
	GetDynos(ctx context.Context, accessToken, appName string) (dynos []Dyno, err error)
	ScaleFormation(ctx context.Context, accessToken, appName, processType string, quantity int) (err error)
}

// NewClient returns a herokuapi.Client to communicate with the platform api
func NewClient(config *api.APIConfig) Client {
	herokuConfig := config.Integrations.Heroku

	return &client{
		config:      herokuConfig,
		apiURL:      herokuConfig.APIURL,
		oauthConfig: herokuConfig.GetOAuthConfig(),
		httpClient:  api.NewHTTPClient(herokuConfig.RequestTimeout()),
	}
}

type client struct {
	config      *api.HerokuConfig
	apiURL      string
	oauthConfig *oauth2.Config
	httpClient  *pester.Client
}

func (c *client) ExchangeCode(ctx context.Context, code string) (token *Token, err error) {
	oauthToken, err := c.oauthConfig.Exchange(c.oauthContext(ctx), code)
	if err != nil {
		return nil, translateOAuthError(err)
	}

	return toToken(oauthToken), nil
}

func (c *client) RefreshToken(ctx context.Context, refreshToken string) (token *Token, err error) {
	if refreshToken == "" {
		return nil, ErrUnauthorized
	}

	oauthToken, err := c.oauthConfig.TokenSource(c.oauthContext(ctx), &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		return nil, translateOAuthError(err)
	}

	return toToken(oauthToken), nil
}

func (c *client) GetApp(ctx context.Context, accessToken, appName string) (app *App, err error) {
	app = &App{}
	err = c.callHerokuAPI(ctx, http.MethodGet, "/apps/"+url.PathEscape(appName), accessToken, nil, c.config.ManagedCheckTimeout(), app)
	if err != nil {
		return nil, err
	}

	return app, nil
}

func (c *client) CreateAppSetup(ctx context.Context, accessToken string, setup AppSetupRequest) (app *App, err error) {
	var response appSetupResponse
	err = c.callHerokuAPI(ctx, http.MethodPost, "/app-setups", accessToken, setup, 0, &response)
	if err != nil {
		return nil, err
	}

	if response.App.Name == "" {
		return nil, errors.Errorf("App setup %v returned no app name", response.ID)
	}

	log.Info().Str("app", response.App.Name).Str("status", response.Status).Msg("Platform accepted app setup")

	return &response.App, nil
}

func (c *client) GetConfigVars(ctx context.Context, accessToken, appName string) (configVars map[string]string, err error) {
	configVars = map[string]string{}
	err = c.callHerokuAPI(ctx, http.MethodGet, "/apps/"+url.PathEscape(appName)+"/config-vars", accessToken, nil, 0, &configVars)
	if err != nil {
		return nil, err
	}

	return configVars, nil
}

func (c *client) UpdateConfigVars(ctx context.Context, accessToken, appName string, configVars map[string]string) (err error) {
	return c.callHerokuAPI(ctx, http.MethodPatch, "/apps/"+url.PathEscape(appName)+"/config-vars", accessToken, configVars, 0, nil)
}

func (c *client) GetDynos(ctx context.Context, accessToken, appName string) (dynos []Dyno, err error) {
	dynos = []Dyno{}
	err = c.callHerokuAPI(ctx, http.MethodGet, "/apps/"+url.PathEscape(appName)+"/dynos", accessToken, nil, c.config.ManagedCheckTimeout(), &dynos)
	if err != nil {
		return nil, err
	}

	return dynos, nil
}

func (c *client) ScaleFormation(ctx context.Context, accessToken, appName, processType string, quantity int) (err error) {
	if quantity < 0 {
		return errors.Errorf("Cannot scale %v to %v dynos", processType, quantity)
	}

	params := formationRequest{
		Updates: []formationUpdate{{Type: processType, Quantity: quantity}},
	}

	return c.callHerokuAPI(ctx, http.MethodPatch, "/apps/"+url.PathEscape(appName)+"/formation", accessToken, params, 0, nil)
}

func (c *client) callHerokuAPI(ctx context.Context, method, path, accessToken string, params interface{}, timeout time.Duration, response interface{}) (err error) {

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var body *bytes.Reader
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.apiURL+path, body)
	if err != nil {
		return err
	}

	request, ht := api.TraceRequest(ctx, request)

	// add headers
	request.Header.Set("Accept", acceptHeader)
	request.Header.Set("Authorization", fmt.Sprintf("%v %v", "Bearer", accessToken))
	request.Header.Set("Request-Id", uuid.New().String())
	if params != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	// perform actual request
	resp, err := c.httpClient.Do(request)
	if err != nil {
		if isTimeout(ctx, err) {
			return errors.Wrapf(ErrTimeout, "%v %v", method, path)
		}
		return errors.Wrapf(err, "Calling %v %v failed", method, path)
	}
	defer resp.Body.Close()
	if ht != nil {
		ht.Finish()
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &StatusError{
			StatusCode: resp.StatusCode,
			Body:       api.ReadBodyExcerpt(resp.Body, 512),
		}
	}

	if response == nil {
		return nil
	}

	err = json.NewDecoder(resp.Body).Decode(response)
	if err != nil {
		return errors.Wrapf(err, "Decoding response of %v %v failed", method, path)
	}

	return nil
}

// oauthContext makes the oauth2 package use a traced client bound by the request timeout
func (c *client) oauthContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, &http.Client{
		Transport: &nethttp.Transport{},
		Timeout:   c.config.RequestTimeout(),
	})
}

func translateOAuthError(err error) error {
	var retrieveError *oauth2.RetrieveError
	if errors.As(err, &retrieveError) && retrieveError.Response != nil {
		if retrieveError.Response.StatusCode == http.StatusUnauthorized || retrieveError.Response.StatusCode == http.StatusBadRequest {
			return errors.Wrap(ErrUnauthorized, retrieveError.Error())
		}
		return &StatusError{
			StatusCode: retrieveError.Response.StatusCode,
			Body:       string(retrieveError.Body),
		}
	}

	return errors.Wrap(err, "Retrieving platform token failed")
}

func toToken(oauthToken *oauth2.Token) *Token {
	return &Token{
		AccessToken:  oauthToken.AccessToken,
		RefreshToken: oauthToken.RefreshToken,
		Expiry:       oauthToken.Expiry,
	}
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

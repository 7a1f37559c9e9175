package herokuapi

import (
	"context"

	"github.com/albumlist/albumlist-relay/pkg/api"
)

// NewLoggingClient returns a new instance of a logging Client.
func NewLoggingClient(c Client) Client {
	return &loggingClient{c, "herokuapi"}
}

type loggingClient struct {
	Client Client
	prefix string
}

func (c *loggingClient) ExchangeCode(ctx context.Context, code string) (token *Token, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "ExchangeCode", err) }()

	return c.Client.ExchangeCode(ctx, code)
}

func (c *loggingClient) RefreshToken(ctx context.Context, refreshToken string) (token *Token, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "RefreshToken", err) }()

	return c.Client.RefreshToken(ctx, refreshToken)
}

func (c *loggingClient) GetApp(ctx context.Context, accessToken, appName string) (app *App, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetApp", err, ErrUnauthorized, ErrNotFound) }()

	return c.Client.GetApp(ctx, accessToken, appName)
}

func (c *loggingClient) CreateAppSetup(ctx context.Context, accessToken string, setup AppSetupRequest) (app *App, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "CreateAppSetup", err, ErrUnauthorized) }()

	return c.Client.CreateAppSetup(ctx, accessToken, setup)
}

func (c *loggingClient) GetConfigVars(ctx context.Context, accessToken, appName string) (configVars map[string]string, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetConfigVars", err, ErrUnauthorized) }()

	return c.Client.GetConfigVars(ctx, accessToken, appName)
}

func (c *loggingClient) UpdateConfigVars(ctx context.Context, accessToken, appName string, configVars map[string]string) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "UpdateConfigVars", err, ErrUnauthorized) }()

	return c.Client.UpdateConfigVars(ctx, accessToken, appName, configVars)
}

func (c *loggingClient) GetDynos(ctx context.Context, accessToken, appName string) (dynos []Dyno, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetDynos", err, ErrUnauthorized) }()

	return c.Client.GetDynos(ctx, accessToken, appName)
}

func (c *loggingClient) ScaleFormation(ctx context.Context, accessToken, appName, processType string, quantity int) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "ScaleFormation", err, ErrUnauthorized) }()

	return c.Client.ScaleFormation(ctx, accessToken, appName, processType, quantity)
}

package herokuapi

import (
	"context"

	"github.com/albumlist/albumlist-relay/pkg/api"
	"github.com/opentracing/opentracing-go"
)

// NewTracingClient returns a new instance of a tracing Client.
func NewTracingClient(c Client) Client {
	return &tracingClient{c, "herokuapi"}
}

type tracingClient struct {
	Client Client
	prefix string
}

func (c *tracingClient) ExchangeCode(ctx context.Context, code string) (token *Token, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "ExchangeCode"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.ExchangeCode(ctx, code)
}

func (c *tracingClient) RefreshToken(ctx context.Context, refreshToken string) (token *Token, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "RefreshToken"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.RefreshToken(ctx, refreshToken)
}

func (c *tracingClient) GetApp(ctx context.Context, accessToken, appName string) (app *App, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetApp"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetApp(ctx, accessToken, appName)
}

func (c *tracingClient) CreateAppSetup(ctx context.Context, accessToken string, setup AppSetupRequest) (app *App, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "CreateAppSetup"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.CreateAppSetup(ctx, accessToken, setup)
}

func (c *tracingClient) GetConfigVars(ctx context.Context, accessToken, appName string) (configVars map[string]string, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetConfigVars"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetConfigVars(ctx, accessToken, appName)
}

func (c *tracingClient) UpdateConfigVars(ctx context.Context, accessToken, appName string, configVars map[string]string) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "UpdateConfigVars"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.UpdateConfigVars(ctx, accessToken, appName, configVars)
}

func (c *tracingClient) GetDynos(ctx context.Context, accessToken, appName string) (dynos []Dyno, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetDynos"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetDynos(ctx, accessToken, appName)
}

func (c *tracingClient) ScaleFormation(ctx context.Context, accessToken, appName, processType string, quantity int) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "ScaleFormation"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.ScaleFormation(ctx, accessToken, appName, processType, quantity)
}

package herokuapi

import (
	"context"
	"time"

	"github.com/albumlist/albumlist-relay/pkg/api"
	"github.com/go-kit/kit/metrics"
)

// NewMetricsClient returns a new instance of a metrics Client.
func NewMetricsClient(c Client, requestCount metrics.Counter, requestLatency metrics.Histogram) Client {
	return &metricsClient{c, requestCount, requestLatency}
}

type metricsClient struct {
	Client         Client
	requestCount   metrics.Counter
	requestLatency metrics.Histogram
}

func (c *metricsClient) ExchangeCode(ctx context.Context, code string) (token *Token, err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "ExchangeCode", begin) }(time.Now())

	return c.Client.ExchangeCode(ctx, code)
}

func (c *metricsClient) RefreshToken(ctx context.Context, refreshToken string) (token *Token, err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "RefreshToken", begin) }(time.Now())

	return c.Client.RefreshToken(ctx, refreshToken)
}

func (c *metricsClient) GetApp(ctx context.Context, accessToken, appName string) (app *App, err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "GetApp", begin) }(time.Now())

	return c.Client.GetApp(ctx, accessToken, appName)
}

func (c *metricsClient) CreateAppSetup(ctx context.Context, accessToken string, setup AppSetupRequest) (app *App, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "CreateAppSetup", begin)
	}(time.Now())

	return c.Client.CreateAppSetup(ctx, accessToken, setup)
}

func (c *metricsClient) GetConfigVars(ctx context.Context, accessToken, appName string) (configVars map[string]string, err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "GetConfigVars", begin) }(time.Now())

	return c.Client.GetConfigVars(ctx, accessToken, appName)
}

func (c *metricsClient) UpdateConfigVars(ctx context.Context, accessToken, appName string, configVars map[string]string) (err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "UpdateConfigVars", begin)
	}(time.Now())

	return c.Client.UpdateConfigVars(ctx, accessToken, appName, configVars)
}

func (c *metricsClient) GetDynos(ctx context.Context, accessToken, appName string) (dynos []Dyno, err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "GetDynos", begin) }(time.Now())

	return c.Client.GetDynos(ctx, accessToken, appName)
}

func (c *metricsClient) ScaleFormation(ctx context.Context, accessToken, appName, processType string, quantity int) (err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "ScaleFormation", begin)
	}(time.Now())

	return c.Client.ScaleFormation(ctx, accessToken, appName, processType, quantity)
}

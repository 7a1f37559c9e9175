package slackapi

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

func (c *metricsClient) ExchangeOAuthCode(ctx context.Context, code string) (installation *Installation, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "ExchangeOAuthCode", begin)
	}(time.Now())

	return c.Client.ExchangeOAuthCode(ctx, code)
}

func (c *metricsClient) GetTeamURL(ctx context.Context, botToken string) (teamURL string, err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "GetTeamURL", begin) }(time.Now())

	return c.Client.GetTeamURL(ctx, botToken)
}

func (c *metricsClient) IsAdmin(ctx context.Context, botToken, userID string) (isAdmin bool, err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "IsAdmin", begin) }(time.Now())

	return c.Client.IsAdmin(ctx, botToken, userID)
}

package targetapi

import (
	"context"
	"net/url"
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

func (c *metricsClient) Forward(ctx context.Context, target api.URLTarget, subpath string, form url.Values) (response *Response, err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "Forward", begin) }(time.Now())

	return c.Client.Forward(ctx, target, subpath, form)
}

func (c *metricsClient) ForwardEvent(ctx context.Context, target api.URLTarget, event []byte) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "ForwardEvent", begin) }(time.Now())

	return c.Client.ForwardEvent(ctx, target, event)
}

func (c *metricsClient) Probe(ctx context.Context, target api.URLTarget) (statusCode int, err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "Probe", begin) }(time.Now())

	return c.Client.Probe(ctx, target)
}

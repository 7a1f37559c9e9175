package slack

import (
	"context"
	"net/url"
	"time"

	"github.com/albumlist/albumlist-relay/pkg/api"
	"github.com/go-kit/kit/metrics"
	slackgo "github.com/slack-go/slack"
)

// NewMetricsService returns a new instance of a metrics Service.
func NewMetricsService(s Service, requestCount metrics.Counter, requestLatency metrics.Histogram) Service {
	return &metricsService{s, requestCount, requestLatency}
}

type metricsService struct {
	Service        Service
	requestCount   metrics.Counter
	requestLatency metrics.Histogram
}

func (s *metricsService) HandleCommand(ctx context.Context, request CommandRequest) (response *Response, err error) {
	defer func(begin time.Time) { api.UpdateMetrics(s.requestCount, s.requestLatency, "HandleCommand", begin) }(time.Now())

	return s.Service.HandleCommand(ctx, request)
}

func (s *metricsService) HandleInteraction(ctx context.Context, callback slackgo.InteractionCallback, subpath string, form url.Values) (response *Response, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(s.requestCount, s.requestLatency, "HandleInteraction", begin)
	}(time.Now())

	return s.Service.HandleInteraction(ctx, callback, subpath, form)
}

func (s *metricsService) RouteToTarget(ctx context.Context, teamID, subpath string, form url.Values) (response *Response, err error) {
	defer func(begin time.Time) { api.UpdateMetrics(s.requestCount, s.requestLatency, "RouteToTarget", begin) }(time.Now())

	return s.Service.RouteToTarget(ctx, teamID, subpath, form)
}

func (s *metricsService) RouteEvent(ctx context.Context, teamID string, event []byte) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(s.requestCount, s.requestLatency, "RouteEvent", begin) }(time.Now())

	return s.Service.RouteEvent(ctx, teamID, event)
}

func (s *metricsService) CompleteInstall(ctx context.Context, code string) (teamURL string, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(s.requestCount, s.requestLatency, "CompleteInstall", begin)
	}(time.Now())

	return s.Service.CompleteInstall(ctx, code)
}

func (s *metricsService) Ping(ctx context.Context, botToken string) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(s.requestCount, s.requestLatency, "Ping", begin) }(time.Now())

	return s.Service.Ping(ctx, botToken)
}

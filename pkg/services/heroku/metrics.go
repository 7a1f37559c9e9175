package heroku

import (
	"context"
	"time"

	"github.com/albumlist/albumlist-relay/pkg/api"
	"github.com/albumlist/albumlist-relay/pkg/clients/database"
	"github.com/go-kit/kit/metrics"
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

func (s *metricsService) AuthCodeURL(ctx context.Context, teamID string) (authURL string, err error) {
	defer func(begin time.Time) { api.UpdateMetrics(s.requestCount, s.requestLatency, "AuthCodeURL", begin) }(time.Now())

	return s.Service.AuthCodeURL(ctx, teamID)
}

func (s *metricsService) CompleteAuthorization(ctx context.Context, code, state string) (teamID string, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(s.requestCount, s.requestLatency, "CompleteAuthorization", begin)
	}(time.Now())

	return s.Service.CompleteAuthorization(ctx, code, state)
}

func (s *metricsService) IsManaged(ctx context.Context, mapping *database.TeamMapping) (isManaged bool, err error) {
	defer func(begin time.Time) { api.UpdateMetrics(s.requestCount, s.requestLatency, "IsManaged", begin) }(time.Now())

	return s.Service.IsManaged(ctx, mapping)
}

func (s *metricsService) CreateApp(ctx context.Context, mapping *database.TeamMapping) (appName string, err error) {
	defer func(begin time.Time) { api.UpdateMetrics(s.requestCount, s.requestLatency, "CreateApp", begin) }(time.Now())

	return s.Service.CreateApp(ctx, mapping)
}

func (s *metricsService) CheckReadiness(ctx context.Context, mapping *database.TeamMapping) (readiness Readiness, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(s.requestCount, s.requestLatency, "CheckReadiness", begin)
	}(time.Now())

	return s.Service.CheckReadiness(ctx, mapping)
}

func (s *metricsService) GetConfigVar(ctx context.Context, mapping *database.TeamMapping, key string) (value string, err error) {
	defer func(begin time.Time) { api.UpdateMetrics(s.requestCount, s.requestLatency, "GetConfigVar", begin) }(time.Now())

	return s.Service.GetConfigVar(ctx, mapping, key)
}

func (s *metricsService) SetConfigVars(ctx context.Context, mapping *database.TeamMapping, configVars map[string]string) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(s.requestCount, s.requestLatency, "SetConfigVars", begin) }(time.Now())

	return s.Service.SetConfigVars(ctx, mapping, configVars)
}

func (s *metricsService) Scale(ctx context.Context, mapping *database.TeamMapping, quantity int) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(s.requestCount, s.requestLatency, "Scale", begin) }(time.Now())

	return s.Service.Scale(ctx, mapping, quantity)
}

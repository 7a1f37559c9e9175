package database

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

func (c *metricsClient) Connect(ctx context.Context) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "Connect", begin) }(time.Now())

	return c.Client.Connect(ctx)
}

func (c *metricsClient) ConnectWithDriverAndSource(ctx context.Context, driverName, dataSourceName string) (err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "ConnectWithDriverAndSource", begin)
	}(time.Now())

	return c.Client.ConnectWithDriverAndSource(ctx, driverName, dataSourceName)
}

func (c *metricsClient) AwaitDatabaseReadiness(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "AwaitDatabaseReadiness", begin)
	}(time.Now())

	return c.Client.AwaitDatabaseReadiness(ctx)
}

func (c *metricsClient) MigrateSchema(ctx context.Context) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "MigrateSchema", begin) }(time.Now())

	return c.Client.MigrateSchema(ctx)
}

func (c *metricsClient) InsertTeamMapping(ctx context.Context, teamID, botToken string) (err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "InsertTeamMapping", begin)
	}(time.Now())

	return c.Client.InsertTeamMapping(ctx, teamID, botToken)
}

func (c *metricsClient) GetTeamMapping(ctx context.Context, teamID string) (mapping *TeamMapping, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetTeamMapping", begin)
	}(time.Now())

	return c.Client.GetTeamMapping(ctx, teamID)
}

func (c *metricsClient) GetTeamMappingByBotToken(ctx context.Context, botToken string) (mapping *TeamMapping, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetTeamMappingByBotToken", begin)
	}(time.Now())

	return c.Client.GetTeamMappingByBotToken(ctx, botToken)
}

func (c *metricsClient) GetTeamMappings(ctx context.Context) (mappings []*TeamMapping, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetTeamMappings", begin)
	}(time.Now())

	return c.Client.GetTeamMappings(ctx)
}

func (c *metricsClient) UpdateTarget(ctx context.Context, teamID string, target api.Target) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "UpdateTarget", begin) }(time.Now())

	return c.Client.UpdateTarget(ctx, teamID, target)
}

func (c *metricsClient) UpdateBotToken(ctx context.Context, teamID, botToken string) (err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "UpdateBotToken", begin)
	}(time.Now())

	return c.Client.UpdateBotToken(ctx, teamID, botToken)
}

func (c *metricsClient) UpdatePlatformTokens(ctx context.Context, teamID, accessToken, refreshToken string) (err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "UpdatePlatformTokens", begin)
	}(time.Now())

	return c.Client.UpdatePlatformTokens(ctx, teamID, accessToken, refreshToken)
}

func (c *metricsClient) DeleteTeamMapping(ctx context.Context, teamID string) (err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "DeleteTeamMapping", begin)
	}(time.Now())

	return c.Client.DeleteTeamMapping(ctx, teamID)
}

package database

import (
	"context"

	"github.com/albumlist/albumlist-relay/pkg/api"
	"github.com/opentracing/opentracing-go"
)

// NewTracingClient returns a new instance of a tracing Client.
func NewTracingClient(c Client) Client {
	return &tracingClient{c, "database"}
}

type tracingClient struct {
	Client Client
	prefix string
}

func (c *tracingClient) Connect(ctx context.Context) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "Connect"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.Connect(ctx)
}

func (c *tracingClient) ConnectWithDriverAndSource(ctx context.Context, driverName, dataSourceName string) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "ConnectWithDriverAndSource"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.ConnectWithDriverAndSource(ctx, driverName, dataSourceName)
}

func (c *tracingClient) AwaitDatabaseReadiness(ctx context.Context) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "AwaitDatabaseReadiness"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.AwaitDatabaseReadiness(ctx)
}

func (c *tracingClient) MigrateSchema(ctx context.Context) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "MigrateSchema"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.MigrateSchema(ctx)
}

func (c *tracingClient) InsertTeamMapping(ctx context.Context, teamID, botToken string) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "InsertTeamMapping"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.InsertTeamMapping(ctx, teamID, botToken)
}

func (c *tracingClient) GetTeamMapping(ctx context.Context, teamID string) (mapping *TeamMapping, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetTeamMapping"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetTeamMapping(ctx, teamID)
}

func (c *tracingClient) GetTeamMappingByBotToken(ctx context.Context, botToken string) (mapping *TeamMapping, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetTeamMappingByBotToken"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetTeamMappingByBotToken(ctx, botToken)
}

func (c *tracingClient) GetTeamMappings(ctx context.Context) (mappings []*TeamMapping, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetTeamMappings"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetTeamMappings(ctx)
}

func (c *tracingClient) UpdateTarget(ctx context.Context, teamID string, target api.Target) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "UpdateTarget"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.UpdateTarget(ctx, teamID, target)
}

func (c *tracingClient) UpdateBotToken(ctx context.Context, teamID, botToken string) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "UpdateBotToken"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.UpdateBotToken(ctx, teamID, botToken)
}

func (c *tracingClient) UpdatePlatformTokens(ctx context.Context, teamID, accessToken, refreshToken string) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "UpdatePlatformTokens"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.UpdatePlatformTokens(ctx, teamID, accessToken, refreshToken)
}

func (c *tracingClient) DeleteTeamMapping(ctx context.Context, teamID string) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "DeleteTeamMapping"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.DeleteTeamMapping(ctx, teamID)
}

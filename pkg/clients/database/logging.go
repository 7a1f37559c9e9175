package database

import (
	"context"

	"github.com/albumlist/albumlist-relay/pkg/api"
)

// NewLoggingClient returns a new instance of a logging Client.
func NewLoggingClient(c Client) Client {
	return &loggingClient{c, "database"}
}

type loggingClient struct {
	Client Client
	prefix string
}

func (c *loggingClient) Connect(ctx context.Context) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "Connect", err) }()

	return c.Client.Connect(ctx)
}

func (c *loggingClient) ConnectWithDriverAndSource(ctx context.Context, driverName, dataSourceName string) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "ConnectWithDriverAndSource", err) }()

	return c.Client.ConnectWithDriverAndSource(ctx, driverName, dataSourceName)
}

func (c *loggingClient) AwaitDatabaseReadiness(ctx context.Context) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "AwaitDatabaseReadiness", err) }()

	return c.Client.AwaitDatabaseReadiness(ctx)
}

func (c *loggingClient) MigrateSchema(ctx context.Context) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "MigrateSchema", err) }()

	return c.Client.MigrateSchema(ctx)
}

func (c *loggingClient) InsertTeamMapping(ctx context.Context, teamID, botToken string) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "InsertTeamMapping", err, ErrTeamAlreadyRegistered) }()

	return c.Client.InsertTeamMapping(ctx, teamID, botToken)
}

func (c *loggingClient) GetTeamMapping(ctx context.Context, teamID string) (mapping *TeamMapping, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetTeamMapping", err, ErrTeamNotFound) }()

	return c.Client.GetTeamMapping(ctx, teamID)
}

func (c *loggingClient) GetTeamMappingByBotToken(ctx context.Context, botToken string) (mapping *TeamMapping, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetTeamMappingByBotToken", err, ErrTeamNotFound) }()

	return c.Client.GetTeamMappingByBotToken(ctx, botToken)
}

func (c *loggingClient) GetTeamMappings(ctx context.Context) (mappings []*TeamMapping, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetTeamMappings", err) }()

	return c.Client.GetTeamMappings(ctx)
}

func (c *loggingClient) UpdateTarget(ctx context.Context, teamID string, target api.Target) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "UpdateTarget", err, ErrTeamNotFound) }()

	return c.Client.UpdateTarget(ctx, teamID, target)
}

func (c *loggingClient) UpdateBotToken(ctx context.Context, teamID, botToken string) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "UpdateBotToken", err, ErrTeamNotFound) }()

	return c.Client.UpdateBotToken(ctx, teamID, botToken)
}

func (c *loggingClient) UpdatePlatformTokens(ctx context.Context, teamID, accessToken, refreshToken string) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "UpdatePlatformTokens", err, ErrTeamNotFound) }()

	return c.Client.UpdatePlatformTokens(ctx, teamID, accessToken, refreshToken)
}

func (c *loggingClient) DeleteTeamMapping(ctx context.Context, teamID string) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "DeleteTeamMapping", err) }()

	return c.Client.DeleteTeamMapping(ctx, teamID)
}

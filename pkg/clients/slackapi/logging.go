package slackapi

import (
	"context"

	"github.com/albumlist/albumlist-relay/pkg/api"
)

// NewLoggingClient returns a new instance of a logging Client.
func NewLoggingClient(c Client) Client {
	return &loggingClient{c, "slackapi"}
}

type loggingClient struct {
	Client Client
	prefix string
}

func (c *loggingClient) ExchangeOAuthCode(ctx context.Context, code string) (installation *Installation, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "ExchangeOAuthCode", err) }()

	return c.Client.ExchangeOAuthCode(ctx, code)
}

func (c *loggingClient) GetTeamURL(ctx context.Context, botToken string) (teamURL string, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetTeamURL", err) }()

	return c.Client.GetTeamURL(ctx, botToken)
}

func (c *loggingClient) IsAdmin(ctx context.Context, botToken, userID string) (isAdmin bool, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "IsAdmin", err, ErrMissingBotToken) }()

	return c.Client.IsAdmin(ctx, botToken, userID)
}

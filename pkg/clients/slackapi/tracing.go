package slackapi

import (
	"context"

	"github.com/albumlist/albumlist-relay/pkg/api"
	"github.com/opentracing/opentracing-go"
)

// NewTracingClient returns a new instance of a tracing Client.
func NewTracingClient(c Client) Client {
	return &tracingClient{c, "slackapi"}
}

type tracingClient struct {
	Client Client
	prefix string
}

func (c *tracingClient) ExchangeOAuthCode(ctx context.Context, code string) (installation *Installation, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "ExchangeOAuthCode"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.ExchangeOAuthCode(ctx, code)
}

func (c *tracingClient) GetTeamURL(ctx context.Context, botToken string) (teamURL string, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetTeamURL"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetTeamURL(ctx, botToken)
}

func (c *tracingClient) IsAdmin(ctx context.Context, botToken, userID string) (isAdmin bool, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "IsAdmin"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.IsAdmin(ctx, botToken, userID)
}

package targetapi

import (
	"context"
	"net/url"

	"github.com/albumlist/albumlist-relay/pkg/api"
)

// NewLoggingClient returns a new instance of a logging Client.
func NewLoggingClient(c Client) Client {
	return &loggingClient{c, "targetapi"}
}

type loggingClient struct {
	Client Client
	prefix string
}

func (c *loggingClient) Forward(ctx context.Context, target api.URLTarget, subpath string, form url.Values) (response *Response, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "Forward", err, ErrTimeout) }()

	return c.Client.Forward(ctx, target, subpath, form)
}

func (c *loggingClient) ForwardEvent(ctx context.Context, target api.URLTarget, event []byte) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "ForwardEvent", err) }()

	return c.Client.ForwardEvent(ctx, target, event)
}

func (c *loggingClient) Probe(ctx context.Context, target api.URLTarget) (statusCode int, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "Probe", err, ErrTimeout) }()

	return c.Client.Probe(ctx, target)
}

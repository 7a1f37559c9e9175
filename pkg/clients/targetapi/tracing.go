package targetapi

import (
	"context"
	"net/url"

	"github.com/albumlist/albumlist-relay/pkg/api"
	"github.com/opentracing/opentracing-go"
)

// NewTracingClient returns a new instance of a tracing Client.
func NewTracingClient(c Client) Client {
	return &tracingClient{c, "targetapi"}
}

type tracingClient struct {
	Client Client
	prefix string
}

func (c *tracingClient) Forward(ctx context.Context, target api.URLTarget, subpath string, form url.Values) (response *Response, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "Forward"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.Forward(ctx, target, subpath, form)
}

func (c *tracingClient) ForwardEvent(ctx context.Context, target api.URLTarget, event []byte) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "ForwardEvent"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.ForwardEvent(ctx, target, event)
}

func (c *tracingClient) Probe(ctx context.Context, target api.URLTarget) (statusCode int, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "Probe"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.Probe(ctx, target)
}

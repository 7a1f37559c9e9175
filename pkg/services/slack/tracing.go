package slack

import (
	"context"
	"net/url"

	"github.com/albumlist/albumlist-relay/pkg/api"
	"github.com/opentracing/opentracing-go"
	slackgo "github.com/slack-go/slack"
)

// NewTracingService returns a new instance of a tracing Service.
func NewTracingService(s Service) Service {
	return &tracingService{s, "slack"}
}

type tracingService struct {
	Service Service
	prefix  string
}

func (s *tracingService) HandleCommand(ctx context.Context, request CommandRequest) (response *Response, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "HandleCommand"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.HandleCommand(ctx, request)
}

func (s *tracingService) HandleInteraction(ctx context.Context, callback slackgo.InteractionCallback, subpath string, form url.Values) (response *Response, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "HandleInteraction"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.HandleInteraction(ctx, callback, subpath, form)
}

func (s *tracingService) RouteToTarget(ctx context.Context, teamID, subpath string, form url.Values) (response *Response, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "RouteToTarget"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.RouteToTarget(ctx, teamID, subpath, form)
}

func (s *tracingService) RouteEvent(ctx context.Context, teamID string, event []byte) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "RouteEvent"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.RouteEvent(ctx, teamID, event)
}

func (s *tracingService) CompleteInstall(ctx context.Context, code string) (teamURL string, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "CompleteInstall"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.CompleteInstall(ctx, code)
}

func (s *tracingService) Ping(ctx context.Context, botToken string) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "Ping"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.Ping(ctx, botToken)
}

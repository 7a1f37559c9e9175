package slack

import (
	"context"
	"net/url"

	"github.com/albumlist/albumlist-relay/pkg/api"
	"github.com/albumlist/albumlist-relay/pkg/clients/database"
	"github.com/albumlist/albumlist-relay/pkg/services/heroku"
	slackgo "github.com/slack-go/slack"
)

// NewLoggingService returns a new instance of a logging Service.
func NewLoggingService(s Service) Service {
	return &loggingService{s, "slack"}
}

type loggingService struct {
	Service Service
	prefix  string
}

func (s *loggingService) HandleCommand(ctx context.Context, request CommandRequest) (response *Response, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "HandleCommand", err, heroku.ErrMissingPlatformToken, heroku.ErrNotManaged) }()

	return s.Service.HandleCommand(ctx, request)
}

func (s *loggingService) HandleInteraction(ctx context.Context, callback slackgo.InteractionCallback, subpath string, form url.Values) (response *Response, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "HandleInteraction", err) }()

	return s.Service.HandleInteraction(ctx, callback, subpath, form)
}

func (s *loggingService) RouteToTarget(ctx context.Context, teamID, subpath string, form url.Values) (response *Response, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "RouteToTarget", err) }()

	return s.Service.RouteToTarget(ctx, teamID, subpath, form)
}

func (s *loggingService) RouteEvent(ctx context.Context, teamID string, event []byte) (err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "RouteEvent", err) }()

	return s.Service.RouteEvent(ctx, teamID, event)
}

func (s *loggingService) CompleteInstall(ctx context.Context, code string) (teamURL string, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "CompleteInstall", err) }()

	return s.Service.CompleteInstall(ctx, code)
}

func (s *loggingService) Ping(ctx context.Context, botToken string) (err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "Ping", err, database.ErrTeamNotFound) }()

	return s.Service.Ping(ctx, botToken)
}

package heroku

import (
	"context"

	"github.com/albumlist/albumlist-relay/pkg/api"
	"github.com/albumlist/albumlist-relay/pkg/clients/database"
	"github.com/opentracing/opentracing-go"
)

// NewTracingService returns a new instance of a tracing Service.
func NewTracingService(s Service) Service {
	return &tracingService{s, "heroku"}
}

type tracingService struct {
	Service Service
	prefix  string
}

func (s *tracingService) AuthCodeURL(ctx context.Context, teamID string) (authURL string, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "AuthCodeURL"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.AuthCodeURL(ctx, teamID)
}

func (s *tracingService) CompleteAuthorization(ctx context.Context, code, state string) (teamID string, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "CompleteAuthorization"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.CompleteAuthorization(ctx, code, state)
}

func (s *tracingService) IsManaged(ctx context.Context, mapping *database.TeamMapping) (isManaged bool, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "IsManaged"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.IsManaged(ctx, mapping)
}

func (s *tracingService) CreateApp(ctx context.Context, mapping *database.TeamMapping) (appName string, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "CreateApp"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.CreateApp(ctx, mapping)
}

func (s *tracingService) CheckReadiness(ctx context.Context, mapping *database.TeamMapping) (readiness Readiness, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "CheckReadiness"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.CheckReadiness(ctx, mapping)
}

func (s *tracingService) GetConfigVar(ctx context.Context, mapping *database.TeamMapping, key string) (value string, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "GetConfigVar"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.GetConfigVar(ctx, mapping, key)
}

func (s *tracingService) SetConfigVars(ctx context.Context, mapping *database.TeamMapping, configVars map[string]string) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "SetConfigVars"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.SetConfigVars(ctx, mapping, configVars)
}

func (s *tracingService) Scale(ctx context.Context, mapping *database.TeamMapping, quantity int) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "Scale"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.Scale(ctx, mapping, quantity)
}

package heroku

import (
	"context"

	"github.com/albumlist/albumlist-relay/pkg/api"
	"github.com/albumlist/albumlist-relay/pkg/clients/database"
)

// NewLoggingService returns a new instance of a logging Service.
func NewLoggingService(s Service) Service {
	return &loggingService{s, "heroku"}
}

type loggingService struct {
	Service Service
	prefix  string
}

func (s *loggingService) AuthCodeURL(ctx context.Context, teamID string) (authURL string, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "AuthCodeURL", err) }()

	return s.Service.AuthCodeURL(ctx, teamID)
}

func (s *loggingService) CompleteAuthorization(ctx context.Context, code, state string) (teamID string, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "CompleteAuthorization", err) }()

	return s.Service.CompleteAuthorization(ctx, code, state)
}

func (s *loggingService) IsManaged(ctx context.Context, mapping *database.TeamMapping) (isManaged bool, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "IsManaged", err) }()

	return s.Service.IsManaged(ctx, mapping)
}

func (s *loggingService) CreateApp(ctx context.Context, mapping *database.TeamMapping) (appName string, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "CreateApp", err, ErrMissingPlatformToken) }()

	return s.Service.CreateApp(ctx, mapping)
}

func (s *loggingService) CheckReadiness(ctx context.Context, mapping *database.TeamMapping) (readiness Readiness, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "CheckReadiness", err, ErrMissingPlatformToken, ErrNotManaged) }()

	return s.Service.CheckReadiness(ctx, mapping)
}

func (s *loggingService) GetConfigVar(ctx context.Context, mapping *database.TeamMapping, key string) (value string, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "GetConfigVar", err, ErrMissingPlatformToken, ErrNotManaged) }()

	return s.Service.GetConfigVar(ctx, mapping, key)
}

func (s *loggingService) SetConfigVars(ctx context.Context, mapping *database.TeamMapping, configVars map[string]string) (err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "SetConfigVars", err, ErrMissingPlatformToken, ErrNotManaged) }()

	return s.Service.SetConfigVars(ctx, mapping, configVars)
}

func (s *loggingService) Scale(ctx context.Context, mapping *database.TeamMapping, quantity int) (err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "Scale", err, ErrMissingPlatformToken, ErrNotManaged) }()

	return s.Service.Scale(ctx, mapping, quantity)
}

package database

import (
	"time"

	"github.com/albumlist/albumlist-relay/pkg/api"
)

// TeamMapping is the single row kept per Slack team
type TeamMapping struct {
	TeamID               string
	Target               api.Target
	BotToken             string
	PlatformToken        string
	PlatformRefreshToken string
	InsertedAt           *time.Time
	UpdatedAt            *time.Time
}

// HasTarget is false until the team registers a url or provisions an app
func (m *TeamMapping) HasTarget() bool {
	return m != nil && m.Target != nil
}

// HasBotToken is false for teams that haven't completed the Slack install
func (m *TeamMapping) HasBotToken() bool {
	return m != nil && m.BotToken != ""
}

// HasPlatformToken is false for teams that haven't authorized platform access
func (m *TeamMapping) HasPlatformToken() bool {
	return m != nil && m.PlatformToken != ""
}

// IsManaged returns true when the target is a platform app name rather than a url
func (m *TeamMapping) IsManaged() bool {
	if m == nil {
		return false
	}
	_, ok := m.Target.(api.ManagedTarget)
	return ok
}

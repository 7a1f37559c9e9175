package slackapi

import "errors"

var (
	// ErrMissingCode is returned when the oauth redirect carries no code
	ErrMissingCode = errors.New("oauth code is missing")

	// ErrIncompleteInstallation is returned when Slack doesn't hand out a team and bot token
	ErrIncompleteInstallation = errors.New("oauth response lacks team or access token")

	// ErrMissingBotToken is returned when a call requires a bot token the team doesn't have
	ErrMissingBotToken = errors.New("bot token is missing")
)

// Installation is the result of a team adding the app to Slack
type Installation struct {
	TeamID   string
	BotToken string
}

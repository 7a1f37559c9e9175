package slackapi

import (
	"context"
	"fmt"

	"github.com/albumlist/albumlist-relay/pkg/api"
	"github.com/pkg/errors"
	"github.com/sethgrid/pester"
	"github.com/slack-go/slack"
)

// Client is the interface for communicating with the Slack api
//
//go:generate mockgen -package=slackapi -destination ./mock.go -source=client.go
type Client interface {
	ExchangeOAuthCode(ctx context.Context, code string) (installation *Installation, err error)
	GetTeamURL(ctx context.Context, botToken string) (teamURL string, err error)
	IsAdmin(ctx context.Context, botToken, userID string) (isAdmin bool, err error)
}

// NewClient returns a slackapi.Client to communicate with the Slack API
func NewClient(config *api.APIConfig) Client {
	return &client{
		config:     config,
		httpClient: api.NewHTTPClient(config.Integrations.Slack.RequestTimeout()),
		apiURL:     slack.APIURL,
	}
}

type client struct {
	config     *api.APIConfig
	httpClient *pester.Client
	apiURL     string
}

// ExchangeOAuthCode completes the v2 install flow and returns the bot token for the installing team
func (c *client) ExchangeOAuthCode(ctx context.Context, code string) (installation *Installation, err error) {
	if code == "" {
		return nil, ErrMissingCode
	}

	slackConfig := c.config.Integrations.Slack
	response, err := slack.GetOAuthV2ResponseContext(ctx, c.httpClient, slackConfig.ClientID, slackConfig.ClientSecret, code, slackConfig.RedirectURL(c.config.APIServer.BaseURL))
	if err != nil {
		return nil, errors.Wrap(err, "Exchanging Slack oauth code failed")
	}

	if response.Team.ID == "" || response.AccessToken == "" {
		return nil, ErrIncompleteInstallation
	}

	return &Installation{
		TeamID:   response.Team.ID,
		BotToken: response.AccessToken,
	}, nil
}

// GetTeamURL returns the web url of the team the bot token belongs to
func (c *client) GetTeamURL(ctx context.Context, botToken string) (teamURL string, err error) {
	teamInfo, err := c.botClient(botToken).GetTeamInfoContext(ctx)
	if err != nil {
		return "", errors.Wrap(err, "Retrieving Slack team info failed")
	}

	return fmt.Sprintf("https://%v.slack.com", teamInfo.Domain), nil
}

// IsAdmin returns true if the user is a workspace admin
func (c *client) IsAdmin(ctx context.Context, botToken, userID string) (isAdmin bool, err error) {
	if botToken == "" {
		return false, ErrMissingBotToken
	}

	user, err := c.botClient(botToken).GetUserInfoContext(ctx, userID)
	if err != nil {
		return false, errors.Wrapf(err, "Retrieving Slack user info for %v failed", userID)
	}

	return user.IsAdmin, nil
}

func (c *client) botClient(botToken string) *slack.Client {
	return slack.New(botToken, slack.OptionHTTPClient(c.httpClient), slack.OptionAPIURL(c.apiURL))
}

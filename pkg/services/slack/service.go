package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/albumlist/albumlist-relay/pkg/api"
	"github.com/albumlist/albumlist-relay/pkg/clients/database"
	"github.com/albumlist/albumlist-relay/pkg/clients/slackapi"
	"github.com/albumlist/albumlist-relay/pkg/clients/targetapi"
	"github.com/albumlist/albumlist-relay/pkg/services/heroku"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	slackgo "github.com/slack-go/slack"
)

const (
	createCallbackPrefix = "create_list_"
	deleteCallbackPrefix = "delete_list_"

	aotdChannelConfigVar = "AOTD_CHANNEL_ID"

	fallbackTeamURL = "https://app.slack.com"
)

var channelMentionRegex = regexp.MustCompile(`^<#(C[0-9A-Z]+)(?:\|[^>]*)?>$`)

// Service answers /albumlist commands and relays everything else to the team's albumlist
//
//go:generate mockgen -package=slack -destination ./mock.go -source=service.go
type Service interface {
	HandleCommand(ctx context.Context, request CommandRequest) (response *Response, err error)
	HandleInteraction(ctx context.Context, callback slackgo.InteractionCallback, subpath string, form url.Values) (response *Response, err error)
	RouteToTarget(ctx context.Context, teamID, subpath string, form url.Values) (response *Response, err error)
	RouteEvent(ctx context.Context, teamID string, event []byte) (err error)
	CompleteInstall(ctx context.Context, code string) (teamURL string, err error)
	Ping(ctx context.Context, botToken string) (err error)
}

// NewService returns a slack.Service
func NewService(config *api.APIConfig, databaseClient database.Client, slackapiClient slackapi.Client, targetapiClient targetapi.Client, herokuService heroku.Service) Service {
	return &service{
		config:          config,
		databaseClient:  databaseClient,
		slackapiClient:  slackapiClient,
		targetapiClient: targetapiClient,
		herokuService:   herokuService,
	}
}

type service struct {
	config          *api.APIConfig
	databaseClient  database.Client
	slackapiClient  slackapi.Client
	targetapiClient targetapi.Client
	herokuService   heroku.Service
}

// HandleCommand authorizes the invoking user as a team admin and dispatches the command
func (s *service) HandleCommand(ctx context.Context, request CommandRequest) (response *Response, err error) {
	mapping, err := s.databaseClient.GetTeamMapping(ctx, request.TeamID)
	if errors.Is(err, database.ErrTeamNotFound) {
		return s.installPrompt(), nil
	}
	if err != nil {
		return textResponse(msgFailed), err
	}
	if !mapping.HasBotToken() {
		return s.installPrompt(), nil
	}

	isAdmin, err := s.slackapiClient.IsAdmin(ctx, mapping.BotToken, request.UserID)
	if err != nil {
		return textResponse(msgNotAuthorised), err
	}
	if !isAdmin {
		log.Info().Str("team", request.TeamID).Str("user", request.UserID).Msg("Rejected command from non-admin user")
		return textResponse(msgNotAuthorised), nil
	}

	command, args := parseCommand(request.Text)
	inv := invocation{
		request: request,
		mapping: mapping,
		args:    args,
	}

	if platformCommands[command] && !s.config.Integrations.Heroku.Enable {
		return textResponse(msgPlatformDisabled), nil
	}

	if handler, ok := localCommands[command]; ok {
		log.Debug().Str("team", request.TeamID).Str("command", string(command)).Msg("Handling albumlist command")
		return handler(s, ctx, inv)
	}

	if subpath, ok := forwardedCommands[command]; ok {
		form := cloneForm(request.Form)
		form.Set("text", strings.Join(args, " "))
		return s.forward(ctx, mapping, subpath, form)
	}

	return textResponse(msgNoSuchCommand), nil
}

// HandleInteraction resolves create and delete confirmations; any other callback belongs to the albumlist
func (s *service) HandleInteraction(ctx context.Context, callback slackgo.InteractionCallback, subpath string, form url.Values) (response *Response, err error) {
	teamID := callback.Team.ID
	confirmed := isConfirmed(callback)

	switch callback.CallbackID {
	case createCallbackPrefix + teamID:
		if !confirmed {
			return textResponse(msgOK), nil
		}
		if !s.config.Integrations.Heroku.Enable {
			return textResponse(msgPlatformDisabled), nil
		}
		return s.confirmCreate(ctx, teamID)

	case deleteCallbackPrefix + teamID:
		if !confirmed {
			return textResponse(msgOK), nil
		}
		err = s.databaseClient.DeleteTeamMapping(ctx, teamID)
		if err != nil {
			return textResponse(msgFailed), err
		}
		log.Info().Str("team", teamID).Msg("Removed team mapping")
		return textResponse(msgUnregisteredConfirmed), nil
	}

	return s.RouteToTarget(ctx, teamID, subpath, form)
}

// RouteToTarget forwards a Slack request to the team's albumlist as is
func (s *service) RouteToTarget(ctx context.Context, teamID, subpath string, form url.Values) (response *Response, err error) {
	mapping, err := s.databaseClient.GetTeamMapping(ctx, teamID)
	if errors.Is(err, database.ErrTeamNotFound) {
		return textResponse(msgNotRegistered), nil
	}
	if err != nil {
		return textResponse(msgFailed), err
	}

	return s.forward(ctx, mapping, subpath, form)
}

// RouteEvent forwards an events api callback to the team's albumlist; teams without a reachable albumlist are skipped
func (s *service) RouteEvent(ctx context.Context, teamID string, event []byte) (err error) {
	mapping, err := s.databaseClient.GetTeamMapping(ctx, teamID)
	if errors.Is(err, database.ErrTeamNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	target, ok := mapping.Target.(api.URLTarget)
	if !ok {
		log.Debug().Str("team", teamID).Msg("No reachable albumlist for event, skipping")
		return nil
	}

	return s.targetapiClient.ForwardEvent(ctx, target, event)
}

// CompleteInstall stores the bot token of a team that installed the Slack app and returns the team's Slack url
func (s *service) CompleteInstall(ctx context.Context, code string) (teamURL string, err error) {
	installation, err := s.slackapiClient.ExchangeOAuthCode(ctx, code)
	if err != nil {
		return "", errors.Wrap(ErrExchangeFailed, err.Error())
	}

	mapping, err := s.databaseClient.GetTeamMapping(ctx, installation.TeamID)
	switch {
	case errors.Is(err, database.ErrTeamNotFound):
		err = s.databaseClient.InsertTeamMapping(ctx, installation.TeamID, installation.BotToken)
		if err != nil {
			return "", errors.Wrap(ErrTeamNotStored, err.Error())
		}
		log.Info().Str("team", installation.TeamID).Msg("Added team")

	case err != nil:
		return "", errors.Wrap(ErrTeamNotStored, err.Error())

	default:
		err = s.databaseClient.UpdateBotToken(ctx, installation.TeamID, installation.BotToken)
		if err != nil {
			return "", errors.Wrap(ErrTeamNotStored, err.Error())
		}
		mapping.BotToken = installation.BotToken
		log.Info().Str("team", installation.TeamID).Msg("Updated bot token for team")

		s.pushBotToken(ctx, mapping)
	}

	teamURL, err = s.slackapiClient.GetTeamURL(ctx, installation.BotToken)
	if err != nil {
		log.Warn().Err(err).Str("team", installation.TeamID).Msg("Retrieving team url failed, redirecting to Slack instead")
		return fallbackTeamURL, nil
	}

	return teamURL, nil
}

// Ping runs the check on behalf of an albumlist that knows its bot token
func (s *service) Ping(ctx context.Context, botToken string) (err error) {
	mapping, err := s.databaseClient.GetTeamMappingByBotToken(ctx, botToken)
	if err != nil {
		return err
	}

	response, err := s.check(ctx, mapping)
	if err != nil {
		return err
	}

	log.Debug().Str("team", mapping.TeamID).Str("result", response.Text).Msg("Pinged albumlist")

	return nil
}

func (s *service) help(ctx context.Context, inv invocation) (*Response, error) {
	return textResponse(commandList()), nil
}

func (s *service) getTarget(ctx context.Context, inv invocation) (*Response, error) {
	if !inv.mapping.HasTarget() {
		return textResponse(msgNotRegistered), nil
	}
	return textResponse(api.FormatTarget(inv.mapping.Target)), nil
}

func (s *service) getName(ctx context.Context, inv invocation) (*Response, error) {
	if !inv.mapping.HasTarget() {
		return textResponse(msgNotRegistered), nil
	}

	isManaged, err := s.herokuService.IsManaged(ctx, inv.mapping)
	if err != nil {
		return textResponse(msgFailed), err
	}
	if !isManaged {
		return textResponse(msgNotManaged), nil
	}

	return textResponse(api.AppName(inv.mapping.Target)), nil
}

func (s *service) register(ctx context.Context, inv invocation) (*Response, error) {
	links := api.ScrapeLinks(strings.Join(inv.args, " "))
	if len(links) == 0 {
		return textResponse(msgProvideURL), nil
	}
	if inv.mapping.HasTarget() {
		return textResponse(msgAlreadyRegistered), nil
	}

	target := api.URLTarget(links[0])
	err := s.databaseClient.UpdateTarget(ctx, inv.mapping.TeamID, target)
	if err != nil {
		return textResponse(msgRegisterFailed), err
	}

	log.Info().Str("team", inv.mapping.TeamID).Str("target", target.String()).Msg("Registered albumlist")

	return textResponse(msgRegistered), nil
}

func (s *service) create(ctx context.Context, inv invocation) (*Response, error) {
	if !inv.mapping.HasPlatformToken() {
		return textResponse(msgMissingPlatformOAuth), nil
	}
	if inv.mapping.HasTarget() {
		return confirmationResponse(msgExistingFound, "Replace existing list?", createCallbackPrefix+inv.mapping.TeamID, inv.mapping.TeamID), nil
	}

	_, err := s.herokuService.CreateApp(ctx, inv.mapping)
	if err != nil {
		return textResponse(msgFailed), err
	}

	return textResponse(msgCreating), nil
}

func (s *service) remove(ctx context.Context, inv invocation) (*Response, error) {
	if inv.mapping.HasTarget() {
		return confirmationResponse(msgRemoveWarning, "Remove albumlist?", deleteCallbackPrefix+inv.mapping.TeamID, inv.mapping.TeamID), nil
	}

	err := s.databaseClient.DeleteTeamMapping(ctx, inv.mapping.TeamID)
	if err != nil {
		return textResponse(msgFailed), err
	}

	log.Info().Str("team", inv.mapping.TeamID).Msg("Removed team mapping")

	return textResponse(msgUnregistered), nil
}

func (s *service) checkCommand(ctx context.Context, inv invocation) (*Response, error) {
	return s.check(ctx, inv.mapping)
}

func (s *service) scale(ctx context.Context, inv invocation) (*Response, error) {
	if len(inv.args) != 1 {
		return textResponse(msgScaleUsage), nil
	}
	quantity, err := strconv.Atoi(inv.args[0])
	if err != nil || quantity < 0 {
		return textResponse(msgScaleUsage), nil
	}

	err = s.herokuService.Scale(ctx, inv.mapping, quantity)
	if response, ok := platformErrorResponse(err); ok {
		return response, err
	}

	return textResponse(fmt.Sprintf(msgScaled, quantity)), nil
}

func (s *service) aotdChannel(ctx context.Context, inv invocation) (*Response, error) {
	if len(inv.args) == 0 {
		channel, err := s.herokuService.GetConfigVar(ctx, inv.mapping, aotdChannelConfigVar)
		if response, ok := platformErrorResponse(err); ok {
			return response, err
		}
		if channel == "" {
			return textResponse(msgAOTDNotSet), nil
		}
		return textResponse(channel), nil
	}

	err := s.herokuService.SetConfigVars(ctx, inv.mapping, map[string]string{aotdChannelConfigVar: channelID(inv.args[0])})
	if response, ok := platformErrorResponse(err); ok {
		return response, err
	}

	return textResponse(msgAOTDUpdated), nil
}

func (s *service) slackAuth(ctx context.Context, inv invocation) (*Response, error) {
	return s.installPrompt(), nil
}

func (s *service) herokuAuth(ctx context.Context, inv invocation) (*Response, error) {
	authURL, err := s.herokuService.AuthCodeURL(ctx, inv.mapping.TeamID)
	if err != nil {
		return textResponse(msgFailed), err
	}

	return linkResponse(msgPlatformAuth, "Heroku", "Create OAuth token", authURL), nil
}

// check probes a url target or advances a managed one towards ready
func (s *service) check(ctx context.Context, mapping *database.TeamMapping) (*Response, error) {
	switch target := mapping.Target.(type) {
	case api.URLTarget:
		statusCode, err := s.targetapiClient.Probe(ctx, target)
		if errors.Is(err, targetapi.ErrTimeout) {
			return textResponse(msgTimedOut), err
		}
		if err != nil {
			return textResponse(msgFailed), err
		}
		if statusCode >= http.StatusBadRequest {
			return textResponse(fmt.Sprintf("%v (%v)", msgFailed, statusCode)), nil
		}
		return textResponse(msgOK), nil

	case api.ManagedTarget:
		if !mapping.HasPlatformToken() {
			return textResponse(msgMissingPlatformOAuth), nil
		}
		readiness, err := s.herokuService.CheckReadiness(ctx, mapping)
		if err != nil {
			return textResponse(msgCheckAgain), err
		}
		if readiness != heroku.ReadinessReady {
			return textResponse(msgCheckAgain), nil
		}
		return textResponse(msgOK), nil
	}

	return textResponse(msgNotRegistered), nil
}

// forward relays to the team's albumlist; only url targets are reachable
func (s *service) forward(ctx context.Context, mapping *database.TeamMapping, subpath string, form url.Values) (*Response, error) {
	if !mapping.HasTarget() {
		return textResponse(msgNotRegistered), nil
	}
	target, ok := mapping.Target.(api.URLTarget)
	if !ok {
		return textResponse(msgNotReady), nil
	}

	log.Debug().Str("team", mapping.TeamID).Str("subpath", subpath).Msg("Forwarding to albumlist")

	response, err := s.targetapiClient.Forward(ctx, target, subpath, form)
	if errors.Is(err, targetapi.ErrTimeout) {
		return textResponse(msgTimedOut), err
	}
	if err != nil {
		return textResponse(msgFailed), err
	}

	if response.IsJSON() {
		return &Response{Raw: json.RawMessage(response.Body)}, nil
	}

	return textResponse(string(response.Body)), nil
}

func (s *service) confirmCreate(ctx context.Context, teamID string) (*Response, error) {
	mapping, err := s.databaseClient.GetTeamMapping(ctx, teamID)
	if errors.Is(err, database.ErrTeamNotFound) {
		return textResponse(msgTeamNotAuthorised), nil
	}
	if err != nil {
		return textResponse(msgFailed), err
	}
	if !mapping.HasBotToken() {
		return textResponse(msgTeamNotAuthorised), nil
	}
	if !mapping.HasPlatformToken() {
		return textResponse(msgMissingPlatformToken), nil
	}

	_, err = s.herokuService.CreateApp(ctx, mapping)
	if err != nil {
		return textResponse(msgFailed), err
	}

	return textResponse(msgCreating), nil
}

// pushBotToken hands a reinstalled team's new bot token to its managed albumlist
func (s *service) pushBotToken(ctx context.Context, mapping *database.TeamMapping) {
	isManaged, err := s.herokuService.IsManaged(ctx, mapping)
	if err != nil || !isManaged {
		return
	}

	err = s.herokuService.SetConfigVars(ctx, mapping, map[string]string{
		"SLACK_OAUTH_TOKEN": mapping.BotToken,
		"APP_TOKEN_BOT":     s.config.APIServer.PrimaryAppToken(),
		"ALBUMLISTBOT_URL":  s.config.APIServer.BaseURL,
	})
	if err != nil {
		log.Warn().Err(err).Str("team", mapping.TeamID).Msg("Pushing bot token to managed albumlist failed")
	}
}

func (s *service) installPrompt() *Response {
	installURL := s.config.Integrations.Slack.InstallURL(s.config.APIServer.BaseURL)
	return linkResponse(msgInstall, "Slack", "Add Albumlistbot to Slack", installURL)
}

// platformErrorResponse maps errors of the platform service to a reply; ok is false when there's no error
func platformErrorResponse(err error) (response *Response, ok bool) {
	switch {
	case err == nil:
		return nil, false
	case errors.Is(err, heroku.ErrMissingPlatformToken):
		return textResponse(msgMissingPlatformOAuth), true
	case errors.Is(err, heroku.ErrNotManaged):
		return textResponse(msgNotManaged), true
	}
	return textResponse(msgFailed), true
}

func isConfirmed(callback slackgo.InteractionCallback) bool {
	for _, action := range callback.ActionCallback.AttachmentActions {
		if action != nil && action.Name == "yes" {
			return true
		}
	}
	return false
}

// channelID accepts both a bare channel id and an escaped channel mention
func channelID(arg string) string {
	if matches := channelMentionRegex.FindStringSubmatch(arg); len(matches) > 1 {
		return matches[1]
	}
	return arg
}

func cloneForm(form url.Values) url.Values {
	clone := url.Values{}
	for k, v := range form {
		clone[k] = append([]string(nil), v...)
	}
	return clone
}

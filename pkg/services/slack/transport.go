package slack

import (
	"bytes"
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/albumlist/albumlist-relay/pkg/api"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	slackgo "github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

// NewHandler returns a slack.Handler
func NewHandler(config *api.APIConfig, slackService Service) Handler {
	return Handler{
		config:       config,
		slackService: slackService,
	}
}

type Handler struct {
	config       *api.APIConfig
	slackService Service
}

// Handle answers the /albumlist slash command
func (h *Handler) Handle(c *gin.Context) {

	// https://api.slack.com/interactivity/slash-commands

	if !h.hasValidSignature(c) {
		c.String(http.StatusForbidden, msgNotAuthorised)
		return
	}

	slashCommand, err := slackgo.SlashCommandParse(c.Request)
	if err != nil {
		log.Error().Err(err).Msg("Parsing form data from Slack command failed")
		c.String(http.StatusBadRequest, "Parsing form data from Slack command failed")
		return
	}

	response, _ := h.slackService.HandleCommand(c.Request.Context(), NewCommandRequest(slashCommand, c.Request.PostForm))

	writeResponse(c, response)
}

// HandleRoute resolves confirmation callbacks and forwards anything else to the team's albumlist at ?uri=
func (h *Handler) HandleRoute(c *gin.Context) {

	if !h.hasValidSignature(c) {
		c.String(http.StatusForbidden, msgNotAuthorised)
		return
	}

	err := c.Request.ParseForm()
	if err != nil {
		log.Error().Err(err).Msg("Parsing form data for routing failed")
		c.String(http.StatusBadRequest, "Parsing form data for routing failed")
		return
	}

	subpath := c.Query("uri")
	form := c.Request.PostForm

	if payload := form.Get("payload"); payload != "" {
		var callback slackgo.InteractionCallback
		err = json.Unmarshal([]byte(payload), &callback)
		if err != nil {
			log.Error().Err(err).Msg("Unmarshalling interactive payload failed")
			c.String(http.StatusBadRequest, "Unmarshalling interactive payload failed")
			return
		}

		response, _ := h.slackService.HandleInteraction(c.Request.Context(), callback, subpath, form)
		writeResponse(c, response)
		return
	}

	response, _ := h.slackService.RouteToTarget(c.Request.Context(), form.Get("team_id"), subpath, form)

	writeResponse(c, response)
}

// HandleEvents relays events api callbacks; Slack only needs a fast acknowledgement
func (h *Handler) HandleEvents(c *gin.Context) {

	// https://api.slack.com/apis/connections/events-api

	if retryNum, _ := strconv.Atoi(c.GetHeader("X-Slack-Retry-Num")); retryNum > 1 {
		c.String(http.StatusOK, "")
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Error().Err(err).Msg("Reading event body failed")
		c.String(http.StatusOK, "")
		return
	}

	var event slackevents.EventsAPICallbackEvent
	err = json.Unmarshal(body, &event)
	if err != nil {
		log.Warn().Err(err).Msg("Unmarshalling event failed")
		c.String(http.StatusBadRequest, "")
		return
	}

	if event.Type == slackevents.URLVerification {
		var verification slackevents.EventsAPIURLVerificationEvent
		err = json.Unmarshal(body, &verification)
		if err != nil {
			c.String(http.StatusBadRequest, "")
			return
		}
		c.JSON(http.StatusOK, slackevents.ChallengeResponse{Challenge: verification.Challenge})
		return
	}

	if !h.config.APIServer.HasAppToken(event.Token) {
		log.Warn().Str("team", event.TeamID).Msg("Event with unknown app token ignored")
		c.String(http.StatusOK, "")
		return
	}

	if err := h.slackService.RouteEvent(c.Request.Context(), event.TeamID, body); err != nil {
		log.Warn().Err(err).Str("team", event.TeamID).Msg("Routing event to albumlist failed")
	}

	c.String(http.StatusOK, "")
}

// HandleInstall completes the Slack app install and sends the user to their workspace
func (h *Handler) HandleInstall(c *gin.Context) {

	teamURL, err := h.slackService.CompleteInstall(c.Request.Context(), c.Query("code"))
	if errors.Is(err, ErrTeamNotStored) {
		c.String(http.StatusInternalServerError, "Failed to add team")
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, msgFailed)
		return
	}

	c.Redirect(http.StatusFound, teamURL)
}

// hasValidSignature verifies the signing secret signature and restores the body for later parsing
func (h *Handler) hasValidSignature(c *gin.Context) bool {
	if h.config.APIServer.SkipSignatureCheck {
		return true
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Error().Err(err).Msg("Reading request body for signature check failed")
		return false
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	if c.Request.Header.Get("X-Slack-Signature") == "" && h.config.Integrations.Slack.VerificationToken != "" {
		return hasValidVerificationToken(body, h.config.Integrations.Slack.VerificationToken)
	}

	verifier, err := slackgo.NewSecretsVerifier(c.Request.Header, h.config.Integrations.Slack.SigningSecret)
	if err != nil {
		log.Warn().Err(err).Msg("Slack request is missing signature headers")
		return false
	}

	_, err = verifier.Write(body)
	if err != nil {
		return false
	}

	err = verifier.Ensure()
	if err != nil {
		log.Warn().Err(err).Msg("Slack request signature is invalid")
		return false
	}

	return true
}

// hasValidVerificationToken checks the legacy shared token sent by apps that predate request signing
func hasValidVerificationToken(body []byte, verificationToken string) bool {
	form, err := url.ParseQuery(string(body))
	if err != nil {
		return false
	}

	token := form.Get("token")
	if payload := form.Get("payload"); payload != "" {
		var callback slackgo.InteractionCallback
		if err := json.Unmarshal([]byte(payload), &callback); err != nil {
			return false
		}
		token = callback.Token
	}

	if token == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(token), []byte(verificationToken)) == 1
}

func writeResponse(c *gin.Context, response *Response) {
	switch {
	case response == nil:
		c.String(http.StatusOK, "")
	case response.Message != nil:
		c.JSON(http.StatusOK, response.Message)
	case response.Raw != nil:
		c.Data(http.StatusOK, "application/json", response.Raw)
	default:
		c.String(http.StatusOK, response.Text)
	}
}

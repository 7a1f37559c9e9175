package slack

import (
	"encoding/json"
	"errors"
	"net/url"

	slackgo "github.com/slack-go/slack"
)

var (
	// ErrExchangeFailed is returned when Slack doesn't complete the install
	ErrExchangeFailed = errors.New("Exchanging the install code failed")
	// ErrTeamNotStored is returned when the installing team can't be stored
	ErrTeamNotStored = errors.New("Storing the installing team failed")
)

const (
	msgOK                    = "OK"
	msgFailed                = "Failed"
	msgNotAuthorised         = "Not authorised"
	msgNoSuchCommand         = "No such albumlist command"
	msgNotRegistered         = "No albumlist mapped to this team (admins: use `/albumlist create` to get started)"
	msgNotReady              = "The albumlist isn't reachable yet (admins: use `/albumlist register <url>` or run `/albumlist check` first)"
	msgTimedOut              = "The connection to the albumlist timed out"
	msgProvideURL            = "Provide an URL for the Albumlist"
	msgAlreadyRegistered     = "Team already registered (admins: use `/albumlist remove` first)"
	msgRegisterFailed        = "Team not authed or already registered"
	msgRegistered            = "Registered your Slack team with the provided Albumlist"
	msgMissingPlatformOAuth  = "Missing Heroku OAuth (admins: use `/albumlist heroku`)"
	msgCreating              = "Creating new albumlist..."
	msgExistingFound         = "An existing albumlist was found..."
	msgRemoveWarning         = "Warning! Your albumlist will be removed..."
	msgUnregistered          = "Unregistered the Albumlist for your Slack team (re-add albumlistbot to Slack to use again)"
	msgUnregisteredConfirmed = "Unregistered the Albumlist for your Slack team (admins: use `/albumlist slack` to authenticate again)"
	msgCheckAgain            = "Failed. (admins: try running `/albumlist check` again)"
	msgTeamNotAuthorised     = "Team not authorised"
	msgMissingPlatformToken  = "Missing Heroku OAuth"
	msgNotManaged            = "The albumlist is not managed by Albumlistbot"
	msgAOTDUpdated           = "Updated the channel for album of the day"
	msgAOTDNotSet            = "No channel set for album of the day"
	msgScaleUsage            = "Provide the number of workers (e.g. `/albumlist scale 1`)"
	msgScaled                = "Scaled the albumlist to %v worker dyno(s)"
	msgInstall               = "Click the link to add Albumlistbot to your Slack team"
	msgPlatformAuth          = "Click the link to allow Albumlistbot to manage your Heroku apps"
	msgPlatformDisabled      = "Heroku hosting is not enabled for this Albumlistbot"
)

// CommandRequest is an /albumlist invocation with the form Slack posted
type CommandRequest struct {
	TeamID string
	UserID string
	Text   string
	Form   url.Values
}

// NewCommandRequest keeps the parsed fields next to the raw form so it can be forwarded as is
func NewCommandRequest(command slackgo.SlashCommand, form url.Values) CommandRequest {
	return CommandRequest{
		TeamID: command.TeamID,
		UserID: command.UserID,
		Text:   command.Text,
		Form:   form,
	}
}

// Response is what goes back to Slack; exactly one of the fields is set
type Response struct {
	Text    string
	Message *slackgo.Msg
	Raw     json.RawMessage
}

func textResponse(text string) *Response {
	return &Response{Text: text}
}

func linkResponse(text, fallback, title, titleLink string) *Response {
	return &Response{
		Message: &slackgo.Msg{
			ResponseType: "ephemeral",
			Text:         text,
			Attachments: []slackgo.Attachment{
				{
					Fallback:  fallback,
					Title:     title,
					TitleLink: titleLink,
					Footer:    "Albumlistbot",
				},
			},
		},
	}
}

// confirmationResponse asks to confirm an action that replaces or removes the team's albumlist
func confirmationResponse(text, title, callbackID, teamID string) *Response {
	return &Response{
		Message: &slackgo.Msg{
			ResponseType: "ephemeral",
			Text:         text,
			Attachments: []slackgo.Attachment{
				{
					Fallback:   title,
					Title:      title,
					CallbackID: callbackID,
					Actions: []slackgo.AttachmentAction{
						{Name: "yes", Text: "Yes", Type: "button", Value: teamID},
						{Name: "no", Text: "No", Type: "button", Value: teamID},
					},
				},
			},
		},
	}
}

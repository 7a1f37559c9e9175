package slack

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/albumlist/albumlist-relay/pkg/api"
	"github.com/albumlist/albumlist-relay/pkg/clients/database"
	"github.com/albumlist/albumlist-relay/pkg/clients/slackapi"
	"github.com/albumlist/albumlist-relay/pkg/clients/targetapi"
	"github.com/albumlist/albumlist-relay/pkg/services/heroku"
	gomock "github.com/golang/mock/gomock"
	slackgo "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
)

func TestHandleCommand(t *testing.T) {
	t.Run("PromptsInstallForUnknownTeam", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getTestService(ctrl)
		mocks.databaseClient.EXPECT().GetTeamMapping(gomock.Any(), "T0001").Return(nil, database.ErrTeamNotFound)

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("get"))

		assert.Nil(t, err)
		if assert.NotNil(t, response.Message) {
			assert.Equal(t, msgInstall, response.Message.Text)
			assert.Contains(t, response.Message.Attachments[0].TitleLink, "client_id=1234.5678")
		}
	})

	t.Run("PromptsInstallWhenBotTokenIsMissing", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getTestService(ctrl)
		mocks.databaseClient.EXPECT().GetTeamMapping(gomock.Any(), "T0001").Return(&database.TeamMapping{TeamID: "T0001"}, nil)

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("create"))

		assert.Nil(t, err)
		assert.NotNil(t, response.Message)
	})

	t.Run("RejectsNonAdminWithoutAnyMutation", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getTestService(ctrl)
		mocks.databaseClient.EXPECT().GetTeamMapping(gomock.Any(), "T0001").Return(getMapping(nil, false), nil)
		mocks.slackapiClient.EXPECT().IsAdmin(gomock.Any(), "xoxb-1", "U0001").Return(false, nil)

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("remove"))

		assert.Nil(t, err)
		assert.Equal(t, "Not authorised", response.Text)
	})

	t.Run("RejectsWhenAdminCheckFails", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getTestService(ctrl)
		mocks.databaseClient.EXPECT().GetTeamMapping(gomock.Any(), "T0001").Return(getMapping(nil, false), nil)
		mocks.slackapiClient.EXPECT().IsAdmin(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("invalid_auth"))

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("remove"))

		assert.NotNil(t, err)
		assert.Equal(t, "Not authorised", response.Text)
	})

	t.Run("AnswersFailedWhenMappingCannotBeRead", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getTestService(ctrl)
		mocks.databaseClient.EXPECT().GetTeamMapping(gomock.Any(), "T0001").Return(nil, errors.New("connection refused"))

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("get"))

		assert.NotNil(t, err)
		assert.Equal(t, "Failed", response.Text)
	})

	t.Run("AnswersUnknownCommand", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := getAdminTestService(ctrl, getMapping(nil, false))

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("frobnicate"))

		assert.Nil(t, err)
		assert.Equal(t, "No such albumlist command", response.Text)
	})

	t.Run("HelpListsAllCommandsSorted", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := getAdminTestService(ctrl, getMapping(nil, false))

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("help"))

		assert.Nil(t, err)
		lines := strings.Split(response.Text, "\n")
		assert.Equal(t, len(commands), len(lines))
		assert.Equal(t, "aotd_channel", lines[0])
		assert.Equal(t, "url", lines[len(lines)-1])
	})

	t.Run("GetReturnsTarget", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := getAdminTestService(ctrl, getMapping(api.URLTarget("https://albums.example.com"), false))

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("URL"))

		assert.Nil(t, err)
		assert.Equal(t, "https://albums.example.com", response.Text)
	})

	t.Run("GetWithoutTargetExplainsHowToStart", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := getAdminTestService(ctrl, getMapping(nil, false))

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("get"))

		assert.Nil(t, err)
		assert.Equal(t, msgNotRegistered, response.Text)
	})

	t.Run("RegisterWithoutLinkDoesNotWrite", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getAdminTestService(ctrl, getMapping(nil, false))
		mocks.databaseClient.EXPECT().UpdateTarget(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("register my albumlist"))

		assert.Nil(t, err)
		assert.Equal(t, "Provide an URL for the Albumlist", response.Text)
	})

	t.Run("RegisterStoresFirstLink", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getAdminTestService(ctrl, getMapping(nil, false))
		mocks.databaseClient.EXPECT().UpdateTarget(gomock.Any(), "T0001", api.URLTarget("https://a.example.com")).Return(nil).Times(1)

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("set https://a.example.com or https://b.example.com"))

		assert.Nil(t, err)
		assert.Equal(t, "Registered your Slack team with the provided Albumlist", response.Text)
	})

	t.Run("RegisterIsRejectedWhenTargetIsSet", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getAdminTestService(ctrl, getMapping(api.URLTarget("https://albums.example.com"), false))
		mocks.databaseClient.EXPECT().UpdateTarget(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("register https://other.example.com"))

		assert.Nil(t, err)
		assert.Equal(t, "Team already registered (admins: use `/albumlist remove` first)", response.Text)
	})

	t.Run("RegisterFailureIsGeneric", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getAdminTestService(ctrl, getMapping(nil, false))
		mocks.databaseClient.EXPECT().UpdateTarget(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("pq: deadlock detected"))

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("register https://a.example.com"))

		assert.NotNil(t, err)
		assert.Equal(t, "Team not authed or already registered", response.Text)
	})

	t.Run("CreateWithoutPlatformTokenAsksForOAuth", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getAdminTestService(ctrl, getMapping(nil, false))
		mocks.herokuService.EXPECT().CreateApp(gomock.Any(), gomock.Any()).Times(0)

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("create"))

		assert.Nil(t, err)
		assert.Equal(t, "Missing Heroku OAuth (admins: use `/albumlist heroku`)", response.Text)
	})

	t.Run("CreateWithoutTargetCreatesApp", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getAdminTestService(ctrl, getMapping(nil, true))
		mocks.herokuService.EXPECT().CreateApp(gomock.Any(), gomock.Any()).Return("albumlist-abc", nil).Times(1)

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("create"))

		assert.Nil(t, err)
		assert.Equal(t, "Creating new albumlist...", response.Text)
	})

	t.Run("CreateWithTargetAsksForConfirmation", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getAdminTestService(ctrl, getMapping(api.URLTarget("https://albums.example.com"), true))
		mocks.herokuService.EXPECT().CreateApp(gomock.Any(), gomock.Any()).Times(0)

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("create"))

		assert.Nil(t, err)
		if assert.NotNil(t, response.Message) {
			assert.Equal(t, "An existing albumlist was found...", response.Message.Text)
			assert.Equal(t, "create_list_T0001", response.Message.Attachments[0].CallbackID)
			assert.Equal(t, 2, len(response.Message.Attachments[0].Actions))
		}
	})

	t.Run("RemoveWithTargetAsksForConfirmation", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getAdminTestService(ctrl, getMapping(api.URLTarget("https://albums.example.com"), false))
		mocks.databaseClient.EXPECT().DeleteTeamMapping(gomock.Any(), gomock.Any()).Times(0)

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("remove"))

		assert.Nil(t, err)
		if assert.NotNil(t, response.Message) {
			assert.Equal(t, "Warning! Your albumlist will be removed...", response.Message.Text)
			assert.Equal(t, "delete_list_T0001", response.Message.Attachments[0].CallbackID)
		}
	})

	t.Run("RemoveWithoutTargetDeletesMapping", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getAdminTestService(ctrl, getMapping(nil, false))
		mocks.databaseClient.EXPECT().DeleteTeamMapping(gomock.Any(), "T0001").Return(nil).Times(1)

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("remove"))

		assert.Nil(t, err)
		assert.Equal(t, "Unregistered the Albumlist for your Slack team (re-add albumlistbot to Slack to use again)", response.Text)
	})

	t.Run("CheckAnswersOKForReachableTarget", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getAdminTestService(ctrl, getMapping(api.URLTarget("https://albums.example.com"), false))
		mocks.targetapiClient.EXPECT().Probe(gomock.Any(), api.URLTarget("https://albums.example.com")).Return(200, nil)

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("check"))

		assert.Nil(t, err)
		assert.Equal(t, "OK", response.Text)
	})

	t.Run("CheckIncludesStatusCodeOfFailingTarget", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getAdminTestService(ctrl, getMapping(api.URLTarget("https://albums.example.com"), false))
		mocks.targetapiClient.EXPECT().Probe(gomock.Any(), gomock.Any()).Return(503, nil)

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("check"))

		assert.Nil(t, err)
		assert.Equal(t, "Failed (503)", response.Text)
	})

	t.Run("CheckReportsTimeoutDistinctly", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getAdminTestService(ctrl, getMapping(api.URLTarget("https://albums.example.com"), false))
		mocks.targetapiClient.EXPECT().Probe(gomock.Any(), gomock.Any()).Return(0, targetapi.ErrTimeout)

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("check"))

		assert.ErrorIs(t, err, targetapi.ErrTimeout)
		assert.Equal(t, "The connection to the albumlist timed out", response.Text)
	})

	t.Run("CheckAnswersOKWhenManagedAppBecomesReady", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getAdminTestService(ctrl, getMapping(api.ManagedTarget("albumlist-abc"), true))
		mocks.herokuService.EXPECT().CheckReadiness(gomock.Any(), gomock.Any()).Return(heroku.ReadinessReady, nil)

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("check"))

		assert.Nil(t, err)
		assert.Equal(t, "OK", response.Text)
	})

	t.Run("CheckAsksToRetryWhileManagedAppIsStarting", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getAdminTestService(ctrl, getMapping(api.ManagedTarget("albumlist-abc"), true))
		mocks.herokuService.EXPECT().CheckReadiness(gomock.Any(), gomock.Any()).Return(heroku.ReadinessInProgress, nil)

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("check"))

		assert.Nil(t, err)
		assert.Equal(t, "Failed. (admins: try running `/albumlist check` again)", response.Text)
	})

	t.Run("ForwardedCommandReplacesTextWithArguments", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getAdminTestService(ctrl, getMapping(api.URLTarget("https://albums.example.com"), false))
		mocks.targetapiClient.EXPECT().Forward(gomock.Any(), api.URLTarget("https://albums.example.com"), "process/covers", gomock.Any()).
			DoAndReturn(func(ctx context.Context, target api.URLTarget, subpath string, form url.Values) (*targetapi.Response, error) {
				assert.Equal(t, "force now", form.Get("text"))
				assert.Equal(t, "T0001", form.Get("team_id"))
				return &targetapi.Response{StatusCode: 200, Body: []byte("Processing covers...")}, nil
			})

		request := getCommandRequest("process_covers force now")

		// act
		response, err := service.HandleCommand(context.Background(), request)

		assert.Nil(t, err)
		assert.Equal(t, "Processing covers...", response.Text)
		assert.Equal(t, "process_covers force now", request.Form.Get("text"))
	})

	t.Run("ForwardedCommandRelaysJsonUnchanged", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		body := `{"response_type": "in_channel", "text": "42 albums"}`
		service, mocks := getAdminTestService(ctrl, getMapping(api.URLTarget("https://albums.example.com"), false))
		mocks.targetapiClient.EXPECT().Forward(gomock.Any(), gomock.Any(), "count", gomock.Any()).Return(&targetapi.Response{StatusCode: 200, ContentType: "application/json", Body: []byte(body)}, nil)

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("count"))

		assert.Nil(t, err)
		assert.Equal(t, body, string(response.Raw))
	})

	t.Run("ForwardedCommandReportsTimeout", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getAdminTestService(ctrl, getMapping(api.URLTarget("https://albums.example.com"), false))
		mocks.targetapiClient.EXPECT().Forward(gomock.Any(), gomock.Any(), "clear_cache", gomock.Any()).Return(nil, targetapi.ErrTimeout).Times(1)

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("clear_cache"))

		assert.ErrorIs(t, err, targetapi.ErrTimeout)
		assert.Equal(t, "The connection to the albumlist timed out", response.Text)
	})

	t.Run("ForwardedCommandIsNotSentToManagedAppBeforeItIsReady", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getAdminTestService(ctrl, getMapping(api.ManagedTarget("albumlist-abc"), true))
		mocks.targetapiClient.EXPECT().Forward(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("count"))

		assert.Nil(t, err)
		assert.Equal(t, msgNotReady, response.Text)
	})

	t.Run("ScaleWithoutQuantityShowsUsage", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getAdminTestService(ctrl, getMapping(api.URLTarget("https://albumlist-abc.herokuapp.com"), true))
		mocks.herokuService.EXPECT().Scale(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("scale lots"))

		assert.Nil(t, err)
		assert.Equal(t, msgScaleUsage, response.Text)
	})

	t.Run("ScaleSetsWorkerQuantity", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getAdminTestService(ctrl, getMapping(api.URLTarget("https://albumlist-abc.herokuapp.com"), true))
		mocks.herokuService.EXPECT().Scale(gomock.Any(), gomock.Any(), 2).Return(nil)

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("scale 2"))

		assert.Nil(t, err)
		assert.Equal(t, "Scaled the albumlist to 2 worker dyno(s)", response.Text)
	})

	t.Run("ScaleOfUnmanagedAlbumlistIsRefused", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getAdminTestService(ctrl, getMapping(api.URLTarget("https://albums.example.com"), true))
		mocks.herokuService.EXPECT().Scale(gomock.Any(), gomock.Any(), 1).Return(heroku.ErrNotManaged)

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("scale 1"))

		assert.ErrorIs(t, err, heroku.ErrNotManaged)
		assert.Equal(t, msgNotManaged, response.Text)
	})

	t.Run("AOTDChannelStoresIdOfChannelMention", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getAdminTestService(ctrl, getMapping(api.URLTarget("https://albumlist-abc.herokuapp.com"), true))
		mocks.herokuService.EXPECT().SetConfigVars(gomock.Any(), gomock.Any(), map[string]string{"AOTD_CHANNEL_ID": "C024BE91L"}).Return(nil)

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("aotd_channel <#C024BE91L|announcements>"))

		assert.Nil(t, err)
		assert.Equal(t, "Updated the channel for album of the day", response.Text)
	})

	t.Run("AOTDChannelWithoutArgumentsReturnsCurrentChannel", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getAdminTestService(ctrl, getMapping(api.URLTarget("https://albumlist-abc.herokuapp.com"), true))
		mocks.herokuService.EXPECT().GetConfigVar(gomock.Any(), gomock.Any(), "AOTD_CHANNEL_ID").Return("C024BE91L", nil)

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("aotd_channel"))

		assert.Nil(t, err)
		assert.Equal(t, "C024BE91L", response.Text)
	})

	t.Run("HerokuReturnsAuthorizationLink", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getAdminTestService(ctrl, getMapping(nil, false))
		mocks.herokuService.EXPECT().AuthCodeURL(gomock.Any(), "T0001").Return("https://id.heroku.com/oauth/authorize?state=abc", nil)

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("heroku"))

		assert.Nil(t, err)
		if assert.NotNil(t, response.Message) {
			assert.Equal(t, "Click the link to allow Albumlistbot to manage your Heroku apps", response.Message.Text)
			assert.Equal(t, "Create OAuth token", response.Message.Attachments[0].Title)
			assert.Equal(t, "https://id.heroku.com/oauth/authorize?state=abc", response.Message.Attachments[0].TitleLink)
		}
	})

	t.Run("NameReturnsManagedAppName", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getAdminTestService(ctrl, getMapping(api.URLTarget("https://albumlist-abc.herokuapp.com"), true))
		mocks.herokuService.EXPECT().IsManaged(gomock.Any(), gomock.Any()).Return(true, nil)

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("name"))

		assert.Nil(t, err)
		assert.Equal(t, "albumlist-abc", response.Text)
	})

	t.Run("RefusesPlatformCommandsWhileHerokuIsDisabled", func(t *testing.T) {

		for _, text := range []string{"heroku", "create", "scale 2", "aotd_channel <#C0001>", "name"} {
			ctrl := gomock.NewController(t)

			service, mocks := getPlatformDisabledTestService(ctrl)
			mocks.databaseClient.EXPECT().GetTeamMapping(gomock.Any(), "T0001").Return(getMapping(api.URLTarget("https://albums.example.com"), true), nil)
			mocks.slackapiClient.EXPECT().IsAdmin(gomock.Any(), "xoxb-1", "U0001").Return(true, nil)

			// act
			response, err := service.HandleCommand(context.Background(), getCommandRequest(text))

			assert.Nil(t, err, text)
			assert.Equal(t, msgPlatformDisabled, response.Text, text)

			ctrl.Finish()
		}
	})

	t.Run("KeepsUrlCommandsWhileHerokuIsDisabled", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getPlatformDisabledTestService(ctrl)
		mocks.databaseClient.EXPECT().GetTeamMapping(gomock.Any(), "T0001").Return(getMapping(api.URLTarget("https://albums.example.com"), false), nil)
		mocks.slackapiClient.EXPECT().IsAdmin(gomock.Any(), "xoxb-1", "U0001").Return(true, nil)

		// act
		response, err := service.HandleCommand(context.Background(), getCommandRequest("get"))

		assert.Nil(t, err)
		assert.Equal(t, "https://albums.example.com", response.Text)
	})
}

func TestHandleInteraction(t *testing.T) {
	t.Run("ConfirmedCreateIsRefusedWhileHerokuIsDisabled", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getPlatformDisabledTestService(ctrl)
		mocks.herokuService.EXPECT().CreateApp(gomock.Any(), gomock.Any()).Times(0)

		// act
		response, err := service.HandleInteraction(context.Background(), getCallback("T0001", "create_list_T0001", "yes"), "albumlist", url.Values{})

		assert.Nil(t, err)
		assert.Equal(t, msgPlatformDisabled, response.Text)
	})

	t.Run("ConfirmedCreateCreatesAppOnce", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getTestService(ctrl)
		mocks.databaseClient.EXPECT().GetTeamMapping(gomock.Any(), "T0001").Return(getMapping(api.URLTarget("https://albums.example.com"), true), nil)
		mocks.herokuService.EXPECT().CreateApp(gomock.Any(), gomock.Any()).Return("albumlist-abc", nil).Times(1)

		// act
		response, err := service.HandleInteraction(context.Background(), getCallback("T0001", "create_list_T0001", "yes"), "albumlist", url.Values{})

		assert.Nil(t, err)
		assert.Equal(t, "Creating new albumlist...", response.Text)
	})

	t.Run("DeclinedCreateChangesNothing", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getTestService(ctrl)
		mocks.herokuService.EXPECT().CreateApp(gomock.Any(), gomock.Any()).Times(0)

		// act
		response, err := service.HandleInteraction(context.Background(), getCallback("T0001", "create_list_T0001", "no"), "albumlist", url.Values{})

		assert.Nil(t, err)
		assert.Equal(t, "OK", response.Text)
	})

	t.Run("ConfirmedCreateWithoutPlatformTokenIsRefused", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getTestService(ctrl)
		mocks.databaseClient.EXPECT().GetTeamMapping(gomock.Any(), "T0001").Return(getMapping(nil, false), nil)
		mocks.herokuService.EXPECT().CreateApp(gomock.Any(), gomock.Any()).Times(0)

		// act
		response, err := service.HandleInteraction(context.Background(), getCallback("T0001", "create_list_T0001", "yes"), "albumlist", url.Values{})

		assert.Nil(t, err)
		assert.Equal(t, "Missing Heroku OAuth", response.Text)
	})

	t.Run("ConfirmedCreateForUninstalledTeamIsRefused", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getTestService(ctrl)
		mocks.databaseClient.EXPECT().GetTeamMapping(gomock.Any(), "T0001").Return(nil, database.ErrTeamNotFound)

		// act
		response, err := service.HandleInteraction(context.Background(), getCallback("T0001", "create_list_T0001", "yes"), "albumlist", url.Values{})

		assert.Nil(t, err)
		assert.Equal(t, "Team not authorised", response.Text)
	})

	t.Run("ConfirmedDeleteDeletesOnce", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getTestService(ctrl)
		mocks.databaseClient.EXPECT().DeleteTeamMapping(gomock.Any(), "T0001").Return(nil).Times(1)

		// act
		response, err := service.HandleInteraction(context.Background(), getCallback("T0001", "delete_list_T0001", "yes"), "albumlist", url.Values{})

		assert.Nil(t, err)
		assert.Equal(t, "Unregistered the Albumlist for your Slack team (admins: use `/albumlist slack` to authenticate again)", response.Text)
	})

	t.Run("FailedDeleteAnswersFailed", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getTestService(ctrl)
		mocks.databaseClient.EXPECT().DeleteTeamMapping(gomock.Any(), "T0001").Return(errors.New("connection reset"))

		// act
		response, err := service.HandleInteraction(context.Background(), getCallback("T0001", "delete_list_T0001", "yes"), "albumlist", url.Values{})

		assert.NotNil(t, err)
		assert.Equal(t, "Failed", response.Text)
	})

	t.Run("DeclinedDeleteChangesNothing", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getTestService(ctrl)
		mocks.databaseClient.EXPECT().DeleteTeamMapping(gomock.Any(), gomock.Any()).Times(0)

		// act
		response, err := service.HandleInteraction(context.Background(), getCallback("T0001", "delete_list_T0001", "no"), "albumlist", url.Values{})

		assert.Nil(t, err)
		assert.Equal(t, "OK", response.Text)
	})

	t.Run("ForwardsCallbacksThatAreNotConfirmations", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getTestService(ctrl)
		mocks.databaseClient.EXPECT().GetTeamMapping(gomock.Any(), "T0001").Return(getMapping(api.URLTarget("https://albums.example.com"), false), nil)
		mocks.databaseClient.EXPECT().DeleteTeamMapping(gomock.Any(), gomock.Any()).Times(0)
		mocks.targetapiClient.EXPECT().Forward(gomock.Any(), api.URLTarget("https://albums.example.com"), "interactive", gomock.Any()).Return(&targetapi.Response{StatusCode: 200, Body: []byte("")}, nil)

		// act
		response, err := service.HandleInteraction(context.Background(), getCallback("T0001", "delete_list_T9999", "yes"), "interactive", url.Values{})

		assert.Nil(t, err)
		assert.Equal(t, "", response.Text)
	})
}

func TestRouteToTarget(t *testing.T) {
	t.Run("AnswersNotRegisteredForUnknownTeam", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getTestService(ctrl)
		mocks.databaseClient.EXPECT().GetTeamMapping(gomock.Any(), "T0001").Return(nil, database.ErrTeamNotFound)

		// act
		response, err := service.RouteToTarget(context.Background(), "T0001", "albumlist", url.Values{})

		assert.Nil(t, err)
		assert.Equal(t, msgNotRegistered, response.Text)
	})

	t.Run("AnswersFailedForStoreErrors", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getTestService(ctrl)
		mocks.databaseClient.EXPECT().GetTeamMapping(gomock.Any(), "T0001").Return(nil, errors.New("connection refused"))

		// act
		response, err := service.RouteToTarget(context.Background(), "T0001", "albumlist", url.Values{})

		assert.NotNil(t, err)
		assert.Equal(t, "Failed", response.Text)
	})

	t.Run("AnswersFailedForErrorStatusOfTarget", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getTestService(ctrl)
		mocks.databaseClient.EXPECT().GetTeamMapping(gomock.Any(), "T0001").Return(getMapping(api.URLTarget("https://albums.example.com"), false), nil)
		mocks.targetapiClient.EXPECT().Forward(gomock.Any(), gomock.Any(), "albumlist", gomock.Any()).Return(nil, &targetapi.StatusError{StatusCode: 500})

		// act
		response, err := service.RouteToTarget(context.Background(), "T0001", "albumlist", url.Values{})

		assert.NotNil(t, err)
		assert.Equal(t, "Failed", response.Text)
	})
}

func TestRouteEvent(t *testing.T) {
	t.Run("ForwardsEventToUrlTarget", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		event := []byte(`{"type":"event_callback","team_id":"T0001"}`)
		service, mocks := getTestService(ctrl)
		mocks.databaseClient.EXPECT().GetTeamMapping(gomock.Any(), "T0001").Return(getMapping(api.URLTarget("https://albums.example.com"), false), nil)
		mocks.targetapiClient.EXPECT().ForwardEvent(gomock.Any(), api.URLTarget("https://albums.example.com"), event).Return(nil).Times(1)

		// act
		err := service.RouteEvent(context.Background(), "T0001", event)

		assert.Nil(t, err)
	})

	t.Run("SkipsManagedTarget", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getTestService(ctrl)
		mocks.databaseClient.EXPECT().GetTeamMapping(gomock.Any(), "T0001").Return(getMapping(api.ManagedTarget("albumlist-abc"), true), nil)
		mocks.targetapiClient.EXPECT().ForwardEvent(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		// act
		err := service.RouteEvent(context.Background(), "T0001", []byte(`{}`))

		assert.Nil(t, err)
	})

	t.Run("SkipsUnknownTeam", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getTestService(ctrl)
		mocks.databaseClient.EXPECT().GetTeamMapping(gomock.Any(), "T0001").Return(nil, database.ErrTeamNotFound)

		// act
		err := service.RouteEvent(context.Background(), "T0001", []byte(`{}`))

		assert.Nil(t, err)
	})
}

func TestCompleteInstall(t *testing.T) {
	t.Run("InsertsNewTeam", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getTestService(ctrl)
		mocks.slackapiClient.EXPECT().ExchangeOAuthCode(gomock.Any(), "abc").Return(&slackapi.Installation{TeamID: "T0002", BotToken: "xoxb-2"}, nil)
		mocks.databaseClient.EXPECT().GetTeamMapping(gomock.Any(), "T0002").Return(nil, database.ErrTeamNotFound)
		mocks.databaseClient.EXPECT().InsertTeamMapping(gomock.Any(), "T0002", "xoxb-2").Return(nil).Times(1)
		mocks.slackapiClient.EXPECT().GetTeamURL(gomock.Any(), "xoxb-2").Return("https://vinylclub.slack.com", nil)

		// act
		teamURL, err := service.CompleteInstall(context.Background(), "abc")

		assert.Nil(t, err)
		assert.Equal(t, "https://vinylclub.slack.com", teamURL)
	})

	t.Run("UpdatesBotTokenOfExistingTeamAndPushesItToManagedApp", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getTestService(ctrl)
		mocks.slackapiClient.EXPECT().ExchangeOAuthCode(gomock.Any(), "abc").Return(&slackapi.Installation{TeamID: "T0001", BotToken: "xoxb-new"}, nil)
		mocks.databaseClient.EXPECT().GetTeamMapping(gomock.Any(), "T0001").Return(getMapping(api.URLTarget("https://albumlist-abc.herokuapp.com"), true), nil)
		mocks.databaseClient.EXPECT().UpdateBotToken(gomock.Any(), "T0001", "xoxb-new").Return(nil).Times(1)
		mocks.databaseClient.EXPECT().InsertTeamMapping(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		mocks.herokuService.EXPECT().IsManaged(gomock.Any(), gomock.Any()).Return(true, nil)
		mocks.herokuService.EXPECT().SetConfigVars(gomock.Any(), gomock.Any(), map[string]string{
			"SLACK_OAUTH_TOKEN": "xoxb-new",
			"APP_TOKEN_BOT":     "app-token-1",
			"ALBUMLISTBOT_URL":  "https://relay.albumlist.dev",
		}).Return(nil)
		mocks.slackapiClient.EXPECT().GetTeamURL(gomock.Any(), "xoxb-new").Return("https://vinylclub.slack.com", nil)

		// act
		teamURL, err := service.CompleteInstall(context.Background(), "abc")

		assert.Nil(t, err)
		assert.Equal(t, "https://vinylclub.slack.com", teamURL)
	})

	t.Run("ReturnsErrExchangeFailedWhenSlackRejectsCode", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getTestService(ctrl)
		mocks.slackapiClient.EXPECT().ExchangeOAuthCode(gomock.Any(), "abc").Return(nil, errors.New("invalid_code"))

		// act
		_, err := service.CompleteInstall(context.Background(), "abc")

		assert.ErrorIs(t, err, ErrExchangeFailed)
	})

	t.Run("ReturnsErrTeamNotStoredWhenInsertFails", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getTestService(ctrl)
		mocks.slackapiClient.EXPECT().ExchangeOAuthCode(gomock.Any(), "abc").Return(&slackapi.Installation{TeamID: "T0002", BotToken: "xoxb-2"}, nil)
		mocks.databaseClient.EXPECT().GetTeamMapping(gomock.Any(), "T0002").Return(nil, database.ErrTeamNotFound)
		mocks.databaseClient.EXPECT().InsertTeamMapping(gomock.Any(), "T0002", "xoxb-2").Return(database.ErrTeamAlreadyRegistered)

		// act
		_, err := service.CompleteInstall(context.Background(), "abc")

		assert.ErrorIs(t, err, ErrTeamNotStored)
	})

	t.Run("FallsBackToSlackWhenTeamUrlIsUnknown", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getTestService(ctrl)
		mocks.slackapiClient.EXPECT().ExchangeOAuthCode(gomock.Any(), "abc").Return(&slackapi.Installation{TeamID: "T0002", BotToken: "xoxb-2"}, nil)
		mocks.databaseClient.EXPECT().GetTeamMapping(gomock.Any(), "T0002").Return(nil, database.ErrTeamNotFound)
		mocks.databaseClient.EXPECT().InsertTeamMapping(gomock.Any(), "T0002", "xoxb-2").Return(nil)
		mocks.slackapiClient.EXPECT().GetTeamURL(gomock.Any(), "xoxb-2").Return("", errors.New("ratelimited"))

		// act
		teamURL, err := service.CompleteInstall(context.Background(), "abc")

		assert.Nil(t, err)
		assert.Equal(t, "https://app.slack.com", teamURL)
	})
}

func TestPing(t *testing.T) {
	t.Run("ProbesTargetOfTeamOwningBotToken", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getTestService(ctrl)
		mocks.databaseClient.EXPECT().GetTeamMappingByBotToken(gomock.Any(), "xoxb-1").Return(getMapping(api.URLTarget("https://albums.example.com"), false), nil)
		mocks.targetapiClient.EXPECT().Probe(gomock.Any(), api.URLTarget("https://albums.example.com")).Return(200, nil).Times(1)

		// act
		err := service.Ping(context.Background(), "xoxb-1")

		assert.Nil(t, err)
	})

	t.Run("ReturnsErrTeamNotFoundForUnknownToken", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mocks := getTestService(ctrl)
		mocks.databaseClient.EXPECT().GetTeamMappingByBotToken(gomock.Any(), "xoxb-9").Return(nil, database.ErrTeamNotFound)

		// act
		err := service.Ping(context.Background(), "xoxb-9")

		assert.ErrorIs(t, err, database.ErrTeamNotFound)
	})
}

func TestValidateCommands(t *testing.T) {
	t.Run("EveryCommandHasExactlyOneHandler", func(t *testing.T) {

		// act
		err := validateCommands()

		assert.Nil(t, err)
	})

	t.Run("ForwardPathsUseSlashesForProcessCommands", func(t *testing.T) {

		assert.Equal(t, "process/albums", forwardedCommands[CommandProcessAlbums])
		assert.Equal(t, "process/unavailable", forwardedCommands[CommandProcessUnavailable])
		assert.Equal(t, "clear_cache", forwardedCommands[CommandClearCache])
	})
}

func TestParseCommand(t *testing.T) {
	t.Run("SplitsCommandFromArguments", func(t *testing.T) {

		// act
		command, args := parseCommand("  Register   https://albums.example.com  ")

		assert.Equal(t, CommandRegister, command)
		assert.Equal(t, []string{"https://albums.example.com"}, args)
	})

	t.Run("ReturnsEmptyCommandForEmptyText", func(t *testing.T) {

		// act
		command, args := parseCommand("")

		assert.Equal(t, Command(""), command)
		assert.Nil(t, args)
	})
}

func TestChannelID(t *testing.T) {
	t.Run("ExtractsIdFromEscapedMention", func(t *testing.T) {
		assert.Equal(t, "C024BE91L", channelID("<#C024BE91L|announcements>"))
	})

	t.Run("KeepsBareId", func(t *testing.T) {
		assert.Equal(t, "C024BE91L", channelID("C024BE91L"))
	})
}

type testMocks struct {
	databaseClient  *database.MockClient
	slackapiClient  *slackapi.MockClient
	targetapiClient *targetapi.MockClient
	herokuService   *heroku.MockService
}

func getTestService(ctrl *gomock.Controller) (Service, testMocks) {
	mocks := testMocks{
		databaseClient:  database.NewMockClient(ctrl),
		slackapiClient:  slackapi.NewMockClient(ctrl),
		targetapiClient: targetapi.NewMockClient(ctrl),
		herokuService:   heroku.NewMockService(ctrl),
	}

	return NewService(getTestConfig(), mocks.databaseClient, mocks.slackapiClient, mocks.targetapiClient, mocks.herokuService), mocks
}

func getPlatformDisabledTestService(ctrl *gomock.Controller) (Service, testMocks) {
	mocks := testMocks{
		databaseClient:  database.NewMockClient(ctrl),
		slackapiClient:  slackapi.NewMockClient(ctrl),
		targetapiClient: targetapi.NewMockClient(ctrl),
		herokuService:   heroku.NewMockService(ctrl),
	}

	config := getTestConfig()
	config.Integrations.Heroku.Enable = false

	return NewService(config, mocks.databaseClient, mocks.slackapiClient, mocks.targetapiClient, mocks.herokuService), mocks
}

// getAdminTestService returns a service for which T0001 resolves to mapping and U0001 is an admin
func getAdminTestService(ctrl *gomock.Controller, mapping *database.TeamMapping) (Service, testMocks) {
	service, mocks := getTestService(ctrl)
	mocks.databaseClient.EXPECT().GetTeamMapping(gomock.Any(), "T0001").Return(mapping, nil)
	mocks.slackapiClient.EXPECT().IsAdmin(gomock.Any(), "xoxb-1", "U0001").Return(true, nil)

	return service, mocks
}

func getTestConfig() *api.APIConfig {
	config := &api.APIConfig{
		APIServer: &api.APIServerConfig{
			BaseURL:   "https://relay.albumlist.dev",
			AppTokens: []string{"app-token-1", "app-token-2"},
			CSRFSeed:  "seed",
		},
		Integrations: &api.APIConfigIntegrations{
			Slack: &api.SlackConfig{
				Enable:        true,
				ClientID:      "1234.5678",
				ClientSecret:  "secret",
				SigningSecret: "signing-secret",
			},
			Heroku: &api.HerokuConfig{
				Enable: true,
			},
		},
	}
	config.SetDefaults()

	return config
}

func getMapping(target api.Target, withPlatformToken bool) *database.TeamMapping {
	mapping := &database.TeamMapping{
		TeamID:   "T0001",
		Target:   target,
		BotToken: "xoxb-1",
	}
	if withPlatformToken {
		mapping.PlatformToken = "access-1"
		mapping.PlatformRefreshToken = "refresh-1"
	}
	return mapping
}

func getCommandRequest(text string) CommandRequest {
	return CommandRequest{
		TeamID: "T0001",
		UserID: "U0001",
		Text:   text,
		Form: url.Values{
			"team_id": {"T0001"},
			"user_id": {"U0001"},
			"command": {"/albumlist"},
			"text":    {text},
		},
	}
}

func getCallback(teamID, callbackID, action string) slackgo.InteractionCallback {
	callback := slackgo.InteractionCallback{
		CallbackID: callbackID,
	}
	callback.Team.ID = teamID
	callback.ActionCallback.AttachmentActions = []*slackgo.AttachmentAction{{Name: action}}

	return callback
}

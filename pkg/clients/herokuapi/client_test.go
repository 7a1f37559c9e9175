package herokuapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/albumlist/albumlist-relay/pkg/api"
	"github.com/stretchr/testify/assert"
	"golang.org/x/oauth2"
)

func TestGetApp(t *testing.T) {
	t.Run("SendsPlatformHeaders", func(t *testing.T) {

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/apps/albumlist-abc", r.URL.Path)
			assert.Equal(t, "application/vnd.heroku+json; version=3", r.Header.Get("Accept"))
			assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
			assert.NotEmpty(t, r.Header.Get("Request-Id"))
			_, _ = w.Write([]byte(`{"id":"01234567-89ab-cdef-0123-456789abcdef","name":"albumlist-abc","web_url":"https://albumlist-abc.herokuapp.com/"}`))
		}))
		defer server.Close()

		client := getTestClient(server)

		// act
		app, err := client.GetApp(context.Background(), "access-1", "albumlist-abc")

		assert.Nil(t, err)
		assert.Equal(t, "albumlist-abc", app.Name)
		assert.Equal(t, "https://albumlist-abc.herokuapp.com/", app.WebURL)
	})

	t.Run("ReturnsErrUnauthorizedOn401", func(t *testing.T) {

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"id":"unauthorized","message":"Invalid credentials provided."}`))
		}))
		defer server.Close()

		client := getTestClient(server)

		// act
		_, err := client.GetApp(context.Background(), "expired", "albumlist-abc")

		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("ReturnsErrNotFoundOn404", func(t *testing.T) {

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := getTestClient(server)

		// act
		_, err := client.GetApp(context.Background(), "access-1", "someone-elses-app")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("ReturnsErrTimeoutWhenSlowerThanManagedCheckTimeout", func(t *testing.T) {

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(300 * time.Millisecond)
			_, _ = w.Write([]byte(`{"name":"albumlist-abc"}`))
		}))
		defer server.Close()

		client := getTestClient(server)
		client.config.ManagedCheckTimeoutMilliseconds = 50

		// act
		_, err := client.GetApp(context.Background(), "access-1", "albumlist-abc")

		assert.ErrorIs(t, err, ErrTimeout)
	})
}

func TestCreateAppSetup(t *testing.T) {
	t.Run("PostsSourceBlobAndEnvOverridesAndReturnsAppName", func(t *testing.T) {

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/app-setups", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]interface{}
			err := json.NewDecoder(r.Body).Decode(&body)
			assert.Nil(t, err)
			assert.Equal(t, "eu", body["app"].(map[string]interface{})["region"])
			assert.Equal(t, "container", body["app"].(map[string]interface{})["stack"])
			assert.Equal(t, "https://github.com/albumlist/albumlist/tarball/master/", body["source_blob"].(map[string]interface{})["url"])
			env := body["overrides"].(map[string]interface{})["env"].(map[string]interface{})
			assert.Equal(t, "xoxb-1", env["SLACK_OAUTH_TOKEN"])

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"setup-1","status":"pending","app":{"id":"app-1","name":"polar-sands-1234"}}`))
		}))
		defer server.Close()

		client := getTestClient(server)

		// act
		app, err := client.CreateAppSetup(context.Background(), "access-1", AppSetupRequest{
			App:        AppSetupApp{Region: "eu", Stack: "container"},
			SourceBlob: AppSetupSource{URL: "https://github.com/albumlist/albumlist/tarball/master/"},
			Overrides:  AppSetupOverrides{Env: map[string]string{"SLACK_OAUTH_TOKEN": "xoxb-1"}},
		})

		assert.Nil(t, err)
		assert.Equal(t, "polar-sands-1234", app.Name)
	})

	t.Run("ReturnsStatusErrorOnUnexpectedStatus", func(t *testing.T) {

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"id":"invalid_params","message":"Stack is invalid"}`))
		}))
		defer server.Close()

		client := getTestClient(server)

		// act
		app, err := client.CreateAppSetup(context.Background(), "access-1", AppSetupRequest{})

		assert.Nil(t, app)
		var statusError *StatusError
		if assert.True(t, errors.As(err, &statusError)) {
			assert.Equal(t, http.StatusUnprocessableEntity, statusError.StatusCode)
			assert.Contains(t, statusError.Body, "Stack is invalid")
		}
	})
}

func TestConfigVars(t *testing.T) {
	t.Run("GetConfigVarsReturnsMap", func(t *testing.T) {

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/apps/albumlist-abc/config-vars", r.URL.Path)
			_, _ = w.Write([]byte(`{"AOTD_CHANNEL_ID":"C0001","SLACK_OAUTH_TOKEN":"xoxb-1"}`))
		}))
		defer server.Close()

		client := getTestClient(server)

		// act
		configVars, err := client.GetConfigVars(context.Background(), "access-1", "albumlist-abc")

		assert.Nil(t, err)
		assert.Equal(t, "C0001", configVars["AOTD_CHANNEL_ID"])
	})

	t.Run("UpdateConfigVarsPatchesOnlyGivenKeys", func(t *testing.T) {

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "/apps/albumlist-abc/config-vars", r.URL.Path)
			var body map[string]string
			err := json.NewDecoder(r.Body).Decode(&body)
			assert.Nil(t, err)
			assert.Equal(t, map[string]string{"AOTD_CHANNEL_ID": "C0002"}, body)
			_, _ = w.Write([]byte(`{"AOTD_CHANNEL_ID":"C0002"}`))
		}))
		defer server.Close()

		client := getTestClient(server)

		// act
		err := client.UpdateConfigVars(context.Background(), "access-1", "albumlist-abc", map[string]string{"AOTD_CHANNEL_ID": "C0002"})

		assert.Nil(t, err)
	})
}

func TestGetDynos(t *testing.T) {
	t.Run("ReturnsDynoStates", func(t *testing.T) {

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/apps/albumlist-abc/dynos", r.URL.Path)
			_, _ = w.Write([]byte(`[{"name":"web.1","type":"web","state":"up"},{"name":"worker.1","type":"worker","state":"starting"}]`))
		}))
		defer server.Close()

		client := getTestClient(server)

		// act
		dynos, err := client.GetDynos(context.Background(), "access-1", "albumlist-abc")

		assert.Nil(t, err)
		assert.Equal(t, 2, len(dynos))
		assert.True(t, dynos[0].IsUp())
		assert.False(t, dynos[1].IsUp())
	})
}

func TestScaleFormation(t *testing.T) {
	t.Run("PatchesFormationWithSingleUpdate", func(t *testing.T) {

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "/apps/albumlist-abc/formation", r.URL.Path)
			var body formationRequest
			err := json.NewDecoder(r.Body).Decode(&body)
			assert.Nil(t, err)
			assert.Equal(t, []formationUpdate{{Type: "worker", Quantity: 2}}, body.Updates)
			_, _ = w.Write([]byte(`[{"type":"worker","quantity":2}]`))
		}))
		defer server.Close()

		client := getTestClient(server)

		// act
		err := client.ScaleFormation(context.Background(), "access-1", "albumlist-abc", "worker", 2)

		assert.Nil(t, err)
	})

	t.Run("RejectsNegativeQuantityWithoutCallingPlatform", func(t *testing.T) {

		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		client := getTestClient(server)

		// act
		err := client.ScaleFormation(context.Background(), "access-1", "albumlist-abc", "worker", -1)

		assert.NotNil(t, err)
		assert.False(t, called)
	})
}

func TestTokens(t *testing.T) {
	t.Run("ExchangeCodeReturnsAccessAndRefreshToken", func(t *testing.T) {

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/oauth/token", r.URL.Path)
			assert.Nil(t, r.ParseForm())
			assert.Equal(t, "authorization_code", r.Form.Get("grant_type"))
			assert.Equal(t, "code-1", r.Form.Get("code"))
			assert.Equal(t, "client-secret", r.Form.Get("client_secret"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"access-1","refresh_token":"refresh-1","token_type":"Bearer","expires_in":28799}`))
		}))
		defer server.Close()

		client := getTestClient(server)

		// act
		token, err := client.ExchangeCode(context.Background(), "code-1")

		assert.Nil(t, err)
		assert.Equal(t, "access-1", token.AccessToken)
		assert.Equal(t, "refresh-1", token.RefreshToken)
	})

	t.Run("RefreshTokenUsesRefreshGrant", func(t *testing.T) {

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Nil(t, r.ParseForm())
			assert.Equal(t, "refresh_token", r.Form.Get("grant_type"))
			assert.Equal(t, "refresh-1", r.Form.Get("refresh_token"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"access-2","refresh_token":"refresh-1","token_type":"Bearer","expires_in":28799}`))
		}))
		defer server.Close()

		client := getTestClient(server)

		// act
		token, err := client.RefreshToken(context.Background(), "refresh-1")

		assert.Nil(t, err)
		assert.Equal(t, "access-2", token.AccessToken)
		assert.Equal(t, "refresh-1", token.RefreshToken)
	})

	t.Run("RefreshTokenReturnsErrUnauthorizedWhenRejected", func(t *testing.T) {

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"id":"unauthorized","message":"Invalid refresh token."}`))
		}))
		defer server.Close()

		client := getTestClient(server)

		// act
		_, err := client.RefreshToken(context.Background(), "revoked")

		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("RefreshTokenWithoutRefreshTokenReturnsErrUnauthorized", func(t *testing.T) {

		client := getTestClient(nil)

		// act
		_, err := client.RefreshToken(context.Background(), "")

		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func getTestClient(server *httptest.Server) *client {
	config := &api.APIConfig{
		APIServer: &api.APIServerConfig{
			BaseURL: "https://relay.albumlist.dev",
		},
		Integrations: &api.APIConfigIntegrations{
			Heroku: &api.HerokuConfig{
				Enable:       true,
				ClientID:     "client-id",
				ClientSecret: "client-secret",
				SourceURL:    "https://github.com/albumlist/albumlist",
			},
		},
	}
	config.SetDefaults()

	c := NewClient(config).(*client)
	if server != nil {
		c.apiURL = server.URL
		c.oauthConfig.Endpoint = oauth2.Endpoint{
			AuthURL:   server.URL + "/oauth/authorize",
			TokenURL:  server.URL + "/oauth/token",
			AuthStyle: oauth2.AuthStyleInParams,
		}
	}

	return c
}

package api

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

// APIConfig represent the configuration for the entire relay
type APIConfig struct {
	APIServer    *APIServerConfig       `yaml:"apiServer,omitempty" env:",prefix=APISERVER_"`
	Integrations *APIConfigIntegrations `yaml:"integrations,omitempty" env:",prefix=INTEGRATIONS_"`
	Database     *DatabaseConfig        `yaml:"database,omitempty" env:",prefix=DATABASE_"`
}

func (c *APIConfig) SetDefaults() {
	if c.APIServer == nil {
		c.APIServer = &APIServerConfig{}
	}
	c.APIServer.SetDefaults()

	if c.Integrations == nil {
		c.Integrations = &APIConfigIntegrations{}
	}
	c.Integrations.SetDefaults()

	if c.Database == nil {
		c.Database = &DatabaseConfig{}
	}
	c.Database.SetDefaults()
}

func (c *APIConfig) Validate() (err error) {
	err = c.APIServer.Validate()
	if err != nil {
		return
	}

	err = c.Integrations.Validate()
	if err != nil {
		return
	}

	err = c.Database.Validate()
	if err != nil {
		return
	}

	return nil
}

// APIServerConfig represents configuration for the relay's own http server
type APIServerConfig struct {
	BaseURL            string   `yaml:"baseURL" env:"BASE_URL,overwrite"`
	AppTokens          []string `yaml:"appTokens" env:"APP_TOKENS,overwrite"`
	CSRFSeed           string   `yaml:"csrfSeed" env:"CSRF_SEED,overwrite"`
	SkipSignatureCheck bool     `yaml:"skipSignatureCheck" env:"SKIP_SIGNATURE_CHECK,overwrite"`
}

func (c *APIServerConfig) SetDefaults() {
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
}

func (c *APIServerConfig) Validate() (err error) {
	if c.BaseURL == "" {
		return errors.New("Configuration item 'apiServer.baseURL' is required; please set it to the externally reachable url of the relay")
	}
	if _, err := url.ParseRequestURI(c.BaseURL); err != nil {
		return fmt.Errorf("Configuration item 'apiServer.baseURL' is not a valid url: %w", err)
	}
	if len(c.AppTokens) == 0 {
		return errors.New("Configuration item 'apiServer.appTokens' is required; please set it to at least one token shared with the albumlist apps")
	}
	if c.CSRFSeed == "" {
		return errors.New("Configuration item 'apiServer.csrfSeed' is required; please set it to a long random string")
	}

	return nil
}

// HasAppToken returns true if the token is one of the configured app tokens
func (c *APIServerConfig) HasAppToken(token string) bool {
	if token == "" {
		return false
	}
	for _, t := range c.AppTokens {
		if t == token {
			return true
		}
	}
	return false
}

// PrimaryAppToken is handed to managed apps so they can call back into the relay
func (c *APIServerConfig) PrimaryAppToken() string {
	if len(c.AppTokens) == 0 {
		return ""
	}
	return c.AppTokens[0]
}

// APIConfigIntegrations contains config for 3rd party integrations
type APIConfigIntegrations struct {
	Slack  *SlackConfig  `yaml:"slack,omitempty" env:",prefix=SLACK_"`
	Heroku *HerokuConfig `yaml:"heroku,omitempty" env:",prefix=HEROKU_"`
	Target *TargetConfig `yaml:"target,omitempty" env:",prefix=TARGET_"`
}

func (c *APIConfigIntegrations) SetDefaults() {
	if c.Slack == nil {
		c.Slack = &SlackConfig{}
	}
	c.Slack.SetDefaults()

	if c.Heroku == nil {
		c.Heroku = &HerokuConfig{}
	}
	c.Heroku.SetDefaults()

	if c.Target == nil {
		c.Target = &TargetConfig{}
	}
	c.Target.SetDefaults()
}

func (c *APIConfigIntegrations) Validate() (err error) {
	err = c.Slack.Validate()
	if err != nil {
		return
	}

	err = c.Heroku.Validate()
	if err != nil {
		return
	}

	err = c.Target.Validate()
	if err != nil {
		return
	}

	return nil
}

// SlackConfig is used to configure slack integration
type SlackConfig struct {
	Enable                bool     `yaml:"enable" env:"ENABLE,overwrite"`
	ClientID              string   `yaml:"clientID" env:"CLIENT_ID,overwrite"`
	ClientSecret          string   `yaml:"clientSecret" env:"CLIENT_SECRET,overwrite"`
	SigningSecret         string   `yaml:"signingSecret" env:"SIGNING_SECRET,overwrite"`
	VerificationToken     string   `yaml:"verificationToken" env:"VERIFICATION_TOKEN,overwrite"`
	Scopes                []string `yaml:"scopes" env:"SCOPES,overwrite"`
	RequestTimeoutSeconds int      `yaml:"requestTimeoutSeconds" env:"REQUEST_TIMEOUT_SECONDS,overwrite"`
}

func (c *SlackConfig) SetDefaults() {
	if len(c.Scopes) == 0 {
		c.Scopes = []string{"commands", "chat:write", "team:read", "users:read"}
	}
	if c.RequestTimeoutSeconds <= 0 {
		c.RequestTimeoutSeconds = 10
	}
}

func (c *SlackConfig) Validate() (err error) {
	if !c.Enable {
		return nil
	}

	if c.ClientID == "" {
		return errors.New("Configuration item 'integrations.slack.clientID' is required; please set it to a Slack client id")
	}
	if c.ClientSecret == "" {
		return errors.New("Configuration item 'integrations.slack.clientSecret' is required; please set it to a Slack client secret")
	}
	if c.SigningSecret == "" {
		return errors.New("Configuration item 'integrations.slack.signingSecret' is required; please set it to the Slack app signing secret")
	}

	return nil
}

// RequestTimeout bounds every call towards the Slack web api
func (c *SlackConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// RedirectURL is where Slack sends the user after installing the app
func (c *SlackConfig) RedirectURL(baseURL string) string {
	return strings.TrimSuffix(baseURL, "/") + "/slack/auth"
}

// InstallURL returns the url a workspace admin follows to install the app
func (c *SlackConfig) InstallURL(baseURL string) string {
	query := url.Values{}
	query.Set("client_id", c.ClientID)
	query.Set("scope", strings.Join(c.Scopes, ","))
	query.Set("redirect_uri", c.RedirectURL(baseURL))

	return "https://slack.com/oauth/v2/authorize?" + query.Encode()
}

// HerokuConfig is used to configure the platform integration
type HerokuConfig struct {
	Enable                          bool   `yaml:"enable" env:"ENABLE,overwrite"`
	ClientID                        string `yaml:"clientID" env:"CLIENT_ID,overwrite"`
	ClientSecret                    string `yaml:"clientSecret" env:"CLIENT_SECRET,overwrite"`
	APIURL                          string `yaml:"apiURL" env:"API_URL,overwrite"`
	SourceURL                       string `yaml:"sourceURL" env:"SOURCE_URL,overwrite"`
	Region                          string `yaml:"region" env:"REGION,overwrite"`
	Stack                           string `yaml:"stack" env:"STACK,overwrite"`
	RequestTimeoutSeconds           int    `yaml:"requestTimeoutSeconds" env:"REQUEST_TIMEOUT_SECONDS,overwrite"`
	ManagedCheckTimeoutMilliseconds int    `yaml:"managedCheckTimeoutMilliseconds" env:"MANAGED_CHECK_TIMEOUT_MILLISECONDS,overwrite"`
	StateTTLMinutes                 int    `yaml:"stateTTLMinutes" env:"STATE_TTL_MINUTES,overwrite"`
}

func (c *HerokuConfig) SetDefaults() {
	if c.APIURL == "" {
		c.APIURL = "https://api.heroku.com"
	}
	c.APIURL = strings.TrimSuffix(c.APIURL, "/")
	c.SourceURL = strings.TrimSuffix(c.SourceURL, "/")
	if c.Region == "" {
		c.Region = "eu"
	}
	if c.Stack == "" {
		c.Stack = "container"
	}
	if c.RequestTimeoutSeconds <= 0 {
		c.RequestTimeoutSeconds = 10
	}
	if c.ManagedCheckTimeoutMilliseconds <= 0 {
		c.ManagedCheckTimeoutMilliseconds = 1500
	}
	if c.StateTTLMinutes <= 0 {
		c.StateTTLMinutes = 30
	}
}

func (c *HerokuConfig) Validate() (err error) {
	if !c.Enable {
		return nil
	}

	if c.ClientID == "" {
		return errors.New("Configuration item 'integrations.heroku.clientID' is required; please set it to a Heroku OAuth client id")
	}
	if c.ClientSecret == "" {
		return errors.New("Configuration item 'integrations.heroku.clientSecret' is required; please set it to a Heroku OAuth client secret")
	}
	if c.SourceURL == "" {
		return errors.New("Configuration item 'integrations.heroku.sourceURL' is required; please set it to the git repository url of the albumlist app")
	}

	return nil
}

// RequestTimeout bounds every call towards the platform api
func (c *HerokuConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// ManagedCheckTimeout bounds the app lookup and dyno status calls
func (c *HerokuConfig) ManagedCheckTimeout() time.Duration {
	return time.Duration(c.ManagedCheckTimeoutMilliseconds) * time.Millisecond
}

// StateTTL is how long a platform authorization link stays valid
func (c *HerokuConfig) StateTTL() time.Duration {
	return time.Duration(c.StateTTLMinutes) * time.Minute
}

// SourceTarballURL returns the source bundle used to set up new apps
func (c *HerokuConfig) SourceTarballURL() string {
	return c.SourceURL + "/tarball/master/"
}

// GetOAuthConfig returns the oauth config for the platform
func (c *HerokuConfig) GetOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:   endpoints.Heroku.AuthURL,
			TokenURL:  endpoints.Heroku.TokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
		Scopes: []string{"global"},
	}
}

// TargetConfig bounds the calls towards the teams' own albumlist apps
type TargetConfig struct {
	ForwardTimeoutMilliseconds int `yaml:"forwardTimeoutMilliseconds" env:"FORWARD_TIMEOUT_MILLISECONDS,overwrite"`
	ProbeTimeoutMilliseconds   int `yaml:"probeTimeoutMilliseconds" env:"PROBE_TIMEOUT_MILLISECONDS,overwrite"`
	EventTimeoutMilliseconds   int `yaml:"eventTimeoutMilliseconds" env:"EVENT_TIMEOUT_MILLISECONDS,overwrite"`
}

func (c *TargetConfig) SetDefaults() {
	if c.ForwardTimeoutMilliseconds <= 0 {
		c.ForwardTimeoutMilliseconds = 2000
	}
	if c.ProbeTimeoutMilliseconds <= 0 {
		c.ProbeTimeoutMilliseconds = 2000
	}
	if c.EventTimeoutMilliseconds <= 0 {
		c.EventTimeoutMilliseconds = 2000
	}
}

func (c *TargetConfig) Validate() (err error) {
	if c.ForwardTimeoutMilliseconds <= 0 {
		return errors.New("Configuration item 'integrations.target.forwardTimeoutMilliseconds' needs to be larger than zero")
	}
	if c.ProbeTimeoutMilliseconds <= 0 {
		return errors.New("Configuration item 'integrations.target.probeTimeoutMilliseconds' needs to be larger than zero")
	}
	if c.EventTimeoutMilliseconds <= 0 {
		return errors.New("Configuration item 'integrations.target.eventTimeoutMilliseconds' needs to be larger than zero")
	}

	return nil
}

func (c *TargetConfig) ForwardTimeout() time.Duration {
	return time.Duration(c.ForwardTimeoutMilliseconds) * time.Millisecond
}

func (c *TargetConfig) ProbeTimeout() time.Duration {
	return time.Duration(c.ProbeTimeoutMilliseconds) * time.Millisecond
}

func (c *TargetConfig) EventTimeout() time.Duration {
	return time.Duration(c.EventTimeoutMilliseconds) * time.Millisecond
}

type DatabaseConfig struct {
	DatabaseName           string `yaml:"databaseName" env:"NAME,overwrite"`
	Host                   string `yaml:"host" env:"HOST,overwrite"`
	Insecure               bool   `yaml:"insecure" env:"INSECURE,overwrite"`
	SslMode                string `yaml:"sslMode" env:"SSL_MODE,overwrite"`
	Port                   int    `yaml:"port" env:"PORT,overwrite"`
	User                   string `yaml:"user" env:"USER,overwrite"`
	Password               string `yaml:"password" env:"PASSWORD,overwrite"`
	MaxOpenConns           int    `yaml:"maxOpenConnections" env:"MAX_OPEN_CONNECTIONS,overwrite"`
	MaxIdleConns           int    `yaml:"maxIdleConnections" env:"MAX_IDLE_CONNECTIONS,overwrite"`
	ConnMaxLifetimeMinutes int    `yaml:"connectionMaxLifetimeMinutes" env:"CONNECTION_MAX_LIFETIME_MINUTES,overwrite"`
}

func (c *DatabaseConfig) SetDefaults() {
	if c.DatabaseName == "" {
		c.DatabaseName = "albumlist"
	}
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.SslMode == "" {
		c.SslMode = "require"
	}
	if c.Port <= 0 {
		c.Port = 5432
	}
	if c.User == "" {
		c.User = "postgres"
	}
	if c.MaxOpenConns < 0 {
		c.MaxOpenConns = 0
	}
	if c.MaxIdleConns <= 0 {
		c.MaxIdleConns = 2
	}
	if c.ConnMaxLifetimeMinutes < 0 {
		c.ConnMaxLifetimeMinutes = 0
	}
}

func (c *DatabaseConfig) Validate() (err error) {
	if c.DatabaseName == "" {
		return errors.New("Configuration item 'database.databaseName' is required; please set it to name of the database used by the relay")
	}
	if c.Host == "" {
		return errors.New("Configuration item 'database.host' is required; please set it to hostname of the database server")
	}
	if !c.Insecure && c.SslMode == "" {
		return errors.New("Configuration item 'database.sslMode' is required; please set it to 'require', 'verify-ca' or 'verify-full'")
	}
	if c.Port <= 0 {
		return errors.New("Configuration item 'database.port' is required; please set it to port of the database server")
	}
	if c.User == "" {
		return errors.New("Configuration item 'database.user' is required; please set it to the database user")
	}
	if c.MaxOpenConns > 0 && c.MaxIdleConns > c.MaxOpenConns {
		return errors.New("Configuration item 'database.maxIdleConnections' needs to be less or equal to 'database.maxOpenConnections'; please set it to a valid number")
	}

	return nil
}

// DataSourceName returns the postgres connection string for this config
func (c *DatabaseConfig) DataSourceName() string {
	userAndPassword := url.User(c.User)
	if c.Password != "" {
		userAndPassword = url.UserPassword(c.User, c.Password)
	}

	sslMode := c.SslMode
	if c.Insecure {
		sslMode = "disable"
	}

	dsn := url.URL{
		Scheme:   "postgresql",
		User:     userAndPassword,
		Host:     fmt.Sprintf("%v:%v", c.Host, c.Port),
		Path:     "/" + c.DatabaseName,
		RawQuery: "sslmode=" + sslMode,
	}

	return dsn.String()
}

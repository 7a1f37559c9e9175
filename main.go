package main

import (
	"context"
	"errors"
	"io"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/albumlist/albumlist-relay/pkg/api"
	"github.com/albumlist/albumlist-relay/pkg/clients/database"
	"github.com/albumlist/albumlist-relay/pkg/clients/herokuapi"
	"github.com/albumlist/albumlist-relay/pkg/clients/slackapi"
	"github.com/albumlist/albumlist-relay/pkg/clients/targetapi"
	"github.com/albumlist/albumlist-relay/pkg/services/heroku"
	"github.com/albumlist/albumlist-relay/pkg/services/mappings"
	"github.com/albumlist/albumlist-relay/pkg/services/slack"
	"github.com/alecthomas/kingpin"
	crypt "github.com/estafette/estafette-ci-crypt"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	jaeger "github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	jprom "github.com/uber/jaeger-lib/metrics/prometheus"
	"golang.org/x/sync/errgroup"
)

const app = "albumlist-relay"

var (
	version   string
	branch    string
	revision  string
	buildDate string
	goVersion = runtime.Version()
)

var (
	apiAddress               = kingpin.Flag("api-listen-address", "The address to listen on for api HTTP requests.").Default(":5000").Envar("API_LISTEN_ADDRESS").String()
	prometheusMetricsAddress = kingpin.Flag("metrics-listen-address", "The address to listen on for Prometheus metrics requests.").Default(":9001").Envar("METRICS_LISTEN_ADDRESS").String()
	prometheusMetricsPath    = kingpin.Flag("metrics-path", "The path to listen for Prometheus metrics requests.").Default("/metrics").Envar("METRICS_PATH").String()

	configFilePath                   = kingpin.Flag("config-file-path", "The path to yaml config file configuring this application.").Default("/configs/config.yaml").Envar("CONFIG_FILE_PATH").String()
	secretDecryptionKey              = kingpin.Flag("secret-decryption-key", "The AES-256 key used to decrypt secrets in the config file.").Envar("SECRET_DECRYPTION_KEY").String()
	secretDecryptionKeyBase64Encoded = kingpin.Flag("secret-decryption-key-base64", "Whether the secret decryption key is base64 encoded.").Default("false").Envar("SECRET_DECRYPTION_KEY_BASE64").Bool()

	logLevel = kingpin.Flag("log-level", "The minimum level to log at.").Default("info").Envar("LOG_LEVEL").String()
)

func main() {

	// parse command line parameters
	kingpin.Parse()

	initLogging()

	closer := initJaeger(app)
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config, err := readConfig()
	if err != nil {
		log.Fatal().Err(err).Msgf("Reading config from %v failed", *configFilePath)
	}

	databaseClient, slackService, herokuService := getInstances(ctx, config)

	router := configureGinGonic(config, slack.NewHandler(config, slackService), heroku.NewHandler(herokuService), mappings.NewHandler(databaseClient, slackService))

	// instantiate servers instead of using router.Run in order to handle graceful shutdown
	apiServer := &http.Server{
		Addr:           *apiAddress,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle(*prometheusMetricsPath, promhttp.Handler())
	metricsServer := &http.Server{
		Addr:        *prometheusMetricsAddress,
		Handler:     metricsMux,
		ReadTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("address", *apiAddress).Msg("Serving api calls...")
		return listenAndServe(apiServer)
	})

	g.Go(func() error {
		log.Info().Str("address", *prometheusMetricsAddress).Str("path", *prometheusMetricsPath).Msg("Serving Prometheus metrics...")
		return listenAndServe(metricsServer)
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		apiErr := apiServer.Shutdown(shutdownCtx)
		metricsErr := metricsServer.Shutdown(shutdownCtx)
		if apiErr != nil {
			return apiErr
		}
		return metricsErr
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("Server stopped with error")
	}

	log.Info().Msg("Server gracefully stopped")
}

func listenAndServe(server *http.Server) error {
	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func initLogging() {

	// log as severity for stackdriver logging to recognize the level
	zerolog.LevelFieldName = "severity"

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// set some default fields added to all logs
	log.Logger = zerolog.New(os.Stdout).With().
		Timestamp().
		Str("app", app).
		Str("version", version).
		Logger()

	// use zerolog for any logs sent via standard log library
	stdlog.SetFlags(0)
	stdlog.SetOutput(log.Logger)

	log.Info().
		Str("branch", branch).
		Str("revision", revision).
		Str("buildDate", buildDate).
		Str("goVersion", goVersion).
		Msgf("Starting %v...", app)
}

// initJaeger returns the closer of a global Jaeger tracer configured from JAEGER_* environment variables
func initJaeger(service string) io.Closer {

	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("Generating Jaeger config from environment variables failed")
	}

	closer, err := cfg.InitGlobalTracer(service, jaegercfg.Logger(jaeger.StdLogger), jaegercfg.Metrics(jprom.New()))
	if err != nil {
		log.Fatal().Err(err).Msg("Generating Jaeger tracer failed")
	}

	return closer
}

func readConfig() (*api.APIConfig, error) {
	secretHelper := crypt.NewSecretHelper(*secretDecryptionKey, *secretDecryptionKeyBase64Encoded)
	configReader := api.NewConfigReader(secretHelper)

	return configReader.ReadConfigFromFile(*configFilePath, *secretDecryptionKey != "")
}

func getInstances(ctx context.Context, config *api.APIConfig) (database.Client, slack.Service, heroku.Service) {

	var databaseClient database.Client
	{
		databaseClient = database.NewClient(config)
		databaseClient = database.NewTracingClient(databaseClient)
		databaseClient = database.NewLoggingClient(databaseClient)
		databaseClient = database.NewMetricsClient(databaseClient, api.NewRequestCounter("database_client"), api.NewRequestHistogram("database_client"))
	}

	var slackapiClient slackapi.Client
	{
		slackapiClient = slackapi.NewClient(config)
		slackapiClient = slackapi.NewTracingClient(slackapiClient)
		slackapiClient = slackapi.NewLoggingClient(slackapiClient)
		slackapiClient = slackapi.NewMetricsClient(slackapiClient, api.NewRequestCounter("slackapi_client"), api.NewRequestHistogram("slackapi_client"))
	}

	var herokuapiClient herokuapi.Client
	{
		herokuapiClient = herokuapi.NewClient(config)
		herokuapiClient = herokuapi.NewTracingClient(herokuapiClient)
		herokuapiClient = herokuapi.NewLoggingClient(herokuapiClient)
		herokuapiClient = herokuapi.NewMetricsClient(herokuapiClient, api.NewRequestCounter("herokuapi_client"), api.NewRequestHistogram("herokuapi_client"))
	}

	var targetapiClient targetapi.Client
	{
		targetapiClient = targetapi.NewClient(config)
		targetapiClient = targetapi.NewTracingClient(targetapiClient)
		targetapiClient = targetapi.NewLoggingClient(targetapiClient)
		targetapiClient = targetapi.NewMetricsClient(targetapiClient, api.NewRequestCounter("targetapi_client"), api.NewRequestHistogram("targetapi_client"))
	}

	var herokuService heroku.Service
	{
		herokuService = heroku.NewService(config, herokuapiClient, databaseClient)
		herokuService = heroku.NewTracingService(herokuService)
		herokuService = heroku.NewLoggingService(herokuService)
		herokuService = heroku.NewMetricsService(herokuService, api.NewRequestCounter("heroku_service"), api.NewRequestHistogram("heroku_service"))
	}

	var slackService slack.Service
	{
		slackService = slack.NewService(config, databaseClient, slackapiClient, targetapiClient, herokuService)
		slackService = slack.NewTracingService(slackService)
		slackService = slack.NewLoggingService(slackService)
		slackService = slack.NewMetricsService(slackService, api.NewRequestCounter("slack_service"), api.NewRequestHistogram("slack_service"))
	}

	// set up database
	err := databaseClient.Connect(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed connecting to database")
	}

	err = databaseClient.AwaitDatabaseReadiness(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Database did not become ready")
	}

	err = databaseClient.MigrateSchema(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed migrating database schema")
	}

	return databaseClient, slackService, herokuService
}

func configureGinGonic(config *api.APIConfig, slackHandler slack.Handler, herokuHandler heroku.Handler, mappingsHandler mappings.Handler) *gin.Engine {

	// run gin in release mode and other defaults
	gin.SetMode(gin.ReleaseMode)
	gin.DefaultWriter = log.Logger
	gin.DisableConsoleColor()

	// creates a router without any middleware by default
	router := gin.New()

	router.Use(ZeroLogMiddleware())
	router.Use(gin.Recovery())
	router.Use(OpenTracingMiddleware())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	slackRoutes := router.Group("/slack")
	{
		slackRoutes.POST("/albumlist", slackHandler.Handle)
		slackRoutes.POST("/route", slackHandler.HandleRoute)
		slackRoutes.POST("/route/events", slackHandler.HandleEvents)
		slackRoutes.GET("/auth", slackHandler.HandleInstall)
	}

	if config.Integrations.Heroku.Enable {
		router.GET("/heroku/oauth", herokuHandler.HandleOAuthRedirect)
	}

	apiRoutes := router.Group("/api", api.AllowAllOriginsMiddleware())
	{
		apiRoutes.GET("", mappingsHandler.GetEndpoints(router))
		apiRoutes.GET("/mappings", mappingsHandler.GetMappings)
		apiRoutes.GET("/mapping/:teamID", mappingsHandler.GetMapping)
		apiRoutes.GET("/ping", mappingsHandler.Ping)
	}

	// liveness and readiness
	router.GET("/liveness", func(c *gin.Context) {
		c.String(http.StatusOK, "I'm alive!")
	})
	router.GET("/readiness", func(c *gin.Context) {
		c.String(http.StatusOK, "I'm ready!")
	})

	return router
}

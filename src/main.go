package main

import (
	"errors"

	appbuilder "sos-api/pkg/app_builder"
	"sos-api/pkg/logger"
	"sos-api/pkg/rabbitmq"
	"sos-api/pkg/rest"
	"sos-api/pkg/utilities"
	builderextensions "sos-api/src/builder_extensions"
	"sos-api/src/database"
	_ "sos-api/src/docs"
	"sos-api/src/middleware"
	"sos-api/src/outbox"
	"sos-api/src/user"

	"github.com/joho/godotenv"
)

const (
	serviceName                                   = "sos-api"
	logPublisherAlias     rabbitmq.PublisherAlias = "LogPublisher"
	eventsPublisherAlias  rabbitmq.PublisherAlias = "SosEventsPublisher"
	defaultConfigLocation                         = "config.json"
)

var errMissingJwtSecret = errors.New("jwt secret is not configured")

type builder = appbuilder.AppBuilder[ApiConfigJson, ApiConfig]

// @title						SOS Contacts API
// @version					1.0
// @description				Contacts, favorites, locations and SOS signals for the safety app.
// @host						localhost:8000
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	_ = godotenv.Load()
	configPath := utilities.EnvOr("SOS_API_CONFIG", defaultConfigLocation)

	var rateLimit rateLimitSettings

	app := appbuilder.New[ApiConfigJson, ApiConfig]().
		InitLogger(logger.GlobalLoggerConfig{
			Args: []logger.LoggerArg{{Key: "service", Value: serviceName}},
		}).
		LoadConfig(configPath).
		WithOption(func(a *builder) {
			if len(a.Config.AuthConf.JwtSecret) == 0 {
				a.Logger.Fatal(errMissingJwtSecret, "Refusing to start")
			}
			database.ConnectToDatabase(a)
			database.RunMigrations(a.Config.DatabaseConf.RunMigrations)
		}).
		WithOption(func(a *builder) {
			rateLimit = rateLimitSettings{
				counter: builderextensions.ConnectToRedis(a),
				limit:   a.Config.RedisConf.RateLimitRequests,
				window:  a.Config.RedisConf.RateLimitWindow,
			}
		}).
		InitRabbitmqConnection().
		InitRabbitmqRegistries().
		WithOption(func(a *builder) {
			if logPublisher := rabbitmq.GetPublisher(logPublisherAlias); logPublisher != nil {
				logger.AddSinkToLoggerInstance(a.Logger, rabbitmq.CreateRabbitmqLoggerSink(serviceName, logPublisher))
			}
		}).
		WithOption(func(a *builder) {
			publisher := rabbitmq.GetPublisher(eventsPublisherAlias)
			if publisher == nil {
				a.Logger.Warnf("Publisher %s not registered, outbox worker disabled", eventsPublisherAlias)
				return
			}
			a.AddWorkerServices(outbox.NewOutboxWorker(
				outbox.NewRepo(database.GetDatabaseConnection()),
				publisher,
				a.Config.OutboxConf.Schedule,
			))
		}).
		WithOption(func(a *builder) {
			a.AddGinMiddleware(
				rest.NewMiddleware(rest.GlobalGroup, middleware.RequestLogger()),
				rest.NewMiddleware(rest.GlobalGroup, middleware.CORSMiddleware(a.Config.RestConf.AllowedOrigin)),
				rest.NewMiddleware(apiGroup, middleware.ActingUserMiddleware(
					a.Config.AuthConf.JwtSecret,
					user.NewRepository(database.GetDatabaseConnection()),
				)),
				rest.NewMiddleware(internalGroup, middleware.InternalAuthMiddleware(a.Config.AuthConf.InternalToken)),
			)
			a.AddGinRoutes(buildRoutes(database.GetDatabaseConnection(), rateLimit)...)
		}).
		AddSwagger().
		InitGinRouter().
		Build()

	app.Start()
}

package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"go-weather/configs"
	_ "go-weather/docs"
	"go-weather/internal/application/controller"
	"go-weather/internal/application/loader"
	"go-weather/internal/application/middleware"
	"go-weather/internal/application/processor"
	"go-weather/internal/application/schedule"
	"go-weather/internal/application/view"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/cache"
	"go-weather/internal/domain/gateway/db"
	"go-weather/internal/domain/gateway/queue"
	"go-weather/internal/domain/usecase/health"
	"go-weather/internal/domain/usecase/lookup"
	"go-weather/internal/domain/usecase/panel"
	"go-weather/internal/domain/usecase/user"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/internal/infra/aws"
	"go-weather/internal/infra/database"
	gormdb "go-weather/internal/infra/database/gorm"
	"go-weather/internal/infra/database/sqlc"
	httpclient "go-weather/pkg/http"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/redis"
	"go-weather/pkg/resource"
	"go-weather/pkg/sqs"
	"go-weather/pkg/token"
)

// @title go-weather API
// @version 1.0
// @description Saved weather lookups backed by OpenWeather and sunrise-sunset.org.
// @BasePath /
func main() {
	log.Info(msg.GetMessage("app.start"),
		zap.String("application", configs.Env.ApplicationName),
		zap.String("environment", configs.Env.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	contextPath := resource.GetString("app.server.context-path")
	port := resource.GetStringOr("app.server.port", "8000")
	refreshQueue := resource.GetStringOr("app.refresh.queue", "weather-refresh")

	// Init database
	sqlDB, err := sqlc.Open(ctx, database.ConfigFromProperties())
	if err != nil {
		log.Fatal(msg.GetMessage("app.init-failed", "database"), zap.Error(err))
	}
	defer func() { _ = sqlDB.Close() }()

	gormDB, err := gormdb.Open(sqlDB)
	if err != nil {
		log.Fatal(msg.GetMessage("app.init-failed", "gorm"), zap.Error(err))
	}
	if err = gormdb.Migrate(gormDB); err != nil {
		log.Fatal(msg.GetMessage("app.init-failed", "users table"), zap.Error(err))
	}
	if err = sqlc.Migrate(ctx, sqlDB); err != nil {
		log.Fatal(msg.GetMessage("app.init-failed", "weather_requests table"), zap.Error(err))
	}

	// Init upstream gateways
	var openWeather api.OpenWeatherGateway = api.NewOpenWeatherGateway(
		resource.GetStringOr("app.openweather.url", "https://api.openweathermap.org"),
		resource.GetString("app.openweather.api-key"),
		resource.GetFloat64("app.openweather.requests-per-second"),
		httpclient.ClientOptions{
			Backoff: httpclient.DefaultBackoff(),
			Logger:  httpclient.ZapLogger{Name: "openweather"},
		})
	sunGateway := api.NewSunGateway(
		resource.GetStringOr("app.sunrise-sunset.url", "https://api.sunrise-sunset.org"),
		httpclient.ClientOptions{Logger: httpclient.ZapLogger{Name: "sunrise-sunset"}})

	// Init cache
	var refreshLocker schedule.Locker
	cacheHealth := cache.NewRedisHealthGateway(nil, "")
	if resource.GetBool("app.cache.enabled") {
		redisConfig := redis.NewRedisConfig().
			WithHost(resource.GetStringOr("app.cache.host", "localhost")).
			WithPort(resource.GetIntOr("app.cache.port", 6379)).
			WithPassword(resource.GetString("app.cache.password")).
			WithDatabase(resource.GetInt("app.cache.database")).
			WithCacheTTL("forecast", resource.GetDurationOr("app.cache.forecast-ttl", 10*time.Minute))

		redisClient, err := redis.NewClient(redisConfig)
		if err != nil {
			log.Fatal(msg.GetMessage("app.init-failed", "redis"), zap.Error(err))
		}
		defer func() { _ = redisClient.Close() }()

		openWeather = api.NewCachedOpenWeatherGateway(openWeather, redis.NewCache(redisClient, "forecast"))
		cacheHealth = cache.NewRedisHealthGateway(redisClient, redisConfig.Addr())
		refreshLocker = redis.NewLock(redisClient, "schedules", "weather-refresh",
			resource.GetDurationOr("app.refresh.lock-ttl", 10*time.Minute))
	}

	// Init queue
	var sender queue.Sender
	var sqsClient sqs.SQSClient
	queueHealth := queue.NewQueueHealthGateway()
	if resource.GetBool("app.queue.enabled") {
		client, err := aws.NewSQSClient(ctx, aws.ConfigFromProperties())
		if err != nil {
			log.Fatal(msg.GetMessage("app.init-failed", "sqs"), zap.Error(err))
		}
		sqsClient = client
		sender = sqs.NewSender(client)
	}

	// Init UseCase
	issuer := token.NewIssuer(
		resource.GetStringOr("app.security.jwt-secret", "change-me"),
		resource.GetDurationOr("app.security.token-ttl", 60*time.Minute))

	userUseCase := user.NewUserUseCase(db.NewGormUserGateway(gormDB), issuer)
	weatherUseCase := weather.NewWeatherUseCase(
		refreshQueue,
		resource.GetIntOr("app.refresh.batch-size", 100),
		sender,
		openWeather,
		sunGateway,
		db.NewSQLWeatherRequestGateway(sqlDB))
	healthUseCase := health.NewHealthUseCase(db.NewSQLHealthDBGateway(sqlDB), cacheHealth, queueHealth)

	// Init UI
	zone, err := time.LoadLocation(resource.GetStringOr("app.ui.time-zone", "America/Chicago"))
	if err != nil {
		log.Warn("unknown ui time zone, using local time", zap.Error(err))
		zone = time.Local
	}
	renderer, err := view.NewRenderer(view.Options{
		IconURL:  resource.GetStringOr("app.ui.icon-url", view.DefaultIconURL),
		Location: zone,
		BasePath: contextPath,
	})
	if err != nil {
		log.Fatal(msg.GetMessage("app.init-failed", "templates"), zap.Error(err))
	}

	weatherAPI := api.NewWeatherAPIGateway(
		resource.GetStringOr("app.server.self-url", "http://localhost:"+port)+contextPath,
		httpclient.ClientOptions{Logger: httpclient.ZapLogger{Name: "weather-api"}})

	lookupSessions := lookup.NewSessions()
	panelSessions := panel.NewSessions(panel.LogEvents)
	lookupUseCase := lookup.NewLookupUseCase(weatherAPI, lookupSessions)
	panelUseCase := panel.NewPanelUseCase(map[panel.Kind]panel.Loader{
		panel.KindForecast: loader.NewForecastLoader(weatherAPI, renderer),
		panel.KindSun:      loader.NewSunLoader(weatherAPI, renderer),
	}, panelSessions)

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.Debug = configs.Env.IsLocal()
	e.Renderer = renderer
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.CurrentUser(userUseCase))
	middleware.SetupRequestLogger(e, contextPath)

	e.StaticFS(contextPath+"/static", view.StaticFS())
	e.GET(contextPath+"/swagger/*", echoSwagger.WrapHandler)
	group := e.Group(contextPath)

	// Init Controller
	healthController := controller.NewHealthController(group, healthUseCase)
	userController := controller.NewUserController(group, userUseCase)
	weatherController := controller.NewWeatherController(group, weatherUseCase)
	lookupController := controller.NewLookupController(group, lookupUseCase, renderer)
	panelController := controller.NewPanelController(group, panelUseCase, renderer)
	pageController := controller.NewPageController(group, weatherUseCase, userUseCase, panelUseCase, controller.PageConfig{
		BasePath:     contextPath,
		CookieTTL:    issuer.TTL(),
		SecureCookie: resource.GetBool("app.security.secure-cookie"),
	})

	// Init Routes
	healthController.InitHealthRoutes()
	userController.InitUserRoutes()
	weatherController.InitWeatherRoutes()
	lookupController.InitLookupRoutes()
	panelController.InitPanelRoutes()
	pageController.InitPageRoutes()

	// Init Schedule
	sweeper, err := schedule.NewSessionSweeper(map[string]schedule.Sweepable{
		"lookup": lookupSessions,
		"panel":  panelSessions,
	}, resource.GetDurationOr("app.ui.sweep-interval", 5*time.Minute), resource.GetDurationOr("app.ui.session-idle", 30*time.Minute))
	if err != nil {
		log.Fatal(msg.GetMessage("app.init-failed", "session sweeper"), zap.Error(err))
	}
	if err = sweeper.Start(); err != nil {
		log.Fatal(msg.GetMessage("app.init-failed", "session sweeper"), zap.Error(err))
	}
	defer func() { _ = sweeper.Stop() }()

	if sqsClient != nil {
		refreshScheduler := schedule.NewRefreshScheduler(weatherUseCase, refreshLocker, schedule.RefreshSchedulerConfig{
			CronExpression: resource.GetStringOr("app.refresh.cron", "0 */3 * * *"),
		})
		if err = refreshScheduler.InitRefreshScheduleTasks(); err != nil {
			log.Fatal(msg.GetMessage("app.init-failed", "refresh scheduler"), zap.Error(err))
		}
		defer refreshScheduler.Stop()

		worker, err := sqs.NewWorker(ctx, sqsClient, refreshQueue, processor.NewRefreshProcessor(weatherUseCase), &sqs.WorkerConfig{
			PoolSize: resource.GetIntOr("app.queue.pool-size", 2),
		})
		if err != nil {
			log.Fatal(msg.GetMessage("app.init-failed", "refresh worker"), zap.Error(err))
		}
		queueHealth.RegisterWorker(refreshQueue, worker)
		go func() {
			worker.Start(ctx)
			log.Info(msg.GetMessage("refresh.worker-stopped"))
		}()
	}

	// Start Routes
	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatal(msg.GetMessage("app.init-failed", "http server"), zap.Error(err))
		}
	}()
	log.Info(msg.GetMessage("app.started", port))

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stopping"))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), resource.GetDurationOr("app.server.shutdown-timeout", 10*time.Second))
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shut down http server", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stopped"))
	log.Sync()
}

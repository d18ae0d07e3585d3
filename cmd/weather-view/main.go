package main

import (
	"context"
	"errors"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"net/http"
	"os/signal"
	"syscall"
	"time"
	"weather-view/configs"
	"weather-view/docs"
	"weather-view/internal/application/controller"
	"weather-view/internal/application/middleware"
	"weather-view/internal/application/view"
	gateway "weather-view/internal/domain/gateway/api"
	"weather-view/internal/domain/usecase/health"
	"weather-view/internal/domain/usecase/weather"
	httpclient "weather-view/pkg/http"
	"weather-view/pkg/log"
	"weather-view/pkg/msg"
)

// @title Weather View API
// @version 1.0
// @description Current weather for a single city with a Celsius/Fahrenheit toggle.
// @BasePath /weather-view
func main() {
	defer log.Sync()

	if err := configs.Load(); err != nil {
		log.Fatal(msg.GetMessage("app.config-fail", err))
	}
	log.Info(msg.GetMessage("app.start"))

	cfg, err := configs.NewWeatherConfig()
	if err != nil {
		log.Fatal(msg.GetMessage("app.config-fail", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	middleware.SetupRequestLogger(e)
	middleware.SetupValidator(e)

	renderer, err := view.NewTemplateRenderer()
	if err != nil {
		log.Fatal(msg.GetMessage("app.config-fail", err))
	}
	e.Renderer = renderer

	api := e.Group(cfg.ContextPath)

	// Init Gateway
	weatherGateway := gateway.NewWeatherGateway(cfg.BaseURL, gateway.WeatherGatewayOptions{
		APIKey: cfg.APIKey,
		Client: httpclient.ClientOptions{
			ReadTimeout:       cfg.Timeout,
			ConnectionTimeout: cfg.Timeout,
		},
	})

	// Init UseCase
	weatherUseCase := weather.NewWeatherViewUseCase(cfg.City, cfg.SurfaceFailure, weatherGateway)
	healthUseCase := health.NewHealthUseCase(weatherGateway, weatherUseCase)

	// Init Controller
	weatherController := controller.NewWeatherController(api, weatherUseCase)
	healthController := controller.NewHealthController(api, healthUseCase)

	// Init Routes
	weatherController.InitWeatherRoutes()
	healthController.InitHealthRoutes()
	docs.SwaggerInfo.BasePath = cfg.ContextPath
	api.GET("/swagger/*", echoSwagger.WrapHandler)

	// Load once; failures are logged and leave the page on its loading indicator
	go func() {
		_, _ = weatherUseCase.Load(ctx)
	}()

	// Start Routes
	go func() {
		log.Info(msg.GetMessage("app.started", cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err.Error())
		}
	}()

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stopping"))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error(err.Error())
	}
}

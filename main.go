package main

import (
	"github.com/Padmajasharma/Bookshow/config"
	"github.com/Padmajasharma/Bookshow/internal/handler"
	"github.com/Padmajasharma/Bookshow/internal/middleware"
	"github.com/Padmajasharma/Bookshow/internal/render"
	"github.com/Padmajasharma/Bookshow/internal/repository"
	"github.com/Padmajasharma/Bookshow/internal/service"
	"github.com/Padmajasharma/Bookshow/internal/session"
	"github.com/Padmajasharma/Bookshow/pkg/database"
	"github.com/Padmajasharma/Bookshow/pkg/logger"
	"github.com/Padmajasharma/Bookshow/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// Broker is optional; lifecycle messages are dropped when unset.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			logger.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		publisher = p
		defer publisher.Close()
	} else {
		logger.Warnf("RABBITMQ_URL not set, lifecycle messages disabled")
	}

	// Repositories
	venueRepo := repository.NewVenueRepository(db)
	eventRepo := repository.NewEventRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	buyerRepo := repository.NewBuyerRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Services
	authSvc := service.NewAuthService(buyerRepo, adminRepo)
	venueSvc := service.NewVenueService(venueRepo, eventRepo, adminRepo)
	showSvc := service.NewShowService(eventRepo, ticketRepo, publisher)
	ticketSvc := service.NewTicketService(ticketRepo, eventRepo, buyerRepo, publisher)
	searchSvc := service.NewSearchService(venueRepo, eventRepo)

	sess := session.NewManager(cfg.SessionSecret)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler

	renderer, err := render.New("web/templates/*.html")
	if err != nil {
		logger.Fatalf("failed to parse templates: %v", err)
	}
	e.Renderer = renderer

	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			logger.Infof("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(middleware.LoadIdentity(sess, buyerRepo, adminRepo))

	e.Static("/static", "static")
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handler.NewAuthHandler(authSvc, sess).RegisterRoutes(e)
	handler.NewVenueHandler(venueSvc, sess).RegisterRoutes(e)
	handler.NewShowHandler(showSvc, venueSvc, sess, cfg.UploadDir).RegisterRoutes(e)
	handler.NewTicketHandler(ticketSvc, showSvc, searchSvc, sess).RegisterRoutes(e)
	handler.NewAPIHandler(venueSvc, showSvc).RegisterRoutes(e)

	logger.Infof("Bookshow starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

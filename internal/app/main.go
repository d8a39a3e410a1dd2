package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Egor213/LogiProbe/internal/broker"
	kafkabroker "github.com/Egor213/LogiProbe/internal/broker/kafka"
	"github.com/Egor213/LogiProbe/internal/codesearch"
	"github.com/Egor213/LogiProbe/internal/config"
	grpcrest "github.com/Egor213/LogiProbe/internal/controller/grpc/rest"
	grpcv1 "github.com/Egor213/LogiProbe/internal/controller/grpc/v1"
	httpv1 "github.com/Egor213/LogiProbe/internal/controller/http/v1"
	mcpcontroller "github.com/Egor213/LogiProbe/internal/controller/mcp"
	"github.com/Egor213/LogiProbe/internal/metrics"
	"github.com/Egor213/LogiProbe/internal/repo"
	"github.com/Egor213/LogiProbe/internal/repo/synth"
	"github.com/Egor213/LogiProbe/internal/service"
	"github.com/Egor213/LogiProbe/internal/tools"
	errorsUtils "github.com/Egor213/LogiProbe/pkg/errors"
	"github.com/Egor213/LogiProbe/pkg/grpcserver"
	"github.com/Egor213/LogiProbe/pkg/httpserver"
	"github.com/Egor213/LogiProbe/pkg/logger"
	"github.com/Egor213/LogiProbe/pkg/postgres"
	gw "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/labstack/echo/v4"

	log "github.com/sirupsen/logrus"
)

func Run() {
	// Config
	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level, cfg.Log.Format)
	log.Info("Logger has been set up")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Journal storage
	var pg *postgres.Postgres
	if cfg.JournalEnabled() {
		Migrate(cfg.PG.URL)

		log.Info("Connecting to DB")
		pg, err = postgres.New(ctx, cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.MaxPoolSize))
		if err != nil {
			log.Fatal(errorsUtils.WrapPathErr(err))
		}
		defer pg.Close()
		log.Info("Connected to DB")
	} else {
		log.Info("Postgres URL is not set, tool-call journal is disabled")
	}

	// Producer
	var brokerProducer broker.Producer = broker.NopProducer{}
	if cfg.BrokerEnabled() {
		log.WithField("topic", cfg.Kafka.Topic).Info("Publishing tool calls to Kafka")
		brokerProducer = kafkabroker.NewProducer(kafkabroker.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
	}
	defer func() {
		if err := brokerProducer.Close(); err != nil {
			log.Error(errorsUtils.WrapPathErr(err))
		}
	}()

	// Repos
	gen := synth.New(synth.WithOptions(synth.Options{
		SortInjected:  cfg.Synth.SortInjected,
		WindowMinutes: cfg.Synth.DefaultWindowMinutes,
	}))
	repositories := repo.NewRepositories(gen, pg)

	// Metrics
	counters := metrics.New()

	// Services
	deps := service.ServicesDependencies{
		Repos:          repositories,
		Counters:       counters,
		BrokerProducer: brokerProducer,
		Limits: service.LogLimits{
			Nginx: cfg.Limits.Nginx,
			MySQL: cfg.Limits.MySQL,
			Redis: cfg.Limits.Redis,
		},
		WindowMinutes: cfg.Synth.DefaultWindowMinutes,
	}
	services := service.NewServices(deps)

	// Tools
	code, err := codesearch.New(cfg.Codebase.Root)
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	dispatcher := tools.NewDispatcher(tools.NewCatalog(services, code), services.Journal, counters)
	log.WithField("tools", dispatcher.Catalog().Names()).Info("Tool catalog is ready")

	// HTTP server
	log.Info("Starting HTTP server...")
	log.Debugf("Server port: %s", cfg.HTTP.Port)
	httpHandler := echo.New()
	httpv1.ConfigureRouter(httpHandler, httpv1.AppInfo{Name: cfg.App.Name, Version: cfg.App.Version}, dispatcher, services.Journal)
	httpServer := httpserver.New(httpHandler,
		httpserver.Port(cfg.HTTP.Port),
		httpserver.ShutdownTimeout(cfg.HTTP.ShutdownTimeout),
	)

	// gRPC server
	log.Info("Starting gRPC server...")
	log.Debugf("Server port: %s", cfg.GRPC.Port)
	grpcServer, err := grpcserver.New(
		grpcv1.RegisterServices(dispatcher, counters),
		grpcserver.WithPort(cfg.GRPC.Port),
		grpcserver.WithServerOptions(grpcv1.ServerOptions()...),
	)
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// REST gateway
	log.Info("Starting gRPC gateway...")
	log.Debugf("Server port: %s", cfg.GRPC.GatewayPort)
	gwMux := gw.NewServeMux()
	gwConn, err := grpcrest.RegisterServices(gwMux, cfg.GRPC.Port)
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	defer gwConn.Close()
	gatewayServer := httpserver.New(gwMux, httpserver.Port(cfg.GRPC.GatewayPort))

	// Prometheus server
	log.Info("Starting metrics server...")
	log.Debugf("Server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metrics.ConfigureRouter(metricsHandler, nil)
	metricsServer := httpserver.New(metricsHandler, httpserver.Port(cfg.Prometheus.Port))

	// MCP server
	log.WithField("transport", cfg.MCP.Transport).Info("Starting MCP server...")
	mcpServer, err := mcpcontroller.New(
		mcpcontroller.NewMCPServer(cfg.App.Name, cfg.App.Version, dispatcher),
		mcpcontroller.WithTransport(cfg.MCP.Transport),
		mcpcontroller.WithPort(cfg.MCP.Port),
	)
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Waiting signal
	log.Info("Configuring graceful shutdown")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-httpServer.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	case err := <-grpcServer.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	case err := <-gatewayServer.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	case err := <-mcpServer.Notify():
		if err != nil {
			log.Error(errorsUtils.WrapPathErr(err))
		} else {
			log.Info("MCP client disconnected")
		}
	}

	// Graceful shutdown
	log.Info("Shutting down...")
	if err := mcpServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	if err := httpServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	if err := gatewayServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	if err := metricsServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	grpcServer.Shutdown()
}

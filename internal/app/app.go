package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/solutionam/partstore/config"
	"github.com/solutionam/partstore/internal/adapter/catalog"
	"github.com/solutionam/partstore/internal/adapter/chatbot"
	"github.com/solutionam/partstore/internal/adapter/genai"
	"github.com/solutionam/partstore/internal/adapter/httphandler"
	"github.com/solutionam/partstore/internal/adapter/kafka"
	"github.com/solutionam/partstore/internal/adapter/locale"
	"github.com/solutionam/partstore/internal/core/domain"
	"github.com/solutionam/partstore/internal/core/port"
	"github.com/solutionam/partstore/internal/core/service"
	"github.com/solutionam/partstore/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type coreService struct {
	catalog   service.CatalogService
	cart      *service.CartService
	assistant service.AssistantService
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	products   []domain.Product
	events     *kafka.ClientEventsProducer
	service    coreService
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.loadCatalog()
	app.initEventsProducer()
	app.initCoreServices()
	app.initHTTPServer()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) loadCatalog() {
	const op = "App.loadCatalog"

	source := catalog.NewFileSource(app.cfg.CatalogPath)
	products, err := source.Load(app.ctx)
	if err != nil {
		app.fallDown(op, err)
	}

	app.products = products
}

// initEventsProducer wires the client-events pipeline only when seed
// brokers are configured. Without brokers the storefront runs with
// analytics disabled.
func (app *App) initEventsProducer() {
	const op = "App.initEventsProducer"

	if len(app.cfg.Broker.SeedBrokers) == 0 {
		slog.Info("no seed brokers configured, analytics disabled", "op", op)
		return
	}

	srClient, err := sr.NewClient(
		sr.URLs(app.cfg.Broker.SchemaRegistryURLs...),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	subject := app.cfg.Broker.Topics.ClientEvents + "-value"
	eventSerde, err := schema.NewSerdeClientEventV1(
		app.ctx,
		schema.SubjectOpt(subject),
		schema.SchemaIdentifierOpt(schema.NewSchemaCreater(srClient)),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	producer, err := kafka.NewClientEventsProducer(
		kafka.ProducerClientOpt(
			app.ctx, app.cfg.Broker.SeedBrokers, app.cfg.Broker.Topics.ClientEvents,
		),
		kafka.ProducerEncoderOpt(eventSerde),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.events = &producer
}

func (app *App) initCoreServices() {
	var events port.ClientEventsProducer
	if app.events != nil {
		events = app.events
	}

	catalogSvc := service.NewCatalogService(app.products, events)
	cartSvc := service.NewCartService(catalogSvc)
	if app.events != nil {
		cartSvc.Subscribe(service.NewCartEventsObserver(app.events))
	}

	aiClient := genai.NewClient(app.cfg.Assistant.BaseURL, app.cfg.Assistant.Timeout)
	assistantSvc := service.NewAssistantService(
		aiClient, aiClient, aiClient, app.chatResponder(aiClient),
	)

	app.service = coreService{
		catalog:   catalogSvc,
		cart:      cartSvc,
		assistant: assistantSvc,
	}
}

func (app *App) chatResponder(caller chatbot.ChatCaller) port.ChatResponder {
	if app.cfg.Chatbot.Mode == "remote" {
		return chatbot.NewRemoteResponder(caller)
	}
	return chatbot.NewStaticResponder()
}

func (app *App) initHTTPServer() {
	const op = "App.initHTTPServer"

	bundle, err := locale.NewBundle()
	if err != nil {
		app.fallDown(op, err)
	}

	mux := http.NewServeMux()
	httphandler.RegisterProducts(mux, app.service.catalog)
	httphandler.RegisterCart(mux, app.service.cart)
	httphandler.RegisterAssistant(mux, app.service.assistant, app.service.assistant)
	httphandler.RegisterLocale(mux, bundle)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	if app.events != nil {
		app.events.Close()
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}

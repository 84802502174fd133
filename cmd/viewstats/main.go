package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/solutionam/partstore/config"
	"github.com/solutionam/partstore/internal/adapter/kafka"
	"github.com/solutionam/partstore/pkg/schema"
	"github.com/solutionam/partstore/pkg/sigctx"
	"github.com/twmb/franz-go/pkg/sr"
)

// viewstats consumes the client-events stream and keeps a per-product
// tally of product_viewed events in its group table.

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()

	initLogger(cfg.LogLevel)

	eventSerde := createEventSerde(sigCtx, cfg)

	processor, err := kafka.NewProductViewsProcessor(
		cfg.Broker.SeedBrokers,
		cfg.Broker.Topics.ClientEvents,
		cfg.Broker.Consumers.ProductViewsGroup,
		eventSerde,
	)
	if err != nil {
		die("main", err)
	}

	go processor.Run(sigCtx)
	slog.Info("viewstats is running")

	<-sigCtx.Done()
	processor.Close()
}

func initLogger(level slog.Leveler) {
	opts := &slog.HandlerOptions{Level: level}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func createEventSerde(ctx context.Context, cfg config.Config) schema.Serde {
	const op = "main.createEventSerde"

	srClient, err := sr.NewClient(
		sr.URLs(cfg.Broker.SchemaRegistryURLs...),
	)
	if err != nil {
		die(op, err)
	}

	subject := cfg.Broker.Topics.ClientEvents + "-value"
	eventSerde, err := schema.NewSerdeClientEventV1(
		ctx,
		schema.SubjectOpt(subject),
		schema.SchemaIdentifierOpt(schema.NewSchemaCreater(srClient)),
	)
	if err != nil {
		die(op, err)
	}
	return eventSerde
}

func die(op string, err error) {
	fmt.Printf("%s: %v\n", op, err)
	os.Exit(1)
}

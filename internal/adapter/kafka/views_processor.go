package kafka

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/lovoo/goka"
	"github.com/solutionam/partstore/internal/core/domain"
	"github.com/solutionam/partstore/pkg/schema"
)

type ClientEventCodec struct {
	serde Serde
}

func NewClientEventCodec(s Serde) ClientEventCodec {
	return ClientEventCodec{s}
}

func (c ClientEventCodec) Encode(v any) ([]byte, error) {
	const op = "ClientEventCodec.Encode"
	if _, ok := v.(schema.ClientEventV1); !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return c.serde.Encode(v)
}

func (c ClientEventCodec) Decode(data []byte) (any, error) {
	const op = "ClientEventCodec.Decode"
	var s schema.ClientEventV1
	err := c.serde.Decode(data, &s)
	if err != nil {
		return nil, opErr(err, op)
	}
	return s, err
}

type ViewCount int64

type ViewCountCodec struct{}

func (ViewCountCodec) Encode(v any) ([]byte, error) {
	const op = "ViewCountCodec.Encode"
	cv, ok := v.(ViewCount)
	if !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	data := strconv.AppendInt([]byte(nil), int64(cv), 10)
	return data, nil
}

func (ViewCountCodec) Decode(data []byte) (any, error) {
	const op = "ViewCountCodec.Decode"
	iv, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return nil, opErr(err, op)
	}
	return ViewCount(iv), nil
}

// ProductViewsProcessor tallies product_viewed events per product name
// into the group table. The tally is the only durable analytics state
// and lives entirely in the broker.
type ProductViewsProcessor struct {
	gp *goka.Processor
}

func NewProductViewsProcessor(
	seedBrokers []string, stream string, group string, eventSerde Serde,
) (ProductViewsProcessor, error) {
	const op = "NewProductViewsProcessor"

	var p ProductViewsProcessor

	gg := goka.DefineGroup(goka.Group(group),
		goka.Input(goka.Stream(stream), NewClientEventCodec(eventSerde), p.processFn),
		goka.Persist(ViewCountCodec{}),
	)

	gp, err := goka.NewProcessor(seedBrokers, gg)
	if err != nil {
		return ProductViewsProcessor{}, opErr(err, op)
	}

	p.gp = gp
	return p, nil
}

func (p ProductViewsProcessor) Run(ctx context.Context) {
	const op = "ProductViewsProcessor.Run"
	log := slog.With("op", op)

	err := p.gp.Run(ctx)
	if err != nil {
		log.Error("stopped", "err", err)
		return
	}
	log.Info("stopped")
}

func (p ProductViewsProcessor) Close() {
	const op = "ProductViewsProcessor.Close"
	log := slog.With("op", op)

	log.Info("closing processor...")
	p.gp.Stop()
	log.Info("processor is closed")
}

func (p ProductViewsProcessor) processFn(ctx goka.Context, msg any) {
	const op = "ProductViewsProcessor.processFn"

	s, ok := msg.(schema.ClientEventV1)
	if !ok {
		return
	}

	evt := clientEventToDomain(s)
	if evt.Kind != domain.EventProductViewed {
		return
	}

	var count ViewCount
	if v, ok := ctx.Value().(ViewCount); ok {
		count = v
	}
	count++
	ctx.SetValue(count)

	slog.Info("product view tallied",
		"op", op, "productName", evt.ProductName, "views", int64(count))
}

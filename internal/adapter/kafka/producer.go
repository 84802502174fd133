package kafka

import (
	"context"
	"log/slog"
	"time"

	"github.com/solutionam/partstore/internal/core/domain"
	"github.com/solutionam/partstore/internal/core/port"
	"github.com/solutionam/partstore/pkg/retry"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.ClientEventsProducer = (*ClientEventsProducer)(nil)

// A producer is used for composition.
//
// Producing records to the broker and closing the underlying [kgo.Client].
type producer struct {
	opPrefix string
	cl       ProducerClient
}

func (p producer) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p producer) produce(
	ctx context.Context, rs ...*kgo.Record,
) error {
	const op = "produce"

	retryCfg := retry.RetryConfig{
		MaxAttempts: 3,
		Backoff:     retry.ExponentialBackoff(100 * time.Millisecond),
	}

	err := retry.Do(ctx, retryCfg, func() error {
		res := p.cl.ProduceSync(ctx, rs...)
		return res.FirstErr()
	})
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

// A ClientEventsProducer used for produce [domain.ClientEvent].
type ClientEventsProducer struct {
	producer producer
	encoder  Encoder
	opPrefix string
}

func NewClientEventsProducer(
	opts ...ProducerOpt,
) (ClientEventsProducer, error) {
	const op = "NewClientEventsProducer"

	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return ClientEventsProducer{}, opErr(err, op)
		}
	}

	opPrefix := "ClientEventsProducer"
	p := producer{
		opPrefix: opPrefix,
		cl:       options.cl,
	}

	return ClientEventsProducer{
		producer: p,
		encoder:  options.encoder,
		opPrefix: opPrefix,
	}, nil
}

func (p ClientEventsProducer) Close() {
	p.producer.close()
}

func (p ClientEventsProducer) ProduceEvent(
	ctx context.Context, evt domain.ClientEvent,
) error {
	const op = "ProduceEvent"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	r, err := p.createRecord(evt)
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	if err := p.producer.produce(ctx, &r); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	return nil
}

func (p ClientEventsProducer) createRecord(
	evt domain.ClientEvent,
) (kgo.Record, error) {
	const op = "createRecord"

	s := clientEventToSchemaV1(evt)
	b, err := p.encoder.Encode(s)
	if err != nil {
		return kgo.Record{}, opErr(err, p.opPrefix, op)
	}
	msgKey := []byte(s.ProductName)
	return kgo.Record{Key: msgKey, Value: b}, nil
}

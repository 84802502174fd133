package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/solutionam/partstore/internal/core/domain"
	"github.com/solutionam/partstore/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var (
	ErrTooFewOpts       = errors.New("too few options")
	ErrInvalidValueType = errors.New("invalid value type")
)

type ProducerOpt func(*producerOpts) error

type producerOpts struct {
	cl      ProducerClient
	encoder Encoder
}

func ProducerClientOpt(
	ctx context.Context, seedBrokers []string, topic string,
) ProducerOpt {
	return func(opts *producerOpts) error {
		cl, err := kgo.NewClient(
			kgo.SeedBrokers(seedBrokers...),
			kgo.DefaultProduceTopicAlways(),
			kgo.DefaultProduceTopic(topic),
			kgo.RequiredAcks(kgo.AllISRAcks()),
			kgo.AllowAutoTopicCreation(),
		)
		if err != nil {
			return err
		}

		if err := cl.Ping(ctx); err != nil {
			return err
		}
		opts.cl = cl
		return nil
	}
}

func ProducerEncoderOpt(encoder Encoder) ProducerOpt {
	return func(opts *producerOpts) error {
		if encoder == nil {
			return errors.New("encoder is nil")
		}
		opts.encoder = encoder
		return nil
	}
}

type ProducerClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type Encoder interface {
	Encode(v any) ([]byte, error)
}

type Decoder interface {
	Decode(b []byte, v any) error
}

type Serde interface {
	Encoder
	Decoder
}

func makeOp(s ...string) string {
	return strings.Join(s, ".")
}

func opErr(err error, op ...string) error {
	return fmt.Errorf("%s: %w", makeOp(op...), err)
}

func clientEventToSchemaV1(v domain.ClientEvent) (s schema.ClientEventV1) {
	s.Kind = string(v.Kind)
	s.SessionID = v.SessionID
	s.ProductID = v.ProductID
	s.ProductName = v.ProductName
	s.Brand = v.Brand
	s.Price = v.Price
	s.Query = v.Query
	s.UnixTime = v.UnixTime
	return
}

func clientEventToDomain(s schema.ClientEventV1) (v domain.ClientEvent) {
	v.Kind = domain.ClientEventKind(s.Kind)
	v.SessionID = s.SessionID
	v.ProductID = s.ProductID
	v.ProductName = s.ProductName
	v.Brand = s.Brand
	v.Price = s.Price
	v.Query = s.Query
	v.UnixTime = s.UnixTime
	return
}

package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/kunalz06/btf-website/internal/config"
	"github.com/kunalz06/btf-website/internal/converter"
	"github.com/kunalz06/btf-website/internal/identifier"
	"github.com/kunalz06/btf-website/internal/receipt"
	counterrepo "github.com/kunalz06/btf-website/internal/repository/counter"
	participantrepo "github.com/kunalz06/btf-website/internal/repository/participant"
	regproducer "github.com/kunalz06/btf-website/internal/service/producer/registration"
	service "github.com/kunalz06/btf-website/internal/service/registration"
	reghttp "github.com/kunalz06/btf-website/internal/transport/http/registration/v1"
	whhttp "github.com/kunalz06/btf-website/internal/transport/http/webhook/v1"
	"github.com/kunalz06/btf-website/platform/closer"
	"github.com/kunalz06/btf-website/platform/kafka"
	"github.com/kunalz06/btf-website/platform/kafka/producer"
	"github.com/kunalz06/btf-website/platform/logger"
)

type RegistrationService interface {
	whhttp.RegistrationService
	reghttp.RegistrationService
}

type WebhookHandler interface {
	HandlePaymentWebhook(w http.ResponseWriter, r *http.Request)
}

type RegistrationHandler interface {
	RegistrationStatus(w http.ResponseWriter, r *http.Request)
	GetDetails(w http.ResponseWriter, r *http.Request)
}

type di struct {
	mongo            *mongo.Client
	participantsColl *mongo.Collection
	countersColl     *mongo.Collection

	participants service.ParticipantRepository
	counters     service.CounterRepository

	syncProducer      sarama.SyncProducer
	confirmedProducer kafka.Producer
	confirmedSender   service.ConfirmedSender
	conv              regproducer.Converter

	svc RegistrationService

	webhookHandler      WebhookHandler
	registrationHandler RegistrationHandler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		cfg := config.C()

		mongoClient, err := mongo.Connect(
			options.Client().ApplyURI(cfg.Mongo.DSN()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping database: %v\n", err))
		}

		d.mongo = mongoClient
	}

	return d.mongo
}

func (d *di) ParticipantsCollection(ctx context.Context) *mongo.Collection {
	if d.participantsColl == nil {
		d.participantsColl = d.MongoDB(ctx).
			Database(config.C().Mongo.DatabaseName()).
			Collection(config.C().Mongo.ParticipantsCollection())

		if err := participantrepo.EnsureIndexes(ctx, d.participantsColl); err != nil {
			panic(fmt.Sprintf("failed to ensure indexes: %v\n", err))
		}
	}

	return d.participantsColl
}

func (d *di) CountersCollection(ctx context.Context) *mongo.Collection {
	if d.countersColl == nil {
		d.countersColl = d.MongoDB(ctx).
			Database(config.C().Mongo.DatabaseName()).
			Collection(config.C().Mongo.CountersCollection())
	}

	return d.countersColl
}

func (d *di) ParticipantRepository(ctx context.Context) service.ParticipantRepository {
	if d.participants == nil {
		d.participants = participantrepo.NewParticipantRepository(d.ParticipantsCollection(ctx))
	}

	return d.participants
}

func (d *di) CounterRepository(ctx context.Context) service.CounterRepository {
	if d.counters == nil {
		d.counters = counterrepo.NewCounterRepository(d.CountersCollection(ctx))
	}

	return d.counters
}

func (d *di) KafkaConverter(_ context.Context) regproducer.Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.RegistrationConfirmedProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) ConfirmedProducer(ctx context.Context) kafka.Producer {
	if d.confirmedProducer == nil {
		d.confirmedProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.RegistrationConfirmedTopic(),
			logger.L(),
		)
	}

	return d.confirmedProducer
}

func (d *di) ConfirmedSender(ctx context.Context) service.ConfirmedSender {
	if d.confirmedSender == nil {
		d.confirmedSender = regproducer.NewRegistrationProducer(
			d.ConfirmedProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.confirmedSender
}

func (d *di) RegistrationService(ctx context.Context) RegistrationService {
	if d.svc == nil {
		d.svc = service.NewRegistrationService(
			d.ParticipantRepository(ctx),
			d.CounterRepository(ctx),
			d.ConfirmedSender(ctx),
			identifier.New(),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.svc
}

func (d *di) WebhookHandler(ctx context.Context) WebhookHandler {
	if d.webhookHandler == nil {
		d.webhookHandler = whhttp.NewWebhookHandler(
			d.RegistrationService(ctx),
			config.C().Webhook.Secret(),
		)
	}

	return d.webhookHandler
}

func (d *di) RegistrationHandler(ctx context.Context) RegistrationHandler {
	if d.registrationHandler == nil {
		d.registrationHandler = reghttp.NewRegistrationHandler(
			d.RegistrationService(ctx),
			receipt.NewRenderer(),
		)
	}

	return d.registrationHandler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}

package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
	StaticDir() string
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	DatabaseName() string
	ParticipantsCollection() string
	CountersCollection() string
	DSN() string
}

type Webhook interface {
	Secret() string
}

type Kafka interface {
	Brokers() []string
	RegistrationConfirmedTopic() string
	RegistrationConfirmedProducerConfig() *sarama.Config
}

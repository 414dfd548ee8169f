package rabbitmq

import (
	"context"
	"fmt"
	"sync"
	"time"

	"sos-api/pkg/logger"
	"sos-api/pkg/utilities"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

type PublisherAlias string

var (
	publisherRegistry map[PublisherAlias]IRabbitmqPublisher
	registryMu        sync.RWMutex
)

// GetPublisher returns the registered publisher, or nil when the alias is unknown.
func GetPublisher(alias PublisherAlias) IRabbitmqPublisher {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return publisherRegistry[alias]
}

func InitializePublisherRegistry(conn *amqp.Connection, publisherConfig []RabbitmqPublishersConfig) error {
	registryMu.Lock()
	defer registryMu.Unlock()

	publisherRegistry = make(map[PublisherAlias]IRabbitmqPublisher)

	for _, publisher := range publisherConfig {
		channel, err := conn.Channel()
		if err != nil {
			return fmt.Errorf("open channel for publisher %s: %w", publisher.PublisherAlias, err)
		}

		err = channel.ExchangeDeclare(
			publisher.Exchange,
			publisher.ExchangeType,
			true,  // durable
			false, // auto-deleted
			false, // internal
			false, // no-wait
			nil,
		)
		if err != nil {
			return fmt.Errorf("declare exchange %s: %w", publisher.Exchange, err)
		}

		publisherRegistry[publisher.PublisherAlias] = NewPublisher(
			channel,
			publisher.Exchange,
			publisher.RoutingKey,
		)
		logger.Default().Infof("Registered publisher %s -> %s", publisher.PublisherAlias, publisher.Exchange)
	}

	return nil
}

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type RabbitmqPublisher struct {
	Channel    amqpChannel
	Exchange   string
	RoutingKey string
}

func NewPublisher(ch amqpChannel, exchange, routingKey string) *RabbitmqPublisher {
	return &RabbitmqPublisher{
		Channel:    ch,
		Exchange:   exchange,
		RoutingKey: routingKey,
	}
}

type IRabbitmqPublisher interface {
	Publish(body utilities.Serializable) error
	PublishWithKey(routingKey string, body utilities.Serializable) error
}

func (rp *RabbitmqPublisher) Publish(body utilities.Serializable) error {
	return rp.PublishWithKey(rp.RoutingKey, body)
}

// PublishWithKey overrides the configured routing key, e.g. with the event type.
func (rp *RabbitmqPublisher) PublishWithKey(routingKey string, body utilities.Serializable) error {
	json, err := body.Serialize()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	return rp.Channel.PublishWithContext(
		ctx,
		rp.Exchange,
		routingKey,
		false, false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         json,
			Timestamp:    time.Now(),
			DeliveryMode: amqp.Persistent,
		},
	)
}

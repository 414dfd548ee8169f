package rabbitmq

import (
	"time"

	"sos-api/pkg/logger"

	"github.com/cenkalti/backoff/v4"
	amqp "github.com/rabbitmq/amqp091-go"
)

const maxDialRetries = 7

func ConnectToRabbitmq(url string) (*amqp.Connection, error) {
	queueLogger := logger.Default()

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = time.Second
	policy.MaxInterval = 30 * time.Second

	attempt := 0
	return backoff.RetryWithData(func() (*amqp.Connection, error) {
		attempt++
		conn, err := amqp.Dial(url)
		if err != nil {
			queueLogger.Warnf("Attempt %d to reach Rabbitmq failed: %v", attempt, err)
			return nil, err
		}
		return conn, nil
	}, backoff.WithMaxRetries(policy, maxDialRetries))
}

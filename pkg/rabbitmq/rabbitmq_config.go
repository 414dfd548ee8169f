package rabbitmq

import "sos-api/pkg/utilities"

type RabbimqConfigJson struct {
	Url              string                         `json:"url"`
	PublishersConfig []RabbitmqPublishersConfigJson `json:"publishers"`
}

type RabbitmqConfig struct {
	Url              string
	PublishersConfig []RabbitmqPublishersConfig
}

func (rcj RabbimqConfigJson) MapToDomain() RabbitmqConfig {
	return RabbitmqConfig{
		Url: utilities.EnvOr("RABBITMQ_URL", rcj.Url),
		PublishersConfig: utilities.ConvertJsonArrayToDomain[
			RabbitmqPublishersConfigJson,
			RabbitmqPublishersConfig,
		](rcj.PublishersConfig),
	}
}

// Enabled reports whether a broker is configured at all.
func (rc RabbitmqConfig) Enabled() bool {
	return rc.Url != ""
}

type RabbitmqPublishersConfigJson struct {
	PublisherAlias string `json:"publisher_alias"`
	Exchange       string `json:"exchange"`
	ExchangeType   string `json:"exchange_type"`
	RoutingKey     string `json:"routing_key"`
}

type RabbitmqPublishersConfig struct {
	PublisherAlias PublisherAlias
	Exchange       string
	ExchangeType   string
	RoutingKey     string
}

func (rpcj RabbitmqPublishersConfigJson) MapToDomain() RabbitmqPublishersConfig {
	exchangeType := rpcj.ExchangeType
	if exchangeType == "" {
		exchangeType = "topic"
	}

	return RabbitmqPublishersConfig{
		PublisherAlias: PublisherAlias(rpcj.PublisherAlias),
		Exchange:       rpcj.Exchange,
		ExchangeType:   exchangeType,
		RoutingKey:     rpcj.RoutingKey,
	}
}

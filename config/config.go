package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	PgURL     string `env:"PG_URL" required:"true"`
	PgPoolMax int    `env:"PG_POOL_MAX" envDefault:"10"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`

	// Provider API access. The secret is never logged.
	PaytrailBaseURL   string        `env:"PAYTRAIL_BASE_URL" envDefault:"https://services.paytrail.com"`
	PaytrailAccount   string        `env:"PAYTRAIL_ACCOUNT" required:"true"`
	PaytrailSecret    string        `env:"PAYTRAIL_SECRET" required:"true"`
	PaytrailAlgorithm string        `env:"PAYTRAIL_ALGORITHM" envDefault:"sha256"`
	PaytrailTimeout   time.Duration `env:"PAYTRAIL_TIMEOUT" envDefault:"20s"`
	PlatformName      string        `env:"PLATFORM_NAME" envDefault:"paytrailgw"`

	// Legacy E1 form interface credentials (authcode scheme).
	LegacyMerchantID   string `env:"LEGACY_MERCHANT_ID"`
	LegacyMerchantHash string `env:"LEGACY_MERCHANT_HASH"`

	// Base URL this service is reachable at; used to build the
	// success/cancel redirect and callback URLs sent to the provider.
	PublicBaseURL string `env:"PUBLIC_BASE_URL" required:"true"`

	// When true, the items array is dropped from create-payment requests
	// for orders carrying order-level discounts (the provider rejects
	// requests whose line-item sum disagrees with the total).
	RemoveItemsOnDiscount bool `env:"REMOVE_ITEMS_ON_DISCOUNT" envDefault:"false"`

	DefaultCurrency string `env:"DEFAULT_CURRENCY" envDefault:"EUR"`
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"EN"`

	// Notification retry worker.
	NotifyMaxTries int `env:"NOTIFY_MAX_TRIES" envDefault:"10"`

	// Kafka notification queue.
	KafkaBrokers             []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaNotifyTopic         string   `env:"KAFKA_NOTIFY_TOPIC" envDefault:"payments.notifications"`
	KafkaNotifyDLQTopic      string   `env:"KAFKA_NOTIFY_DLQ_TOPIC" envDefault:"payments.notifications.dlq"`
	KafkaNotifyConsumerGroup string   `env:"KAFKA_NOTIFY_CONSUMER_GROUP" envDefault:"paytrailgw-notify"`

	// OpenSearch audit sink for processed callbacks.
	OpensearchUrls          []string `env:"OPENSEARCH_URLS" envSeparator:","`
	OpensearchIndexPayments string   `env:"OPENSEARCH_INDEX_PAYMENTS" envDefault:"payment-events"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

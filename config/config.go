// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// DefaultRelayURL is the Web3Forms submission endpoint.
const DefaultRelayURL = "https://api.web3forms.com/submit"

// Config defines the configuration options for this service.
type Config struct {
	BindAddr            string   `env:"BIND_ADDR"             flag:"bind-addr"             flagDesc:"Bind address"`
	RelayAccessKey      string   `env:"WEB3FORMS_ACCESS_KEY"  flag:"web3forms-access-key"  flagDesc:"Access key used to authenticate submissions with Web3Forms"`
	RelayURL            string   `env:"WEB3FORMS_URL"         flag:"web3forms-url"         flagDesc:"URL submissions are posted to"`
	NotifyTo            string   `env:"NOTIFY_TO"             flag:"notify-to"             flagDesc:"Optional comma separated recipients overriding the Web3Forms dashboard default"`
	AttachFromImageURL  bool     `env:"ATTACH_FROM_IMAGE_URL" flag:"attach-from-image-url" flagDesc:"Attempt to fetch screenshot URLs and attach them to the email"`
	RelayTimeoutSeconds int      `env:"RELAY_TIMEOUT_SECONDS" flag:"relay-timeout-seconds" flagDesc:"Timeout in seconds for calls to Web3Forms and screenshot URLs"`
	MongoDBURL          string   `env:"MONGODB_URL"           flag:"mongodb-url"           flagDesc:"MongoDB server URL, the static catalog is used when empty"`
	Database            string   `env:"MONGODB_DATABASE"      flag:"mongodb-database"      flagDesc:"MongoDB database for the catalog"`
	Collection          string   `env:"MONGODB_COLLECTION"    flag:"mongodb-collection"    flagDesc:"MongoDB collection for the catalog"`
	BrokerAddr          []string `env:"KAFKA_BROKER_ADDR"     flag:"broker-addr"           flagDesc:"Kafka broker address list, events are not published when empty"`
	SchemaRegistryURL   string   `env:"SCHEMA_REGISTRY_URL"   flag:"schema-registry-url"   flagDesc:"Schema registry url"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		BindAddr:            ":4000",
		RelayURL:            DefaultRelayURL,
		RelayTimeoutSeconds: 30,
		Database:            "storefront",
		Collection:          "products",
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

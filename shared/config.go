package shared

import (
	"encoding/json"
	"log"
	"os"

	"github.com/tailscale/hujson"
)

const (
	configVarName  = "CONFIG"                  // If set, will load config from this path and not from devConfigPath
	secretsVarName = "SECRETS"                 // If set, will load secrets from this path and not from devSecretsPath
	devConfigPath  = "./dev/config.dev.jsonc"  // Path to config in development environment
	devSecretsPath = "./dev/secrets.dev.jsonc" // Path to secrets in development environment
)

type Config struct {
	Secrets       Secrets           `json:"-"`
	LogFile       string            `json:"log_file"`
	LogLevel      string            `json:"log_level"`
	ServicePort   uint              `json:"service_port"`
	Host          string            `json:"host"`
	DbFile        string            `json:"db_file"`
	Delivery      DeliveryConfig    `json:"delivery"`
	ConverterUrl  string            `json:"converter_url"`
	Recommenders  []RecommenderInfo `json:"recommenders"`
	FeedItemCount int               `json:"feed_item_count"`
}

// DeliveryConfig bounds the outbound fan-out of a single request.
type DeliveryConfig struct {
	Workers    int `json:"workers"`
	TimeoutSec int `json:"timeout_sec"`
}

// RecommenderInfo names one follow-recommendation collaborator. The set of
// active recommenders is resolved once at startup; no runtime registry.
type RecommenderInfo struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

type Secrets struct {
	ApiKeys     []string `json:"api_keys"`
	MetricsAuth string   `json:"metrics_auth"`
}

func LoadConfig() *Config {

	// Where are our config and secrets files?
	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = devConfigPath
	}
	secretsPath := os.Getenv(secretsVarName)
	if len(secretsPath) == 0 {
		secretsPath = devSecretsPath
	}

	// Read config file
	var config Config
	mustDeserializeFile(cfgPath, &config)
	// Read secrets member from secrets file
	mustDeserializeFile(secretsPath, &config.Secrets)

	if config.Delivery.Workers <= 0 {
		config.Delivery.Workers = 16
	}
	if config.Delivery.TimeoutSec <= 0 {
		config.Delivery.TimeoutSec = 30
	}
	if config.FeedItemCount <= 0 {
		config.FeedItemCount = 20
	}

	return &config
}

func mustDeserializeFile[T any](fileName string, obj *T) {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if err != nil {
		log.Fatal(err)
	}
	// JSONC => JSON
	cfgJson, err = standardizeJSON(cfgJson)
	if err != nil {
		log.Fatal(err)
	}
	// Parse
	if err := json.Unmarshal(cfgJson, obj); err != nil {
		log.Fatal(err)
	}
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}

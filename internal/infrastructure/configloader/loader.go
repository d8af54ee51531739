package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultChainID is the public Base chain id.
const DefaultChainID int64 = 8453

// ServerConfig holds server-specific configurations.
type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  int    `yaml:"readTimeout"`  // seconds
	WriteTimeout int    `yaml:"writeTimeout"` // seconds
	IdleTimeout  int    `yaml:"idleTimeout"`  // seconds
}

// UpstreamConfig describes the marketplace API the proxy forwards to.
// APIKey is a server-side secret and is never sent to callers.
type UpstreamConfig struct {
	BaseURL      string `yaml:"baseURL"`
	APIKey       string `yaml:"apiKey"`
	APIKeyHeader string `yaml:"apiKeyHeader"`
}

// ClientConfig configures the data layer that calls the proxy route.
type ClientConfig struct {
	ProxyBaseURL string `yaml:"proxyBaseURL"`
}

// MarketConfig holds the chain scope and page sizes of the upstream queries.
type MarketConfig struct {
	ChainID         int64  `yaml:"chainID"`
	TokenAddress    string `yaml:"tokenAddress"` // optional, enables the swap link
	SwapURLTemplate string `yaml:"swapURLTemplate"`
	MarketURL       string `yaml:"marketURL"`
	PacksLimit      int    `yaml:"packsLimit"`
	OpeningsLimit   int    `yaml:"openingsLimit"`
	ActivityLimit   int    `yaml:"activityLimit"`
	RefreshOnStart  bool   `yaml:"refreshOnStart"`
}

// StorageConfig selects the key/value store backing client-side state.
type StorageConfig struct {
	Driver string `yaml:"driver"` // "file" or "memory"
	Dir    string `yaml:"dir"`
}

// LoggingConfig holds logging-specific configurations.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowOrigins []string `yaml:"allowOrigins"`
}

// Config is the top-level configuration structure.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Client   ClientConfig   `yaml:"client"`
	Market   MarketConfig   `yaml:"market"`
	Storage  StorageConfig  `yaml:"storage"`
	Logging  LoggingConfig  `yaml:"logging"`
	CORS     CORSConfig     `yaml:"cors"`
}

// GetConfig implements port.ConfigProvider.
func (c *Config) GetConfig() *Config {
	return c
}

// SwapURL returns the external swap link for the configured token, or "" when no valid
// token address is configured.
func (c *Config) SwapURL() string {
	if c.Market.TokenAddress == "" || !common.IsHexAddress(c.Market.TokenAddress) {
		return ""
	}
	return fmt.Sprintf(c.Market.SwapURLTemplate, common.HexToAddress(c.Market.TokenAddress).Hex())
}

// Load reads the YAML configuration file from the given path, applies environment
// overrides and defaults. A missing file is not an error: the service can be configured
// through the environment alone.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("No .env file loaded: %v", err)
	}

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			logrus.Errorf("Failed to unmarshal config data from %s: %v", path, err)
			return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
		}
		logrus.Infof("Loaded configuration from path: %s", path)
	case os.IsNotExist(err):
		logrus.Warnf("Config file %s not found, using environment and defaults", path)
	default:
		logrus.Errorf("Failed to read config file %s: %v", path, err)
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	applyEnv(&cfg)
	if err := applyDefaults(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("WIELD_API_KEY"); v != "" {
		cfg.Upstream.APIKey = v
	}
	if v := os.Getenv("UPSTREAM_BASE_URL"); v != "" {
		cfg.Upstream.BaseURL = v
	}
	if v := os.Getenv("PROXY_BASE_URL"); v != "" {
		cfg.Client.ProxyBaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("TOKEN_ADDRESS"); v != "" {
		cfg.Market.TokenAddress = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("CHAIN_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			logrus.Warnf("Ignoring invalid CHAIN_ID %q: %v", v, err)
		} else {
			cfg.Market.ChainID = id
		}
	}
}

func applyDefaults(cfg *Config) error {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	cfg.Server.Port = strings.TrimPrefix(cfg.Server.Port, ":")
	if cfg.Server.ReadTimeout <= 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout <= 0 {
		cfg.Server.WriteTimeout = 30
	}
	if cfg.Server.IdleTimeout <= 0 {
		cfg.Server.IdleTimeout = 60
	}

	if cfg.Upstream.BaseURL == "" {
		cfg.Upstream.BaseURL = "https://build.wield.xyz"
	}
	cfg.Upstream.BaseURL = strings.TrimRight(cfg.Upstream.BaseURL, "/")
	if cfg.Upstream.APIKeyHeader == "" {
		cfg.Upstream.APIKeyHeader = "x-api-key"
	}
	if cfg.Upstream.APIKey == "" {
		logrus.Warn("Upstream API key is empty; the upstream will likely reject proxied requests")
	}

	if cfg.Client.ProxyBaseURL == "" {
		cfg.Client.ProxyBaseURL = "http://127.0.0.1:" + cfg.Server.Port
		logrus.Infof("Client.ProxyBaseURL not set, defaulting to %s", cfg.Client.ProxyBaseURL)
	}
	cfg.Client.ProxyBaseURL = strings.TrimRight(cfg.Client.ProxyBaseURL, "/")

	if cfg.Market.ChainID == 0 {
		cfg.Market.ChainID = DefaultChainID
	}
	if cfg.Market.ChainID < 0 {
		return fmt.Errorf("invalid chain id %d", cfg.Market.ChainID)
	}
	if cfg.Market.MarketURL == "" {
		cfg.Market.MarketURL = "https://vibechain.com/market"
	}
	if cfg.Market.SwapURLTemplate == "" {
		cfg.Market.SwapURLTemplate = "https://app.uniswap.org/swap?chain=base&outputCurrency=%s"
	}
	if cfg.Market.TokenAddress != "" && !common.IsHexAddress(cfg.Market.TokenAddress) {
		logrus.Warnf("Market.TokenAddress %q is not a valid address, swap link disabled", cfg.Market.TokenAddress)
	}
	if cfg.Market.PacksLimit <= 0 {
		cfg.Market.PacksLimit = 160
	}
	if cfg.Market.OpeningsLimit <= 0 {
		cfg.Market.OpeningsLimit = 80
	}
	if cfg.Market.ActivityLimit <= 0 {
		cfg.Market.ActivityLimit = 60
	}

	switch cfg.Storage.Driver {
	case "":
		cfg.Storage.Driver = "file"
	case "file", "memory":
	default:
		return fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = "data"
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if len(cfg.CORS.AllowOrigins) == 0 {
		cfg.CORS.AllowOrigins = []string{"*"}
	}
	return nil
}

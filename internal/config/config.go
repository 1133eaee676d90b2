package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/tokentreat/treat-service/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// URIConfig holds URI rewrite configuration
type URIConfig struct {
	IPFSGateway string `mapstructure:"ipfs_gateway"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // e.g. "5m", "1h"
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // e.g. "10m"
}

// Enabled reports whether a database is configured
func (c *DatabaseConfig) Enabled() bool {
	return c.Host != "" && c.DBName != ""
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// WebhookConfig holds the notification webhook configuration; an empty URL disables it
type WebhookConfig struct {
	URL     string        `mapstructure:"url"`
	Secret  string        `mapstructure:"secret"`
	Workers int           `mapstructure:"workers"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// EthereumConfig holds EVM chain configuration
type EthereumConfig struct {
	ChainID             domain.Chain  `mapstructure:"chain_id"`
	RPCURL              string        `mapstructure:"rpc_url"`
	ContractAddress     string        `mapstructure:"contract_address"`
	PrivateKey          string        `mapstructure:"private_key"`
	NativeSymbol        string        `mapstructure:"native_symbol"`
	CallTimeout         time.Duration `mapstructure:"call_timeout"`
	ConfirmationTimeout time.Duration `mapstructure:"confirmation_timeout"`
}

// StorageConfig holds content-address storage configuration
type StorageConfig struct {
	APIURL  string        `mapstructure:"api_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// ImageGenConfig holds image generation proxy configuration
type ImageGenConfig struct {
	URL         string        `mapstructure:"url"`
	AuthToken   string        `mapstructure:"auth_token"`
	QuietPeriod time.Duration `mapstructure:"quiet_period"`
	RPS         float64       `mapstructure:"rps"`
}

// TreatsConfig holds aggregation configuration
type TreatsConfig struct {
	BurnScanBound  int64  `mapstructure:"burn_scan_bound"`
	BurnableSource string `mapstructure:"burnable_source"` // scan, supply or index
	WorkerPoolSize int    `mapstructure:"worker_pool_size"`
	// TokenRegistryPath points to the offered payment tokens; empty accepts any token
	TokenRegistryPath string `mapstructure:"token_registry_path"`
}

// CacheConfig holds token descriptor cache configuration
type CacheConfig struct {
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	TTL           time.Duration `mapstructure:"ttl"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
	// CORSOrigins restricts browser origins; empty allows all
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// BurnIndexSweeperConfig holds configuration for the burn index sweeper
type BurnIndexSweeperConfig struct {
	Interval  time.Duration `mapstructure:"interval"`
	BatchSize int64         `mapstructure:"batch_size"`
	PoolSize  int           `mapstructure:"pool_size"`
	RunOnce   bool          `mapstructure:"run_once"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
	Auth       AuthConfig     `mapstructure:"auth"`
	Ethereum   EthereumConfig `mapstructure:"ethereum"`
	URI        URIConfig      `mapstructure:"uri"`
	Storage    StorageConfig  `mapstructure:"storage"`
	ImageGen   ImageGenConfig `mapstructure:"imagegen"`
	Treats     TreatsConfig   `mapstructure:"treats"`
	Cache      CacheConfig    `mapstructure:"cache"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Webhook    WebhookConfig  `mapstructure:"webhook"`
}

// SweeperConfig holds configuration for the sweeper program
type SweeperConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig         `mapstructure:"database"`
	Ethereum   EthereumConfig         `mapstructure:"ethereum"`
	Sweeper    BurnIndexSweeperConfig `mapstructure:"sweeper"`
}

// setChainDefaults sets defaults shared by every binary talking to the chain
func setChainDefaults(v *viper.Viper) {
	v.SetDefault("ethereum.chain_id", string(domain.ChainCrossFiTestnet))
	v.SetDefault("ethereum.rpc_url", "https://rpc.testnet.ms")
	v.SetDefault("ethereum.native_symbol", domain.DEFAULT_NATIVE_SYMBOL)
	v.SetDefault("ethereum.call_timeout", "15s")
	v.SetDefault("ethereum.confirmation_timeout", "2m")
	v.SetDefault("uri.ipfs_gateway", domain.DEFAULT_IPFS_GATEWAY)
	v.SetDefault("cache.ttl", "24h")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	setChainDefaults(v)
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 180) // mint waits for a confirmation
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("storage.api_url", "https://node.lighthouse.storage")
	v.SetDefault("storage.timeout", "60s")
	v.SetDefault("imagegen.quiet_period", "5s")
	v.SetDefault("webhook.timeout", "10s")
	v.SetDefault("webhook.workers", 4)
	v.SetDefault("imagegen.rps", 1)
	v.SetDefault("treats.burn_scan_bound", domain.DEFAULT_BURN_SCAN_BOUND)
	v.SetDefault("treats.burnable_source", "scan")
	v.SetDefault("treats.worker_pool_size", 8)
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "TREAT_NOTIFICATIONS")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use environment variables
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if !config.Ethereum.ChainID.Valid() {
		return nil, fmt.Errorf("invalid ethereum.chain_id: %s", config.Ethereum.ChainID)
	}
	switch config.Treats.BurnableSource {
	case "scan", "supply", "index":
	default:
		return nil, fmt.Errorf("invalid treats.burnable_source: %s", config.Treats.BurnableSource)
	}

	return &config, nil
}

// LoadSweeperConfig loads configuration for the sweeper program
func LoadSweeperConfig(configFile string, envPath string) (*SweeperConfig, error) {
	v := configureViper("sweeper", configFile, envPath)

	// Set defaults
	setChainDefaults(v)
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("sweeper.interval", "10m")
	v.SetDefault("sweeper.batch_size", 100)
	v.SetDefault("sweeper.pool_size", 8)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg SweeperConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}
	if cfg.Ethereum.ContractAddress == "" {
		return nil, errors.New("ethereum.contract_address is required")
	}

	return &cfg, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/sweeper/, cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("TREAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Ethereum
		"ethereum.chain_id",
		"ethereum.rpc_url",
		"ethereum.contract_address",
		"ethereum.private_key",
		"ethereum.native_symbol",
		"ethereum.call_timeout",
		"ethereum.confirmation_timeout",
		// URI
		"uri.ipfs_gateway",
		// Storage
		"storage.api_url",
		"storage.api_key",
		"storage.timeout",
		// Image generation
		"imagegen.url",
		"imagegen.auth_token",
		"imagegen.quiet_period",
		"imagegen.rps",
		// Treats
		"treats.burn_scan_bound",
		"treats.burnable_source",
		"treats.worker_pool_size",
		"treats.token_registry_path",
		// Cache
		"cache.redis_addr",
		"cache.redis_password",
		"cache.redis_db",
		"cache.ttl",
		// Webhook
		"webhook.url",
		"webhook.secret",
		"webhook.workers",
		"webhook.timeout",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.cors_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Sweeper
		"sweeper.interval",
		"sweeper.batch_size",
		"sweeper.pool_size",
		"sweeper.run_once",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile)) // later files win
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

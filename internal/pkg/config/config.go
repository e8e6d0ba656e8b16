package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - optional integrations (Redis, Kafka) are disabled when their address list is empty
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Sweeper   SweeperConfig
	Drop      DropConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Demo      DemoConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_POOL_MAX" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Idempotency-Replayed"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

// SweeperConfig drives the background expiry pass and idempotency purge.
type SweeperConfig struct {
	Interval              time.Duration `envconfig:"SWEEPER_INTERVAL" default:"5s"`
	IdempotencyTTL        time.Duration `envconfig:"IDEMPOTENCY_TTL" default:"1h"`
	IdempotencyPurgeEvery time.Duration `envconfig:"IDEMPOTENCY_PURGE_INTERVAL" default:"60s"`
}

type DropConfig struct {
	DefaultTimerSeconds  int `envconfig:"DROP_DEFAULT_TIMER_SECONDS" default:"90"`
	DefaultExtendSeconds int `envconfig:"DROP_DEFAULT_EXTEND_SECONDS" default:"30"`
}

type RateLimitConfig struct {
	ClaimRPS   float64       `envconfig:"CLAIM_RATE_RPS" default:"5"`
	ClaimBurst int           `envconfig:"CLAIM_RATE_BURST" default:"10"`
	IdleTTL    time.Duration `envconfig:"CLAIM_RATE_IDLE_TTL" default:"15m"`
}

type RedisConfig struct {
	Addr          string `envconfig:"REDIS_ADDR" default:""`
	Password      string `envconfig:"REDIS_PASSWORD" default:""`
	DB            int    `envconfig:"REDIS_DB" default:"0"`
	ChannelPrefix string `envconfig:"REDIS_EVENT_CHANNEL_PREFIX" default:"drops:events"`
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type KafkaConfig struct {
	Brokers   []string `envconfig:"KAFKA_BROKERS" default:""`
	Topic     string   `envconfig:"KAFKA_TOPIC" default:"operator-events"`
	QueueSize int      `envconfig:"KAFKA_QUEUE_SIZE" default:"256"`
}

func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0 && c.Brokers[0] != ""
}

// DemoConfig seeds one operator at startup when AccessCode is set.
type DemoConfig struct {
	OperatorID   string `envconfig:"DEMO_OPERATOR_ID" default:"00000000-0000-0000-0000-000000000001"`
	BusinessName string `envconfig:"DEMO_OPERATOR_NAME" default:"Iron Forge Fitness"`
	AccessCode   string `envconfig:"DEMO_ACCESS_CODE" default:""`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings envconfig accepts but the service cannot run
// with. All problems are reported together.
func (c Config) Validate() error {
	var problems []error
	if _, err := time.ParseDuration(c.JWT.Duration); err != nil {
		problems = append(problems, fmt.Errorf("JWT_DURATION: %w", err))
	}
	if c.Sweeper.Interval <= 0 {
		problems = append(problems, errors.New("SWEEPER_INTERVAL must be positive"))
	}
	if c.Sweeper.IdempotencyTTL <= 0 {
		problems = append(problems, errors.New("IDEMPOTENCY_TTL must be positive"))
	}
	if c.Sweeper.IdempotencyPurgeEvery <= 0 {
		problems = append(problems, errors.New("IDEMPOTENCY_PURGE_INTERVAL must be positive"))
	}
	if c.Drop.DefaultTimerSeconds <= 0 {
		problems = append(problems, errors.New("DROP_DEFAULT_TIMER_SECONDS must be positive"))
	}
	if c.Drop.DefaultExtendSeconds <= 0 {
		problems = append(problems, errors.New("DROP_DEFAULT_EXTEND_SECONDS must be positive"))
	}
	if c.RateLimit.ClaimRPS <= 0 || c.RateLimit.ClaimBurst <= 0 {
		problems = append(problems, errors.New("CLAIM_RATE_RPS and CLAIM_RATE_BURST must be positive"))
	}
	if c.Redis.Enabled() && c.Redis.ChannelPrefix == "" {
		problems = append(problems, errors.New("REDIS_EVENT_CHANNEL_PREFIX must not be empty"))
	}
	if c.Kafka.Enabled() && c.Kafka.Topic == "" {
		problems = append(problems, errors.New("KAFKA_TOPIC must not be empty"))
	}
	return errors.Join(problems...)
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Sweeper: SweeperConfig{
			Interval:              time.Hour, // tests drive expiry explicitly
			IdempotencyTTL:        time.Hour,
			IdempotencyPurgeEvery: time.Hour,
		},
		Drop: DropConfig{
			DefaultTimerSeconds:  90,
			DefaultExtendSeconds: 30,
		},
		RateLimit: RateLimitConfig{
			ClaimRPS:   1000,
			ClaimBurst: 1000,
			IdleTTL:    time.Minute,
		},
		Kafka: KafkaConfig{
			Topic:     "operator-events",
			QueueSize: 16,
		},
	}
}

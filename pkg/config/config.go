package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	Pricing      PricingConfig
	AdminRate    AdminRateLimitConfig
	Events       EventsConfig
	FeatureFlags FeatureFlagsConfig
	CORS         CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SMARTSTORE_APP_ENV" required:"true"`
	Port         string `envconfig:"SMARTSTORE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SMARTSTORE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SMARTSTORE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"SMARTSTORE_DB_DSN"`
	Driver string `envconfig:"SMARTSTORE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"SMARTSTORE_DB_HOST"`
	LegacyPort     int    `envconfig:"SMARTSTORE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SMARTSTORE_DB_USER"`
	LegacyPassword string `envconfig:"SMARTSTORE_DB_PASSWORD"`
	LegacyName     string `envconfig:"SMARTSTORE_DB_NAME"`
	LegacySSLMode  string `envconfig:"SMARTSTORE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SMARTSTORE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SMARTSTORE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SMARTSTORE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SMARTSTORE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"SMARTSTORE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"SMARTSTORE_REDIS_ADDR"`
	Password     string        `envconfig:"SMARTSTORE_REDIS_PASSWORD"`
	DB           int           `envconfig:"SMARTSTORE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SMARTSTORE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SMARTSTORE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SMARTSTORE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SMARTSTORE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SMARTSTORE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"SMARTSTORE_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"SMARTSTORE_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"SMARTSTORE_JWT_EXPIRATION_MINUTES" default:"60"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"SMARTSTORE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"SMARTSTORE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"SMARTSTORE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"SMARTSTORE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"SMARTSTORE_ARGON_KEY_LEN" default:"32"`
}

// PricingConfig carries the defensive fallbacks the pricing engine degrades to
// when a product row is missing price data. Kept configurable on purpose; these
// mirror the storefront's historical defaults.
type PricingConfig struct {
	FallbackPriceUnits    int `envconfig:"SMARTSTORE_PRICING_FALLBACK_PRICE" default:"3500"`
	DefaultEngravingUnits int `envconfig:"SMARTSTORE_PRICING_DEFAULT_ENGRAVING" default:"200"`
}

type AdminRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"SMARTSTORE_ADMIN_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"SMARTSTORE_ADMIN_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"SMARTSTORE_ADMIN_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

// EventsConfig names the pub/sub side channels the storefront listens on.
type EventsConfig struct {
	CartUpdatedChannel string `envconfig:"SMARTSTORE_EVENTS_CART_UPDATED_CHANNEL" default:"smartstore.cart.updated"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"SMARTSTORE_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"SMARTSTORE_AUTO_MIGRATE" default:"false"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"SMARTSTORE_CORS_ALLOWED_ORIGINS" default:"*"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}

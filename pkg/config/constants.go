package config

// EnvPrefix is passed to envconfig; fields carry fully-qualified tags so the
// prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv     = "SMARTSTORE_APP_ENV"
	EnvPort       = "SMARTSTORE_APP_PORT"
	EnvDBDSN      = "SMARTSTORE_DB_DSN"
	EnvDBHost     = "SMARTSTORE_DB_HOST"
	EnvDBUser     = "SMARTSTORE_DB_USER"
	EnvDBName     = "SMARTSTORE_DB_NAME"
	EnvRedisURL   = "SMARTSTORE_REDIS_URL"
	EnvJWTSecret  = "SMARTSTORE_JWT_SECRET"
	EnvJWTIssuer  = "SMARTSTORE_JWT_ISSUER"
	EnvJWTExpMins = "SMARTSTORE_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

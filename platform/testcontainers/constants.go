package testcontainers

// Postgres constants
const (
	PostgresContainerName = "postgres"
	PostgresPort          = "5432"

	PostgresImageNameKey = "POSTGRES_IMAGE_NAME"
	PostgresDatabaseKey  = "POSTGRES_DB"
	PostgresUserKey      = "POSTGRES_USER"
	PostgresPasswordKey  = "POSTGRES_PASSWORD" //nolint:gosec
)

// Redis constants
const (
	RedisContainerName = "redis"
	RedisPort          = "6379"
	RedisImageNameKey  = "REDIS_IMAGE_NAME"
)

// Package constants holds provider and environment names shared by config and wiring.
package constants

// EnvProduction is the env.env value of live deployments.
const EnvProduction = "production"

// Durable store providers.
const (
	StoreProviderFile     = "file"
	StoreProviderMemory   = "memory"
	StoreProviderRedis    = "redis"
	StoreProviderPostgres = "postgres"
)

// Event publisher providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

package config

// EnvPrefix is empty because every variable carries the full FAKESTORE_ name
// in its envconfig tag.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Environment variable names, kept here so tests and deploy docs share one
// source of truth.
const (
	EnvAppEnv       = "FAKESTORE_APP_ENV"
	EnvPort         = "FAKESTORE_APP_PORT"
	EnvLogLevel     = "FAKESTORE_LOG_LEVEL"
	EnvLogWarnStack = "FAKESTORE_LOG_WARN_STACK"

	EnvCatalogBaseURL = "FAKESTORE_CATALOG_BASE_URL"
	EnvCatalogTimeout = "FAKESTORE_CATALOG_REQUEST_TIMEOUT"
	EnvDemoBypass     = "FAKESTORE_DEMO_BYPASS"

	EnvSQLitePath = "FAKESTORE_SQLITE_PATH"
)

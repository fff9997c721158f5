package config

const (
	EnvPrefix = "ORDERPAD"

	AppEnvDev  = "dev"
	AppEnvProd = "production"

	EnvAppEnv             = "ORDERPAD_APP_ENV"
	EnvLogLevel           = "ORDERPAD_LOG_LEVEL"
	EnvLogWarnStack       = "ORDERPAD_LOG_WARN_STACK"
	EnvCurrencyCode       = "ORDERPAD_CURRENCY_CODE"
	EnvDefaultChannelID   = "ORDERPAD_DEFAULT_CHANNEL_ID"
	EnvDefaultChannelName = "ORDERPAD_DEFAULT_CHANNEL_NAME"
)

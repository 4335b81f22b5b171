package config

const (
	// AppName is the name of the application.
	AppName = "orderbot"

	// EnvBotToken is the environment variable for the bot token.
	EnvBotToken = `BOT_TOKEN`

	// EnvApplicationId is the environment variable for the application ID.
	EnvApplicationId = `APPLICATION_ID`

	// EnvStorageBackend is the environment variable selecting the storage backend.
	EnvStorageBackend = `STORAGE_BACKEND`

	// EnvMongoUri is the environment variable for the MongoDB URI.
	EnvMongoUri = `MONGO_URI`

	// EnvMongoDatabase is the environment variable for the MongoDB database name.
	EnvMongoDatabase = `MONGO_DATABASE`

	// EnvDataDir is the environment variable for the JSON store directory.
	EnvDataDir = `DATA_DIR`

	// EnvMonitoringPort is the environment variable for the monitoring port.
	EnvMonitoringPort = `MONITORING_PORT`

	// EnvNotifyRate is the environment variable for reopen DMs per second.
	EnvNotifyRate = `NOTIFY_RATE`
)

// Backend is a storage backend.
type Backend string

const (
	BackendMongo Backend = "mongo"
	BackendJSON  Backend = "json"
)

const (
	defaultMonitoringPort = "8080"
	defaultDataDir        = "data"
	defaultNotifyRate     = 5
)

// Config is the bot configuration.
type Config struct {
	// BotToken is the token for the bot.
	BotToken string

	// ApplicationId is the ID of the application.
	ApplicationId string

	// Backend is the storage backend.
	Backend Backend

	// MongoUri is the URI for the MongoDB database.
	MongoUri string

	// MongoDatabase is the MongoDB database name.
	MongoDatabase string

	// DataDir is where the JSON backend keeps its files.
	DataDir string

	// MonitoringPort is the port for the monitoring server.
	MonitoringPort string

	// NotifyRate is how many reopen DMs are sent per second.
	NotifyRate float64
}

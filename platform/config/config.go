// Package config fills sys.Configs sections shared by the api, the
// messaging consumer and the cli.
package config

import (
	"github.com/ribgsilva/note-keeper/platform/env"
	"github.com/ribgsilva/note-keeper/sys"
	"go.uber.org/zap"
)

// Storage reads the kv backend selection and the settings of every backend.
func Storage(log *zap.SugaredLogger) {
	sys.Configs.Storage.Driver = env.OrDefault(log, "STORAGE_DRIVER", "redis")
	sys.Configs.Storage.OperationTimeout = env.DurationDefault(log, "STORAGE_OPERATION_TIMEOUT", "5s")
	sys.Configs.Storage.NotesKey = env.OrDefault(log, "STORAGE_NOTES_KEY", "@notes")
	sys.Configs.Storage.BackgroundKey = env.OrDefault(log, "STORAGE_BACKGROUND_KEY", "backgroundImage")
	sys.Configs.Cache.ConnectionURL = env.OrDefault(log, "CACHE_CONNECTION_URL", "localhost:6379")
	sys.Configs.Cache.User = env.OrDefault(log, "CACHE_USER", "")
	sys.Configs.Cache.Pass = env.OrDefault(log, "CACHE_PASS", "")
	sys.Configs.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	sys.Configs.Blob.BucketURL = env.OrDefault(log, "BLOB_BUCKET_URL", "file:///var/lib/notes")
	sys.Configs.Database.Driver = env.OrDefault(log, "DATABASE_DRIVER", "mysql")
	sys.Configs.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "root:admin@tcp(localhost:3306)/note")
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Background.DefaultAsset = env.OrDefault(log, "BACKGROUND_DEFAULT_ASSET", "asset://default-bg.jpg")
}

func NewRelic(log *zap.SugaredLogger) {
	sys.Configs.NewRelic.AppName = env.OrDefault(log, "NEW_RELIC_APP_NAME", "note-keeper")
	sys.Configs.NewRelic.Licence = env.OrDefault(log, "NEW_RELIC_LICENCE", "")
	sys.Configs.NewRelic.Enabled = env.BoolDefault(log, "NEW_RELIC_ENABLED", "f")
	sys.Configs.NewRelic.ConnectionTimeout = env.DurationDefault(log, "NEW_RELIC_CONNECTION_TIMEOUT", "10s")
	sys.Configs.NewRelic.ShutdownTimeout = env.DurationDefault(log, "NEW_RELIC_SHUTDOWN_TIMEOUT", "10s")
}

// Messaging needs MESSAGING_TOPIC_NAME set.
func Messaging(log *zap.SugaredLogger) {
	sys.Configs.Messaging.TopicName = env.Must(log, "MESSAGING_TOPIC_NAME")
	sys.Configs.Messaging.MaxWorkers = env.IntDefault(log, "MESSAGING_MAX_WORKERS", "1")
	sys.Configs.Messaging.WaitTime = env.DurationDefault(log, "MESSAGING_WAIT_TIME", "10s")
	sys.Configs.Messaging.ShutdownTimeout = env.DurationDefault(log, "MESSAGING_SHUTDOWN_TIMEOUT", "10s")
}

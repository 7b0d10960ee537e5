package sys

import (
	"database/sql"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/ribgsilva/note-keeper/persistence/v1/kv"
	"go.uber.org/zap"
	"time"
)

// Configs contains all the configs gathered from env vars
var Configs struct {
	Http struct {
		Port            string
		ShutdownTimeout time.Duration
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		IdleTimeout     time.Duration
	}
	Swagger struct {
		Protocol string
		Host     string
	}
	Storage struct {
		Driver           string
		OperationTimeout time.Duration
		NotesKey         string
		BackgroundKey    string
	}
	Database struct {
		Driver        string
		ConnectionURL string
		PingTimeout   time.Duration
	}
	Cache struct {
		ConnectionURL string
		User          string
		Pass          string
		PingTimeout   time.Duration
	}
	Blob struct {
		BucketURL string
	}
	Background struct {
		DefaultAsset string
	}
	Messaging struct {
		TopicName       string
		MaxWorkers      int
		WaitTime        time.Duration
		ShutdownTimeout time.Duration
	}
	NewRelic struct {
		AppName           string
		Licence           string
		Enabled           bool
		ConnectionTimeout time.Duration
		ShutdownTimeout   time.Duration
	}
}

// R holds static resources across the project
var R struct {
	Log      *zap.SugaredLogger
	Storage  kv.Store
	Database *sql.DB
	Monitor  *newrelic.Application
}

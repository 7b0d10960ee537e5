// Package storage opens the kv backend selected by sys.Configs.Storage.Driver.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/note-keeper/persistence/v1/kv"
	"github.com/ribgsilva/note-keeper/persistence/v1/schema"
	"github.com/ribgsilva/note-keeper/sys"

	_ "github.com/go-sql-driver/mysql"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	_ "modernc.org/sqlite"
)

const (
	DriverRedis = "redis"
	DriverBlob  = "blob"
	DriverSQL   = "sql"
)

// Open connects the configured backend and stores it in sys.R.Storage.
// The caller owns closing it.
func Open(ctx context.Context) (kv.Store, error) {
	log := sys.R.Log

	var store kv.Store
	switch sys.Configs.Storage.Driver {
	case DriverRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     sys.Configs.Cache.ConnectionURL,
			Username: sys.Configs.Cache.User,
			Password: sys.Configs.Cache.Pass,
		})
		rdsCtx, rdsCancel := context.WithTimeout(ctx, sys.Configs.Cache.PingTimeout)
		defer rdsCancel()
		if err := rdb.Ping(rdsCtx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("could not connect to redis: %w", err)
		}
		store = kv.NewRedis(rdb)
	case DriverBlob:
		b, err := kv.OpenBlob(ctx, sys.Configs.Blob.BucketURL)
		if err != nil {
			return nil, err
		}
		store = b
	case DriverSQL:
		db, err := OpenDatabase(ctx)
		if err != nil {
			return nil, err
		}
		if err := schema.Create(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
		var opts []kv.SQLOption
		if sys.Configs.Database.Driver == "mysql" {
			opts = append(opts, kv.WithRowLock())
		}
		store = kv.NewSQL(db, opts...)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", sys.Configs.Storage.Driver)
	}

	log.Infow("startup", "storage", sys.Configs.Storage.Driver)
	sys.R.Storage = store
	return store, nil
}

// OpenDatabase opens and pings the configured sql database and stores it in sys.R.Database.
func OpenDatabase(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open(sys.Configs.Database.Driver, sys.Configs.Database.ConnectionURL)
	if err != nil {
		return nil, fmt.Errorf("error to connect to database: %w", err)
	}
	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.PingTimeout)
	defer dbCancel()
	if err := db.PingContext(dbCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	sys.R.Database = db
	return db, nil
}

// Timeout bounds one storage round trip by sys.Configs.Storage.OperationTimeout.
func Timeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if d := sys.Configs.Storage.OperationTimeout; d > 0 {
		return context.WithTimeout(ctx, d)
	}
	return context.WithCancel(ctx)
}

package schema

import (
	"context"
	"github.com/ribgsilva/note-keeper/persistence/v1/schema"
	"github.com/ribgsilva/note-keeper/persistence/v1/storage"
	"github.com/ribgsilva/note-keeper/platform/config"
	"github.com/ribgsilva/note-keeper/sys"
	"go.uber.org/zap"
)

func ListCommands() {
	println("Schema Commands (sql storage)")
	println("\tcreate\t\t\t- Creates the kv_store table")
	println("\tdelete\t\t\t- Deletes the kv_store table")
	println("\thelp\t\t\t- Print the commands available")
}

func Run(options []string) {
	if len(options) == 0 || options[0] == "help" {
		ListCommands()
		return
	}
	// empty logger
	log := zap.NewNop().Sugar()
	if err := initVars(log); err != nil {
		println("error:", err.Error())
		return
	}
	defer func() {
		if err := sys.R.Database.Close(); err != nil {
			log.Errorf("could not close db conn gracefully: %s", err)
		}
	}()
	switch options[0] {
	case "create":
		println("creating schema")
		if err := schema.Create(context.Background()); err != nil {
			println("failed to create schema:", err.Error())
		} else {
			println("created schema")
		}
	case "delete":
		println("deleting schema")
		if err := schema.Drop(context.Background()); err != nil {
			println("failed to delete schema:", err.Error())
		} else {
			println("deleted schema")
		}
	default:
		ListCommands()
	}
}

func initVars(log *zap.SugaredLogger) error {
	config.Storage(log)

	// logger
	sys.R.Log = log

	// database
	_, err := storage.OpenDatabase(context.Background())
	return err
}

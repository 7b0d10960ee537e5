package notes

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ribgsilva/note-keeper/business/v1/listing"
	"github.com/ribgsilva/note-keeper/persistence/v1/storage"
	"github.com/ribgsilva/note-keeper/platform/config"
	"github.com/ribgsilva/note-keeper/sys"
	"go.uber.org/zap"
)

func ListCommands() {
	println("Notes Commands")
	println("\tlist [query]\t\t- Lists the notes whose title or content contains query")
	println("\tdelete <id>\t\t- Deletes a note")
	println("\thelp\t\t\t- Print the commands available")
}

func Run(options []string) {
	if len(options) == 0 || options[0] == "help" {
		ListCommands()
		return
	}
	// empty logger
	log := zap.NewNop().Sugar()
	config.Storage(log)
	sys.R.Log = log

	store, err := storage.Open(context.Background())
	if err != nil {
		println("error:", err.Error())
		return
	}
	defer func() {
		_ = store.Close()
	}()

	if err := Exec(context.Background(), os.Stdout, options); err != nil {
		println("error:", err.Error())
	}
}

// Exec runs one notes command against sys.R.Storage and prints to w.
func Exec(ctx context.Context, w io.Writer, options []string) error {
	switch options[0] {
	case "list":
		query := ""
		if len(options) > 1 {
			query = options[1]
		}
		printView(w, listing.Open(ctx, query))
	case "delete":
		if len(options) < 2 || options[1] == "" {
			return fmt.Errorf("delete needs a note id")
		}
		view := listing.New("")
		view.Remove(ctx, options[1])
		printView(w, view)
	default:
		ListCommands()
	}
	return nil
}

func printView(w io.Writer, view *listing.View) {
	cards := view.Cards()
	for _, c := range cards {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", c.Id, c.Title, c.Excerpt)
	}
	_, _ = fmt.Fprintf(w, "%d note(s)\n", len(cards))
}

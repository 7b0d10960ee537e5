package schema

import (
	"context"
	"fmt"

	"github.com/ribgsilva/note-keeper/sys"
)

// Create makes the kv_store table used by the sql storage driver. It is a
// no-op when the table exists.
func Create(ctx context.Context) error {
	if _, err := sys.R.Database.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

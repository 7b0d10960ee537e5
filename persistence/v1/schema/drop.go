package schema

import (
	"context"
	"fmt"

	"github.com/ribgsilva/note-keeper/sys"
)

// Drop removes the kv_store table with every stored value.
func Drop(ctx context.Context) error {
	if _, err := sys.R.Database.ExecContext(ctx, dropSchema); err != nil {
		return fmt.Errorf("drop schema: %w", err)
	}
	return nil
}

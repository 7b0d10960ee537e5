// Package background manages the user's list background image: a picked
// image uri, or the bundled default asset when none is stored.
package background

import (
	"context"

	"github.com/ribgsilva/note-keeper/persistence/v1/preference"
	"github.com/ribgsilva/note-keeper/sys"
)

// DefaultAsset is used when BACKGROUND_DEFAULT_ASSET is not configured.
const DefaultAsset = "asset://default-bg.jpg"

type Background struct {
	URI     string `json:"uri" example:"file:///photos/bg.jpg"`
	Default bool   `json:"default" example:"false"`
}

// Get returns the stored background or the default. Read failures are
// logged and fall back to the default.
func Get(ctx context.Context) Background {
	uri, ok, err := preference.Find(ctx, preference.BackgroundKey())
	if err != nil {
		sys.R.Log.Errorw("background", "status", "load failed", "ERROR", err)
	}
	if !ok {
		return Background{URI: defaultAsset(), Default: true}
	}
	return Background{URI: uri}
}

// Set stores a picked image uri. An empty uri resets to the default.
func Set(ctx context.Context, uri string) (Background, error) {
	if uri == "" {
		return Reset(ctx)
	}
	if err := preference.Store(ctx, preference.BackgroundKey(), uri); err != nil {
		sys.R.Log.Errorw("background", "status", "save failed", "ERROR", err)
		return Background{}, err
	}
	return Background{URI: uri}, nil
}

// Reset clears the stored uri and reverts to the default.
func Reset(ctx context.Context) (Background, error) {
	if err := preference.Remove(ctx, preference.BackgroundKey()); err != nil {
		sys.R.Log.Errorw("background", "status", "reset failed", "ERROR", err)
		return Background{}, err
	}
	return Background{URI: defaultAsset(), Default: true}, nil
}

func defaultAsset() string {
	if a := sys.Configs.Background.DefaultAsset; a != "" {
		return a
	}
	return DefaultAsset
}

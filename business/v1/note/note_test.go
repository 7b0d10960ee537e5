package note

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/ribgsilva/note-keeper/persistence/v1/kv/kvtest"
	"github.com/ribgsilva/note-keeper/sys"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setup(t *testing.T) (*kvtest.Faulty, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	sys.R.Log = zap.New(core).Sugar()
	store := kvtest.NewFaulty()
	sys.R.Storage = store
	return store, logs
}

func TestNewID(t *testing.T) {
	if _, err := uuid.Parse(NewID()); err != nil {
		t.Fatalf("expected a uuid: %s", err)
	}

	newRandom = func() (uuid.UUID, error) { return uuid.Nil, errors.New("no entropy") }
	defer func() { newRandom = uuid.NewRandom }()

	if id := NewID(); !regexp.MustCompile(`^\d{13,}$`).MatchString(id) {
		t.Fatalf("expected a millisecond timestamp fallback, got %q", id)
	}
}

func TestNew(t *testing.T) {
	n := New()
	if n.Id == "" || n.Title != "" || n.Content != "" || n.BackgroundImage != nil {
		t.Fatalf("expected an empty note with an id, got %+v", n)
	}
	if n.Images == nil || len(n.Images) != 0 {
		t.Fatalf("expected images = [], got %#v", n.Images)
	}
	if New().Id == n.Id {
		t.Fatalf("ids should not repeat")
	}
}

func TestAddDuplicateIsLoggedNoop(t *testing.T) {
	_, logs := setup(t)
	ctx := context.Background()

	Add(ctx, Note{Id: "a", Title: "first"})
	Add(ctx, Note{Id: "a", Title: "second"})

	notes := Load(ctx)
	if len(notes) != 1 || notes[0].Title != "first" {
		t.Fatalf("expected only the first note, got %+v", notes)
	}
	warnings := logs.FilterLevelExact(zapcore.WarnLevel).FilterField(zap.String("id", "a"))
	if warnings.Len() != 1 {
		t.Fatalf("expected one duplicate warning, got %d", warnings.Len())
	}
}

func TestFailuresAreSwallowed(t *testing.T) {
	store, logs := setup(t)
	ctx := context.Background()
	Add(ctx, Note{Id: "a"})

	store.FailGet.Store(true)
	if notes := Load(ctx); len(notes) != 0 {
		t.Fatalf("expected an empty collection on read failure, got %+v", notes)
	}
	store.FailGet.Store(false)

	store.FailSet.Store(true)
	Add(ctx, Note{Id: "b"})
	Update(ctx, Note{Id: "a", Title: "changed"})
	Delete(ctx, "a")
	Save(ctx, nil)
	store.FailSet.Store(false)

	notes := Load(ctx)
	if len(notes) != 1 || notes[0].Id != "a" || notes[0].Title != "" {
		t.Fatalf("failed writes must leave the collection unchanged, got %+v", notes)
	}
	if errs := logs.FilterLevelExact(zapcore.ErrorLevel).Len(); errs != 5 {
		t.Fatalf("expected 5 logged failures, got %d", errs)
	}
}

func TestFind(t *testing.T) {
	setup(t)
	ctx := context.Background()
	Add(ctx, Note{Id: "a", Title: "A"})

	if n, ok := Find(ctx, "a"); !ok || n.Title != "A" {
		t.Fatalf("expected to find a, got %+v %v", n, ok)
	}
	if _, ok := Find(ctx, "b"); ok {
		t.Fatalf("b should not exist")
	}
}

func TestCommit(t *testing.T) {
	store, _ := setup(t)
	ctx := context.Background()
	n := New()
	n.Title = "draft"

	created, err := Commit(ctx, n)
	if err != nil || !created {
		t.Fatalf("first commit should add, got %v %v", created, err)
	}
	n.Content = "body"
	created, err = Commit(ctx, n)
	if err != nil || created {
		t.Fatalf("second commit should update, got %v %v", created, err)
	}
	notes := Load(ctx)
	if len(notes) != 1 || !notes[0].Equal(n) {
		t.Fatalf("expected exactly %+v, got %+v", n, notes)
	}

	store.FailSet.Store(true)
	if _, err := Commit(ctx, n); !errors.Is(err, kvtest.ErrInjected) {
		t.Fatalf("Commit should return write failures, got %v", err)
	}
}

func TestEqual(t *testing.T) {
	bg, other := "a", "b"
	base := Note{Id: "1", Title: "t", Content: "c", Images: []string{"x"}, BackgroundImage: &bg}

	same := base
	same.Images = []string{"x"}
	if !base.Equal(same) {
		t.Fatalf("copies should be equal")
	}
	diff := base
	diff.BackgroundImage = &other
	if base.Equal(diff) {
		t.Fatalf("different backgrounds should differ")
	}
	diff = base
	diff.BackgroundImage = nil
	if base.Equal(diff) {
		t.Fatalf("nil background should differ")
	}
	diff = base
	diff.Images = []string{"y"}
	if base.Equal(diff) {
		t.Fatalf("different images should differ")
	}
}

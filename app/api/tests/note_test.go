package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-keeper/app/api/handlers"
	"github.com/ribgsilva/note-keeper/app/api/handlers/v1/notes"
	"github.com/ribgsilva/note-keeper/app/api/handlers/v1/sessions"
	"github.com/ribgsilva/note-keeper/business/v1/background"
	"github.com/ribgsilva/note-keeper/business/v1/editor"
	"github.com/ribgsilva/note-keeper/persistence/v1/storage"
	"github.com/ribgsilva/note-keeper/platform/env"
	"github.com/ribgsilva/note-keeper/platform/logger"
	"github.com/ribgsilva/note-keeper/platform/web/handler"
	"github.com/ribgsilva/note-keeper/sys"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

type NoteTests struct {
	app   http.Handler
	cache *miniredis.Miniredis
}

func TestNote(t *testing.T) {
	log, err := logger.New("Note-API-Tests")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	// =======================================================================================================
	// Mocks

	// miniredis
	s := miniredis.RunT(t)

	// =======================================================================================================
	// Setup configs
	sys.Configs.Storage.Driver = storage.DriverRedis
	sys.Configs.Storage.OperationTimeout = env.DurationDefault(log, "STORAGE_OPERATION_TIMEOUT", "5s")
	sys.Configs.Storage.NotesKey = "@notes"
	sys.Configs.Storage.BackgroundKey = "backgroundImage"
	sys.Configs.Cache.ConnectionURL = s.Addr()
	sys.Configs.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	sys.Configs.Background.DefaultAsset = background.DefaultAsset

	// =======================================================================================================
	// Setup resources

	// logger
	sys.R.Log = log

	store, err := storage.Open(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = store.Close()
	}()

	// =======================================================================================================
	// Seed data

	s.Set("@notes", `[{"id":"1","title":"Grocery","content":"milk"},{"id":"2","title":"Work","content":"report","images":["file:///r.jpg"]}]`)

	// =======================================================================================================
	// Setup router
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	handlers.MapDefaults(engine)
	handlers.MapApi(engine)

	tests := NoteTests{
		app:   engine,
		cache: s,
	}

	// =======================================================================================================
	// Run tests

	t.Run("healthcheck", tests.healthcheck200)
	t.Run("list", tests.list200)
	t.Run("getNote", tests.getNote200)
	t.Run("getNoteMissing", tests.getNote404)
	t.Run("openMissingParams", tests.openSession400)
	t.Run("newNote", tests.newNoteFlow)
	t.Run("newNoteFromParams", tests.newNoteFromParams)
	t.Run("editExisting", tests.editExistingFlow)
	t.Run("saveFailure", tests.saveFailure500)
	t.Run("delete", tests.delete200)
	t.Run("background", tests.background)
}

func (nt *NoteTests) do(t *testing.T, method, path string, body any, out any) int {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %s", err)
		}
		reader = bytes.NewReader(data)
	}
	r := httptest.NewRequest(method, path, reader)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()

	nt.app.ServeHTTP(w, r)

	if out != nil && w.Body.Len() > 0 {
		if err := json.NewDecoder(w.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: should be able to unmarshal the response: %v", method, path, err)
		}
	}
	return w.Code
}

func (nt *NoteTests) healthcheck200(t *testing.T) {
	if code := nt.do(t, http.MethodGet, "/v1/healthcheck", nil, nil); code != http.StatusOK {
		t.Fatalf("Should receive a status code of 200 for the response: %v", code)
	}
}

func (nt *NoteTests) list200(t *testing.T) {
	var resp notes.ListResponse
	if code := nt.do(t, http.MethodGet, "/v1/notes", nil, &resp); code != http.StatusOK {
		t.Fatalf("Should receive a status code of 200 for the response: %v", code)
	}
	if len(resp.Cards) != 2 {
		t.Fatalf("Should list every note with an empty search: %+v", resp)
	}
	if resp.Cards[1].Thumbnail != "file:///r.jpg" {
		t.Fatalf("Should use the first image as thumbnail: %+v", resp.Cards[1])
	}

	if code := nt.do(t, http.MethodGet, "/v1/notes?q=MIL", nil, &resp); code != http.StatusOK {
		t.Fatalf("Should receive a status code of 200 for the response: %v", code)
	}
	if len(resp.Cards) != 1 || resp.Cards[0].Id != "1" {
		t.Fatalf("Should only list the grocery note: %+v", resp)
	}
}

func (nt *NoteTests) getNote200(t *testing.T) {
	var resp map[string]any
	if code := nt.do(t, http.MethodGet, "/v1/notes/1", nil, &resp); code != http.StatusOK {
		t.Fatalf("Should receive a status code of 200 for the response: %v", code)
	}
	if resp["title"] != "Grocery" || resp["content"] != "milk" {
		t.Fatalf("Should have received the grocery note: %v", resp)
	}
	if images, ok := resp["images"].([]any); !ok || len(images) != 0 {
		t.Fatalf("Should default images to an empty array: %v", resp)
	}
	if v, ok := resp["backgroundImage"]; !ok || v != nil {
		t.Fatalf("Should default backgroundImage to null: %v", resp)
	}
}

func (nt *NoteTests) getNote404(t *testing.T) {
	if code := nt.do(t, http.MethodGet, "/v1/notes/nope", nil, nil); code != http.StatusNotFound {
		t.Fatalf("Should receive a status code of 404 for the response: %v", code)
	}
}

func (nt *NoteTests) openSession400(t *testing.T) {
	var resp handler.Error
	if code := nt.do(t, http.MethodPost, "/v1/sessions", map[string]any{}, &resp); code != http.StatusBadRequest {
		t.Fatalf("Should receive a status code of 400 for the response: %v", code)
	}
	if resp.Redirect != sessions.ListPath {
		t.Fatalf("Should redirect to the list: %+v", resp)
	}

	if code := nt.do(t, http.MethodPost, "/v1/sessions", nil, &resp); code != http.StatusBadRequest {
		t.Fatalf("Should receive a status code of 400 without a body: %v", code)
	}

	if code := nt.do(t, http.MethodPost, "/v1/sessions", editor.Params{NoteId: "ghost"}, &resp); code != http.StatusBadRequest {
		t.Fatalf("Should receive a status code of 400 for an unknown note: %v", code)
	}
}

func (nt *NoteTests) newNoteFlow(t *testing.T) {
	var session sessions.Session
	if code := nt.do(t, http.MethodPost, "/v1/sessions/new", nil, &session); code != http.StatusCreated {
		t.Fatalf("Should receive a status code of 201 for the response: %v", code)
	}
	if !session.IsNew || session.Note.Id == "" || session.HeaderTitle != editor.NewNoteTitle {
		t.Fatalf("Should open an empty new note: %+v", session)
	}
	path := "/v1/sessions/" + session.Id

	title := "Trip"
	if code := nt.do(t, http.MethodPatch, path, sessions.EditRequest{Title: &title}, &session); code != http.StatusOK {
		t.Fatalf("Should receive a status code of 200 for the response: %v", code)
	}
	if session.State != editor.Dirty {
		t.Fatalf("Should be dirty after editing: %+v", session)
	}

	var exit sessions.ExitResponse
	if code := nt.do(t, http.MethodPost, path+"/exit", nil, &exit); code != http.StatusConflict {
		t.Fatalf("Should receive a status code of 409 when leaving with unsaved changes: %v", code)
	}
	if exit.Outcome != editor.Prompt || len(exit.Choices) != 3 {
		t.Fatalf("Should offer the three choices: %+v", exit)
	}

	if code := nt.do(t, http.MethodPost, path+"/exit", sessions.ExitRequest{Choice: editor.ChoiceCancel}, &exit); code != http.StatusOK || exit.Outcome != editor.Stay {
		t.Fatalf("Should stay on cancel: %v %+v", code, exit)
	}

	if code := nt.do(t, http.MethodPost, path+"/exit", sessions.ExitRequest{Choice: editor.ChoiceSave}, &exit); code != http.StatusOK || exit.Outcome != editor.Leave {
		t.Fatalf("Should save then leave: %v %+v", code, exit)
	}
	if exit.Redirect != sessions.ListPath {
		t.Fatalf("Should go back to the list: %+v", exit)
	}

	var resp notes.ListResponse
	nt.do(t, http.MethodGet, "/v1/notes?q=trip", nil, &resp)
	if len(resp.Cards) != 1 || resp.Cards[0].Id != session.Note.Id {
		t.Fatalf("Should have stored the new note once: %+v", resp)
	}

	if code := nt.do(t, http.MethodGet, path, nil, nil); code != http.StatusNotFound {
		t.Fatalf("Should discard the session after leaving: %v", code)
	}
}

func (nt *NoteTests) newNoteFromParams(t *testing.T) {
	var session sessions.Session
	if code := nt.do(t, http.MethodPost, "/v1/sessions", editor.Params{IsNew: true}, &session); code != http.StatusCreated {
		t.Fatalf("Should receive a status code of 201 for a new note without id: %v", code)
	}
	if !session.IsNew || session.Note.Id == "" || session.State != editor.Clean {
		t.Fatalf("Should open a clean draft with a generated id: %+v", session)
	}

	var resp notes.ListResponse
	nt.do(t, http.MethodGet, "/v1/notes", nil, &resp)
	for _, c := range resp.Cards {
		if c.Id == session.Note.Id {
			t.Fatalf("Should not store the draft before saving: %+v", resp)
		}
	}

	var exit sessions.ExitResponse
	if code := nt.do(t, http.MethodPost, "/v1/sessions/"+session.Id+"/exit", nil, &exit); code != http.StatusOK || exit.Outcome != editor.Leave {
		t.Fatalf("Should leave an untouched draft: %v %+v", code, exit)
	}
}

func (nt *NoteTests) editExistingFlow(t *testing.T) {
	var session sessions.Session
	if code := nt.do(t, http.MethodPost, "/v1/sessions", editor.Params{NoteId: "2"}, &session); code != http.StatusCreated {
		t.Fatalf("Should receive a status code of 201 for the response: %v", code)
	}
	path := "/v1/sessions/" + session.Id

	var exit sessions.ExitResponse
	if code := nt.do(t, http.MethodPost, path+"/exit", nil, &exit); code != http.StatusOK || exit.Outcome != editor.Leave {
		t.Fatalf("Should leave a clean session without a prompt: %v %+v", code, exit)
	}

	nt.do(t, http.MethodPost, "/v1/sessions", editor.Params{NoteId: "2"}, &session)
	path = "/v1/sessions/" + session.Id
	content := "quarterly report"
	nt.do(t, http.MethodPatch, path, sessions.EditRequest{Content: &content}, &session)

	if code := nt.do(t, http.MethodPost, path+"/save", nil, &session); code != http.StatusOK {
		t.Fatalf("Should receive a status code of 200 for the response: %v", code)
	}
	if session.State != editor.Clean || session.Note.Content != content {
		t.Fatalf("Should be clean after saving: %+v", session)
	}
	if len(session.Note.Images) != 1 {
		t.Fatalf("Should keep the images of the note: %+v", session.Note)
	}

	var exit2 sessions.ExitResponse
	if code := nt.do(t, http.MethodPost, path+"/exit", sessions.ExitRequest{Choice: editor.ChoiceDiscard}, &exit2); code != http.StatusOK || exit2.Outcome != editor.Leave {
		t.Fatalf("Should leave: %v %+v", code, exit2)
	}
}

func (nt *NoteTests) saveFailure500(t *testing.T) {
	var session sessions.Session
	nt.do(t, http.MethodPost, "/v1/sessions/new", nil, &session)
	path := "/v1/sessions/" + session.Id
	title := "lost?"
	nt.do(t, http.MethodPatch, path, sessions.EditRequest{Title: &title}, &session)

	nt.cache.SetError("ERR simulated outage")
	var failure handler.Error
	code := nt.do(t, http.MethodPost, path+"/save", nil, &failure)
	nt.cache.SetError("")
	if code != http.StatusInternalServerError || failure.Message == "" {
		t.Fatalf("Should surface the failure: %v %+v", code, failure)
	}

	if code := nt.do(t, http.MethodGet, path, nil, &session); code != http.StatusOK {
		t.Fatalf("Should keep the session after a failed save: %v", code)
	}
	if session.State != editor.Dirty || session.Note.Title != title {
		t.Fatalf("Should keep the unsaved edits: %+v", session)
	}

	var exit sessions.ExitResponse
	if code := nt.do(t, http.MethodPost, path+"/exit", sessions.ExitRequest{Choice: editor.ChoiceDiscard}, &exit); code != http.StatusOK {
		t.Fatalf("Should discard: %v", code)
	}
}

func (nt *NoteTests) delete200(t *testing.T) {
	var resp notes.ListResponse
	if code := nt.do(t, http.MethodDelete, "/v1/notes/1", nil, &resp); code != http.StatusOK {
		t.Fatalf("Should receive a status code of 200 for the response: %v", code)
	}
	for _, c := range resp.Cards {
		if c.Id == "1" {
			t.Fatalf("Should not list the deleted note: %+v", resp)
		}
	}
	if code := nt.do(t, http.MethodGet, "/v1/notes/1", nil, nil); code != http.StatusNotFound {
		t.Fatalf("Should not find the deleted note: %v", code)
	}
	before := len(resp.Cards)
	if code := nt.do(t, http.MethodDelete, "/v1/notes/1", nil, &resp); code != http.StatusOK || len(resp.Cards) != before {
		t.Fatalf("Deleting again should change nothing: %v %+v", code, resp)
	}
}

func (nt *NoteTests) background(t *testing.T) {
	var bg background.Background
	if code := nt.do(t, http.MethodGet, "/v1/background", nil, &bg); code != http.StatusOK || !bg.Default || bg.URI != background.DefaultAsset {
		t.Fatalf("Should start with the default background: %v %+v", code, bg)
	}

	if code := nt.do(t, http.MethodPut, "/v1/background", map[string]string{"uri": "file:///bg.jpg"}, &bg); code != http.StatusOK || bg.URI != "file:///bg.jpg" {
		t.Fatalf("Should store the picked image: %v %+v", code, bg)
	}
	if got, _ := nt.cache.Get("backgroundImage"); got != "file:///bg.jpg" {
		t.Fatalf("Should store the uri under its own key: %q", got)
	}

	bg = background.Background{}
	if code := nt.do(t, http.MethodDelete, "/v1/background", nil, &bg); code != http.StatusOK || !bg.Default {
		t.Fatalf("Should reset to the default: %v %+v", code, bg)
	}
	if nt.cache.Exists("backgroundImage") {
		t.Fatalf("Should clear the key on reset")
	}
}

package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/ribgsilva/note-keeper/business/v1/note"
	"github.com/ribgsilva/note-keeper/sys"
	"gocloud.dev/pubsub"
)

// Consume receives note events until ctx is cancelled, applying at most
// maxWorkers of them at a time. It waits for in flight events before returning.
func Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int) error {
	logger := sys.R.Log
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	workers := make(chan int, maxWorkers)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- 1
		go func(m *pubsub.Message) {
			defer func() { <-workers }()

			logger.Infof("message received: %s", string(m.Body))
			err := Apply(ctx, m.Body)
			switch {
			case err == nil:
			case errors.Is(err, ErrMalformedEvent), errors.Is(err, note.ErrDuplicateID):
				logger.Errorw("notes consumer", "status", "event discarded", "ERROR", err)
			case m.Nackable():
				logger.Errorw("notes consumer", "status", "event redelivered", "ERROR", err)
				m.Nack()
				return
			default:
				logger.Errorw("notes consumer", "status", "event lost", "ERROR", err)
			}
			m.Ack()
		}(message)
	}

	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	if !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// ErrMalformedEvent marks events that can never be applied.
var ErrMalformedEvent = errors.New("malformed note event")

// Apply decodes one event and runs it against the note store. Malformed
// events return ErrMalformedEvent, storage failures the storage error.
func Apply(ctx context.Context, body []byte) error {
	var e note.Event
	if err := json.Unmarshal(body, &e); err != nil {
		return fmt.Errorf("%w: failed to parse body: %s", ErrMalformedEvent, err)
	}

	if app := sys.R.Monitor; app != nil {
		txn := app.StartTransaction("notes/" + e.Type)
		defer txn.End()
		ctx = newrelic.NewContext(ctx, txn)
	}

	switch e.Type {
	case note.EventCreate:
		var n note.Note
		if err := decode(e.Data, &n); err != nil {
			return err
		}
		if n.Id == "" {
			n.Id = note.NewID()
		}
		return note.Create(ctx, n)
	case note.EventUpdate:
		var n note.Note
		if err := decode(e.Data, &n); err != nil {
			return err
		}
		if n.Id == "" {
			return fmt.Errorf("%w: update event without id: %+v", ErrMalformedEvent, e.Data)
		}
		return note.Change(ctx, n)
	case note.EventDelete:
		var d note.Deleted
		if err := decode(e.Data, &d); err != nil {
			return err
		}
		if d.Id == "" {
			return fmt.Errorf("%w: delete event without id: %+v", ErrMalformedEvent, e.Data)
		}
		return note.Remove(ctx, d.Id)
	default:
		return fmt.Errorf("%w: unknown event type: %q", ErrMalformedEvent, e.Type)
	}
}

func decode(data any, v any) error {
	marshal, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: failed to read event data: %s", ErrMalformedEvent, err)
	}
	if err := json.Unmarshal(marshal, v); err != nil {
		return fmt.Errorf("%w: failed to parse event data: %s", ErrMalformedEvent, err)
	}
	return nil
}

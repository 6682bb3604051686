package op

import (
	"context"
	"errors"
	"testing"
)

// collect drains an operation's event stream into a slice.
func collect(t *testing.T, ch <-chan Event) []Event {
	t.Helper()
	var events []Event
	for ev := range ch {
		events = append(events, ev)
	}
	return events
}

func TestNewFunc_Success(t *testing.T) {
	o := NewFunc("read-a", true, func(ctx context.Context) (any, error) {
		return "alpha", nil
	})

	if o.ID() != "read-a" {
		t.Errorf("ID() = %q, want %q", o.ID(), "read-a")
	}
	if !o.ReadOnly() {
		t.Error("ReadOnly() = false, want true")
	}

	events := collect(t, o.Run(context.Background()))
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if events[0].Kind != EventDone {
		t.Errorf("events[0].Kind = %q, want %q", events[0].Kind, EventDone)
	}
	if events[0].Data != "alpha" {
		t.Errorf("events[0].Data = %v, want %q", events[0].Data, "alpha")
	}
}

func TestNewFunc_Error(t *testing.T) {
	opErr := errors.New("read failed")
	o := NewFunc("read-a", true, func(ctx context.Context) (any, error) {
		return nil, opErr
	})

	events := collect(t, o.Run(context.Background()))
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if events[0].Kind != EventError {
		t.Errorf("events[0].Kind = %q, want %q", events[0].Kind, EventError)
	}
	if !errors.Is(events[0].Err, opErr) {
		t.Errorf("events[0].Err = %v, want %v", events[0].Err, opErr)
	}
}

func TestNewFunc_CanceledBeforeStart(t *testing.T) {
	ran := false
	o := NewFunc("read-a", true, func(ctx context.Context) (any, error) {
		ran = true
		return "alpha", nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	events := collect(t, o.Run(ctx))
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if events[0].Kind != EventCanceled {
		t.Errorf("events[0].Kind = %q, want %q", events[0].Kind, EventCanceled)
	}
	if !errors.Is(events[0].Err, context.Canceled) {
		t.Errorf("events[0].Err = %v, want %v", events[0].Err, context.Canceled)
	}
	if ran {
		t.Error("operation body ran after cancellation")
	}
}

func TestNewFunc_ContextErrorClassifiedAsCanceled(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"canceled", context.Canceled},
		{"deadline exceeded", context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewFunc("slow", true, func(ctx context.Context) (any, error) {
				return nil, tt.err
			})

			events := collect(t, o.Run(context.Background()))
			if len(events) != 1 {
				t.Fatalf("len(events) = %d, want 1", len(events))
			}
			if events[0].Kind != EventCanceled {
				t.Errorf("events[0].Kind = %q, want %q", events[0].Kind, EventCanceled)
			}
		})
	}
}

func TestNewStreaming_ProgressThenDone(t *testing.T) {
	o := NewStreaming("scan", true, func(ctx context.Context, emit func(any)) (any, error) {
		emit("one")
		emit("two")
		return 2, nil
	})

	events := collect(t, o.Run(context.Background()))
	if len(events) != 3 {
		t.Fatalf("len(events) = %d, want 3", len(events))
	}
	wantKinds := []EventKind{EventProgress, EventProgress, EventDone}
	for i, kind := range wantKinds {
		if events[i].Kind != kind {
			t.Errorf("events[%d].Kind = %q, want %q", i, events[i].Kind, kind)
		}
	}
	if events[0].Data != "one" || events[1].Data != "two" {
		t.Errorf("progress data = %v, %v, want one, two", events[0].Data, events[1].Data)
	}
	if events[2].Data != 2 {
		t.Errorf("terminal data = %v, want 2", events[2].Data)
	}
}

func TestNewStreaming_ErrorAfterProgress(t *testing.T) {
	opErr := errors.New("scan failed")
	o := NewStreaming("scan", false, func(ctx context.Context, emit func(any)) (any, error) {
		emit("partial")
		return nil, opErr
	})

	events := collect(t, o.Run(context.Background()))
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	if events[1].Kind != EventError {
		t.Errorf("events[1].Kind = %q, want %q", events[1].Kind, EventError)
	}
	if !errors.Is(events[1].Err, opErr) {
		t.Errorf("events[1].Err = %v, want %v", events[1].Err, opErr)
	}
}

func TestEvent_Terminal(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  bool
	}{
		{"progress", Progress("item"), false},
		{"done", Done("value"), true},
		{"error", Fail(errors.New("boom")), true},
		{"canceled", Canceled(context.Canceled), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.Terminal(); got != tt.want {
				t.Errorf("Terminal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOutcome_OK(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		want    bool
	}{
		{"success", Outcome{Value: "ok"}, true},
		{"with error", Outcome{Err: errors.New("fail")}, false},
		{"canceled", Outcome{Canceled: true, Err: context.Canceled}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outcome.OK(); got != tt.want {
				t.Errorf("Outcome.OK() = %v, want %v", got, tt.want)
			}
		})
	}
}

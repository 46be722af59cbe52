package event

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Iron-Ham/dialogorithm/internal/logging"
)

func TestBus_SubscribeAndPublish(t *testing.T) {
	bus := NewBus(nil)

	var received []Event
	id := bus.Subscribe(TypeStageChanged, func(e Event) {
		received = append(received, e)
	})
	if id == "" {
		t.Error("Subscribe should return a non-empty ID")
	}
	if len(received) != 0 {
		t.Error("Handler should not be called until an event is published")
	}

	bus.Publish(NewStageChangedEvent("run-1", StageValidate, StageCompose))
	bus.Publish(NewGenerationCompletedEvent("run-1", "", nil, 0, 0, time.Second))

	if len(received) != 1 {
		t.Fatalf("Expected 1 stage event, got %d", len(received))
	}
	sc, ok := received[0].(StageChangedEvent)
	if !ok {
		t.Fatalf("Expected StageChangedEvent, got %T", received[0])
	}
	if sc.RunID != "run-1" || sc.Previous != StageValidate || sc.Current != StageCompose {
		t.Errorf("Unexpected event contents: %+v", sc)
	}
}

func TestBus_WildcardAfterSpecific(t *testing.T) {
	bus := NewBus(nil)

	var order []string
	bus.SubscribeAll(func(e Event) { order = append(order, "wildcard") })
	bus.Subscribe(TypeStageChanged, func(e Event) { order = append(order, "specific") })

	bus.Publish(NewStageChangedEvent("r", StageCompose, StageRender))

	if strings.Join(order, ",") != "specific,wildcard" {
		t.Errorf("Unexpected dispatch order: %v", order)
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus(nil)

	calls := 0
	bus.Subscribe(TypeStageChanged, func(e Event) { calls++ })
	drop := bus.Subscribe(TypeStageChanged, func(e Event) { calls += 10 })

	if !bus.Unsubscribe(drop) {
		t.Fatal("Unsubscribe should report an existing subscription")
	}
	if bus.Unsubscribe(drop) {
		t.Error("Unsubscribe should report a removed subscription as missing")
	}

	bus.Publish(NewStageChangedEvent("r", StageValidate, StageCompose))
	if calls != 1 {
		t.Errorf("Expected only the remaining handler to run, calls=%d", calls)
	}
	if bus.SubscriptionCount() != 1 {
		t.Errorf("Expected 1 subscription, got %d", bus.SubscriptionCount())
	}
}

func TestBus_Clear(t *testing.T) {
	bus := NewBus(nil)
	bus.Subscribe(TypeStageChanged, func(e Event) {})
	bus.SubscribeAll(func(e Event) {})

	bus.Clear()

	if bus.SubscriptionCount() != 0 {
		t.Errorf("Expected 0 subscriptions after clear, got %d", bus.SubscriptionCount())
	}
}

func TestBus_HandlerPanicRecovery(t *testing.T) {
	var logs bytes.Buffer
	bus := NewBus(logging.NewWriterLogger(&logs, logging.LevelError))

	calls := 0
	bus.Subscribe(TypeStageChanged, func(e Event) {
		calls++
		panic("handler panic")
	})
	bus.Subscribe(TypeStageChanged, func(e Event) {
		calls++
	})

	bus.Publish(NewStageChangedEvent("r", StageRender, StageFailed))

	if calls != 2 {
		t.Errorf("Expected both handlers to be called despite panic, got %d calls", calls)
	}
	if !strings.Contains(logs.String(), "handler panic") {
		t.Errorf("Expected panic to be logged, got %q", logs.String())
	}
}

func TestBus_NilBusDropsEvents(t *testing.T) {
	var bus *Bus
	bus.Publish(NewStageChangedEvent("r", StageValidate, StageCompose))
}

func TestBus_ConcurrentPublish(t *testing.T) {
	bus := NewBus(nil)

	var mu sync.Mutex
	calls := 0
	bus.SubscribeAll(func(e Event) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for range 100 {
		wg.Go(func() {
			bus.Publish(NewStageChangedEvent("r", StageValidate, StageCompose))
		})
	}
	wg.Wait()

	if calls != 100 {
		t.Errorf("Expected 100 calls, got %d", calls)
	}
}

func TestBus_ConcurrentSubscribeUnsubscribe(t *testing.T) {
	bus := NewBus(nil)

	var wg sync.WaitGroup
	for range 50 {
		wg.Go(func() {
			id := bus.Subscribe(TypeStageChanged, func(e Event) {})
			bus.Unsubscribe(id)
		})
	}
	wg.Wait()

	if bus.SubscriptionCount() != 0 {
		t.Errorf("Expected 0 subscriptions after concurrent add/remove, got %d", bus.SubscriptionCount())
	}
}

func TestBus_UniqueIDs(t *testing.T) {
	bus := NewBus(nil)

	ids := make(map[string]bool)
	for range 100 {
		id := bus.Subscribe(TypeStageChanged, func(e Event) {})
		if ids[id] {
			t.Errorf("Duplicate subscription ID: %s", id)
		}
		ids[id] = true
	}
}

func TestGenerationCompletedEvent(t *testing.T) {
	ok := NewGenerationCompletedEvent("r", "/out/card.png", nil, 1, 2, time.Second)
	if !ok.Success || ok.Error != "" || ok.ImagePath != "/out/card.png" {
		t.Errorf("Unexpected success event: %+v", ok)
	}
	if ok.Duplicates != 1 || ok.Placeholders != 2 {
		t.Errorf("Degradation counts not carried: %+v", ok)
	}

	failed := NewGenerationCompletedEvent("r", "", errors.New("boom"), 0, 0, 0)
	if failed.Success || failed.Error != "boom" {
		t.Errorf("Unexpected failure event: %+v", failed)
	}
	if failed.EventType() != TypeGenerationCompleted {
		t.Errorf("Unexpected type %q", failed.EventType())
	}
}

func TestStage_Terminal(t *testing.T) {
	for _, s := range []Stage{StageDone, StageFailed} {
		if !s.Terminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []Stage{StageValidate, StageCompose, StageVerify, StageRender} {
		if s.Terminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}
